// Package seeder drives the test-data seeding pipeline: probe the backend,
// log in as admin, provision users, verify their emails, create events,
// simulate participation, then smoke-test the read API.
package seeder

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/veidly/seedctl/internal/api"
	"github.com/veidly/seedctl/internal/fixture"
	"github.com/veidly/seedctl/internal/vcs"
)

var (
	version = vcs.Version()

	// The two conditions that abort the whole run. Everything else is
	// logged per item and the pipeline moves on.
	ErrBackendUnreachable = errors.New("backend unreachable")
	ErrAdminLogin         = errors.New("admin login failed")
)

type config struct {
	apiURL        string
	adminEmail    string
	adminPassword string
	timeout       time.Duration
	verbose       bool
}

type Seeder struct {
	config config
	logger *slog.Logger
	client *api.Client
	rng    *rand.Rand
	now    func() time.Time
}

// credentials is what provisioning captured for one user.
type credentials struct {
	username string
	token    string
	userID   int
}

func Run() error {
	var cfg config

	flag.StringVar(&cfg.apiURL, "api-url", "http://localhost:8080/api", "Backend API base URL")
	flag.StringVar(&cfg.adminEmail, "admin-email", "admin@veidly.com", "Admin account email")
	flag.DurationVar(&cfg.timeout, "timeout", 15*time.Second, "Per-request timeout")
	flag.BoolVar(&cfg.verbose, "verbose", false, "Log every request at debug level")
	flag.BoolVar(&cfg.verbose, "v", false, "Shorthand for -verbose")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	cfg.adminPassword = os.Getenv("ADMIN_PASSWORD")
	if cfg.adminPassword == "" {
		cfg.adminPassword = defaultAdminPassword
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	if err := fixture.Validate(); err != nil {
		logger.Error("fixture tables failed validation", "error", err)
		return err
	}

	s := &Seeder{
		config: cfg,
		logger: logger,
		client: api.NewClient(cfg.apiURL, cfg.timeout, logger),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		now:    time.Now,
	}

	err := s.run(context.Background())
	if err != nil {
		logger.Error("seeding aborted", "error", err)
		return err
	}

	return nil
}

func (s *Seeder) run(ctx context.Context) error {
	s.logger.Info("starting test data seeding", "api_url", s.config.apiURL, "version", version)

	if !s.checkBackend(ctx) {
		s.logger.Error("backend is not reachable", "api_url", s.config.apiURL)
		s.logger.Info("start the backend first, e.g. with: make dev")
		return ErrBackendUnreachable
	}

	adminToken, ok := s.adminLogin(ctx)
	if !ok {
		return ErrAdminLogin
	}

	creds := s.createUsers(ctx)
	if len(creds) < len(fixture.Users) {
		s.logger.Warn("not all users were provisioned, continuing anyway",
			"created", len(creds), "expected", len(fixture.Users))
	}

	verified := s.verifyUsers(ctx, creds, adminToken)
	s.logger.Info("email verification finished", "verified", verified, "total", len(creds))

	created := s.createEvents(ctx, creds)

	s.simulateParticipation(ctx, creds)

	s.checkProfiles(ctx, creds)
	s.checkFilters(ctx)

	s.printSummary(created, len(creds))

	return nil
}
