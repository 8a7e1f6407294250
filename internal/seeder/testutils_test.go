package seeder

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/veidly/seedctl/internal/api"
)

// fakeBackend is an in-memory stand-in for the event platform, implementing
// just the surface the seeder consumes.
type fakeBackend struct {
	mu            sync.Mutex
	adminPassword string
	adminToken    string
	nextUserID    int
	nextEventID   int
	users         map[int]api.User
	bios          map[int]string
	tokens        map[string]int
	verified      map[int]bool
	events        []api.Event
	joins         map[int][]int // user id -> joined event ids

	loginCalls    int
	registerCalls int

	// healthStatus and eventsStatus force error responses; registerHook, when
	// set and returning true, takes over the registration response entirely.
	healthStatus int
	eventsStatus int
	registerHook func(w http.ResponseWriter, r *http.Request) bool
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		adminPassword: "admin123",
		adminToken:    "admin-token",
		healthStatus:  http.StatusOK,
		users:         map[int]api.User{},
		bios:          map[int]string{},
		tokens:        map[string]int{},
		verified:      map[int]bool{},
		joins:         map[int][]int{},
	}
}

func (b *fakeBackend) start(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(b.router())
	t.Cleanup(srv.Close)

	return srv
}

func (b *fakeBackend) router() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(b.healthStatus)
		fmt.Fprint(w, `{"status":"ok"}`)
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", b.handleRegister)
		r.Post("/auth/login", b.handleLogin)
		r.Get("/events", b.handleListEvents)
		r.Post("/events", b.handleCreateEvent)
		r.Post("/events/{id}/join", b.handleJoinEvent)
		r.Get("/profile", b.handleGetProfile)
		r.Put("/profile", b.handleUpdateProfile)
		r.Put("/admin/users/{id}/verify-email", b.handleVerifyEmail)
	})

	return r
}

func (b *fakeBackend) authenticate(r *http.Request) (int, bool) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

	b.mu.Lock()
	defer b.mu.Unlock()

	id, ok := b.tokens[token]

	return id, ok
}

func (b *fakeBackend) isAdmin(r *http.Request) bool {
	return r.Header.Get("Authorization") == "Bearer "+b.adminToken
}

func (b *fakeBackend) handleRegister(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	b.registerCalls++
	hook := b.registerHook
	b.mu.Unlock()

	if hook != nil && hook(w, r) {
		return
	}

	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	b.mu.Lock()
	b.nextUserID++
	id := b.nextUserID
	token := fmt.Sprintf("token-%d", id)
	user := api.User{ID: id, Email: req.Email, Name: req.Name}
	b.users[id] = user
	b.tokens[token] = id
	b.mu.Unlock()

	writeJSON(w, http.StatusCreated, api.AuthResponse{Token: token, User: user})
}

func (b *fakeBackend) handleLogin(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	b.loginCalls++
	b.mu.Unlock()

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if req.Email == "admin@veidly.com" && req.Password == b.adminPassword {
		writeJSON(w, http.StatusOK, api.AuthResponse{Token: b.adminToken})
		return
	}

	writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
}

func (b *fakeBackend) handleListEvents(w http.ResponseWriter, r *http.Request) {
	if b.eventsStatus != 0 {
		w.WriteHeader(b.eventsStatus)
		return
	}

	b.mu.Lock()
	events := make([]api.Event, len(b.events))
	copy(events, b.events)
	b.mu.Unlock()

	writeJSON(w, http.StatusOK, events)
}

func (b *fakeBackend) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	userID, ok := b.authenticate(r)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var req api.EventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	b.mu.Lock()
	b.nextEventID++
	event := api.Event{
		ID:                b.nextEventID,
		UserID:            userID,
		Title:             req.Title,
		Category:          req.Category,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		StartTime:         req.StartTime,
		MaxParticipants:   req.MaxParticipants,
		GenderRestriction: req.GenderRestriction,
		AgeMin:            req.AgeMin,
		AgeMax:            req.AgeMax,
	}
	b.events = append(b.events, event)
	b.mu.Unlock()

	writeJSON(w, http.StatusCreated, event)
}

func (b *fakeBackend) handleJoinEvent(w http.ResponseWriter, r *http.Request) {
	userID, ok := b.authenticate(r)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	eventID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	b.mu.Lock()
	b.joins[userID] = append(b.joins[userID], eventID)
	b.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]string{"message": "joined"})
}

func (b *fakeBackend) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := b.authenticate(r)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	b.mu.Lock()
	user := b.users[userID]
	user.Bio = b.bios[userID]
	b.mu.Unlock()

	writeJSON(w, http.StatusOK, user)
}

func (b *fakeBackend) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := b.authenticate(r)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var req api.ProfileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	b.mu.Lock()
	b.bios[userID] = req.Bio
	b.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]string{"message": "profile updated"})
}

func (b *fakeBackend) handleVerifyEmail(w http.ResponseWriter, r *http.Request) {
	if !b.isAdmin(r) {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	userID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	b.mu.Lock()
	_, exists := b.users[userID]
	if exists {
		b.verified[userID] = true
	}
	b.mu.Unlock()

	if !exists {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "email verified"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newTestSeeder(srvURL string, opts ...func(*Seeder)) *Seeder {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s := &Seeder{
		config: config{
			apiURL:        srvURL + "/api",
			adminEmail:    "admin@veidly.com",
			adminPassword: "admin123",
			timeout:       5 * time.Second,
		},
		logger: logger,
		client: api.NewClient(srvURL+"/api", 5*time.Second, logger),
		rng:    rand.New(rand.NewSource(1)),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}
