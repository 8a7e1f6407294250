package seeder

import (
	"context"
	"net/http"

	"github.com/veidly/seedctl/internal/api"
)

// defaultAdminPassword matches the backend's auto-created admin account;
// ADMIN_PASSWORD overrides it for deployments with a custom password.
const defaultAdminPassword = "admin123"

// adminLogin obtains the privileged token used by the email-verification
// stage. Without it the run cannot continue.
func (s *Seeder) adminLogin(ctx context.Context) (string, bool) {
	s.logger.Info("logging in as admin", "email", s.config.adminEmail)

	status, resp := s.client.Login(ctx, api.LoginRequest{
		Email:    s.config.adminEmail,
		Password: s.config.adminPassword,
	})

	if status != http.StatusOK || resp.Token == "" {
		s.logger.Error("admin login failed", "status", status)
		s.logger.Info("set ADMIN_PASSWORD if the backend uses a custom admin password")
		s.logger.Info("the generated password is printed in the backend logs on first start")
		return "", false
	}

	s.logger.Info("admin logged in")

	return resp.Token, true
}
