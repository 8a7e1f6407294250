package seeder

import (
	"context"
	"net/http"

	"github.com/veidly/seedctl/internal/api"
	"github.com/veidly/seedctl/internal/fixture"
)

// createUsers registers every fixture user and immediately fills in their
// profile. A registration response missing either the token or the user id is
// treated as a failure for that user; the rest of the run works with whatever
// subset was provisioned.
func (s *Seeder) createUsers(ctx context.Context) []credentials {
	s.logger.Info("creating test users", "count", len(fixture.Users))

	var creds []credentials

	for _, u := range fixture.Users {
		s.logger.Info("registering user", "user", u.Username, "email", u.Email)

		status, resp := s.client.Register(ctx, api.RegisterRequest{
			Email:    u.Email,
			Password: u.Password,
			Name:     u.Name,
		})

		if status != http.StatusOK && status != http.StatusCreated {
			s.logger.Error("registration failed", "user", u.Username, "status", status)
			continue
		}

		if resp.Token == "" || resp.User.ID == 0 {
			s.logger.Error("registration response missing token or user id", "user", u.Username)
			continue
		}

		creds = append(creds, credentials{username: u.Username, token: resp.Token, userID: resp.User.ID})
		s.logger.Info("registered user", "user", u.Username, "id", resp.User.ID)

		status = s.client.UpdateProfile(ctx, resp.Token, api.ProfileUpdateRequest{
			Name:      u.Name,
			Bio:       u.Bio,
			Phone:     u.Phone,
			Threema:   u.Threema,
			Languages: u.Languages,
		})

		if status != http.StatusOK {
			s.logger.Error("profile update failed", "user", u.Username, "status", status)
			continue
		}

		s.logger.Info("profile updated", "user", u.Username)
	}

	return creds
}

// verifyUsers force-verifies every provisioned user through the admin API and
// returns how many verifications succeeded.
func (s *Seeder) verifyUsers(ctx context.Context, creds []credentials, adminToken string) int {
	s.logger.Info("verifying user emails", "count", len(creds))

	verified := 0

	for _, c := range creds {
		status := s.client.VerifyUserEmail(ctx, adminToken, c.userID)
		if status != http.StatusOK {
			s.logger.Error("email verification failed", "user", c.username, "id", c.userID, "status", status)
			continue
		}

		verified++
		s.logger.Info("email verified", "user", c.username, "id", c.userID)
	}

	return verified
}
