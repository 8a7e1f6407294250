package seeder

import (
	"context"
	"net/http"
	"net/url"
)

// checkProfiles re-fetches each provisioned user's own profile, expecting a
// 200. Content is not validated; this only proves the authenticated read path
// works with the freshly issued tokens.
func (s *Seeder) checkProfiles(ctx context.Context, creds []credentials) {
	s.logger.Info("checking profile endpoints")

	for _, c := range creds {
		status, profile := s.client.Profile(ctx, c.token)
		if status != http.StatusOK {
			s.logger.Error("profile fetch failed", "user", c.username, "status", status)
			continue
		}

		s.logger.Info("profile fetched", "user", c.username, "email", profile.Email)
	}
}

// checkFilters exercises the unauthenticated listing filters. Only the status
// code is asserted; filter semantics belong to the backend's own tests.
func (s *Seeder) checkFilters(ctx context.Context) {
	s.logger.Info("checking search filters")

	filters := []struct {
		name  string
		query url.Values
	}{
		{"category", url.Values{"category": {"activity_sports"}}},
		{"gender", url.Values{"gender": {"female"}}},
		{"age", url.Values{"age": {"25"}}},
	}

	for _, f := range filters {
		status, _ := s.client.Events(ctx, f.query)
		if status != http.StatusOK {
			s.logger.Error("filter query failed", "filter", f.name, "status", status)
			continue
		}

		s.logger.Info("filter query ok", "filter", f.name)
	}
}
