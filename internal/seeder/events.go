package seeder

import (
	"context"
	"net/http"
	"time"

	"github.com/veidly/seedctl/internal/api"
	"github.com/veidly/seedctl/internal/fixture"
)

const (
	// Participation draws from the first 20 listed events and stops once a
	// user joined 4 of them; each candidate is taken with 40% probability.
	maxJoinCandidates = 20
	maxJoinsPerUser   = 4
	joinProbability   = 0.4
)

// createEvents creates every event fixture of every provisioned user and
// returns the number of successful creations. Individual failures are logged
// and skipped.
func (s *Seeder) createEvents(ctx context.Context, creds []credentials) int {
	s.logger.Info("creating events")

	created := 0

	for _, c := range creds {
		u, ok := fixture.UserByName(c.username)
		if !ok {
			s.logger.Error("no fixture for provisioned user", "user", c.username)
			continue
		}

		events := fixture.EventsFor(c.username)
		s.logger.Info("creating events for user", "user", c.username, "count", len(events))

		for _, e := range events {
			start := fixture.StartTime(s.now(), e.DaysAhead, e.Hour)

			status, _ := s.client.CreateEvent(ctx, c.token, api.EventRequest{
				Title:             e.Title,
				Description:       e.Description,
				Category:          e.Category,
				Latitude:          e.Latitude,
				Longitude:         e.Longitude,
				StartTime:         start.Format(time.RFC3339),
				CreatorName:       u.Name,
				CreatorContact:    u.Email,
				MaxParticipants:   e.MaxParticipants,
				GenderRestriction: e.Gender,
				AgeMin:            e.AgeMin,
				AgeMax:            e.AgeMax,
			})

			if status != http.StatusOK && status != http.StatusCreated {
				s.logger.Error("event creation failed", "user", c.username, "title", e.Title, "status", status)
				continue
			}

			created++
			s.logger.Info("created event", "title", e.Title, "location", e.Location)
		}
	}

	return created
}

// simulateParticipation has each user join a random subset of the listed
// events. Best effort: join failures are not retried and not counted.
func (s *Seeder) simulateParticipation(ctx context.Context, creds []credentials) {
	s.logger.Info("simulating event participation")

	status, events := s.client.Events(ctx, nil)
	if status != http.StatusOK {
		s.logger.Error("fetching events failed", "status", status)
		return
	}

	if len(events) > maxJoinCandidates {
		events = events[:maxJoinCandidates]
	}

	s.logger.Info("fetched join candidates", "count", len(events))

	for _, c := range creds {
		joins := 0

		for _, e := range events {
			if joins >= maxJoinsPerUser {
				break
			}

			if s.rng.Float64() >= joinProbability {
				continue
			}

			status := s.client.JoinEvent(ctx, c.token, e.ID)
			if status != http.StatusOK && status != http.StatusCreated {
				continue
			}

			joins++
			s.logger.Info("user joined event", "user", c.username, "event_id", e.ID)
		}
	}
}
