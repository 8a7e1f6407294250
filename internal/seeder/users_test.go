package seeder

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veidly/seedctl/internal/fixture"
)

func TestCreateUsersProvisionsAllFixtures(t *testing.T) {
	b := newFakeBackend()
	srv := b.start(t)

	s := newTestSeeder(srv.URL)
	creds := s.createUsers(context.Background())

	require.Len(t, creds, len(fixture.Users))

	for i, c := range creds {
		assert.Equal(t, fixture.Users[i].Username, c.username)
		assert.NotEmpty(t, c.token)
		assert.NotZero(t, c.userID)
	}

	// Profile updates landed too.
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, c := range creds {
		assert.NotEmpty(t, b.bios[c.userID], c.username)
	}
}

func TestCreateUsersSkipsOnMissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing token", `{"user":{"id":9}}`},
		{"missing user id", `{"token":"tok-9"}`},
		{"empty body", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newFakeBackend()
			b.registerHook = func(w http.ResponseWriter, r *http.Request) bool {
				b.mu.Lock()
				calls := b.registerCalls
				b.mu.Unlock()

				if calls == 1 {
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusCreated)
					w.Write([]byte(tt.body))
					return true
				}

				return false
			}
			srv := b.start(t)

			s := newTestSeeder(srv.URL)
			creds := s.createUsers(context.Background())

			require.Len(t, creds, len(fixture.Users)-1)
			for _, c := range creds {
				assert.NotEqual(t, fixture.Users[0].Username, c.username)
			}
		})
	}
}

func TestCreateUsersSkipsOnErrorStatus(t *testing.T) {
	b := newFakeBackend()
	b.registerHook = func(w http.ResponseWriter, r *http.Request) bool {
		b.mu.Lock()
		calls := b.registerCalls
		b.mu.Unlock()

		if calls == 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return true
		}

		return false
	}
	srv := b.start(t)

	s := newTestSeeder(srv.URL)
	creds := s.createUsers(context.Background())

	assert.Len(t, creds, len(fixture.Users)-1)
}

func TestVerifyUsersCountsOnlySuccesses(t *testing.T) {
	b := newFakeBackend()
	srv := b.start(t)

	s := newTestSeeder(srv.URL)
	creds := s.createUsers(context.Background())
	require.Len(t, creds, 5)

	// A user the backend does not know about fails verification without
	// affecting the others.
	withGhost := append(creds, credentials{username: "ghost", token: "x", userID: 999})

	verified := s.verifyUsers(context.Background(), withGhost, b.adminToken)

	assert.Equal(t, 5, verified)

	b.mu.Lock()
	defer b.mu.Unlock()
	assert.False(t, b.verified[999])
}

func TestVerifyUsersRequiresAdminToken(t *testing.T) {
	b := newFakeBackend()
	srv := b.start(t)

	s := newTestSeeder(srv.URL)
	creds := s.createUsers(context.Background())

	verified := s.verifyUsers(context.Background(), creds, "not-the-admin")

	assert.Zero(t, verified)
}
