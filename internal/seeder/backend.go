package seeder

import (
	"context"
	"net/http"
	"time"
)

// healthProbeTimeout bounds only the liveness probe; ordinary calls run under
// the client-wide timeout.
const healthProbeTimeout = 5 * time.Second

// checkBackend reports whether the backend answers at all. Deployments that
// do not expose /health are probed through the public event listing instead,
// where an auth challenge is as good as a 200.
func (s *Seeder) checkBackend(ctx context.Context) bool {
	s.logger.Info("checking backend availability")

	probeCtx, cancel := context.WithTimeout(ctx, healthProbeTimeout)
	defer cancel()

	if s.client.Health(probeCtx) == http.StatusOK {
		s.logger.Info("backend is reachable")
		return true
	}

	fallbackCtx, cancel := context.WithTimeout(ctx, healthProbeTimeout)
	defer cancel()

	status, _ := s.client.Events(fallbackCtx, nil)
	if status == http.StatusOK || status == http.StatusUnauthorized {
		s.logger.Info("backend is reachable", "via", "/events")
		return true
	}

	return false
}
