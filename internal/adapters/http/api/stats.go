// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/alumnihub/matchrank/internal/app"
)

// StatsProvider reports the engine's effective configuration and
// directory size.
type StatsProvider interface {
	GetStats() app.Stats
}

// StatsHandler serves the matching engine's operational snapshot.
type StatsHandler struct {
	statsProvider StatsProvider
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(statsProvider StatsProvider) *StatsHandler {
	return &StatsHandler{statsProvider: statsProvider}
}

// HandleStats handles GET /stats requests. The response carries the
// remote scorer state, the per-use-case limits, and the profile and
// candidate counts currently held by the member store.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.statsProvider.GetStats())
}
