// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"
	"strings"
)

// recommendationsRequest mirrors the payload the original applications
// posted to their job recommendation endpoint.
type recommendationsRequest struct {
	ProfileID string `json:"profile_id"`
	Limit     int    `json:"limit,omitempty"`
}

func (r recommendationsRequest) validate() error {
	if strings.TrimSpace(r.ProfileID) == "" {
		return ErrMissingProfileID
	}
	return nil
}

// RecommendationsHandler handles job recommendation requests.
type RecommendationsHandler struct {
	deps Dependencies
}

// NewRecommendationsHandler creates a new recommendations handler.
func NewRecommendationsHandler(deps Dependencies) *RecommendationsHandler {
	return &RecommendationsHandler{deps: deps}
}

// HandlePostRecommendations handles POST /recommendations requests.
func (h *RecommendationsHandler) HandlePostRecommendations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req recommendationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	list, err := h.deps.RankJobsForProfile(r.Context(), req.ProfileID, req.Limit)
	if err != nil {
		writeRankingError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}
