// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"
	"strings"
)

// scoreRequest asks for one viewer/target pair score.
type scoreRequest struct {
	ViewerID string `json:"viewer_id"`
	TargetID string `json:"target_id"`
}

func (r scoreRequest) validate() error {
	switch {
	case strings.TrimSpace(r.ViewerID) == "":
		return ErrMissingViewerID
	case strings.TrimSpace(r.TargetID) == "":
		return ErrMissingTargetID
	}
	return nil
}

// ScoreHandler handles pair score requests.
type ScoreHandler struct {
	deps Dependencies
}

// NewScoreHandler creates a new score handler.
func NewScoreHandler(deps Dependencies) *ScoreHandler {
	return &ScoreHandler{deps: deps}
}

// HandlePostScore handles POST /score requests.
func (h *ScoreHandler) HandlePostScore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	result, err := h.deps.MatchScore(r.Context(), req.ViewerID, req.TargetID)
	if err != nil {
		writeRankingError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
