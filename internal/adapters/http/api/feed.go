// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strings"
)

// FeedHandler handles opportunity feed requests.
type FeedHandler struct {
	deps Dependencies
}

// NewFeedHandler creates a new feed handler.
func NewFeedHandler(deps Dependencies) *FeedHandler {
	return &FeedHandler{deps: deps}
}

// HandleGetFeed handles GET /feed/{profile_id}?limit=N requests.
func (h *FeedHandler) HandleGetFeed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	profileID := strings.TrimPrefix(r.URL.Path, "/feed/")
	if profileID == "" || strings.Contains(profileID, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	limit, ok := parseLimit(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	list, err := h.deps.RankOpportunityFeed(r.Context(), profileID, limit)
	if err != nil {
		writeRankingError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}
