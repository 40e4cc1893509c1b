// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alumnihub/matchrank/internal/app"
	"github.com/alumnihub/matchrank/internal/domain/model"
)

// DirectoryDependencies defines the write operations for the member
// directory.
type DirectoryDependencies interface {
	UpsertProfile(ctx context.Context, p model.Profile) (model.Profile, error)
	UpsertCandidate(ctx context.Context, c model.Candidate, approved bool) (model.Candidate, error)
}

// candidateRequest wraps a candidate with its moderation state.
type candidateRequest struct {
	model.Candidate
	Approved bool `json:"approved"`
}

// DirectoryHandler handles profile and candidate upserts.
type DirectoryHandler struct {
	deps DirectoryDependencies
}

// NewDirectoryHandler creates a new directory handler.
func NewDirectoryHandler(deps DirectoryDependencies) *DirectoryHandler {
	return &DirectoryHandler{deps: deps}
}

// HandlePostProfile handles POST /profiles requests.
func (h *DirectoryHandler) HandlePostProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var p model.Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	stored, err := h.deps.UpsertProfile(r.Context(), p)
	if err != nil {
		writeDirectoryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stored)
}

// HandlePostCandidate handles POST /candidates requests.
func (h *DirectoryHandler) HandlePostCandidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req candidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	stored, err := h.deps.UpsertCandidate(r.Context(), req.Candidate, req.Approved)
	if err != nil {
		writeDirectoryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stored)
}

func writeDirectoryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, app.ErrMissingID),
		errors.Is(err, app.ErrInvalidKind),
		errors.Is(err, app.ErrInvalidRole):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	case errors.Is(err, app.ErrReadOnly):
		writeError(w, http.StatusForbidden, "read_only", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
