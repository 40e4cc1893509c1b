// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alumnihub/matchrank/internal/adapters/repository"
	"github.com/alumnihub/matchrank/internal/domain/model"
	"github.com/alumnihub/matchrank/internal/domain/rank"
)

// Dependencies required by HTTP handlers. Using an interface bundle
// keeps the handler layer loosely coupled to the orchestrator.
type Dependencies interface {
	DirectoryDependencies

	RankJobsForProfile(ctx context.Context, profileID string, limit int) (model.RankedList, error)
	RankAlumniForProfile(ctx context.Context, profileID string, limit int) (model.RankedList, error)
	RankOpportunityFeed(ctx context.Context, profileID string, limit int) (model.RankedList, error)
	MatchScore(ctx context.Context, viewerID, targetID string) (model.MatchResult, error)
}

// Server wires HTTP routes for the matching API.
type Server struct {
	recommendationsHandler *RecommendationsHandler
	matchesHandler         *MatchesHandler
	feedHandler            *FeedHandler
	scoreHandler           *ScoreHandler
	directoryHandler       *DirectoryHandler
	statsHandler           *StatsHandler
	healthHandler          *HealthHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		recommendationsHandler: NewRecommendationsHandler(deps),
		matchesHandler:         NewMatchesHandler(deps),
		feedHandler:            NewFeedHandler(deps),
		scoreHandler:           NewScoreHandler(deps),
		directoryHandler:       NewDirectoryHandler(deps),
		statsHandler:           NewStatsHandler(statsProvider),
		healthHandler:          NewHealthHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/recommendations", RequestIDMiddleware(MetricsMiddleware(s.recommendationsHandler.HandlePostRecommendations, "recommendations")))
	mux.HandleFunc("/matches/", RequestIDMiddleware(MetricsMiddleware(s.matchesHandler.HandleGetMatches, "matches")))
	mux.HandleFunc("/feed/", RequestIDMiddleware(MetricsMiddleware(s.feedHandler.HandleGetFeed, "feed")))
	mux.HandleFunc("/score", RequestIDMiddleware(MetricsMiddleware(s.scoreHandler.HandlePostScore, "score")))
	mux.HandleFunc("/profiles", RequestIDMiddleware(MetricsMiddleware(s.directoryHandler.HandlePostProfile, "profiles")))
	mux.HandleFunc("/candidates", RequestIDMiddleware(MetricsMiddleware(s.directoryHandler.HandlePostCandidate, "candidates")))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeRankingError translates orchestrator errors to HTTP statuses:
// missing profiles map to 404, ranking contract violations to 400,
// everything else to 500.
func writeRankingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, rank.ErrInvalidLimit), errors.Is(err, rank.ErrDuplicateCandidate):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
