// Package app provides the batch ranking orchestrator that applies the
// matching engine across the recurring use cases: job recommendations,
// alumni directory top matches, and the opportunity feed.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alumnihub/matchrank/internal/adapters/remote"
	"github.com/alumnihub/matchrank/internal/adapters/repository"
	"github.com/alumnihub/matchrank/internal/domain/model"
	"github.com/alumnihub/matchrank/internal/domain/rank"
	"github.com/alumnihub/matchrank/internal/domain/scoring"
	"github.com/alumnihub/matchrank/pkg/logger"
	"github.com/alumnihub/matchrank/pkg/metrics"
)

// Default orchestrator configuration constants.
const (
	defaultTopJobsLimit = 5
	defaultAlumniLimit  = 20
	defaultFeedLimit    = 50
	defaultMinJobScore  = 30
)

// Use-case labels for metrics and logs.
const (
	useCaseJobs   = "jobs"
	useCaseAlumni = "alumni"
	useCaseFeed   = "feed"
	useCasePair   = "pair"
)

// RemoteScorer abstracts the remote scoring adapter so the service can
// be tested with fakes.
type RemoteScorer interface {
	BatchScores(ctx context.Context, viewer model.Profile, candidates []model.Candidate) (map[string]int, error)
	PairScores(ctx context.Context, viewer model.Profile, candidates []model.Candidate) (map[string]int, error)
}

// Service orchestrates profile loading, candidate filtering, remote
// scoring, and local ranking for each use case. It holds no per-request
// state and is safe for concurrent use.
type Service struct {
	profiles   repository.ProfileSource
	candidates repository.CandidateSource
	scorer     *scoring.Scorer
	remote     RemoteScorer
	writer     DirectoryWriter

	remotePairwise bool
	topJobsLimit   int
	alumniLimit    int
	feedLimit      int
	minJobScore    int
	weights        scoring.Weights
	useCaseWeights map[string]scoring.Weights

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithRemoteScorer enables remote-first scoring through the adapter.
func WithRemoteScorer(r RemoteScorer) Option {
	return func(s *Service) {
		s.remote = r
	}
}

// WithRemotePairwise switches remote scoring to one call per candidate.
func WithRemotePairwise(pairwise bool) Option {
	return func(s *Service) {
		s.remotePairwise = pairwise
	}
}

// WithScorer replaces the local scorer.
func WithScorer(sc *scoring.Scorer) Option {
	return func(s *Service) {
		if sc != nil {
			s.scorer = sc
		}
	}
}

// WithWeights sets the default combination weights for all use cases.
func WithWeights(w scoring.Weights) Option {
	return func(s *Service) {
		if w.Skill >= 0 && w.Branch >= 0 && w.Skill+w.Branch > 0 {
			s.weights = w
		}
	}
}

// WithJobWeights overrides the combination weights for the job use
// cases only.
func WithJobWeights(w scoring.Weights) Option {
	return useCaseWeights(useCaseJobs, w)
}

// WithAlumniWeights overrides the combination weights for the alumni
// directory use case only.
func WithAlumniWeights(w scoring.Weights) Option {
	return useCaseWeights(useCaseAlumni, w)
}

func useCaseWeights(useCase string, w scoring.Weights) Option {
	return func(s *Service) {
		if w.Skill >= 0 && w.Branch >= 0 && w.Skill+w.Branch > 0 {
			s.useCaseWeights[useCase] = w
		}
	}
}

// WithTopJobsLimit sets the job top-picks list length.
func WithTopJobsLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.topJobsLimit = limit
		}
	}
}

// WithAlumniLimit sets the alumni directory list length.
func WithAlumniLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.alumniLimit = limit
		}
	}
}

// WithFeedLimit sets the opportunity feed list length.
func WithFeedLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.feedLimit = limit
		}
	}
}

// WithMinJobScore sets the top-picks score cutoff. Zero disables it.
func WithMinJobScore(score int) Option {
	return func(s *Service) {
		if score >= 0 {
			s.minJobScore = score
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service over the given profile and candidate sources.
func New(profiles repository.ProfileSource, candidates repository.CandidateSource, opts ...Option) *Service {
	s := &Service{
		profiles:       profiles,
		candidates:     candidates,
		scorer:         scoring.New(),
		topJobsLimit:   defaultTopJobsLimit,
		alumniLimit:    defaultAlumniLimit,
		feedLimit:      defaultFeedLimit,
		minJobScore:    defaultMinJobScore,
		weights:        scoring.DefaultWeights,
		useCaseWeights: make(map[string]scoring.Weights),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("app")
	}
	return s
}

// RankJobsForProfile returns ranked job recommendations for a profile.
// limit <= 0 selects the configured top-picks length and hides picks
// at or below the minimum score cutoff, mirroring how the original
// screens hid weak matches. An explicit limit returns the full scored
// listing with no cutoff.
func (s *Service) RankJobsForProfile(ctx context.Context, profileID string, limit int) (model.RankedList, error) {
	viewer, err := s.profiles.Profile(ctx, profileID)
	if err != nil {
		return model.RankedList{}, fmt.Errorf("load profile %q: %w", profileID, err)
	}

	pool, err := s.candidates.Candidates(ctx, repository.Filter{
		Kind:         model.KindJob,
		ApprovedOnly: true,
	})
	if err != nil {
		return model.RankedList{}, fmt.Errorf("load job candidates: %w", err)
	}

	topPicks := limit <= 0
	if topPicks {
		limit = s.topJobsLimit
	}
	list, err := s.rankPool(ctx, useCaseJobs, viewer, pool, limit)
	if err != nil {
		return model.RankedList{}, err
	}

	if topPicks && s.minJobScore > 0 {
		kept := list.Items[:0]
		for _, item := range list.Items {
			if item.Score > s.minJobScore {
				kept = append(kept, item)
			}
		}
		list.Items = kept
	}
	return list, nil
}

// RankAlumniForProfile returns the directory's top alumni matches for a
// profile, excluding the viewer's own entry.
func (s *Service) RankAlumniForProfile(ctx context.Context, profileID string, limit int) (model.RankedList, error) {
	viewer, err := s.profiles.Profile(ctx, profileID)
	if err != nil {
		return model.RankedList{}, fmt.Errorf("load profile %q: %w", profileID, err)
	}

	pool, err := s.candidates.Candidates(ctx, repository.Filter{
		Kind:         model.KindAlumniProfile,
		ApprovedOnly: true,
		ExcludeIDs:   []string{profileID},
	})
	if err != nil {
		return model.RankedList{}, fmt.Errorf("load alumni candidates: %w", err)
	}

	if limit <= 0 {
		limit = s.alumniLimit
	}
	return s.rankPool(ctx, useCaseAlumni, viewer, pool, limit)
}

// RankOpportunityFeed returns a ranked feed across all candidate kinds.
func (s *Service) RankOpportunityFeed(ctx context.Context, profileID string, limit int) (model.RankedList, error) {
	viewer, err := s.profiles.Profile(ctx, profileID)
	if err != nil {
		return model.RankedList{}, fmt.Errorf("load profile %q: %w", profileID, err)
	}

	pool, err := s.candidates.Candidates(ctx, repository.Filter{
		ApprovedOnly: true,
		ExcludeIDs:   []string{profileID},
	})
	if err != nil {
		return model.RankedList{}, fmt.Errorf("load feed candidates: %w", err)
	}

	if limit <= 0 {
		limit = s.feedLimit
	}
	return s.rankPool(ctx, useCaseFeed, viewer, pool, limit)
}

// MatchScore scores a single viewer/target pair, for profile-card
// badges. The target is loaded as a profile and scored as an alumni
// candidate.
func (s *Service) MatchScore(ctx context.Context, viewerID, targetID string) (model.MatchResult, error) {
	viewer, err := s.profiles.Profile(ctx, viewerID)
	if err != nil {
		return model.MatchResult{}, fmt.Errorf("load profile %q: %w", viewerID, err)
	}
	target, err := s.profiles.Profile(ctx, targetID)
	if err != nil {
		return model.MatchResult{}, fmt.Errorf("load profile %q: %w", targetID, err)
	}

	cand := model.Candidate{
		ID:     target.ID,
		Kind:   model.KindAlumniProfile,
		Branch: target.Branch,
		Skills: target.Skills,
	}

	scores := s.fetchRemoteScores(ctx, useCasePair, viewer, []model.Candidate{cand})
	if score, ok := scores[cand.ID]; ok {
		return model.MatchResult{CandidateID: cand.ID, Score: score, Source: model.SourceRemote}, nil
	}
	return model.MatchResult{
		CandidateID: cand.ID,
		Score:       s.scorer.ScoreWith(viewer, cand, s.weightsFor(useCasePair)),
		Source:      model.SourceLocal,
	}, nil
}

// weightsFor returns the combination weights for a use case, falling
// back to the service-wide default.
func (s *Service) weightsFor(useCase string) scoring.Weights {
	if w, ok := s.useCaseWeights[useCase]; ok {
		return w
	}
	return s.weights
}

// rankPool runs remote-first scoring over a candidate pool and ranks
// the results. Remote unavailability is recovered locally and never
// surfaced to the caller.
func (s *Service) rankPool(ctx context.Context, useCase string, viewer model.Profile, pool []model.Candidate, limit int) (model.RankedList, error) {
	start := time.Now()

	remoteScores := s.fetchRemoteScores(ctx, useCase, viewer, pool)

	list, err := rank.Rank(viewer, pool, limit,
		rank.WithScorer(s.scorer),
		rank.WithWeights(s.weightsFor(useCase)),
		rank.WithRemoteScores(remoteScores),
	)
	if err != nil {
		metrics.RecordScoringError()
		return model.RankedList{}, fmt.Errorf("rank %s: %w", useCase, err)
	}

	metrics.RecordRankingServed(useCase)
	metrics.RecordRankingLatency(useCase, float64(time.Since(start).Milliseconds()))
	metrics.RecordCandidatesRanked(list.TotalCandidates)

	s.logger.Debug(ctx, "ranked candidate pool",
		logger.String("use_case", useCase),
		logger.String("viewer_id", viewer.ID),
		logger.Int("pool", list.TotalCandidates),
		logger.Int("returned", len(list.Items)),
		logger.Bool("remote", remoteScores != nil),
	)
	return list, nil
}

// fetchRemoteScores asks the remote scorer for the pool and degrades to
// nil (all-local scoring) on any failure.
func (s *Service) fetchRemoteScores(ctx context.Context, useCase string, viewer model.Profile, pool []model.Candidate) map[string]int {
	if s.remote == nil || len(pool) == 0 {
		return nil
	}

	var (
		scores map[string]int
		err    error
	)
	if s.remotePairwise {
		scores, err = s.remote.PairScores(ctx, viewer, pool)
	} else {
		scores, err = s.remote.BatchScores(ctx, viewer, pool)
	}
	if err != nil {
		metrics.RecordRemoteFallback()
		if errors.Is(err, remote.ErrUnavailable) {
			s.logger.Info(ctx, "remote scorer unavailable, scoring locally",
				logger.String("use_case", useCase),
				logger.Error(err),
			)
		} else {
			s.logger.Warn(ctx, "remote scoring failed, scoring locally",
				logger.String("use_case", useCase),
				logger.Error(err),
			)
		}
		return nil
	}
	return scores
}

// Stats reports the engine's effective configuration and directory
// size. Profiles and Candidates stay zero when the candidate source
// cannot count its contents.
type Stats struct {
	RemoteEnabled  bool `json:"remote_enabled"`
	RemotePairwise bool `json:"remote_pairwise"`
	TopJobsLimit   int  `json:"top_jobs_limit"`
	AlumniLimit    int  `json:"alumni_limit"`
	FeedLimit      int  `json:"feed_limit"`
	MinJobScore    int  `json:"min_job_score"`
	Profiles       int  `json:"profiles"`
	Candidates     int  `json:"candidates"`
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() Stats {
	stats := Stats{
		RemoteEnabled:  s.remote != nil,
		RemotePairwise: s.remotePairwise,
		TopJobsLimit:   s.topJobsLimit,
		AlumniLimit:    s.alumniLimit,
		FeedLimit:      s.feedLimit,
		MinJobScore:    s.minJobScore,
	}
	if counter, ok := s.candidates.(interface{ Counts() (int, int) }); ok {
		stats.Profiles, stats.Candidates = counter.Counts()
	}
	return stats
}
