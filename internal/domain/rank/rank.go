// Package rank turns a candidate pool into a deterministically ordered,
// bounded ranked list.
package rank

import (
	"fmt"
	"sort"

	"github.com/alumnihub/matchrank/internal/domain/model"
	"github.com/alumnihub/matchrank/internal/domain/scoring"
)

// Option applies a configuration option to one ranking call.
type Option func(*request)

// WithScorer sets the local scorer. A default scorer is used otherwise.
func WithScorer(s *scoring.Scorer) Option {
	return func(r *request) {
		if s != nil {
			r.scorer = s
		}
	}
}

// WithWeights overrides the combination weights for locally scored
// candidates.
func WithWeights(w scoring.Weights) Option {
	return func(r *request) {
		if w.Skill >= 0 && w.Branch >= 0 && w.Skill+w.Branch > 0 {
			r.weights = w
		}
	}
}

// WithRemoteScores supplies scores obtained from a remote scorer. The
// map may cover any subset of the candidate pool; uncovered candidates
// fall back to local scoring rather than being dropped.
func WithRemoteScores(scores map[string]int) Option {
	return func(r *request) {
		r.remote = scores
	}
}

type request struct {
	scorer  *scoring.Scorer
	weights scoring.Weights
	remote  map[string]int
}

// Rank scores every candidate against the viewer and returns an ordered
// list truncated to limit. Output is a pure function of input: items
// sort descending by score with candidate ID ascending as tie-break, so
// identical calls paginate identically.
//
// Returns ErrInvalidLimit when limit <= 0 and ErrDuplicateCandidate
// when the pool violates the unique-ID contract.
func Rank(viewer model.Profile, candidates []model.Candidate, limit int, opts ...Option) (model.RankedList, error) {
	if limit <= 0 {
		return model.RankedList{}, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}

	seen := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		if _, dup := seen[c.ID]; dup {
			return model.RankedList{}, fmt.Errorf("%w: %q", ErrDuplicateCandidate, c.ID)
		}
		seen[c.ID] = struct{}{}
	}

	req := request{
		scorer:  scoring.New(),
		weights: scoring.DefaultWeights,
	}
	for _, opt := range opts {
		opt(&req)
	}

	items := make([]model.MatchResult, 0, len(candidates))
	for _, c := range candidates {
		items = append(items, req.score(viewer, c))
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Score != items[j].Score {
			return items[i].Score > items[j].Score
		}
		return items[i].CandidateID < items[j].CandidateID
	})

	total := len(items)
	if total > limit {
		items = items[:limit]
	}

	return model.RankedList{
		Items:           items,
		Limit:           limit,
		TotalCandidates: total,
	}, nil
}

// score picks the remote score when the caller supplied one for this
// candidate, otherwise computes the local score.
func (r *request) score(viewer model.Profile, c model.Candidate) model.MatchResult {
	if s, ok := r.remote[c.ID]; ok {
		return model.MatchResult{
			CandidateID: c.ID,
			Score:       clamp(s),
			Source:      model.SourceRemote,
		}
	}
	return model.MatchResult{
		CandidateID: c.ID,
		Score:       r.scorer.ScoreWith(viewer, c, r.weights),
		Source:      model.SourceLocal,
	}
}

func clamp(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
