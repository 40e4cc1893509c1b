// Package scoring computes bounded match scores between a viewer
// profile and a single candidate.
package scoring

import (
	"math"
	"strings"

	"github.com/alumnihub/matchrank/internal/domain/model"
)

// Default scoring configuration constants.
const (
	defaultBranchBonus = 100
	maxScoreValue      = 100
)

// DefaultWeights is the combination used when a use case supplies no
// override: score = min(100, round(0.6*skill + 0.4*branch)).
var DefaultWeights = Weights{Skill: 0.6, Branch: 0.4}

// Weights controls how the skill and branch components combine into a
// final score. Each use case owns its weights; the scorer only exposes
// the raw components.
type Weights struct {
	Skill  float64 `koanf:"skill"`
	Branch float64 `koanf:"branch"`
}

// Components holds the two raw scoring signals, each on a 0-100 scale.
type Components struct {
	Skill  int
	Branch int
}

// Option applies a configuration option to the Scorer.
type Option func(*Scorer)

// WithBranchBonus sets the branch component value awarded on a branch
// match. Values outside (0, 100] are ignored.
func WithBranchBonus(bonus int) Option {
	return func(s *Scorer) {
		if bonus > 0 && bonus <= maxScoreValue {
			s.branchBonus = bonus
		}
	}
}

// WithWeights sets the default combination weights.
func WithWeights(w Weights) Option {
	return func(s *Scorer) {
		if w.Skill >= 0 && w.Branch >= 0 && w.Skill+w.Branch > 0 {
			s.weights = w
		}
	}
}

// Scorer computes deterministic local match scores. It is stateless
// after construction and safe for concurrent use.
type Scorer struct {
	branchBonus int
	weights     Weights
}

// New creates a Scorer with configuration options.
func New(opts ...Option) *Scorer {
	s := &Scorer{
		branchBonus: defaultBranchBonus,
		weights:     DefaultWeights,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Components returns the raw skill and branch signals for one pair.
//
// The skill component is the share of candidate skills covered by the
// viewer, using bidirectional substring containment so near-matches
// like "js" and "javascript" count. Coverage is asymmetric: it
// measures how well the candidate's requirements are satisfied by the
// viewer. An empty candidate skill set yields component 0.
func (s *Scorer) Components(viewer model.Profile, candidate model.Candidate) Components {
	c := Components{
		Skill: skillCoverage(viewer.Skills, candidate.Skills),
	}
	if viewer.Branch != "" && viewer.Branch == candidate.Branch {
		c.Branch = s.branchBonus
	}
	return c
}

// Score combines the components with the scorer's default weights.
func (s *Scorer) Score(viewer model.Profile, candidate model.Candidate) int {
	return Combine(s.Components(viewer, candidate), s.weights)
}

// ScoreWith combines the components with caller-supplied weights.
func (s *Scorer) ScoreWith(viewer model.Profile, candidate model.Candidate, w Weights) int {
	return Combine(s.Components(viewer, candidate), w)
}

// Combine folds components into a final score, clamped to [0, 100].
func Combine(c Components, w Weights) int {
	score := int(math.Round(w.Skill*float64(c.Skill) + w.Branch*float64(c.Branch)))
	if score < 0 {
		return 0
	}
	if score > maxScoreValue {
		return maxScoreValue
	}
	return score
}

// skillCoverage returns round(100 * matched / len(candidate)) where a
// candidate skill counts as matched when it contains, or is contained
// by, any viewer skill.
func skillCoverage(viewerSkills, candidateSkills []string) int {
	if len(candidateSkills) == 0 {
		return 0
	}
	matched := 0
	for _, cs := range candidateSkills {
		for _, vs := range viewerSkills {
			if strings.Contains(cs, vs) || strings.Contains(vs, cs) {
				matched++
				break
			}
		}
	}
	return int(math.Round(100 * float64(matched) / float64(len(candidateSkills))))
}
