package repository

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/alumnihub/matchrank/internal/domain/model"
	"github.com/alumnihub/matchrank/pkg/metrics"
)

// StoredCandidate pairs a candidate with its moderation state.
type StoredCandidate struct {
	Candidate model.Candidate
	Approved  bool
}

// MemberStore is an in-memory ProfileSource and CandidateSource backed
// by maps. Safe for concurrent use.
type MemberStore struct {
	mu         sync.RWMutex
	profiles   map[string]model.Profile
	candidates map[string]StoredCandidate
}

// NewMemberStore creates an empty member store.
func NewMemberStore() *MemberStore {
	return &MemberStore{
		profiles:   make(map[string]model.Profile),
		candidates: make(map[string]StoredCandidate),
	}
}

// PutProfile inserts or replaces a profile.
func (s *MemberStore) PutProfile(ctx context.Context, p model.Profile) {
	s.mu.Lock()
	s.profiles[p.ID] = p
	count := len(s.profiles)
	s.mu.Unlock()
	metrics.UpdateProfilesTracked(count)
}

// PutCandidate inserts or replaces a candidate.
func (s *MemberStore) PutCandidate(ctx context.Context, c model.Candidate, approved bool) {
	s.mu.Lock()
	s.candidates[c.ID] = StoredCandidate{Candidate: c, Approved: approved}
	count := len(s.candidates)
	s.mu.Unlock()
	metrics.UpdateCandidatesTracked(count)
}

// Profile returns the profile for id, or ErrNotFound.
func (s *MemberStore) Profile(ctx context.Context, id string) (model.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[id]
	if !ok {
		return model.Profile{}, ErrNotFound
	}
	return p, nil
}

// Candidates returns all candidates matching the filter, ordered by ID
// so callers see a stable pool.
func (s *MemberStore) Candidates(ctx context.Context, f Filter) ([]model.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Candidate, 0, len(s.candidates))
	for _, sc := range s.candidates {
		if f.Kind != "" && sc.Candidate.Kind != f.Kind {
			continue
		}
		if f.ApprovedOnly && !sc.Approved {
			continue
		}
		if slices.Contains(f.ExcludeIDs, sc.Candidate.ID) {
			continue
		}
		out = append(out, sc.Candidate)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Counts returns the number of stored profiles and candidates.
func (s *MemberStore) Counts() (profiles, candidates int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.profiles), len(s.candidates)
}
