package app

import (
	"context"
	"fmt"

	"github.com/alumnihub/matchrank/internal/domain/model"
	"github.com/alumnihub/matchrank/internal/domain/normalize"
	"github.com/alumnihub/matchrank/pkg/logger"
)

// DirectoryWriter is the write side of the member store. The ranking
// engine itself never mutates anything; writes exist so the service
// binary can be fed profiles and candidates.
type DirectoryWriter interface {
	PutProfile(ctx context.Context, p model.Profile)
	PutCandidate(ctx context.Context, c model.Candidate, approved bool)
}

// WithDirectoryWriter enables the upsert operations.
func WithDirectoryWriter(w DirectoryWriter) Option {
	return func(s *Service) {
		s.writer = w
	}
}

// UpsertProfile canonicalizes and stores a profile. Skills may arrive
// as lists or comma-separated strings; both normalize to canonical
// token sets. Returns the stored, normalized profile.
func (s *Service) UpsertProfile(ctx context.Context, p model.Profile) (model.Profile, error) {
	if s.writer == nil {
		return model.Profile{}, ErrReadOnly
	}
	if p.ID == "" {
		return model.Profile{}, fmt.Errorf("%w: profile", ErrMissingID)
	}
	role, ok := model.ParseRole(string(p.Role))
	if !ok {
		return model.Profile{}, fmt.Errorf("%w: %q", ErrInvalidRole, p.Role)
	}

	p.Role = role
	p.Branch = normalize.Branch(p.Branch)
	p.Skills = normalize.Skills(p.Skills)
	s.writer.PutProfile(ctx, p)

	s.logger.Debug(ctx, "profile upserted",
		logger.String("profile_id", p.ID),
		logger.Int("skills", len(p.Skills)),
	)
	return p, nil
}

// UpsertCandidate canonicalizes and stores a candidate.
func (s *Service) UpsertCandidate(ctx context.Context, c model.Candidate, approved bool) (model.Candidate, error) {
	if s.writer == nil {
		return model.Candidate{}, ErrReadOnly
	}
	if c.ID == "" {
		return model.Candidate{}, fmt.Errorf("%w: candidate", ErrMissingID)
	}
	kind, ok := model.ParseKind(string(c.Kind))
	if !ok {
		return model.Candidate{}, fmt.Errorf("%w: %q", ErrInvalidKind, c.Kind)
	}

	c.Kind = kind
	c.Branch = normalize.Branch(c.Branch)
	c.Skills = normalize.Skills(c.Skills)
	s.writer.PutCandidate(ctx, c, approved)

	s.logger.Debug(ctx, "candidate upserted",
		logger.String("candidate_id", c.ID),
		logger.String("kind", string(c.Kind)),
		logger.Bool("approved", approved),
	)
	return c, nil
}
