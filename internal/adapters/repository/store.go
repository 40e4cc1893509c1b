// Package repository defines the profile and candidate source
// contracts the engine consumes, plus errors.
//
// Persistence proper (the document database behind the alumni apps) is
// an external collaborator; these interfaces are its seam. The
// in-memory MemberStore implementation backs the service binary and
// lets tests run against fakes.
package repository

import (
	"context"

	"github.com/alumnihub/matchrank/internal/domain/model"
)

// Filter narrows a candidate query.
type Filter struct {
	// Kind restricts results to one candidate kind; empty means all.
	Kind model.Kind

	// ExcludeIDs drops specific candidates, e.g. the viewer's own
	// profile or postings already acted upon.
	ExcludeIDs []string

	// ApprovedOnly keeps only moderator-approved candidates.
	ApprovedOnly bool
}

// ProfileSource loads viewer profiles.
type ProfileSource interface {
	// Profile returns the profile for id, or ErrNotFound.
	Profile(ctx context.Context, id string) (model.Profile, error)
}

// CandidateSource loads rankable candidate pools.
type CandidateSource interface {
	// Candidates returns all candidates matching the filter.
	Candidates(ctx context.Context, f Filter) ([]model.Candidate, error)
}
