// Package model contains domain models passed between layers.
package model

// Role classifies a profile within the network.
type Role string

// Profile roles.
const (
	RoleStudent Role = "student"
	RoleAlumni  Role = "alumni"
	RoleAdmin   Role = "admin"
)

// ParseRole returns the Role for raw, or false when raw names no
// known role. Empty input defaults to student.
func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case "":
		return RoleStudent, true
	case RoleStudent, RoleAlumni, RoleAdmin:
		return Role(raw), true
	default:
		return "", false
	}
}

// Kind classifies a rankable candidate and selects the scoring weights
// that apply to it.
type Kind string

// Candidate kinds.
const (
	KindJob           Kind = "job"
	KindAlumniProfile Kind = "alumni_profile"
)

// ParseKind returns the Kind for raw, or false when raw names no
// known kind.
func ParseKind(raw string) (Kind, bool) {
	switch Kind(raw) {
	case KindJob, KindAlumniProfile:
		return Kind(raw), true
	default:
		return "", false
	}
}

// ScoreSource records which scorer produced a match score.
type ScoreSource string

// Score sources.
const (
	SourceRemote ScoreSource = "remote"
	SourceLocal  ScoreSource = "local"
)

// Profile represents a person being matched against candidates.
// Skills and Branch are expected to be in canonical form (see the
// normalize package); GraduationYear is 0 when unknown.
type Profile struct {
	ID             string   `json:"id"`
	DisplayName    string   `json:"display_name,omitempty"`
	Role           Role     `json:"role"`
	Branch         string   `json:"branch,omitempty"`
	Skills         []string `json:"skills"`
	GraduationYear int      `json:"graduation_year,omitempty"`
}

// Candidate represents a rankable item: a job posting or another
// member's profile. IDs must be unique within one ranking call.
type Candidate struct {
	ID     string   `json:"id"`
	Kind   Kind     `json:"kind"`
	Branch string   `json:"branch,omitempty"`
	Skills []string `json:"skills"`
}

// MatchResult is the outcome of scoring one (Profile, Candidate) pair.
// Score is always in [0, 100].
type MatchResult struct {
	CandidateID string      `json:"candidate_id"`
	Score       int         `json:"score"`
	Source      ScoreSource `json:"source"`
}

// RankedList is an ordered, bounded view over match results.
// Items are sorted descending by score; equal scores are ordered by
// candidate ID ascending so repeated calls paginate identically.
type RankedList struct {
	Items           []MatchResult `json:"items"`
	Limit           int           `json:"limit"`
	TotalCandidates int           `json:"total_candidates"`
}
