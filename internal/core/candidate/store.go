package candidate

import "context"

// Repository abstracts candidate persistence. Every method takes the acting
// organization id; implementations must filter on it in the query itself,
// never post-filter in Go.
type Repository interface {
	ListCandidates(ctx context.Context, organizationID string, f Filter, limit, offset int) ([]*Candidate, int, error)
	GetCandidate(ctx context.Context, organizationID, id string) (*Candidate, error)
	CreateCandidate(ctx context.Context, c *Candidate) error
	UpdateCandidate(ctx context.Context, c *Candidate) error
	DeleteCandidate(ctx context.Context, organizationID, id string) error
}

// DetailCache caches the rendered candidate detail per organization. Misses
// and cache failures are both "not cached"; the cache must never be load-bearing.
type DetailCache interface {
	Get(ctx context.Context, organizationID, candidateID string) (*Candidate, bool)
	Set(ctx context.Context, organizationID string, c *Candidate)
	Invalidate(ctx context.Context, organizationID, candidateID string)
}
