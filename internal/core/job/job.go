package job

import "time"

// Job is a position an organization is hiring for.
type Job struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Title          string    `json:"title"`
	Description    *string   `json:"description"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Job statuses. A draft is invisible to applicants; closed jobs reject new
// applications but keep their history.
const (
	StatusDraft  = "draft"
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// StatusValid reports whether the given status is a known job status.
func StatusValid(status string) bool {
	return status == StatusDraft || status == StatusOpen || status == StatusClosed
}

// Filter holds the parameters for a paginated job search.
type Filter struct {
	Status string
	Query  string // Substring search against title
}

const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldStatus      = "status"
)
