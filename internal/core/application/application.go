package application

import "time"

// Application links a candidate to a job within one organization. A
// candidate applies to a given job at most once per organization.
type Application struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	CandidateID    string    `json:"candidate_id"`
	JobID          string    `json:"job_id"`
	Status         string    `json:"status"`
	Notes          *string   `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Application statuses, roughly in pipeline order.
const (
	StatusApplied   = "applied"
	StatusScreening = "screening"
	StatusInterview = "interview"
	StatusOffer     = "offer"
	StatusHired     = "hired"
	StatusRejected  = "rejected"
)

var knownStatuses = map[string]struct{}{
	StatusApplied:   {},
	StatusScreening: {},
	StatusInterview: {},
	StatusOffer:     {},
	StatusHired:     {},
	StatusRejected:  {},
}

// StatusValid reports whether the given status is a known application status.
func StatusValid(status string) bool {
	_, ok := knownStatuses[status]
	return ok
}

// Filter holds the parameters for a paginated application search.
type Filter struct {
	CandidateID string
	JobID       string
	Status      string
}

const (
	FieldCandidateID = "candidate_id"
	FieldJobID       = "job_id"
	FieldStatus      = "status"
	FieldNotes       = "notes"
)
