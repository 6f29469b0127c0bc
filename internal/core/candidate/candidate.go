package candidate

import "time"

// Candidate is a person tracked within one organization's pipeline. The same
// email may exist as separate candidates in different organizations; within
// one organization it is unique.
type Candidate struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	Phone          *string   `json:"phone"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Filter holds the parameters for a paginated candidate search.
type Filter struct {
	Query string // Substring search against name and email
}

const (
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldEmail     = "email"
	FieldPhone     = "phone"
)
