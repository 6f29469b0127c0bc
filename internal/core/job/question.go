package job

import "time"

// Question is a screening question attached to a job, answered as part of
// an application.
type Question struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	JobID          string    `json:"job_id"`
	Prompt         string    `json:"prompt"`
	Kind           string    `json:"kind"`
	Position       int       `json:"position"`
	CreatedAt      time.Time `json:"created_at"`
}

// Question kinds.
const (
	KindText    = "text"
	KindBoolean = "boolean"
	KindNumber  = "number"
)

// KindValid reports whether the given kind is a known question kind.
func KindValid(kind string) bool {
	return kind == KindText || kind == KindBoolean || kind == KindNumber
}

const (
	FieldPrompt = "prompt"
	FieldKind   = "kind"
)
