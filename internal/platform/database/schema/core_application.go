package schema

// CoreApplicationTable represents the 'core.application' table
type CoreApplicationTable struct {
	Table          string
	ID             string
	OrganizationID string
	CandidateID    string
	JobID          string
	Status         string
	Notes          string
	CreatedAt      string
	UpdatedAt      string
}

// CoreApplication is the schema definition for core.application
var CoreApplication = CoreApplicationTable{
	Table:          "core.application",
	ID:             "id",
	OrganizationID: "organizationid",
	CandidateID:    "candidateid",
	JobID:          "jobid",
	Status:         "status",
	Notes:          "notes",
	CreatedAt:      "createdat",
	UpdatedAt:      "updatedat",
}

// Columns returns all standard column names
func (t CoreApplicationTable) Columns() []string {
	return []string{t.ID, t.OrganizationID, t.CandidateID, t.JobID, t.Status, t.Notes, t.CreatedAt, t.UpdatedAt}
}
