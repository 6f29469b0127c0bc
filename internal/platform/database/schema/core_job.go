package schema

// CoreJobTable represents the 'core.job' table
type CoreJobTable struct {
	Table          string
	ID             string
	OrganizationID string
	Title          string
	Description    string
	Status         string
	CreatedAt      string
	UpdatedAt      string
}

// CoreJob is the schema definition for core.job
var CoreJob = CoreJobTable{
	Table:          "core.job",
	ID:             "id",
	OrganizationID: "organizationid",
	Title:          "title",
	Description:    "description",
	Status:         "status",
	CreatedAt:      "createdat",
	UpdatedAt:      "updatedat",
}

// Columns returns all standard column names
func (t CoreJobTable) Columns() []string {
	return []string{t.ID, t.OrganizationID, t.Title, t.Description, t.Status, t.CreatedAt, t.UpdatedAt}
}
