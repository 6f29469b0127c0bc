package schema

// CoreCandidateTable represents the 'core.candidate' table
type CoreCandidateTable struct {
	Table          string
	ID             string
	OrganizationID string
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	CreatedAt      string
	UpdatedAt      string
}

// CoreCandidate is the schema definition for core.candidate
var CoreCandidate = CoreCandidateTable{
	Table:          "core.candidate",
	ID:             "id",
	OrganizationID: "organizationid",
	FirstName:      "firstname",
	LastName:       "lastname",
	Email:          "email",
	Phone:          "phone",
	CreatedAt:      "createdat",
	UpdatedAt:      "updatedat",
}

// Columns returns all standard column names
func (t CoreCandidateTable) Columns() []string {
	return []string{t.ID, t.OrganizationID, t.FirstName, t.LastName, t.Email, t.Phone, t.CreatedAt, t.UpdatedAt}
}
