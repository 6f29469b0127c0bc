package schema

// CoreJobQuestionTable represents the 'core.jobquestion' table
type CoreJobQuestionTable struct {
	Table          string
	ID             string
	OrganizationID string
	JobID          string
	Prompt         string
	Kind           string
	Position       string
	CreatedAt      string
}

// CoreJobQuestion is the schema definition for core.jobquestion
var CoreJobQuestion = CoreJobQuestionTable{
	Table:          "core.jobquestion",
	ID:             "id",
	OrganizationID: "organizationid",
	JobID:          "jobid",
	Prompt:         "prompt",
	Kind:           "kind",
	Position:       "position",
	CreatedAt:      "createdat",
}

// Columns returns all standard column names
func (t CoreJobQuestionTable) Columns() []string {
	return []string{t.ID, t.OrganizationID, t.JobID, t.Prompt, t.Kind, t.Position, t.CreatedAt}
}
