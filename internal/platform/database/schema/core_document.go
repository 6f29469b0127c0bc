package schema

// CoreDocumentTable represents the 'core.document' table
type CoreDocumentTable struct {
	Table          string
	ID             string
	OrganizationID string
	CandidateID    string
	DocType        string
	FileName       string
	MimeType       string
	SizeBytes      string
	StorageKey     string
	CreatedAt      string
}

// CoreDocument is the schema definition for core.document
var CoreDocument = CoreDocumentTable{
	Table:          "core.document",
	ID:             "id",
	OrganizationID: "organizationid",
	CandidateID:    "candidateid",
	DocType:        "doctype",
	FileName:       "filename",
	MimeType:       "mimetype",
	SizeBytes:      "sizebytes",
	StorageKey:     "storagekey",
	CreatedAt:      "createdat",
}

// Columns returns all standard column names
func (t CoreDocumentTable) Columns() []string {
	return []string{t.ID, t.OrganizationID, t.CandidateID, t.DocType, t.FileName, t.MimeType, t.SizeBytes, t.StorageKey, t.CreatedAt}
}
