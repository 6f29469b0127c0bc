package schema

// OrgOrganizationTable represents the 'org.organization' table
type OrgOrganizationTable struct {
	Table     string
	ID        string
	Name      string
	Slug      string
	CreatedAt string
	UpdatedAt string
}

// OrgOrganization is the schema definition for org.organization
var OrgOrganization = OrgOrganizationTable{
	Table:     "org.organization",
	ID:        "id",
	Name:      "name",
	Slug:      "slug",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

// Columns returns all standard column names
func (t OrgOrganizationTable) Columns() []string {
	return []string{t.ID, t.Name, t.Slug, t.CreatedAt, t.UpdatedAt}
}
