package schema

// OrgMembershipTable represents the 'org.membership' table
type OrgMembershipTable struct {
	Table          string
	ID             string
	OrganizationID string
	UserID         string
	Role           string
	CreatedAt      string
}

// OrgMembership is the schema definition for org.membership
var OrgMembership = OrgMembershipTable{
	Table:          "org.membership",
	ID:             "id",
	OrganizationID: "organizationid",
	UserID:         "userid",
	Role:           "role",
	CreatedAt:      "createdat",
}

// Columns returns all standard column names
func (t OrgMembershipTable) Columns() []string {
	return []string{t.ID, t.OrganizationID, t.UserID, t.Role, t.CreatedAt}
}
