// Copyright (c) 2026 Hirevine. All rights reserved.
// Author: dev@hirevine.io

/*
Package org manages organizations, memberships, and invitations.

An organization is the tenancy unit of the whole system: every candidate,
job, application, and document belongs to exactly one organization, and a
session acts within at most one at a time. This package also backs the
identity layer's membership checks.
*/
package org

import "time"

// Organization is a recruiting workspace.
type Organization struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Membership binds a user to an organization with a role.
type Membership struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	UserID         string    `json:"user_id"`
	Role           string    `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
}

// Membership roles, in descending order of privilege.
const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// RoleValid reports whether the given role is a known membership role.
func RoleValid(role string) bool {
	return role == RoleOwner || role == RoleAdmin || role == RoleMember
}

const (
	FieldName  = "name"
	FieldEmail = "email"
	FieldRole  = "role"
)
