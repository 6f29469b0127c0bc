// Copyright (c) 2026 Hirevine. All rights reserved.
// Author: dev@hirevine.io

/*
Package auth implements the actor identity and session management layer.

It resolves the opaque session cookie into a [sec.Session] bound to at most
one active organization, and owns the account lifecycle (register, login,
logout, organization switching).

# Architecture

This layer is the "Truth" of request admission. A request without a resolved
session is anonymous; a session without an active organization is unusable
for any tenant-scoped or mutating operation. Everything under this package's
routes is identity management and is therefore exempt from the deployment
write guards — an actor must always be able to sign in, sign out, or switch
context.
*/
package auth

import (
	"time"
)

// # Domain Entities

// User represents a registered member of the Hirevine platform.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	DisplayName  string    `json:"display_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SessionRecord is the persisted shape of a live session in the identity
// store (Redis). The record is keyed by the opaque token from the cookie;
// the token itself is never stored inside the record.
type SessionRecord struct {
	UserID               string    `json:"user_id"`
	Email                string    `json:"email"`
	ActiveOrganizationID string    `json:"active_organization_id,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	ExpiresAt            time.Time `json:"expires_at"`
}

// # Field Identifiers

// Global field names for validation in the authentication domain.
const (
	FieldEmail          = "email"
	FieldPassword       = "password"
	FieldDisplayName    = "display_name"
	FieldOrganizationID = "organization_id"
	FieldToken          = "token"
)
