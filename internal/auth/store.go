// Copyright (c) 2026 Hirevine. All rights reserved.
// Author: dev@hirevine.io

package auth

import (
	"context"
	"time"
)

// UserRepository abstracts persistence of user accounts (Postgres).
type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, id string) (*User, error)
}

// SessionRepository abstracts the identity store holding live sessions (Redis).
//
// # Contract
//
// Get returns (nil, nil) when the token is unknown or expired. A non-nil
// error always means the store itself failed; callers must surface it as an
// upstream failure, never treat it as "no session".
type SessionRepository interface {
	Set(ctx context.Context, token string, record *SessionRecord, ttl time.Duration) error
	Get(ctx context.Context, token string) (*SessionRecord, error)
	Delete(ctx context.Context, token string) error
}

// OrganizationDirectory is the narrow view of the org domain that identity
// management needs. Implemented by the org service; declared here so auth
// does not import the org package.
type OrganizationDirectory interface {
	// IsMember reports whether the user belongs to the organization.
	IsMember(ctx context.Context, organizationID, userID string) (bool, error)

	// DefaultOrganizationID returns the organization a fresh session should
	// activate, or "" when the user has no memberships yet.
	DefaultOrganizationID(ctx context.Context, userID string) (string, error)

	// AcceptInvite redeems an invitation token for the user and returns the
	// joined organization's id.
	AcceptInvite(ctx context.Context, token, userID, email string) (string, error)
}
