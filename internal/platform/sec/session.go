// Copyright (c) 2026 Hirevine. All rights reserved.
// Author: dev@hirevine.io

// Package sec provides security primitives shared across layers: the resolved
// session shape, password hashing, and invitation token signing.
//
// # Architecture
//
// This package isolates security-sensitive code from the domain logic. It
// deliberately has no dependency on the auth service so that middleware,
// handlers, and services can all reference the session type without cycles.
package sec

import (
	"time"

	"github.com/hirevine/hirevine/internal/platform/apperr"
)

// Session is the per-request resolved actor identity.
//
// It is created by the session resolver from the opaque cookie credential,
// carried in the request context, and discarded at the end of the request.
// It is never persisted by this subsystem; the backing record lives in the
// identity store (Redis).
type Session struct {
	// Token is the opaque credential the session was resolved from.
	// Server-side only; it is never serialized into responses.
	Token string `json:"-"`

	// UserID is the authenticated actor.
	UserID string `json:"user_id"`

	// Email is the actor's sign-in email, carried for log enrichment.
	Email string `json:"email"`

	// ActiveOrganizationID is the tenant context for this session. Empty
	// until the actor selects (or is assigned) an organization; a session
	// without it is unusable for any tenant-scoped or mutating operation.
	ActiveOrganizationID string `json:"active_organization_id,omitempty"`

	// ExpiresAt is when the backing session record lapses.
	ExpiresAt time.Time `json:"expires_at"`
}

// RequireOrganization returns the active organization id, or a 403
// NO_ACTIVE_ORGANIZATION error if none is selected.
//
// Every tenant-scoped handler must take its organization id from here and
// never from the request payload.
func (s *Session) RequireOrganization() (string, error) {
	if s == nil {
		return "", apperr.Unauthorized("Authentication required")
	}
	if s.ActiveOrganizationID == "" {
		return "", apperr.NoActiveOrganization()
	}
	return s.ActiveOrganizationID, nil
}
