// Copyright (c) 2026 Hirevine. All rights reserved.
// Author: dev@hirevine.io

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Security: Session cookie configuration and token lifetimes.
  - Documents: Upload limits and the inline-preview allow list.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "hirevine-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	// Document uploads are the largest request class, hence the generous bound.
	DefaultReadTimeout = 30 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	// Streamed document downloads must fit inside this window.
	DefaultWriteTimeout = 60 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 60 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Sessions & Authentication

const (
	// SessionCookieName is the cookie carrying the opaque session token.
	SessionCookieName = "hv_session"

	// SessionTTL is how long a session record lives in Redis without renewal.
	SessionTTL = 7 * 24 * time.Hour

	// InviteTokenTTL is the validity window of an organization invitation token.
	InviteTokenTTL = 72 * time.Hour

	// InviteTokenIssuer is the 'iss' claim on invitation JWTs.
	InviteTokenIssuer = "hirevine.io"
)

// # HTTP Routing

const (
	// APIPathPrefix is the prefix under which all application routes are mounted.
	APIPathPrefix = "/api/"

	// AuthPathPrefix covers identity and session-management endpoints.
	// Requests under this prefix are never vetoed by deployment guards, so an
	// actor can always sign in, sign out, or switch organizations.
	AuthPathPrefix = "/api/v1/auth/"
)

// # Documents

const (
	// MaxDocumentSize is the upper bound for a single uploaded document.
	MaxDocumentSize = 20 << 20 // 20 MiB

	// PreviewMimeType is the only mime type allowed for inline preview.
	PreviewMimeType = "application/pdf"
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldMeta    = "meta"
	FieldError   = "error"
	FieldCode    = "code"
	FieldDetails = "details"
	FieldMessage = "message"
	FieldStatus  = "status"
)

// # Database Schemas

const (
	SchemaCore  = "core"
	SchemaUsers = "users"
	SchemaOrg   = "org"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixSession         = "auth:session:"
	RedisPrefixCandidateDetail = "candidate:detail:"
)
