// Copyright (c) 2026 Hirevine. All rights reserved.
// Author: dev@hirevine.io

// Package middleware provides the HTTP middleware chain for the Hirevine API server.
//
// # Architecture
//
// Middleware intercepts incoming HTTP requests to apply global policies
// before they reach the domain handlers. This file covers identity: resolving
// the opaque session cookie into a [sec.Session] and enforcing the
// authentication and tenant-context requirements.
package middleware

import (
	"net/http"

	"github.com/hirevine/hirevine/internal/platform/apperr"
	"github.com/hirevine/hirevine/internal/platform/constants"
	"github.com/hirevine/hirevine/internal/platform/ctxutil"
	"github.com/hirevine/hirevine/internal/platform/respond"
	"github.com/hirevine/hirevine/internal/platform/sec"
)

// SessionResolver defines the interface needed to resolve a session credential.
//
// # Why an interface?
//
// Defining SessionResolver here decouples the middleware from the `auth`
// service implementation, allowing us to easily inject fakes during unit
// testing.
//
// # Contract
//
// ResolveHTTP returns (nil, nil) for an unknown or expired credential — the
// request proceeds anonymously. A non-nil error means the identity store
// itself failed and must surface as an upstream failure, never be swallowed.
type SessionResolver interface {
	ResolveHTTP(r *http.Request) (*sec.Session, error)
}

// SessionLoader resolves the session cookie and injects the session into the
// request context.
//
// # Flow
//  1. Read the 'hv_session' cookie.
//  2. If absent, request proceeds as anonymous.
//  3. If present, resolve the token via the resolver.
//  4. Inject [*sec.Session] into the request context for downstream use.
func SessionLoader(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			cookie, err := request.Cookie(constants.SessionCookieName)

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Credential Resolution ──────────────────────────────────────
			session, err := resolver.ResolveHTTP(request)
			if err != nil {
				// Identity store failure: do not silently degrade to anonymous.
				respond.Error(writer, request, err)
				return
			}

			// ── 3. Context Injection ──────────────────────────────────────────
			if session == nil {
				// Unknown or expired token behaves like no credential at all.
				next.ServeHTTP(writer, request)
				return
			}

			ctx := ctxutil.WithSession(request.Context(), session)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireSession blocks requests that are not authenticated.
//
// # Usage
//
// Must be registered in the router AFTER [SessionLoader].
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		session := ctxutil.GetSession(request.Context())
		if session == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// RequireOrganization blocks requests whose session has no active organization.
//
// # Usage
//
// Must be registered AFTER [SessionLoader]. It implies [RequireSession], so
// routes only need one of the two.
//
// # Flow
//  1. Missing session → 401.
//  2. Session without a tenant context → 403 NO_ACTIVE_ORGANIZATION.
func RequireOrganization(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		session := ctxutil.GetSession(request.Context())
		if session == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		if _, err := session.RequireOrganization(); err != nil {
			respond.Error(writer, request, err)
			return
		}
		next.ServeHTTP(writer, request)
	})
}
