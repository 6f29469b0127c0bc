// Copyright (c) 2026 Hirevine. All rights reserved.
// Author: dev@hirevine.io

/*
Package guard implements the write-interception pipeline.

Deployment modes (demo workspaces, preview environments) can globally
disable mutating operations without touching any business handler. The
pipeline evaluates an ordered chain of guards before a mutating request
reaches its handler; any guard may veto, and a veto short-circuits the
request with a structured {code, message} body and no side effects.

# Scope

Only write methods (POST, PUT, PATCH, DELETE) under the API prefix are
evaluated. Read operations always pass. Identity and session-management
endpoints are exempt unconditionally, so an actor can always sign in, sign
out, or switch organizations even in a locked-down deployment.
*/
package guard

import (
	"context"
	"net/http"
	"path"
	"strings"

	"github.com/hirevine/hirevine/internal/platform/apperr"
	"github.com/hirevine/hirevine/internal/platform/constants"
	"github.com/hirevine/hirevine/internal/platform/ctxutil"
	"github.com/hirevine/hirevine/internal/platform/respond"
	"github.com/hirevine/hirevine/internal/platform/sec"
)

// Decision is the outcome of a single guard evaluation.
type Decision struct {
	Allowed bool
	Code    string
	Message string
}

// Allow returns a passing [Decision].
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny returns a vetoing [Decision] with a machine code and a human message.
func Deny(code, message string) Decision {
	return Decision{Allowed: false, Code: code, Message: message}
}

// Guard is one link in the write-interception pipeline.
//
// Evaluate must be side-effect free: a veto (or a pass) must leave no trace
// beyond the returned decision. The session argument is nil for anonymous
// requests.
type Guard interface {
	Name() string
	Evaluate(ctx context.Context, request *http.Request, session *sec.Session) (Decision, error)
}

// writeMethods is the class of operations the pipeline intercepts.
var writeMethods = map[string]struct{}{
	http.MethodPost:   {},
	http.MethodPut:    {},
	http.MethodPatch:  {},
	http.MethodDelete: {},
}

// IsWriteMethod reports whether the HTTP method is a mutating operation.
func IsWriteMethod(method string) bool {
	_, ok := writeMethods[method]
	return ok
}

// Pipeline evaluates its guards in registration order. The first veto wins
// and is surfaced; later guards are not consulted.
type Pipeline struct {
	guards []Guard
}

// NewPipeline constructs a [Pipeline]. Order matters: guards are evaluated
// in the order given.
func NewPipeline(guards ...Guard) *Pipeline {
	return &Pipeline{guards: guards}
}

// Evaluate runs the chain for one request and returns the first veto, or a
// passing decision when every guard allows the request.
//
// Exemption rules are applied here, once, so individual guards never need
// to reason about paths or methods:
//   - non-write methods always pass
//   - paths outside the API prefix always pass
//   - identity endpoints always pass
func (pipeline *Pipeline) Evaluate(ctx context.Context, request *http.Request, session *sec.Session) (Decision, error) {
	if !IsWriteMethod(request.Method) {
		return Allow(), nil
	}

	// Exemptions must see the path the router ultimately serves, not the raw
	// wire form. Without this, /api/v1/auth/../candidates would ride the
	// identity exemption past the pipeline and mutate anyway.
	requestPath := path.Clean(request.URL.Path)

	if !strings.HasPrefix(requestPath, constants.APIPathPrefix) {
		return Allow(), nil
	}
	if strings.HasPrefix(requestPath, constants.AuthPathPrefix) {
		return Allow(), nil
	}

	for _, g := range pipeline.guards {
		decision, err := g.Evaluate(ctx, request, session)
		if err != nil {
			return Decision{}, err
		}
		if !decision.Allowed {
			return decision, nil
		}
	}

	return Allow(), nil
}

// Middleware adapts the pipeline into a chi-compatible middleware. A veto is
// written as the standard error envelope with status 403 and never reaches
// the next handler.
func (pipeline *Pipeline) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		session := ctxutil.GetSession(request.Context())

		decision, err := pipeline.Evaluate(request.Context(), request, session)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		if !decision.Allowed {
			respond.Error(writer, request, apperr.Vetoed(decision.Code, decision.Message))
			return
		}

		next.ServeHTTP(writer, request)
	})
}
