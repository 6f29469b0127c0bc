// Copyright (c) 2026 Hirevine. All rights reserved.
// Author: dev@hirevine.io

package guard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirevine/hirevine/internal/platform/ctxutil"
	"github.com/hirevine/hirevine/internal/platform/sec"
)

const demoOrgID = "0192a1b2-0000-7000-8000-00000000dead"

func demoSession() *sec.Session {
	return &sec.Session{
		Token:                "tok",
		UserID:               "user-1",
		Email:                "demo@example.com",
		ActiveOrganizationID: demoOrgID,
		ExpiresAt:            time.Now().Add(time.Hour),
	}
}

func demoPipeline(t *testing.T) *Pipeline {
	t.Helper()
	cache := NewDemoOrgCache("demo", func(context.Context, string) (string, error) {
		return demoOrgID, nil
	})
	return NewPipeline(NewDemoGuard(cache), NewPreviewGuard(false))
}

func evaluate(t *testing.T, pipeline *Pipeline, method, path string, session *sec.Session) Decision {
	t.Helper()
	request := httptest.NewRequest(method, path, nil)
	decision, err := pipeline.Evaluate(context.Background(), request, session)
	require.NoError(t, err)
	return decision
}

func TestReadMethodsAlwaysPass(t *testing.T) {
	pipeline := demoPipeline(t)

	for _, method := range []string{http.MethodGet, http.MethodHead, http.MethodOptions} {
		decision := evaluate(t, pipeline, method, "/api/v1/candidates", demoSession())
		assert.True(t, decision.Allowed, "%s must never be intercepted", method)
	}
}

func TestWriteMethodsVetoedForDemoOrganization(t *testing.T) {
	pipeline := demoPipeline(t)

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete} {
		decision := evaluate(t, pipeline, method, "/api/v1/candidates", demoSession())
		require.False(t, decision.Allowed, "%s from the demo workspace must be vetoed", method)
		assert.Equal(t, CodeDemoReadOnly, decision.Code)
		assert.NotEmpty(t, decision.Message)
	}
}

func TestAuthEndpointsAreExempt(t *testing.T) {
	pipeline := demoPipeline(t)

	decision := evaluate(t, pipeline, http.MethodPost, "/api/v1/auth/logout", demoSession())
	assert.True(t, decision.Allowed, "identity endpoints must never be vetoed")

	decision = evaluate(t, pipeline, http.MethodPost, "/api/v1/auth/switch-organization", demoSession())
	assert.True(t, decision.Allowed)
}

func TestNonAPIPathsAreExempt(t *testing.T) {
	pipeline := demoPipeline(t)

	decision := evaluate(t, pipeline, http.MethodPost, "/healthz", demoSession())
	assert.True(t, decision.Allowed)
}

func TestOtherOrganizationsPassTheDemoGuard(t *testing.T) {
	pipeline := demoPipeline(t)

	session := demoSession()
	session.ActiveOrganizationID = "0192a1b2-0000-7000-8000-000000000001"

	decision := evaluate(t, pipeline, http.MethodPost, "/api/v1/candidates", session)
	assert.True(t, decision.Allowed)
}

func TestAnonymousWritesPassTheDemoGuard(t *testing.T) {
	pipeline := demoPipeline(t)

	decision := evaluate(t, pipeline, http.MethodPost, "/api/v1/candidates", nil)
	assert.True(t, decision.Allowed, "the demo guard constrains one workspace, not anonymity")
}

func TestFirstVetoWins(t *testing.T) {
	cache := NewDemoOrgCache("demo", func(context.Context, string) (string, error) {
		return demoOrgID, nil
	})

	// Both guards would fire; the demo guard is registered first.
	pipeline := NewPipeline(NewDemoGuard(cache), NewPreviewGuard(true))
	decision := evaluate(t, pipeline, http.MethodPost, "/api/v1/candidates", demoSession())
	require.False(t, decision.Allowed)
	assert.Equal(t, CodeDemoReadOnly, decision.Code)

	// Reversed registration surfaces the preview reason instead.
	reversed := NewPipeline(NewPreviewGuard(true), NewDemoGuard(cache))
	decision = evaluate(t, reversed, http.MethodPost, "/api/v1/candidates", demoSession())
	require.False(t, decision.Allowed)
	assert.Equal(t, CodePreviewReadOnly, decision.Code)
}

func TestUnnormalizedPathsCannotRideTheAuthExemption(t *testing.T) {
	pipeline := demoPipeline(t)

	// Dot segments and duplicate slashes are set directly on the URL so the
	// pipeline sees the raw wire form, exactly as a hand-crafted request
	// would arrive before any router normalization.
	for _, rawPath := range []string{
		"/api/v1/auth/../candidates",
		"/api/v1/auth/./../candidates",
		"//api/v1/candidates",
	} {
		request := httptest.NewRequest(http.MethodPost, "/", nil)
		request.URL.Path = rawPath

		decision, err := pipeline.Evaluate(context.Background(), request, demoSession())
		require.NoError(t, err)
		require.False(t, decision.Allowed, "%s must be vetoed like its canonical form", rawPath)
		assert.Equal(t, CodeDemoReadOnly, decision.Code)
	}

	// The genuine identity endpoints stay exempt after normalization.
	request := httptest.NewRequest(http.MethodPost, "/", nil)
	request.URL.Path = "/api/v1//auth/logout"
	decision, err := pipeline.Evaluate(context.Background(), request, demoSession())
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
}

func TestMiddlewareVetoesDotSegmentPaths(t *testing.T) {
	pipeline := demoPipeline(t)

	handlerCalled := false
	next := http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		handlerCalled = true
		writer.WriteHeader(http.StatusCreated)
	})

	request := httptest.NewRequest(http.MethodPost, "/", nil)
	request.URL.Path = "/api/v1/auth/../candidates"
	request = request.WithContext(ctxutil.WithSession(request.Context(), demoSession()))
	recorder := httptest.NewRecorder()

	pipeline.Middleware(next).ServeHTTP(recorder, request)

	assert.False(t, handlerCalled, "a dot-segment path must not reach business logic")
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestPreviewGuardVetoesEveryone(t *testing.T) {
	pipeline := NewPipeline(NewPreviewGuard(true))

	for _, session := range []*sec.Session{nil, demoSession()} {
		decision := evaluate(t, pipeline, http.MethodDelete, "/api/v1/jobs/abc", session)
		require.False(t, decision.Allowed)
		assert.Equal(t, CodePreviewReadOnly, decision.Code)
	}
}

func TestMiddlewareVetoShortCircuitsHandler(t *testing.T) {
	pipeline := demoPipeline(t)

	handlerCalled := false
	next := http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		handlerCalled = true
		writer.WriteHeader(http.StatusCreated)
	})

	request := httptest.NewRequest(http.MethodPost, "/api/v1/candidates", nil)
	request = request.WithContext(ctxutil.WithSession(request.Context(), demoSession()))
	recorder := httptest.NewRecorder()

	pipeline.Middleware(next).ServeHTTP(recorder, request)

	assert.False(t, handlerCalled, "a vetoed request must never reach business logic")
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	var body struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
	assert.Equal(t, CodeDemoReadOnly, body.Code)
	assert.NotEmpty(t, body.Error)
}

func TestMiddlewarePassesAllowedWrites(t *testing.T) {
	pipeline := demoPipeline(t)

	session := demoSession()
	session.ActiveOrganizationID = "0192a1b2-0000-7000-8000-000000000001"

	request := httptest.NewRequest(http.MethodPost, "/api/v1/candidates", nil)
	request = request.WithContext(ctxutil.WithSession(request.Context(), session))
	recorder := httptest.NewRecorder()

	pipeline.Middleware(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusCreated)
	})).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusCreated, recorder.Code)
}
