// Copyright (c) 2026 Hirevine. All rights reserved.
// Author: dev@hirevine.io

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hirevine/hirevine/internal/platform/apperr"
	"github.com/hirevine/hirevine/internal/platform/ctxutil"
	"github.com/hirevine/hirevine/internal/platform/sec"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	requestID := "test-request-id"

	// 1. Initially should be empty
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithRequestID(ctx, requestID)
	assert.Equal(t, requestID, ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies that a custom logger can be stored in context.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// 1. Initially should return the default logger
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_Session verifies that a resolved session can be stored in context.
*/
func TestContext_Session(t *testing.T) {
	ctx := context.Background()
	session := &sec.Session{
		UserID:               "user-123",
		ActiveOrganizationID: "org-456",
	}

	// 1. Initially should be nil (anonymous)
	assert.Nil(t, ctxutil.GetSession(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithSession(ctx, session)
	retrieved := ctxutil.GetSession(ctx)

	assert.NotNil(t, retrieved)
	assert.Equal(t, "user-123", retrieved.UserID)
	assert.Equal(t, "org-456", retrieved.ActiveOrganizationID)
}

/*
TestSession_RequireOrganization verifies the 401/403 split for tenant context.
*/
func TestSession_RequireOrganization(t *testing.T) {
	// 1. Nil session → unauthenticated
	var nilSession *sec.Session
	_, err := nilSession.RequireOrganization()
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)

	// 2. Session without an org → NO_ACTIVE_ORGANIZATION, never 401
	session := &sec.Session{UserID: "user-123"}
	_, err = session.RequireOrganization()
	assert.Equal(t, "NO_ACTIVE_ORGANIZATION", apperr.As(err).Code)
	assert.Equal(t, 403, apperr.As(err).HTTPStatus)

	// 3. Session with an org → id returned
	session.ActiveOrganizationID = "org-456"
	orgID, err := session.RequireOrganization()
	assert.NoError(t, err)
	assert.Equal(t, "org-456", orgID)
}
