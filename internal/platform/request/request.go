// Copyright (c) 2026 Hirevine. All rights reserved.
// Author: dev@hirevine.io

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hirevine/hirevine/internal/platform/apperr"
	"github.com/hirevine/hirevine/internal/platform/ctxutil"
	"github.com/hirevine/hirevine/internal/platform/sec"
	"github.com/hirevine/hirevine/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
ID retrieves a named URL parameter (UUID/Slug) from the request.
*/
func ID(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Session extracts the resolved session from the request context.

Returns nil if the request is anonymous.
*/
func Session(request *http.Request) *sec.Session {
	return ctxutil.GetSession(request.Context())
}

/*
RequiredSession ensures the request is authenticated and returns the session.

Returns:
  - *sec.Session: The resolved actor session
  - error: apperr.Unauthorized if the request carries no valid credential
*/
func RequiredSession(request *http.Request) (*sec.Session, error) {
	session := ctxutil.GetSession(request.Context())
	if session == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}
	return session, nil
}

/*
RequiredOrganization ensures the request is authenticated AND bound to an
active organization. This is the entry point for every tenant-scoped handler.

Returns:
  - *sec.Session: The resolved actor session
  - string: The active organization id
  - error: apperr.Unauthorized (401) without a credential,
    apperr.NoActiveOrganization (403) without a tenant context
*/
func RequiredOrganization(request *http.Request) (*sec.Session, string, error) {
	session, err := RequiredSession(request)
	if err != nil {
		return nil, "", err
	}

	orgID, err := session.RequireOrganization()
	if err != nil {
		return nil, "", err
	}

	return session, orgID, nil
}
