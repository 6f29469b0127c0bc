// Copyright (c) 2026 Hirevine. All rights reserved.
// Author: dev@hirevine.io

package org

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hirevine/hirevine/internal/platform/middleware"
	requestutil "github.com/hirevine/hirevine/internal/platform/request"
	"github.com/hirevine/hirevine/internal/platform/respond"
	"github.com/hirevine/hirevine/internal/platform/validate"
)

// Handler implements organization management HTTP endpoints.
type Handler struct {
	orgService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{orgService: service}
}

// Routes returns a [chi.Router] for organization management.
//
// # Endpoints
//   - POST /                  : Creates a workspace (creator becomes owner).
//   - GET  /                  : Lists the actor's workspaces.
//   - GET  /{id}              : Fetches one workspace.
//   - GET  /{id}/members      : Lists the membership roster.
//   - POST /{id}/invitations  : Issues an invitation token.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireSession)

	router.Post("/", handler.create)
	router.Get("/", handler.listMine)
	router.Get("/{id}", handler.get)
	router.Get("/{id}/members", handler.listMembers)
	router.Post("/{id}/invitations", handler.invite)

	return router
}

type createOrganizationRequest struct {
	Name string `json:"name"`
}

type inviteRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

/*
Create provisions a new workspace.

POST /api/v1/organizations

Response:
  - 201: Organization: Created workspace
  - 409: ErrConflict: The derived slug is already taken
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	session, err := requestutil.RequiredSession(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createOrganizationRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	organization, err := handler.orgService.CreateOrganization(request.Context(), session.UserID, input.Name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, organization)
}

/*
ListMine returns every workspace the actor belongs to.

GET /api/v1/organizations
*/
func (handler *Handler) listMine(writer http.ResponseWriter, request *http.Request) {
	session, err := requestutil.RequiredSession(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	organizations, err := handler.orgService.ListMine(request.Context(), session.UserID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, organizations)
}

/*
Get fetches one workspace the actor belongs to.

GET /api/v1/organizations/{id}

Response:
  - 200: Organization
  - 404: ErrNotFound: Unknown id or the actor is not a member
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	session, err := requestutil.RequiredSession(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	organization, err := handler.orgService.GetOrganization(request.Context(), requestutil.ID(request, "id"), session.UserID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, organization)
}

/*
ListMembers returns the membership roster.

GET /api/v1/organizations/{id}/members
*/
func (handler *Handler) listMembers(writer http.ResponseWriter, request *http.Request) {
	session, err := requestutil.RequiredSession(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	memberships, err := handler.orgService.ListMembers(request.Context(), requestutil.ID(request, "id"), session.UserID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, memberships)
}

/*
Invite issues an invitation token for an email address.

POST /api/v1/organizations/{id}/invitations

Response:
  - 201: {token}: The signed invitation token (delivered out-of-band)
  - 403: ErrForbidden: Actor is not an owner or admin
  - 404: ErrNotFound: Unknown id or the actor is not a member
*/
func (handler *Handler) invite(writer http.ResponseWriter, request *http.Request) {
	session, err := requestutil.RequiredSession(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input inviteRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	token, err := handler.orgService.Invite(request.Context(), requestutil.ID(request, "id"), session.UserID, input.Email, input.Role)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, map[string]string{"token": token})
}
