// Copyright (c) 2026 Hirevine. All rights reserved.
// Author: dev@hirevine.io

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hirevine/hirevine/internal/platform/constants"
	"github.com/hirevine/hirevine/internal/platform/middleware"
	requestutil "github.com/hirevine/hirevine/internal/platform/request"
	"github.com/hirevine/hirevine/internal/platform/respond"
	"github.com/hirevine/hirevine/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements authentication-related HTTP endpoints.
//
// # Scope
//
// This handler manages the user lifecycle entry points (registration, login,
// logout) plus the session-bound organization context operations.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] configured with authentication-specific routes.
//
// # Endpoints
//   - POST /register            : Creates a new account.
//   - POST /login               : Authenticates and sets the session cookie.
//   - POST /logout              : Destroys the current session.
//   - GET  /session             : Returns the resolved session, if any.
//   - POST /switch-organization : Rebinds the session tenant context.
//   - POST /accept-invitation   : Redeems an organization invite token.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Post("/register", handler.register)
	router.Post("/login", handler.login)
	router.Get("/session", handler.session)

	// Protected endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession)
		r.Post("/logout", handler.logout)
		r.Post("/switch-organization", handler.switchOrganization)
		r.Post("/accept-invitation", handler.acceptInvitation)
	})

	return router
}

// # Request Payloads

type registerRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type switchOrganizationRequest struct {
	OrganizationID string `json:"organization_id"`
}

type acceptInvitationRequest struct {
	Token string `json:"token"`
}

// sessionView is the wire shape of a resolved session. The opaque token never
// appears in a response body; it lives only in the cookie.
type sessionView struct {
	UserID               string `json:"user_id"`
	Email                string `json:"email"`
	ActiveOrganizationID string `json:"active_organization_id,omitempty"`
}

/*
Register handles the creation of a new user account.

POST /api/v1/auth/register

Response:
  - 201: User: Created user profile
  - 400: ErrInvalidJSON: Bad input or validation failure
  - 409: ErrConflict: Email already registered
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	user, err := handler.authService.Register(request.Context(), RegisterInput{
		Email:       input.Email,
		Password:    input.Password,
		DisplayName: input.DisplayName,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, user)
}

/*
Login authenticates a user and establishes a session.

POST /api/v1/auth/login

Description: Verifies credentials, mints an opaque session token, and injects
it into the response as an HttpOnly cookie.

Response:
  - 200: sessionView: Resolved session snapshot
  - 401: ErrUnauthorized: Invalid credentials
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldEmail, input.Email)
	validator.Required(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	token, session, err := handler.authService.Login(request.Context(), input.Email, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	respond.OK(writer, sessionView{
		UserID:               session.UserID,
		Email:                session.Email,
		ActiveOrganizationID: session.ActiveOrganizationID,
	})
}

/*
Logout terminates the current user session.

POST /api/v1/auth/logout

Description: Invalidates the session record (if present) and clears the
session cookie from the client.

Response:
  - 204: No Content: Session terminated
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	cookie, err := request.Cookie(constants.SessionCookieName)

	if err == nil && cookie != nil && cookie.Value != "" {
		_ = handler.authService.Logout(request.Context(), cookie.Value)
	}

	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	respond.NoContent(writer)
}

/*
Session returns the resolved session for the current credential.

GET /api/v1/auth/session

Description: This endpoint is the one identity-provider call the web client
makes per navigation. An anonymous request gets a 401, never an empty body,
so the client can distinguish "not signed in" from "signed in without a
workspace".

Response:
  - 200: sessionView: The current session snapshot
  - 401: ErrUnauthorized: No valid credential presented
*/
func (handler *Handler) session(writer http.ResponseWriter, request *http.Request) {
	session, err := requestutil.RequiredSession(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, sessionView{
		UserID:               session.UserID,
		Email:                session.Email,
		ActiveOrganizationID: session.ActiveOrganizationID,
	})
}

/*
SwitchOrganization rebinds the session to another organization.

POST /api/v1/auth/switch-organization

Response:
  - 200: sessionView: Session with the new active organization
  - 404: ErrNotFound: Organization unknown or actor is not a member
*/
func (handler *Handler) switchOrganization(writer http.ResponseWriter, request *http.Request) {
	session, err := requestutil.RequiredSession(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input switchOrganizationRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	updated, err := handler.authService.SwitchOrganization(request.Context(), session, input.OrganizationID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, sessionView{
		UserID:               updated.UserID,
		Email:                updated.Email,
		ActiveOrganizationID: updated.ActiveOrganizationID,
	})
}

/*
AcceptInvitation redeems an invite token and joins the organization.

POST /api/v1/auth/accept-invitation

Response:
  - 200: sessionView: Session bound to the joined organization
  - 401: ErrUnauthorized: Invite token invalid, expired, or addressed to a
    different email
*/
func (handler *Handler) acceptInvitation(writer http.ResponseWriter, request *http.Request) {
	session, err := requestutil.RequiredSession(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input acceptInvitationRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	updated, err := handler.authService.AcceptInvitation(request.Context(), session, input.Token)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, sessionView{
		UserID:               updated.UserID,
		Email:                updated.Email,
		ActiveOrganizationID: updated.ActiveOrganizationID,
	})
}
