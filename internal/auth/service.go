// Copyright (c) 2026 Hirevine. All rights reserved.
// Author: dev@hirevine.io

package auth

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/hirevine/hirevine/internal/platform/apperr"
	"github.com/hirevine/hirevine/internal/platform/constants"
	"github.com/hirevine/hirevine/internal/platform/sec"
	"github.com/hirevine/hirevine/internal/platform/validate"
	"github.com/hirevine/hirevine/pkg/uuidv7"
)

// Service implements identity and session use cases.
//
// # Review Process
//
// This service is critical for security and tenant isolation. Any changes to
// session resolution or organization switching must be reviewed carefully:
// the active organization id produced here is the sole tenant filter for
// every downstream data operation.
type Service struct {
	userRepository    UserRepository
	sessionRepository SessionRepository
	directory         OrganizationDirectory
	logger            *slog.Logger
}

// NewService constructs a new auth [Service] with necessary dependencies.
func NewService(userRepo UserRepository, sessionRepo SessionRepository, directory OrganizationDirectory, logger *slog.Logger) *Service {
	return &Service{
		userRepository:    userRepo,
		sessionRepository: sessionRepo,
		directory:         directory,
		logger:            logger,
	}
}

// # Session Resolution

/*
Resolve turns an opaque credential into a [sec.Session].

Description: The single identity-provider call of the request. Unknown or
expired tokens resolve to (nil, nil) — the anonymous outcome; only identity
store failures return an error.

Parameters:
  - ctx: context.Context
  - token: opaque credential from the session cookie

Returns:
  - *sec.Session: the resolved session, nil when anonymous
  - error: apperr.Upstream when the identity store failed
*/
func (service *Service) Resolve(ctx context.Context, token string) (*sec.Session, error) {
	if token == "" {
		return nil, nil
	}

	record, err := service.sessionRepository.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}

	return &sec.Session{
		Token:                token,
		UserID:               record.UserID,
		Email:                record.Email,
		ActiveOrganizationID: record.ActiveOrganizationID,
		ExpiresAt:            record.ExpiresAt,
	}, nil
}

// ResolveHTTP resolves the session cookie of an inbound request.
// It satisfies [middleware.SessionResolver].
func (service *Service) ResolveHTTP(request *http.Request) (*sec.Session, error) {
	cookie, err := request.Cookie(constants.SessionCookieName)
	if err != nil {
		return nil, nil
	}
	return service.Resolve(request.Context(), cookie.Value)
}

// # Registration & Login

// RegisterInput holds the data required to enroll a new account.
type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
}

/*
Register validates, hashes, and persists a brand new user account.

Returns:
  - *User: created entity (password hash never serialized)
  - error: validation failures or a 409 when the email is taken
*/
func (service *Service) Register(ctx context.Context, input RegisterInput) (*User, error) {
	validator := &validate.Validator{}
	validator.Required(FieldEmail, input.Email).Email(FieldEmail, input.Email).
		Required(FieldPassword, input.Password).MinLen(FieldPassword, input.Password, 10).
		MaxLen(FieldDisplayName, input.DisplayName, 100)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	hash, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	user := &User{
		ID:           uuidv7.New(),
		Email:        input.Email,
		PasswordHash: hash,
		DisplayName:  input.DisplayName,
	}

	// The unique index on users.account(email) turns a duplicate into a 409.
	if err := service.userRepository.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	service.logger.Info("user_registered", slog.String("user_id", user.ID))
	return user, nil
}

/*
Login verifies credentials and opens a new session.

Description: On success, a fresh opaque token is minted and the session
record is written to the identity store. The active organization defaults to
the user's primary membership, or stays unselected for brand-new accounts.

Returns:
  - string: the opaque session token for the cookie
  - *sec.Session: the resolved session
  - error: apperr.Unauthorized on bad credentials (identical for unknown
    email and wrong password, so accounts cannot be enumerated)
*/
func (service *Service) Login(ctx context.Context, email, password string) (string, *sec.Session, error) {
	user, err := service.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if user == nil || !sec.CheckPasswordHash(password, user.PasswordHash) {
		return "", nil, apperr.Unauthorized("Invalid email or password")
	}

	activeOrgID, err := service.directory.DefaultOrganizationID(ctx, user.ID)
	if err != nil {
		return "", nil, err
	}

	token := uuidv7.New()
	now := time.Now()
	record := &SessionRecord{
		UserID:               user.ID,
		Email:                user.Email,
		ActiveOrganizationID: activeOrgID,
		CreatedAt:            now,
		ExpiresAt:            now.Add(constants.SessionTTL),
	}

	if err := service.sessionRepository.Set(ctx, token, record, constants.SessionTTL); err != nil {
		return "", nil, err
	}

	service.logger.Info("user_logged_in",
		slog.String("user_id", user.ID),
		slog.String("organization_id", activeOrgID),
	)

	return token, &sec.Session{
		Token:                token,
		UserID:               record.UserID,
		Email:                record.Email,
		ActiveOrganizationID: record.ActiveOrganizationID,
		ExpiresAt:            record.ExpiresAt,
	}, nil
}

/*
Logout destroys the session record for the token.
*/
func (service *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return service.sessionRepository.Delete(ctx, token)
}

// # Organization Context

/*
SwitchOrganization rebinds the session to another organization.

Description: Verifies the actor's membership first; a non-member switch
attempt is reported as 404 so foreign organization ids cannot be probed.
The session record is rewritten in place, keeping the same token.
*/
func (service *Service) SwitchOrganization(ctx context.Context, session *sec.Session, organizationID string) (*sec.Session, error) {
	validator := &validate.Validator{}
	validator.Required(FieldOrganizationID, organizationID).UUID(FieldOrganizationID, organizationID)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	isMember, err := service.directory.IsMember(ctx, organizationID, session.UserID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, apperr.NotFound("Organization")
	}

	return service.rebindSession(ctx, session, organizationID)
}

/*
AcceptInvitation redeems an organization invite token and activates the
joined organization on the current session.
*/
func (service *Service) AcceptInvitation(ctx context.Context, session *sec.Session, token string) (*sec.Session, error) {
	validator := &validate.Validator{}
	validator.Required(FieldToken, token)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	organizationID, err := service.directory.AcceptInvite(ctx, token, session.UserID, session.Email)
	if err != nil {
		return nil, err
	}

	return service.rebindSession(ctx, session, organizationID)
}

// rebindSession rewrites the session record with a new active organization.
func (service *Service) rebindSession(ctx context.Context, session *sec.Session, organizationID string) (*sec.Session, error) {
	record := &SessionRecord{
		UserID:               session.UserID,
		Email:                session.Email,
		ActiveOrganizationID: organizationID,
		CreatedAt:            time.Now(),
		ExpiresAt:            session.ExpiresAt,
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return nil, apperr.Unauthorized("Session expired")
	}

	if err := service.sessionRepository.Set(ctx, session.Token, record, ttl); err != nil {
		return nil, err
	}

	service.logger.Info("organization_switched",
		slog.String("user_id", session.UserID),
		slog.String("organization_id", organizationID),
	)

	updated := *session
	updated.ActiveOrganizationID = organizationID
	return &updated, nil
}
