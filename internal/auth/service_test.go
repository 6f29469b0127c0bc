// Copyright (c) 2026 Hirevine. All rights reserved.
// Author: dev@hirevine.io

package auth

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirevine/hirevine/internal/platform/apperr"
	"github.com/hirevine/hirevine/internal/platform/sec"
)

// # Fakes

type fakeUserRepo struct {
	byEmail map[string]*User
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *User) error {
	if _, exists := f.byEmail[user.Email]; exists {
		return apperr.Conflict("A record with these values already exists")
	}
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id string) (*User, error) {
	for _, user := range f.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, nil
}

type fakeSessionRepo struct {
	records map[string]*SessionRecord
}

func (f *fakeSessionRepo) Set(_ context.Context, token string, record *SessionRecord, _ time.Duration) error {
	f.records[token] = record
	return nil
}

func (f *fakeSessionRepo) Get(_ context.Context, token string) (*SessionRecord, error) {
	return f.records[token], nil
}

func (f *fakeSessionRepo) Delete(_ context.Context, token string) error {
	delete(f.records, token)
	return nil
}

type fakeDirectory struct {
	memberships map[string][]string // userID -> organization ids
	inviteOrgID string
}

func (f *fakeDirectory) IsMember(_ context.Context, orgID, userID string) (bool, error) {
	for _, id := range f.memberships[userID] {
		if id == orgID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeDirectory) DefaultOrganizationID(_ context.Context, userID string) (string, error) {
	if orgs := f.memberships[userID]; len(orgs) > 0 {
		return orgs[0], nil
	}
	return "", nil
}

func (f *fakeDirectory) AcceptInvite(_ context.Context, token, userID, _ string) (string, error) {
	if token != "valid-invite" {
		return "", apperr.Unauthorized("Invalid or expired invitation")
	}
	f.memberships[userID] = append(f.memberships[userID], f.inviteOrgID)
	return f.inviteOrgID, nil
}

func newTestService() (*Service, *fakeUserRepo, *fakeSessionRepo, *fakeDirectory) {
	users := &fakeUserRepo{byEmail: map[string]*User{}}
	sessions := &fakeSessionRepo{records: map[string]*SessionRecord{}}
	directory := &fakeDirectory{memberships: map[string][]string{}}
	service := NewService(users, sessions, directory, slog.Default())
	return service, users, sessions, directory
}

// # Session Resolution

func TestResolveUnknownTokenIsAnonymous(t *testing.T) {
	service, _, _, _ := newTestService()

	session, err := service.Resolve(context.Background(), "no-such-token")
	require.NoError(t, err, "an unknown token is not an error")
	assert.Nil(t, session)
}

func TestResolveEmptyTokenIsAnonymous(t *testing.T) {
	service, _, _, _ := newTestService()

	session, err := service.Resolve(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestResolveKnownToken(t *testing.T) {
	service, _, sessions, _ := newTestService()

	sessions.records["tok-1"] = &SessionRecord{
		UserID:               "user-1",
		Email:                "jo@example.com",
		ActiveOrganizationID: "org-1",
		ExpiresAt:            time.Now().Add(time.Hour),
	}

	session, err := service.Resolve(context.Background(), "tok-1")
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "user-1", session.UserID)
	assert.Equal(t, "org-1", session.ActiveOrganizationID)
	assert.Equal(t, "tok-1", session.Token)
}

// # Registration & Login

func TestRegisterAndLogin(t *testing.T) {
	service, _, sessions, directory := newTestService()

	user, err := service.Register(context.Background(), RegisterInput{
		Email:       "jo@example.com",
		Password:    "correct-horse-battery",
		DisplayName: "Jo",
	})
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	assert.NotEqual(t, "correct-horse-battery", user.PasswordHash)

	directory.memberships[user.ID] = []string{"org-1"}

	token, session, err := service.Login(context.Background(), "jo@example.com", "correct-horse-battery")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, user.ID, session.UserID)
	assert.Equal(t, "org-1", session.ActiveOrganizationID)
	assert.Contains(t, sessions.records, token)
}

func TestLoginWrongPasswordAndUnknownEmailLookIdentical(t *testing.T) {
	service, _, _, _ := newTestService()

	_, err := service.Register(context.Background(), RegisterInput{
		Email:    "jo@example.com",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)

	_, _, errWrong := service.Login(context.Background(), "jo@example.com", "nope-nope-nope")
	_, _, errUnknown := service.Login(context.Background(), "ghost@example.com", "nope-nope-nope")

	appWrong := apperr.As(errWrong)
	appUnknown := apperr.As(errUnknown)
	require.NotNil(t, appWrong)
	require.NotNil(t, appUnknown)
	assert.Equal(t, appWrong.Code, appUnknown.Code)
	assert.Equal(t, appWrong.Message, appUnknown.Message)
	assert.Equal(t, 401, appWrong.HTTPStatus)
}

func TestLoginWithoutMembershipHasNoActiveOrganization(t *testing.T) {
	service, _, _, _ := newTestService()

	_, err := service.Register(context.Background(), RegisterInput{
		Email:    "solo@example.com",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)

	_, session, err := service.Login(context.Background(), "solo@example.com", "correct-horse-battery")
	require.NoError(t, err)
	assert.Empty(t, session.ActiveOrganizationID)

	_, orgErr := session.RequireOrganization()
	appErr := apperr.As(orgErr)
	require.NotNil(t, appErr)
	assert.Equal(t, "NO_ACTIVE_ORGANIZATION", appErr.Code)
}

// # Organization Context

func TestSwitchOrganizationRequiresMembership(t *testing.T) {
	service, _, sessions, directory := newTestService()

	directory.memberships["user-1"] = []string{"org-1"}
	sessions.records["tok-1"] = &SessionRecord{
		UserID:               "user-1",
		Email:                "jo@example.com",
		ActiveOrganizationID: "org-1",
		ExpiresAt:            time.Now().Add(time.Hour),
	}
	session := &sec.Session{
		Token:                "tok-1",
		UserID:               "user-1",
		Email:                "jo@example.com",
		ActiveOrganizationID: "org-1",
		ExpiresAt:            time.Now().Add(time.Hour),
	}

	// A foreign organization id must look exactly like a missing one.
	_, err := service.SwitchOrganization(context.Background(), session, "0192a1b2-0000-7000-8000-000000000099")
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.HTTPStatus)
}

func TestSwitchOrganizationRewritesRecord(t *testing.T) {
	service, _, sessions, directory := newTestService()

	directory.memberships["user-1"] = []string{"org-1", "0192a1b2-0000-7000-8000-000000000002"}
	sessions.records["tok-1"] = &SessionRecord{
		UserID:               "user-1",
		Email:                "jo@example.com",
		ActiveOrganizationID: "org-1",
		ExpiresAt:            time.Now().Add(time.Hour),
	}
	session := &sec.Session{
		Token:                "tok-1",
		UserID:               "user-1",
		Email:                "jo@example.com",
		ActiveOrganizationID: "org-1",
		ExpiresAt:            time.Now().Add(time.Hour),
	}

	updated, err := service.SwitchOrganization(context.Background(), session, "0192a1b2-0000-7000-8000-000000000002")
	require.NoError(t, err)
	assert.Equal(t, "0192a1b2-0000-7000-8000-000000000002", updated.ActiveOrganizationID)
	assert.Equal(t, "tok-1", updated.Token, "token is preserved across a switch")
	assert.Equal(t, "0192a1b2-0000-7000-8000-000000000002", sessions.records["tok-1"].ActiveOrganizationID)
}

func TestAcceptInvitationActivatesOrganization(t *testing.T) {
	service, _, sessions, directory := newTestService()

	directory.inviteOrgID = "org-invited"
	sessions.records["tok-1"] = &SessionRecord{
		UserID:    "user-1",
		Email:     "jo@example.com",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	session := &sec.Session{
		Token:     "tok-1",
		UserID:    "user-1",
		Email:     "jo@example.com",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	updated, err := service.AcceptInvitation(context.Background(), session, "valid-invite")
	require.NoError(t, err)
	assert.Equal(t, "org-invited", updated.ActiveOrganizationID)
	assert.Equal(t, "org-invited", sessions.records["tok-1"].ActiveOrganizationID)

	_, err = service.AcceptInvitation(context.Background(), session, "garbage")
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 401, appErr.HTTPStatus)
}

func TestLogoutDeletesRecord(t *testing.T) {
	service, _, sessions, _ := newTestService()

	sessions.records["tok-1"] = &SessionRecord{UserID: "user-1"}
	require.NoError(t, service.Logout(context.Background(), "tok-1"))
	assert.NotContains(t, sessions.records, "tok-1")
}
