// Copyright (c) 2026 Hirevine. All rights reserved.
// Author: dev@hirevine.io

package org

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirevine/hirevine/internal/platform/apperr"
	"github.com/hirevine/hirevine/internal/platform/sec"
)

type fakeRepo struct {
	organizations map[string]*Organization
	memberships   []*Membership
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{organizations: map[string]*Organization{}}
}

func (f *fakeRepo) CreateOrganization(_ context.Context, organization *Organization) error {
	for _, existing := range f.organizations {
		if existing.Slug == organization.Slug {
			return apperr.Conflict("A record with these values already exists")
		}
	}
	f.organizations[organization.ID] = organization
	return nil
}

func (f *fakeRepo) GetOrganization(_ context.Context, id string) (*Organization, error) {
	if organization, ok := f.organizations[id]; ok {
		return organization, nil
	}
	return nil, apperr.NotFound("Resource")
}

func (f *fakeRepo) GetOrganizationIDBySlug(_ context.Context, slug string) (string, error) {
	for id, organization := range f.organizations {
		if organization.Slug == slug {
			return id, nil
		}
	}
	return "", nil
}

func (f *fakeRepo) ListOrganizationsForUser(_ context.Context, userID string) ([]*Organization, error) {
	var result []*Organization
	for _, membership := range f.memberships {
		if membership.UserID == userID {
			result = append(result, f.organizations[membership.OrganizationID])
		}
	}
	return result, nil
}

func (f *fakeRepo) CreateMembership(_ context.Context, membership *Membership) error {
	f.memberships = append(f.memberships, membership)
	return nil
}

func (f *fakeRepo) GetMembership(_ context.Context, organizationID, userID string) (*Membership, error) {
	for _, membership := range f.memberships {
		if membership.OrganizationID == organizationID && membership.UserID == userID {
			return membership, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) FirstMembershipOrganizationID(_ context.Context, userID string) (string, error) {
	for _, membership := range f.memberships {
		if membership.UserID == userID {
			return membership.OrganizationID, nil
		}
	}
	return "", nil
}

func (f *fakeRepo) ListMemberships(_ context.Context, organizationID string) ([]*Membership, error) {
	var result []*Membership
	for _, membership := range f.memberships {
		if membership.OrganizationID == organizationID {
			result = append(result, membership)
		}
	}
	return result, nil
}

func newTestService() (*Service, *fakeRepo) {
	repo := newFakeRepo()
	signer := sec.NewInviteSigner("test-secret-test-secret-test", "hirevine.io")
	return NewService(repo, signer, slog.Default()), repo
}

func TestCreateOrganizationMakesCreatorOwner(t *testing.T) {
	service, repo := newTestService()

	organization, err := service.CreateOrganization(context.Background(), "user-1", "Acme Recruiting")
	require.NoError(t, err)
	assert.Equal(t, "acme-recruiting", organization.Slug)

	membership, err := repo.GetMembership(context.Background(), organization.ID, "user-1")
	require.NoError(t, err)
	require.NotNil(t, membership)
	assert.Equal(t, RoleOwner, membership.Role)

	isMember, err := service.IsMember(context.Background(), organization.ID, "user-1")
	require.NoError(t, err)
	assert.True(t, isMember)
}

func TestGetOrganizationHidesForeignWorkspaces(t *testing.T) {
	service, _ := newTestService()

	organization, err := service.CreateOrganization(context.Background(), "user-1", "Acme Recruiting")
	require.NoError(t, err)

	// A non-member sees the same 404 as for an unknown id.
	_, err = service.GetOrganization(context.Background(), organization.ID, "user-2")
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.HTTPStatus)

	_, err = service.GetOrganization(context.Background(), organization.ID, "user-1")
	assert.NoError(t, err)
}

func TestInviteAndAcceptRoundTrip(t *testing.T) {
	service, _ := newTestService()

	organization, err := service.CreateOrganization(context.Background(), "owner-1", "Acme Recruiting")
	require.NoError(t, err)

	token, err := service.Invite(context.Background(), organization.ID, "owner-1", "new@example.com", RoleMember)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// Wrong email: the invitation is addressed, not a bearer credential.
	_, err = service.AcceptInvite(context.Background(), token, "user-2", "other@example.com")
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 401, appErr.HTTPStatus)

	orgID, err := service.AcceptInvite(context.Background(), token, "user-2", "new@example.com")
	require.NoError(t, err)
	assert.Equal(t, organization.ID, orgID)

	isMember, err := service.IsMember(context.Background(), organization.ID, "user-2")
	require.NoError(t, err)
	assert.True(t, isMember)

	// Accepting twice is a no-op.
	orgID, err = service.AcceptInvite(context.Background(), token, "user-2", "new@example.com")
	require.NoError(t, err)
	assert.Equal(t, organization.ID, orgID)
}

func TestInviteRequiresPrivilegedRole(t *testing.T) {
	service, repo := newTestService()

	organization, err := service.CreateOrganization(context.Background(), "owner-1", "Acme Recruiting")
	require.NoError(t, err)

	repo.memberships = append(repo.memberships, &Membership{
		ID: "m-2", OrganizationID: organization.ID, UserID: "member-1", Role: RoleMember,
	})

	_, err = service.Invite(context.Background(), organization.ID, "member-1", "new@example.com", RoleMember)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 403, appErr.HTTPStatus)

	// A complete outsider gets a 404, not a 403.
	_, err = service.Invite(context.Background(), organization.ID, "stranger-1", "new@example.com", RoleMember)
	appErr = apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.HTTPStatus)
}

func TestGarbageInviteTokenRejected(t *testing.T) {
	service, _ := newTestService()

	_, err := service.AcceptInvite(context.Background(), "not-a-jwt", "user-1", "jo@example.com")
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 401, appErr.HTTPStatus)
}

func TestDefaultOrganizationIDEmptyForNewUser(t *testing.T) {
	service, _ := newTestService()

	orgID, err := service.DefaultOrganizationID(context.Background(), "fresh-user")
	require.NoError(t, err)
	assert.Empty(t, orgID)
}
