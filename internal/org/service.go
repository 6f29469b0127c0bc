// Copyright (c) 2026 Hirevine. All rights reserved.
// Author: dev@hirevine.io

package org

import (
	"context"
	"log/slog"

	"github.com/hirevine/hirevine/internal/platform/apperr"
	"github.com/hirevine/hirevine/internal/platform/constants"
	"github.com/hirevine/hirevine/internal/platform/sec"
	"github.com/hirevine/hirevine/internal/platform/validate"
	"github.com/hirevine/hirevine/pkg/slug"
	"github.com/hirevine/hirevine/pkg/uuidv7"
)

// Service implements organization and membership use cases. It also serves
// as the membership directory for the identity layer.
type Service struct {
	repo   Repository
	signer *sec.InviteSigner
	logger *slog.Logger
}

func NewService(repo Repository, signer *sec.InviteSigner, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		signer: signer,
		logger: logger,
	}
}

/*
CreateOrganization provisions a new workspace with the creator as owner.

The slug is derived from the name; a collision with an existing workspace
surfaces as a 409.
*/
func (service *Service) CreateOrganization(ctx context.Context, actorUserID, name string) (*Organization, error) {
	validator := &validate.Validator{}
	validator.Required(FieldName, name).MaxLen(FieldName, name, 120)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	organization := &Organization{
		ID:   uuidv7.New(),
		Name: name,
		Slug: slug.From(name),
	}

	if err := service.repo.CreateOrganization(ctx, organization); err != nil {
		return nil, err
	}

	membership := &Membership{
		ID:             uuidv7.New(),
		OrganizationID: organization.ID,
		UserID:         actorUserID,
		Role:           RoleOwner,
	}
	if err := service.repo.CreateMembership(ctx, membership); err != nil {
		return nil, err
	}

	service.logger.Info("organization_created",
		slog.String("organization_id", organization.ID),
		slog.String("slug", organization.Slug),
	)
	return organization, nil
}

// ListMine returns every organization the user belongs to, oldest first.
func (service *Service) ListMine(ctx context.Context, userID string) ([]*Organization, error) {
	return service.repo.ListOrganizationsForUser(ctx, userID)
}

// GetOrganization returns the workspace, but only for its own members. A
// non-member gets the same 404 as for an id that does not exist.
func (service *Service) GetOrganization(ctx context.Context, id, actorUserID string) (*Organization, error) {
	membership, err := service.repo.GetMembership(ctx, id, actorUserID)
	if err != nil {
		return nil, err
	}
	if membership == nil {
		return nil, apperr.NotFound("Organization")
	}
	return service.repo.GetOrganization(ctx, id)
}

// ListMembers returns the membership roster of an organization the actor
// belongs to.
func (service *Service) ListMembers(ctx context.Context, organizationID, actorUserID string) ([]*Membership, error) {
	membership, err := service.repo.GetMembership(ctx, organizationID, actorUserID)
	if err != nil {
		return nil, err
	}
	if membership == nil {
		return nil, apperr.NotFound("Organization")
	}
	return service.repo.ListMemberships(ctx, organizationID)
}

/*
Invite issues a signed invitation token for an email address.

Only owners and admins may invite. The token is self-contained; no row is
written until the invitee accepts, so an ignored invite leaves no residue.
*/
func (service *Service) Invite(ctx context.Context, organizationID, actorUserID, email, role string) (string, error) {
	validator := &validate.Validator{}
	validator.Required(FieldEmail, email).Email(FieldEmail, email).
		Custom(FieldRole, !RoleValid(role), "Unknown membership role")
	if err := validator.Err(); err != nil {
		return "", err
	}

	membership, err := service.repo.GetMembership(ctx, organizationID, actorUserID)
	if err != nil {
		return "", err
	}
	if membership == nil {
		return "", apperr.NotFound("Organization")
	}
	if membership.Role != RoleOwner && membership.Role != RoleAdmin {
		return "", apperr.Forbidden("Only owners and admins can invite members")
	}

	token, err := service.signer.Sign(organizationID, email, role, constants.InviteTokenTTL)
	if err != nil {
		return "", apperr.Internal(err)
	}

	service.logger.Info("member_invited",
		slog.String("organization_id", organizationID),
		slog.String("role", role),
	)
	return token, nil
}

// # Membership Directory

// IsMember reports whether the user belongs to the organization.
func (service *Service) IsMember(ctx context.Context, organizationID, userID string) (bool, error) {
	membership, err := service.repo.GetMembership(ctx, organizationID, userID)
	if err != nil {
		return false, err
	}
	return membership != nil, nil
}

// DefaultOrganizationID returns the organization a fresh session should
// activate, or "" when the user belongs to none.
func (service *Service) DefaultOrganizationID(ctx context.Context, userID string) (string, error) {
	return service.repo.FirstMembershipOrganizationID(ctx, userID)
}

/*
AcceptInvite verifies an invitation token and creates the membership.

The invite is addressed to an email; the accepting actor's session email
must match, so a leaked token is useless to anyone else. Accepting twice is
a no-op that still returns the organization id.
*/
func (service *Service) AcceptInvite(ctx context.Context, token, userID, email string) (string, error) {
	claims, err := service.signer.Verify(token)
	if err != nil {
		return "", apperr.Unauthorized("Invalid or expired invitation")
	}
	if claims.Email != email {
		return "", apperr.Unauthorized("This invitation was issued to a different email address")
	}

	existing, err := service.repo.GetMembership(ctx, claims.OrganizationID, userID)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return claims.OrganizationID, nil
	}

	role := claims.Role
	if !RoleValid(role) {
		role = RoleMember
	}

	membership := &Membership{
		ID:             uuidv7.New(),
		OrganizationID: claims.OrganizationID,
		UserID:         userID,
		Role:           role,
	}
	if err := service.repo.CreateMembership(ctx, membership); err != nil {
		return "", err
	}

	service.logger.Info("invitation_accepted",
		slog.String("organization_id", claims.OrganizationID),
		slog.String("user_id", userID),
	)
	return claims.OrganizationID, nil
}

// LookupIDBySlug resolves a workspace slug to its id, "" when absent. This
// is the resolver behind the demo workspace cache.
func (service *Service) LookupIDBySlug(ctx context.Context, workspaceSlug string) (string, error) {
	return service.repo.GetOrganizationIDBySlug(ctx, workspaceSlug)
}
