// Copyright (c) 2026 Hirevine. All rights reserved.
// Author: dev@hirevine.io

package org

import "context"

type Repository interface {
	CreateOrganization(ctx context.Context, organization *Organization) error
	GetOrganization(ctx context.Context, id string) (*Organization, error)
	GetOrganizationIDBySlug(ctx context.Context, slug string) (string, error)
	ListOrganizationsForUser(ctx context.Context, userID string) ([]*Organization, error)

	CreateMembership(ctx context.Context, membership *Membership) error
	GetMembership(ctx context.Context, organizationID, userID string) (*Membership, error)
	FirstMembershipOrganizationID(ctx context.Context, userID string) (string, error)
	ListMemberships(ctx context.Context, organizationID string) ([]*Membership, error)
}
