// Copyright (c) 2026 Hirevine. All rights reserved.
// Author: dev@hirevine.io

package org

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hirevine/hirevine/internal/platform/database/schema"
	"github.com/hirevine/hirevine/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) CreateOrganization(ctx context.Context, organization *Organization) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.OrgOrganization.Table, schema.OrgOrganization.ID, schema.OrgOrganization.Name,
		schema.OrgOrganization.Slug, schema.OrgOrganization.CreatedAt, schema.OrgOrganization.UpdatedAt,
		schema.OrgOrganization.CreatedAt, schema.OrgOrganization.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query, organization.ID, organization.Name, organization.Slug).
		Scan(&organization.CreatedAt, &organization.UpdatedAt)
	return dberr.Wrap(err, "create_organization")
}

func (repository *PostgresRepository) GetOrganization(ctx context.Context, id string) (*Organization, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.OrgOrganization.ID, schema.OrgOrganization.Name, schema.OrgOrganization.Slug,
		schema.OrgOrganization.CreatedAt, schema.OrgOrganization.UpdatedAt,
		schema.OrgOrganization.Table, schema.OrgOrganization.ID,
	)

	organization := &Organization{}
	err := repository.db.QueryRow(ctx, query, id).Scan(
		&organization.ID, &organization.Name, &organization.Slug,
		&organization.CreatedAt, &organization.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_organization")
	}
	return organization, nil
}

// GetOrganizationIDBySlug returns "" (no error) when the slug is unknown, so
// callers can memoize the absence of a demo workspace.
func (repository *PostgresRepository) GetOrganizationIDBySlug(ctx context.Context, slug string) (string, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.OrgOrganization.ID, schema.OrgOrganization.Table, schema.OrgOrganization.Slug,
	)

	var id string
	err := repository.db.QueryRow(ctx, query, slug).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", dberr.Wrap(err, "get_organization_by_slug")
	}
	return id, nil
}

func (repository *PostgresRepository) ListOrganizationsForUser(ctx context.Context, userID string) ([]*Organization, error) {
	query := fmt.Sprintf(`
		SELECT o.%s, o.%s, o.%s, o.%s, o.%s
		FROM %s o
		JOIN %s m ON m.%s = o.%s
		WHERE m.%s = $1
		ORDER BY m.%s ASC
	`,
		schema.OrgOrganization.ID, schema.OrgOrganization.Name, schema.OrgOrganization.Slug,
		schema.OrgOrganization.CreatedAt, schema.OrgOrganization.UpdatedAt,
		schema.OrgOrganization.Table,
		schema.OrgMembership.Table, schema.OrgMembership.OrganizationID, schema.OrgOrganization.ID,
		schema.OrgMembership.UserID, schema.OrgMembership.CreatedAt,
	)

	rows, err := repository.db.Query(ctx, query, userID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_organizations_for_user")
	}
	defer rows.Close()

	var organizations []*Organization
	for rows.Next() {
		organization := &Organization{}
		if err := rows.Scan(
			&organization.ID, &organization.Name, &organization.Slug,
			&organization.CreatedAt, &organization.UpdatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_organization")
		}
		organizations = append(organizations, organization)
	}

	return organizations, nil
}

func (repository *PostgresRepository) CreateMembership(ctx context.Context, membership *Membership) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING %s
	`,
		schema.OrgMembership.Table, schema.OrgMembership.ID, schema.OrgMembership.OrganizationID,
		schema.OrgMembership.UserID, schema.OrgMembership.Role, schema.OrgMembership.CreatedAt,
		schema.OrgMembership.CreatedAt,
	)

	err := repository.db.QueryRow(ctx, query,
		membership.ID, membership.OrganizationID, membership.UserID, membership.Role,
	).Scan(&membership.CreatedAt)
	return dberr.Wrap(err, "create_membership")
}

func (repository *PostgresRepository) GetMembership(ctx context.Context, organizationID, userID string) (*Membership, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = $2
	`,
		schema.OrgMembership.ID, schema.OrgMembership.OrganizationID, schema.OrgMembership.UserID,
		schema.OrgMembership.Role, schema.OrgMembership.CreatedAt,
		schema.OrgMembership.Table, schema.OrgMembership.OrganizationID, schema.OrgMembership.UserID,
	)

	membership := &Membership{}
	err := repository.db.QueryRow(ctx, query, organizationID, userID).Scan(
		&membership.ID, &membership.OrganizationID, &membership.UserID,
		&membership.Role, &membership.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_membership")
	}
	return membership, nil
}

// FirstMembershipOrganizationID returns the oldest membership's organization,
// or "" when the user belongs to none.
func (repository *PostgresRepository) FirstMembershipOrganizationID(ctx context.Context, userID string) (string, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s = $1
		ORDER BY %s ASC
		LIMIT 1
	`,
		schema.OrgMembership.OrganizationID, schema.OrgMembership.Table,
		schema.OrgMembership.UserID, schema.OrgMembership.CreatedAt,
	)

	var organizationID string
	err := repository.db.QueryRow(ctx, query, userID).Scan(&organizationID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", dberr.Wrap(err, "first_membership")
	}
	return organizationID, nil
}

func (repository *PostgresRepository) ListMemberships(ctx context.Context, organizationID string) ([]*Membership, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC
	`,
		schema.OrgMembership.ID, schema.OrgMembership.OrganizationID, schema.OrgMembership.UserID,
		schema.OrgMembership.Role, schema.OrgMembership.CreatedAt,
		schema.OrgMembership.Table, schema.OrgMembership.OrganizationID, schema.OrgMembership.CreatedAt,
	)

	rows, err := repository.db.Query(ctx, query, organizationID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_memberships")
	}
	defer rows.Close()

	var memberships []*Membership
	for rows.Next() {
		membership := &Membership{}
		if err := rows.Scan(
			&membership.ID, &membership.OrganizationID, &membership.UserID,
			&membership.Role, &membership.CreatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_membership")
		}
		memberships = append(memberships, membership)
	}

	return memberships, nil
}
