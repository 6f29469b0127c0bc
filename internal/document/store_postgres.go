// Copyright (c) 2026 Hirevine. All rights reserved.
// Author: dev@hirevine.io

package document

import (
	"context"
	"fmt"

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

func (repository *PostgresRepository) ListDocuments(ctx context.Context, organizationID, candidateID string) ([]*Document, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = $2
		ORDER BY %s DESC
	`,
		schema.CoreDocument.ID, schema.CoreDocument.OrganizationID, schema.CoreDocument.CandidateID,
		schema.CoreDocument.DocType, schema.CoreDocument.FileName, schema.CoreDocument.MimeType,
		schema.CoreDocument.SizeBytes, schema.CoreDocument.StorageKey, schema.CoreDocument.CreatedAt,
		schema.CoreDocument.Table,
		schema.CoreDocument.CandidateID, schema.CoreDocument.OrganizationID,
		schema.CoreDocument.CreatedAt,
	)

	rows, err := repository.db.Query(ctx, query, candidateID, organizationID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_documents")
	}
	defer rows.Close()

	var documents []*Document
	for rows.Next() {
		d := &Document{}
		if err := rows.Scan(
			&d.ID, &d.OrganizationID, &d.CandidateID, &d.DocType,
			&d.FileName, &d.MimeType, &d.SizeBytes, &d.StorageKey, &d.CreatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_document")
		}
		documents = append(documents, d)
	}

	return documents, nil
}

func (repository *PostgresRepository) GetDocument(ctx context.Context, organizationID, id string) (*Document, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = $2
	`,
		schema.CoreDocument.ID, schema.CoreDocument.OrganizationID, schema.CoreDocument.CandidateID,
		schema.CoreDocument.DocType, schema.CoreDocument.FileName, schema.CoreDocument.MimeType,
		schema.CoreDocument.SizeBytes, schema.CoreDocument.StorageKey, schema.CoreDocument.CreatedAt,
		schema.CoreDocument.Table, schema.CoreDocument.ID, schema.CoreDocument.OrganizationID,
	)

	d := &Document{}
	err := repository.db.QueryRow(ctx, query, id, organizationID).Scan(
		&d.ID, &d.OrganizationID, &d.CandidateID, &d.DocType,
		&d.FileName, &d.MimeType, &d.SizeBytes, &d.StorageKey, &d.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_document")
	}
	return d, nil
}

func (repository *PostgresRepository) CreateDocument(ctx context.Context, d *Document) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING %s
	`,
		schema.CoreDocument.Table, schema.CoreDocument.ID, schema.CoreDocument.OrganizationID,
		schema.CoreDocument.CandidateID, schema.CoreDocument.DocType, schema.CoreDocument.FileName,
		schema.CoreDocument.MimeType, schema.CoreDocument.SizeBytes, schema.CoreDocument.StorageKey,
		schema.CoreDocument.CreatedAt,
		schema.CoreDocument.CreatedAt,
	)

	err := repository.db.QueryRow(ctx, query,
		d.ID, d.OrganizationID, d.CandidateID, d.DocType,
		d.FileName, d.MimeType, d.SizeBytes, d.StorageKey,
	).Scan(&d.CreatedAt)
	return dberr.Wrap(err, "create_document")
}

func (repository *PostgresRepository) DeleteDocument(ctx context.Context, organizationID, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.CoreDocument.Table, schema.CoreDocument.ID, schema.CoreDocument.OrganizationID,
	)

	cmd, err := repository.db.Exec(ctx, query, id, organizationID)
	if err != nil {
		return dberr.Wrap(err, "delete_document")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
