package application

import (
	"context"
	"fmt"
	"strconv"

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

func (repository *PostgresRepository) ListApplications(ctx context.Context, organizationID string, f Filter, limit, offset int) ([]*Application, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.CoreApplication.ID, schema.CoreApplication.OrganizationID, schema.CoreApplication.CandidateID,
		schema.CoreApplication.JobID, schema.CoreApplication.Status, schema.CoreApplication.Notes,
		schema.CoreApplication.CreatedAt, schema.CoreApplication.UpdatedAt,
		schema.CoreApplication.Table, schema.CoreApplication.OrganizationID,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1`,
		schema.CoreApplication.Table, schema.CoreApplication.OrganizationID,
	)

	args := []any{organizationID}
	countArgs := []any{organizationID}

	appendClause := func(column string, value string) {
		clause := fmt.Sprintf(" AND %s = $%d", column, len(args)+1)
		query += clause
		countQuery += clause
		args = append(args, value)
		countArgs = append(countArgs, value)
	}

	if f.CandidateID != "" {
		appendClause(schema.CoreApplication.CandidateID, f.CandidateID)
	}
	if f.JobID != "" {
		appendClause(schema.CoreApplication.JobID, f.JobID)
	}
	if f.Status != "" {
		appendClause(schema.CoreApplication.Status, f.Status)
	}

	query += fmt.Sprintf(" ORDER BY %s DESC LIMIT $", schema.CoreApplication.CreatedAt) +
		strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_applications")
	}

	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_applications")
	}
	defer rows.Close()

	var applications []*Application
	for rows.Next() {
		a := &Application{}
		if err := rows.Scan(
			&a.ID, &a.OrganizationID, &a.CandidateID, &a.JobID,
			&a.Status, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_application")
		}
		applications = append(applications, a)
	}

	return applications, total, nil
}

func (repository *PostgresRepository) GetApplication(ctx context.Context, organizationID, id string) (*Application, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = $2
	`,
		schema.CoreApplication.ID, schema.CoreApplication.OrganizationID, schema.CoreApplication.CandidateID,
		schema.CoreApplication.JobID, schema.CoreApplication.Status, schema.CoreApplication.Notes,
		schema.CoreApplication.CreatedAt, schema.CoreApplication.UpdatedAt,
		schema.CoreApplication.Table, schema.CoreApplication.ID, schema.CoreApplication.OrganizationID,
	)

	a := &Application{}
	err := repository.db.QueryRow(ctx, query, id, organizationID).Scan(
		&a.ID, &a.OrganizationID, &a.CandidateID, &a.JobID,
		&a.Status, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_application")
	}
	return a, nil
}

func (repository *PostgresRepository) CreateApplication(ctx context.Context, a *Application) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.CoreApplication.Table, schema.CoreApplication.ID, schema.CoreApplication.OrganizationID,
		schema.CoreApplication.CandidateID, schema.CoreApplication.JobID, schema.CoreApplication.Status,
		schema.CoreApplication.Notes, schema.CoreApplication.CreatedAt, schema.CoreApplication.UpdatedAt,
		schema.CoreApplication.CreatedAt, schema.CoreApplication.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query,
		a.ID, a.OrganizationID, a.CandidateID, a.JobID, a.Status, a.Notes,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	return dberr.Wrap(err, "create_application")
}

func (repository *PostgresRepository) UpdateApplication(ctx context.Context, a *Application) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1 AND %s = $2
		RETURNING %s
	`,
		schema.CoreApplication.Table,
		schema.CoreApplication.Status, schema.CoreApplication.Notes, schema.CoreApplication.UpdatedAt,
		schema.CoreApplication.ID, schema.CoreApplication.OrganizationID,
		schema.CoreApplication.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query, a.ID, a.OrganizationID, a.Status, a.Notes).Scan(&a.UpdatedAt)
	return dberr.Wrap(err, "update_application")
}

func (repository *PostgresRepository) DeleteApplication(ctx context.Context, organizationID, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.CoreApplication.Table, schema.CoreApplication.ID, schema.CoreApplication.OrganizationID,
	)

	cmd, err := repository.db.Exec(ctx, query, id, organizationID)
	if err != nil {
		return dberr.Wrap(err, "delete_application")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
