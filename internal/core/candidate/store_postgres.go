package candidate

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

func (repository *PostgresRepository) ListCandidates(ctx context.Context, organizationID string, f Filter, limit, offset int) ([]*Candidate, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.CoreCandidate.ID, schema.CoreCandidate.OrganizationID, schema.CoreCandidate.FirstName,
		schema.CoreCandidate.LastName, schema.CoreCandidate.Email, schema.CoreCandidate.Phone,
		schema.CoreCandidate.CreatedAt, schema.CoreCandidate.UpdatedAt,
		schema.CoreCandidate.Table, schema.CoreCandidate.OrganizationID,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1`,
		schema.CoreCandidate.Table, schema.CoreCandidate.OrganizationID,
	)

	args := []any{organizationID}
	countArgs := []any{organizationID}

	if f.Query != "" {
		searchTerm := "%" + f.Query + "%"
		clause := fmt.Sprintf(` AND (%s ILIKE $2 OR %s ILIKE $2 OR %s ILIKE $2)`,
			schema.CoreCandidate.FirstName, schema.CoreCandidate.LastName, schema.CoreCandidate.Email,
		)
		query += clause
		countQuery += clause
		args = append(args, searchTerm)
		countArgs = append(countArgs, searchTerm)
	}

	query += fmt.Sprintf(" ORDER BY %s DESC LIMIT $", schema.CoreCandidate.CreatedAt) +
		strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_candidates")
	}

	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_candidates")
	}
	defer rows.Close()

	var candidates []*Candidate
	for rows.Next() {
		c := &Candidate{}
		if err := rows.Scan(
			&c.ID, &c.OrganizationID, &c.FirstName, &c.LastName,
			&c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_candidate")
		}
		candidates = append(candidates, c)
	}

	return candidates, total, nil
}

func (repository *PostgresRepository) GetCandidate(ctx context.Context, organizationID, id string) (*Candidate, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = $2
	`,
		schema.CoreCandidate.ID, schema.CoreCandidate.OrganizationID, schema.CoreCandidate.FirstName,
		schema.CoreCandidate.LastName, schema.CoreCandidate.Email, schema.CoreCandidate.Phone,
		schema.CoreCandidate.CreatedAt, schema.CoreCandidate.UpdatedAt,
		schema.CoreCandidate.Table, schema.CoreCandidate.ID, schema.CoreCandidate.OrganizationID,
	)

	c := &Candidate{}
	err := repository.db.QueryRow(ctx, query, id, organizationID).Scan(
		&c.ID, &c.OrganizationID, &c.FirstName, &c.LastName,
		&c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_candidate")
	}
	return c, nil
}

func (repository *PostgresRepository) CreateCandidate(ctx context.Context, c *Candidate) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.CoreCandidate.Table, schema.CoreCandidate.ID, schema.CoreCandidate.OrganizationID,
		schema.CoreCandidate.FirstName, schema.CoreCandidate.LastName, schema.CoreCandidate.Email,
		schema.CoreCandidate.Phone, schema.CoreCandidate.CreatedAt, schema.CoreCandidate.UpdatedAt,
		schema.CoreCandidate.CreatedAt, schema.CoreCandidate.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query,
		c.ID, c.OrganizationID, c.FirstName, c.LastName, c.Email, c.Phone,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	return dberr.Wrap(err, "create_candidate")
}

func (repository *PostgresRepository) UpdateCandidate(ctx context.Context, c *Candidate) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW()
		WHERE %s = $1 AND %s = $2
		RETURNING %s
	`,
		schema.CoreCandidate.Table,
		schema.CoreCandidate.FirstName, schema.CoreCandidate.LastName, schema.CoreCandidate.Email,
		schema.CoreCandidate.Phone, schema.CoreCandidate.UpdatedAt,
		schema.CoreCandidate.ID, schema.CoreCandidate.OrganizationID,
		schema.CoreCandidate.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query,
		c.ID, c.OrganizationID, c.FirstName, c.LastName, c.Email, c.Phone,
	).Scan(&c.UpdatedAt)
	return dberr.Wrap(err, "update_candidate")
}

func (repository *PostgresRepository) DeleteCandidate(ctx context.Context, organizationID, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.CoreCandidate.Table, schema.CoreCandidate.ID, schema.CoreCandidate.OrganizationID,
	)

	cmd, err := repository.db.Exec(ctx, query, id, organizationID)
	if err != nil {
		return dberr.Wrap(err, "delete_candidate")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
