package job

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

func (repository *PostgresRepository) ListJobs(ctx context.Context, organizationID string, f Filter, limit, offset int) ([]*Job, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.CoreJob.ID, schema.CoreJob.OrganizationID, schema.CoreJob.Title,
		schema.CoreJob.Description, schema.CoreJob.Status,
		schema.CoreJob.CreatedAt, schema.CoreJob.UpdatedAt,
		schema.CoreJob.Table, schema.CoreJob.OrganizationID,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1`,
		schema.CoreJob.Table, schema.CoreJob.OrganizationID,
	)

	args := []any{organizationID}
	countArgs := []any{organizationID}

	if f.Status != "" {
		clause := ` AND status = $` + strconv.Itoa(len(args)+1)
		query += clause
		countQuery += clause
		args = append(args, f.Status)
		countArgs = append(countArgs, f.Status)
	}

	if f.Query != "" {
		searchTerm := "%" + f.Query + "%"
		clause := ` AND title ILIKE $` + strconv.Itoa(len(args)+1)
		query += clause
		countQuery += clause
		args = append(args, searchTerm)
		countArgs = append(countArgs, searchTerm)
	}

	query += fmt.Sprintf(" ORDER BY %s DESC LIMIT $", schema.CoreJob.CreatedAt) +
		strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_jobs")
	}

	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_jobs")
	}
	defer rows.Close()

	var jobs []*Job
	for rows.Next() {
		j := &Job{}
		if err := rows.Scan(
			&j.ID, &j.OrganizationID, &j.Title, &j.Description,
			&j.Status, &j.CreatedAt, &j.UpdatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_job")
		}
		jobs = append(jobs, j)
	}

	return jobs, total, nil
}

func (repository *PostgresRepository) GetJob(ctx context.Context, organizationID, id string) (*Job, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = $2
	`,
		schema.CoreJob.ID, schema.CoreJob.OrganizationID, schema.CoreJob.Title,
		schema.CoreJob.Description, schema.CoreJob.Status,
		schema.CoreJob.CreatedAt, schema.CoreJob.UpdatedAt,
		schema.CoreJob.Table, schema.CoreJob.ID, schema.CoreJob.OrganizationID,
	)

	j := &Job{}
	err := repository.db.QueryRow(ctx, query, id, organizationID).Scan(
		&j.ID, &j.OrganizationID, &j.Title, &j.Description,
		&j.Status, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_job")
	}
	return j, nil
}

func (repository *PostgresRepository) CreateJob(ctx context.Context, j *Job) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.CoreJob.Table, schema.CoreJob.ID, schema.CoreJob.OrganizationID,
		schema.CoreJob.Title, schema.CoreJob.Description, schema.CoreJob.Status,
		schema.CoreJob.CreatedAt, schema.CoreJob.UpdatedAt,
		schema.CoreJob.CreatedAt, schema.CoreJob.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query,
		j.ID, j.OrganizationID, j.Title, j.Description, j.Status,
	).Scan(&j.CreatedAt, &j.UpdatedAt)
	return dberr.Wrap(err, "create_job")
}

func (repository *PostgresRepository) UpdateJob(ctx context.Context, j *Job) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $3, %s = $4, %s = $5, %s = NOW()
		WHERE %s = $1 AND %s = $2
		RETURNING %s
	`,
		schema.CoreJob.Table,
		schema.CoreJob.Title, schema.CoreJob.Description, schema.CoreJob.Status, schema.CoreJob.UpdatedAt,
		schema.CoreJob.ID, schema.CoreJob.OrganizationID,
		schema.CoreJob.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query,
		j.ID, j.OrganizationID, j.Title, j.Description, j.Status,
	).Scan(&j.UpdatedAt)
	return dberr.Wrap(err, "update_job")
}

func (repository *PostgresRepository) DeleteJob(ctx context.Context, organizationID, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.CoreJob.Table, schema.CoreJob.ID, schema.CoreJob.OrganizationID,
	)

	cmd, err := repository.db.Exec(ctx, query, id, organizationID)
	if err != nil {
		return dberr.Wrap(err, "delete_job")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) ListQuestions(ctx context.Context, organizationID, jobID string) ([]*Question, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = $2
		ORDER BY %s ASC
	`,
		schema.CoreJobQuestion.ID, schema.CoreJobQuestion.OrganizationID, schema.CoreJobQuestion.JobID,
		schema.CoreJobQuestion.Prompt, schema.CoreJobQuestion.Kind, schema.CoreJobQuestion.Position,
		schema.CoreJobQuestion.CreatedAt,
		schema.CoreJobQuestion.Table,
		schema.CoreJobQuestion.JobID, schema.CoreJobQuestion.OrganizationID,
		schema.CoreJobQuestion.Position,
	)

	rows, err := repository.db.Query(ctx, query, jobID, organizationID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_questions")
	}
	defer rows.Close()

	var questions []*Question
	for rows.Next() {
		q := &Question{}
		if err := rows.Scan(
			&q.ID, &q.OrganizationID, &q.JobID, &q.Prompt,
			&q.Kind, &q.Position, &q.CreatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_question")
		}
		questions = append(questions, q)
	}

	return questions, nil
}

func (repository *PostgresRepository) CreateQuestion(ctx context.Context, q *Question) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING %s
	`,
		schema.CoreJobQuestion.Table, schema.CoreJobQuestion.ID, schema.CoreJobQuestion.OrganizationID,
		schema.CoreJobQuestion.JobID, schema.CoreJobQuestion.Prompt, schema.CoreJobQuestion.Kind,
		schema.CoreJobQuestion.Position, schema.CoreJobQuestion.CreatedAt,
		schema.CoreJobQuestion.CreatedAt,
	)

	err := repository.db.QueryRow(ctx, query,
		q.ID, q.OrganizationID, q.JobID, q.Prompt, q.Kind, q.Position,
	).Scan(&q.CreatedAt)
	return dberr.Wrap(err, "create_question")
}

func (repository *PostgresRepository) DeleteQuestion(ctx context.Context, organizationID, jobID, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2 AND %s = $3`,
		schema.CoreJobQuestion.Table, schema.CoreJobQuestion.ID,
		schema.CoreJobQuestion.JobID, schema.CoreJobQuestion.OrganizationID,
	)

	cmd, err := repository.db.Exec(ctx, query, id, jobID, organizationID)
	if err != nil {
		return dberr.Wrap(err, "delete_question")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
