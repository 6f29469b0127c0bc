package job

import "context"

// Repository abstracts job and screening question persistence, always
// filtered by the acting organization.
type Repository interface {
	ListJobs(ctx context.Context, organizationID string, f Filter, limit, offset int) ([]*Job, int, error)
	GetJob(ctx context.Context, organizationID, id string) (*Job, error)
	CreateJob(ctx context.Context, j *Job) error
	UpdateJob(ctx context.Context, j *Job) error
	DeleteJob(ctx context.Context, organizationID, id string) error

	ListQuestions(ctx context.Context, organizationID, jobID string) ([]*Question, error)
	CreateQuestion(ctx context.Context, q *Question) error
	DeleteQuestion(ctx context.Context, organizationID, jobID, id string) error
}
