// Package job manages positions and their screening questions, scoped to
// the acting organization.
package job

import (
	"context"
	"log/slog"

	"github.com/hirevine/hirevine/internal/platform/validate"
	"github.com/hirevine/hirevine/pkg/uuidv7"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateInput holds the fields accepted when creating or updating a job.
type CreateInput struct {
	Title       string
	Description *string
	Status      string
}

func (service *Service) validateInput(input CreateInput) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).MaxLen(FieldTitle, input.Title, 200).
		Custom(FieldStatus, !StatusValid(input.Status), "Unknown job status")
	return validator.Err()
}

func (service *Service) ListJobs(ctx context.Context, organizationID string, filter Filter, limit, offset int) ([]*Job, int, error) {
	return service.repo.ListJobs(ctx, organizationID, filter, limit, offset)
}

func (service *Service) GetJob(ctx context.Context, organizationID, id string) (*Job, error) {
	return service.repo.GetJob(ctx, organizationID, id)
}

func (service *Service) CreateJob(ctx context.Context, organizationID string, input CreateInput) (*Job, error) {
	if input.Status == "" {
		input.Status = StatusDraft
	}
	if err := service.validateInput(input); err != nil {
		return nil, err
	}

	j := &Job{
		ID:             uuidv7.New(),
		OrganizationID: organizationID,
		Title:          input.Title,
		Description:    input.Description,
		Status:         input.Status,
	}

	if err := service.repo.CreateJob(ctx, j); err != nil {
		return nil, err
	}

	service.logger.Info("job_created",
		slog.String("job_id", j.ID),
		slog.String("organization_id", organizationID),
	)
	return j, nil
}

func (service *Service) UpdateJob(ctx context.Context, organizationID, id string, input CreateInput) (*Job, error) {
	if err := service.validateInput(input); err != nil {
		return nil, err
	}

	j := &Job{
		ID:             id,
		OrganizationID: organizationID,
		Title:          input.Title,
		Description:    input.Description,
		Status:         input.Status,
	}

	if err := service.repo.UpdateJob(ctx, j); err != nil {
		return nil, err
	}

	service.logger.Info("job_updated", slog.String("job_id", id))
	return j, nil
}

func (service *Service) DeleteJob(ctx context.Context, organizationID, id string) error {
	if err := service.repo.DeleteJob(ctx, organizationID, id); err != nil {
		return err
	}

	service.logger.Warn("job_deleted",
		slog.String("job_id", id),
		slog.String("organization_id", organizationID),
	)
	return nil
}

// # Screening Questions

// QuestionInput holds the fields accepted when attaching a question to a job.
type QuestionInput struct {
	Prompt   string
	Kind     string
	Position int
}

// ListQuestions returns a job's screening questions, in display order. The
// job is fetched first so a foreign job id yields a 404, not an empty list.
func (service *Service) ListQuestions(ctx context.Context, organizationID, jobID string) ([]*Question, error) {
	if _, err := service.repo.GetJob(ctx, organizationID, jobID); err != nil {
		return nil, err
	}
	return service.repo.ListQuestions(ctx, organizationID, jobID)
}

func (service *Service) CreateQuestion(ctx context.Context, organizationID, jobID string, input QuestionInput) (*Question, error) {
	validator := &validate.Validator{}
	validator.Required(FieldPrompt, input.Prompt).MaxLen(FieldPrompt, input.Prompt, 500).
		Custom(FieldKind, !KindValid(input.Kind), "Unknown question kind")
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if _, err := service.repo.GetJob(ctx, organizationID, jobID); err != nil {
		return nil, err
	}

	q := &Question{
		ID:             uuidv7.New(),
		OrganizationID: organizationID,
		JobID:          jobID,
		Prompt:         input.Prompt,
		Kind:           input.Kind,
		Position:       input.Position,
	}

	if err := service.repo.CreateQuestion(ctx, q); err != nil {
		return nil, err
	}

	service.logger.Info("job_question_created",
		slog.String("job_id", jobID),
		slog.String("question_id", q.ID),
	)
	return q, nil
}

func (service *Service) DeleteQuestion(ctx context.Context, organizationID, jobID, id string) error {
	return service.repo.DeleteQuestion(ctx, organizationID, jobID, id)
}
