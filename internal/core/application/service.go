/*
Package application tracks candidates moving through job pipelines.

Creating an application touches three tenant-scoped records (candidate, job,
application); both referenced records are verified against the acting
organization first, so an application can never bridge two tenants.
*/
package application

import (
	"context"
	"log/slog"

	"github.com/hirevine/hirevine/internal/core/candidate"
	"github.com/hirevine/hirevine/internal/core/job"
	"github.com/hirevine/hirevine/internal/platform/apperr"
	"github.com/hirevine/hirevine/internal/platform/validate"
	"github.com/hirevine/hirevine/pkg/uuidv7"
)

// CandidateDirectory is the slice of the candidate layer this service needs.
type CandidateDirectory interface {
	GetCandidate(ctx context.Context, organizationID, id string) (*candidate.Candidate, error)
}

// JobDirectory is the slice of the job layer this service needs.
type JobDirectory interface {
	GetJob(ctx context.Context, organizationID, id string) (*job.Job, error)
}

type Service struct {
	repo       Repository
	candidates CandidateDirectory
	jobs       JobDirectory
	logger     *slog.Logger
}

func NewService(repo Repository, candidates CandidateDirectory, jobs JobDirectory, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		candidates: candidates,
		jobs:       jobs,
		logger:     logger,
	}
}

// CreateInput holds the fields accepted when creating an application.
type CreateInput struct {
	CandidateID string
	JobID       string
	Notes       *string
}

// UpdateInput holds the fields accepted when moving an application through
// the pipeline.
type UpdateInput struct {
	Status string
	Notes  *string
}

func (service *Service) ListApplications(ctx context.Context, organizationID string, filter Filter, limit, offset int) ([]*Application, int, error) {
	return service.repo.ListApplications(ctx, organizationID, filter, limit, offset)
}

func (service *Service) GetApplication(ctx context.Context, organizationID, id string) (*Application, error) {
	return service.repo.GetApplication(ctx, organizationID, id)
}

/*
CreateApplication files a candidate against a job.

Both the candidate and the job must belong to the acting organization; a
foreign reference surfaces as 404. Closed jobs reject new applications. A
duplicate (same candidate, same job) surfaces as 409 via the unique index.
*/
func (service *Service) CreateApplication(ctx context.Context, organizationID string, input CreateInput) (*Application, error) {
	validator := &validate.Validator{}
	validator.Required(FieldCandidateID, input.CandidateID).UUID(FieldCandidateID, input.CandidateID).
		Required(FieldJobID, input.JobID).UUID(FieldJobID, input.JobID)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if _, err := service.candidates.GetCandidate(ctx, organizationID, input.CandidateID); err != nil {
		return nil, err
	}

	j, err := service.jobs.GetJob(ctx, organizationID, input.JobID)
	if err != nil {
		return nil, err
	}
	if j.Status == job.StatusClosed {
		return nil, apperr.Unprocessable("This job is closed and no longer accepts applications")
	}

	a := &Application{
		ID:             uuidv7.New(),
		OrganizationID: organizationID,
		CandidateID:    input.CandidateID,
		JobID:          input.JobID,
		Status:         StatusApplied,
		Notes:          input.Notes,
	}

	if err := service.repo.CreateApplication(ctx, a); err != nil {
		return nil, err
	}

	service.logger.Info("application_created",
		slog.String("application_id", a.ID),
		slog.String("job_id", a.JobID),
		slog.String("organization_id", organizationID),
	)
	return a, nil
}

func (service *Service) UpdateApplication(ctx context.Context, organizationID, id string, input UpdateInput) (*Application, error) {
	validator := &validate.Validator{}
	validator.Custom(FieldStatus, !StatusValid(input.Status), "Unknown application status")
	if err := validator.Err(); err != nil {
		return nil, err
	}

	existing, err := service.repo.GetApplication(ctx, organizationID, id)
	if err != nil {
		return nil, err
	}

	existing.Status = input.Status
	if input.Notes != nil {
		existing.Notes = input.Notes
	}

	if err := service.repo.UpdateApplication(ctx, existing); err != nil {
		return nil, err
	}

	service.logger.Info("application_updated",
		slog.String("application_id", id),
		slog.String("status", input.Status),
	)
	return existing, nil
}

func (service *Service) DeleteApplication(ctx context.Context, organizationID, id string) error {
	if err := service.repo.DeleteApplication(ctx, organizationID, id); err != nil {
		return err
	}

	service.logger.Warn("application_deleted",
		slog.String("application_id", id),
		slog.String("organization_id", organizationID),
	)
	return nil
}
