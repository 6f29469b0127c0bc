/*
Package candidate manages the people tracked in an organization's pipeline.

# Tenancy

Every operation takes the acting organization id from the session, never
from the payload. A candidate outside the acting organization is reported
as absent (404), identical to an id that does not exist.
*/
package candidate

import (
	"context"
	"log/slog"

	"github.com/hirevine/hirevine/internal/platform/validate"
	"github.com/hirevine/hirevine/pkg/uuidv7"
)

type Service struct {
	repo   Repository
	cache  DetailCache
	logger *slog.Logger
}

func NewService(repo Repository, cache DetailCache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// CreateInput holds the fields accepted when creating or updating a candidate.
type CreateInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     *string
}

func (service *Service) validateInput(input CreateInput) error {
	validator := &validate.Validator{}
	validator.Required(FieldFirstName, input.FirstName).MaxLen(FieldFirstName, input.FirstName, 100).
		Required(FieldLastName, input.LastName).MaxLen(FieldLastName, input.LastName, 100).
		Required(FieldEmail, input.Email).Email(FieldEmail, input.Email)
	return validator.Err()
}

func (service *Service) ListCandidates(ctx context.Context, organizationID string, filter Filter, limit, offset int) ([]*Candidate, int, error) {
	return service.repo.ListCandidates(ctx, organizationID, filter, limit, offset)
}

func (service *Service) GetCandidate(ctx context.Context, organizationID, id string) (*Candidate, error) {
	if cached, ok := service.cache.Get(ctx, organizationID, id); ok {
		return cached, nil
	}

	c, err := service.repo.GetCandidate(ctx, organizationID, id)
	if err != nil {
		return nil, err
	}

	service.cache.Set(ctx, organizationID, c)
	return c, nil
}

// CreateCandidate persists a new candidate. The per-organization unique
// index on email surfaces duplicates as a 409; the same email in another
// organization is unrelated and allowed.
func (service *Service) CreateCandidate(ctx context.Context, organizationID string, input CreateInput) (*Candidate, error) {
	if err := service.validateInput(input); err != nil {
		return nil, err
	}

	c := &Candidate{
		ID:             uuidv7.New(),
		OrganizationID: organizationID,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		Phone:          input.Phone,
	}

	if err := service.repo.CreateCandidate(ctx, c); err != nil {
		return nil, err
	}

	service.logger.Info("candidate_created",
		slog.String("candidate_id", c.ID),
		slog.String("organization_id", organizationID),
	)
	return c, nil
}

func (service *Service) UpdateCandidate(ctx context.Context, organizationID, id string, input CreateInput) (*Candidate, error) {
	if err := service.validateInput(input); err != nil {
		return nil, err
	}

	c := &Candidate{
		ID:             id,
		OrganizationID: organizationID,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		Phone:          input.Phone,
	}

	if err := service.repo.UpdateCandidate(ctx, c); err != nil {
		return nil, err
	}

	service.cache.Invalidate(ctx, organizationID, id)
	service.logger.Info("candidate_updated", slog.String("candidate_id", id))
	return c, nil
}

func (service *Service) DeleteCandidate(ctx context.Context, organizationID, id string) error {
	if err := service.repo.DeleteCandidate(ctx, organizationID, id); err != nil {
		return err
	}

	service.cache.Invalidate(ctx, organizationID, id)
	service.logger.Warn("candidate_deleted",
		slog.String("candidate_id", id),
		slog.String("organization_id", organizationID),
	)
	return nil
}

// InvalidateDetail drops the cached detail for a candidate. Called by the
// document layer after uploads and deletes, so a re-fetched detail reflects
// the current attachment set.
func (service *Service) InvalidateDetail(ctx context.Context, organizationID, candidateID string) {
	service.cache.Invalidate(ctx, organizationID, candidateID)
}
