package application

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirevine/hirevine/internal/core/candidate"
	"github.com/hirevine/hirevine/internal/core/job"
	"github.com/hirevine/hirevine/internal/platform/apperr"
	"github.com/hirevine/hirevine/internal/platform/dberr"
)

const (
	orgA = "0192a1b2-0000-7000-8000-00000000000a"
	orgB = "0192a1b2-0000-7000-8000-00000000000b"

	candidateID = "0192a1b2-0000-7000-8000-0000000000c1"
	jobID       = "0192a1b2-0000-7000-8000-0000000000d1"
)

type fakeRepo struct {
	applications map[string]*Application
}

func (f *fakeRepo) ListApplications(_ context.Context, organizationID string, _ Filter, _, _ int) ([]*Application, int, error) {
	var result []*Application
	for _, a := range f.applications {
		if a.OrganizationID == organizationID {
			result = append(result, a)
		}
	}
	return result, len(result), nil
}

func (f *fakeRepo) GetApplication(_ context.Context, organizationID, id string) (*Application, error) {
	a, ok := f.applications[id]
	if !ok || a.OrganizationID != organizationID {
		return nil, dberr.ErrNotFound
	}
	return a, nil
}

func (f *fakeRepo) CreateApplication(_ context.Context, a *Application) error {
	for _, existing := range f.applications {
		if existing.OrganizationID == a.OrganizationID &&
			existing.CandidateID == a.CandidateID && existing.JobID == a.JobID {
			return apperr.Conflict("A record with these values already exists")
		}
	}
	f.applications[a.ID] = a
	return nil
}

func (f *fakeRepo) UpdateApplication(_ context.Context, a *Application) error {
	existing, ok := f.applications[a.ID]
	if !ok || existing.OrganizationID != a.OrganizationID {
		return dberr.ErrNotFound
	}
	f.applications[a.ID] = a
	return nil
}

func (f *fakeRepo) DeleteApplication(_ context.Context, organizationID, id string) error {
	a, ok := f.applications[id]
	if !ok || a.OrganizationID != organizationID {
		return dberr.ErrNotFound
	}
	delete(f.applications, id)
	return nil
}

type fakeCandidates struct {
	owned map[string]string // candidateID -> organizationID
}

func (f *fakeCandidates) GetCandidate(_ context.Context, organizationID, id string) (*candidate.Candidate, error) {
	if f.owned[id] != organizationID {
		return nil, dberr.ErrNotFound
	}
	return &candidate.Candidate{ID: id, OrganizationID: organizationID}, nil
}

type fakeJobs struct {
	jobs map[string]*job.Job
}

func (f *fakeJobs) GetJob(_ context.Context, organizationID, id string) (*job.Job, error) {
	j, ok := f.jobs[id]
	if !ok || j.OrganizationID != organizationID {
		return nil, dberr.ErrNotFound
	}
	return j, nil
}

func newTestService() (*Service, *fakeRepo, *fakeJobs) {
	repo := &fakeRepo{applications: map[string]*Application{}}
	candidates := &fakeCandidates{owned: map[string]string{candidateID: orgA}}
	jobs := &fakeJobs{jobs: map[string]*job.Job{
		jobID: {ID: jobID, OrganizationID: orgA, Status: job.StatusOpen},
	}}
	return NewService(repo, candidates, jobs, slog.Default()), repo, jobs
}

func validInput() CreateInput {
	return CreateInput{CandidateID: candidateID, JobID: jobID}
}

func TestCreateApplication(t *testing.T) {
	service, _, _ := newTestService()

	a, err := service.CreateApplication(context.Background(), orgA, validInput())
	require.NoError(t, err)
	assert.Equal(t, StatusApplied, a.Status)
	assert.Equal(t, orgA, a.OrganizationID)
}

func TestCreateApplicationForeignReferencesAreNotFound(t *testing.T) {
	service, repo, _ := newTestService()

	// The candidate and job belong to orgA; orgB cannot reference them.
	_, err := service.CreateApplication(context.Background(), orgB, validInput())
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.HTTPStatus)
	assert.Empty(t, repo.applications, "a failed admission leaves no record")
}

func TestDuplicateApplicationConflicts(t *testing.T) {
	service, _, _ := newTestService()

	_, err := service.CreateApplication(context.Background(), orgA, validInput())
	require.NoError(t, err)

	_, err = service.CreateApplication(context.Background(), orgA, validInput())
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 409, appErr.HTTPStatus)
}

func TestClosedJobRejectsApplications(t *testing.T) {
	service, _, jobs := newTestService()

	jobs.jobs[jobID].Status = job.StatusClosed

	_, err := service.CreateApplication(context.Background(), orgA, validInput())
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 422, appErr.HTTPStatus)
}

func TestUpdateApplicationStatus(t *testing.T) {
	service, _, _ := newTestService()

	a, err := service.CreateApplication(context.Background(), orgA, validInput())
	require.NoError(t, err)

	updated, err := service.UpdateApplication(context.Background(), orgA, a.ID, UpdateInput{Status: StatusInterview})
	require.NoError(t, err)
	assert.Equal(t, StatusInterview, updated.Status)

	_, err = service.UpdateApplication(context.Background(), orgA, a.ID, UpdateInput{Status: "ghosted"})
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)

	// Cross-tenant update is a 404 with no effect.
	_, err = service.UpdateApplication(context.Background(), orgB, a.ID, UpdateInput{Status: StatusRejected})
	appErr = apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.HTTPStatus)
}
