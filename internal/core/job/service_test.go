package job

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirevine/hirevine/internal/platform/apperr"
	"github.com/hirevine/hirevine/internal/platform/dberr"
)

const (
	orgA = "0192a1b2-0000-7000-8000-00000000000a"
	orgB = "0192a1b2-0000-7000-8000-00000000000b"
)

type fakeRepo struct {
	jobs      map[string]*Job
	questions map[string]*Question
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{jobs: map[string]*Job{}, questions: map[string]*Question{}}
}

func (f *fakeRepo) ListJobs(_ context.Context, organizationID string, _ Filter, _, _ int) ([]*Job, int, error) {
	var result []*Job
	for _, j := range f.jobs {
		if j.OrganizationID == organizationID {
			result = append(result, j)
		}
	}
	return result, len(result), nil
}

func (f *fakeRepo) GetJob(_ context.Context, organizationID, id string) (*Job, error) {
	j, ok := f.jobs[id]
	if !ok || j.OrganizationID != organizationID {
		return nil, dberr.ErrNotFound
	}
	return j, nil
}

func (f *fakeRepo) CreateJob(_ context.Context, j *Job) error {
	f.jobs[j.ID] = j
	return nil
}

func (f *fakeRepo) UpdateJob(_ context.Context, j *Job) error {
	existing, ok := f.jobs[j.ID]
	if !ok || existing.OrganizationID != j.OrganizationID {
		return dberr.ErrNotFound
	}
	f.jobs[j.ID] = j
	return nil
}

func (f *fakeRepo) DeleteJob(_ context.Context, organizationID, id string) error {
	j, ok := f.jobs[id]
	if !ok || j.OrganizationID != organizationID {
		return dberr.ErrNotFound
	}
	delete(f.jobs, id)
	return nil
}

func (f *fakeRepo) ListQuestions(_ context.Context, organizationID, jobID string) ([]*Question, error) {
	var result []*Question
	for _, q := range f.questions {
		if q.OrganizationID == organizationID && q.JobID == jobID {
			result = append(result, q)
		}
	}
	return result, nil
}

func (f *fakeRepo) CreateQuestion(_ context.Context, q *Question) error {
	f.questions[q.ID] = q
	return nil
}

func (f *fakeRepo) DeleteQuestion(_ context.Context, organizationID, jobID, id string) error {
	q, ok := f.questions[id]
	if !ok || q.OrganizationID != organizationID || q.JobID != jobID {
		return dberr.ErrNotFound
	}
	delete(f.questions, id)
	return nil
}

func newTestService() (*Service, *fakeRepo) {
	repo := newFakeRepo()
	return NewService(repo, slog.Default()), repo
}

func TestCreateJobDefaultsToDraft(t *testing.T) {
	service, _ := newTestService()

	j, err := service.CreateJob(context.Background(), orgA, CreateInput{Title: "Backend Engineer"})
	require.NoError(t, err)
	assert.Equal(t, StatusDraft, j.Status)
}

func TestCreateJobRejectsUnknownStatus(t *testing.T) {
	service, _ := newTestService()

	_, err := service.CreateJob(context.Background(), orgA, CreateInput{
		Title: "Backend Engineer", Status: "archived",
	})
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestCrossTenantJobIsNotFound(t *testing.T) {
	service, _ := newTestService()

	j, err := service.CreateJob(context.Background(), orgA, CreateInput{Title: "Backend Engineer", Status: StatusOpen})
	require.NoError(t, err)

	_, err = service.GetJob(context.Background(), orgB, j.ID)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.HTTPStatus)

	err = service.DeleteJob(context.Background(), orgB, j.ID)
	appErr = apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.HTTPStatus)
}

func TestQuestionsRequireOwnedJob(t *testing.T) {
	service, _ := newTestService()

	j, err := service.CreateJob(context.Background(), orgA, CreateInput{Title: "Backend Engineer", Status: StatusOpen})
	require.NoError(t, err)

	q, err := service.CreateQuestion(context.Background(), orgA, j.ID, QuestionInput{
		Prompt: "Years of Go experience?", Kind: KindNumber, Position: 1,
	})
	require.NoError(t, err)

	// A foreign tenant cannot attach questions to the job, nor list them.
	_, err = service.CreateQuestion(context.Background(), orgB, j.ID, QuestionInput{
		Prompt: "Sneaky?", Kind: KindText,
	})
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.HTTPStatus)

	_, err = service.ListQuestions(context.Background(), orgB, j.ID)
	appErr = apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.HTTPStatus)

	questions, err := service.ListQuestions(context.Background(), orgA, j.ID)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, q.ID, questions[0].ID)
}

func TestCreateQuestionRejectsUnknownKind(t *testing.T) {
	service, _ := newTestService()

	j, err := service.CreateJob(context.Background(), orgA, CreateInput{Title: "Backend Engineer", Status: StatusOpen})
	require.NoError(t, err)

	_, err = service.CreateQuestion(context.Background(), orgA, j.ID, QuestionInput{
		Prompt: "Rate yourself", Kind: "stars",
	})
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}
