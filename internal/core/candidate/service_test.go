package candidate

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
	candidates map[string]*Candidate
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{candidates: map[string]*Candidate{}}
}

func (f *fakeRepo) ListCandidates(_ context.Context, organizationID string, _ Filter, _, _ int) ([]*Candidate, int, error) {
	var result []*Candidate
	for _, c := range f.candidates {
		if c.OrganizationID == organizationID {
			result = append(result, c)
		}
	}
	return result, len(result), nil
}

func (f *fakeRepo) GetCandidate(_ context.Context, organizationID, id string) (*Candidate, error) {
	c, ok := f.candidates[id]
	if !ok || c.OrganizationID != organizationID {
		return nil, dberr.ErrNotFound
	}
	return c, nil
}

func (f *fakeRepo) CreateCandidate(_ context.Context, c *Candidate) error {
	for _, existing := range f.candidates {
		if existing.OrganizationID == c.OrganizationID && existing.Email == c.Email {
			return apperr.Conflict("A record with these values already exists")
		}
	}
	f.candidates[c.ID] = c
	return nil
}

func (f *fakeRepo) UpdateCandidate(_ context.Context, c *Candidate) error {
	existing, ok := f.candidates[c.ID]
	if !ok || existing.OrganizationID != c.OrganizationID {
		return dberr.ErrNotFound
	}
	f.candidates[c.ID] = c
	return nil
}

func (f *fakeRepo) DeleteCandidate(_ context.Context, organizationID, id string) error {
	c, ok := f.candidates[id]
	if !ok || c.OrganizationID != organizationID {
		return dberr.ErrNotFound
	}
	delete(f.candidates, id)
	return nil
}

// fakeCache counts invalidations so tests can assert the cache contract.
type fakeCache struct {
	entries       map[string]*Candidate
	invalidations []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]*Candidate{}}
}

func (f *fakeCache) key(organizationID, candidateID string) string {
	return organizationID + ":" + candidateID
}

func (f *fakeCache) Get(_ context.Context, organizationID, candidateID string) (*Candidate, bool) {
	c, ok := f.entries[f.key(organizationID, candidateID)]
	return c, ok
}

func (f *fakeCache) Set(_ context.Context, organizationID string, c *Candidate) {
	f.entries[f.key(organizationID, c.ID)] = c
}

func (f *fakeCache) Invalidate(_ context.Context, organizationID, candidateID string) {
	key := f.key(organizationID, candidateID)
	delete(f.entries, key)
	f.invalidations = append(f.invalidations, key)
}

func newTestService() (*Service, *fakeRepo, *fakeCache) {
	repo := newFakeRepo()
	cache := newFakeCache()
	return NewService(repo, cache, slog.Default()), repo, cache
}

func validInput(email string) CreateInput {
	return CreateInput{FirstName: "Ada", LastName: "Lovelace", Email: email}
}

func TestCrossTenantReadIsNotFound(t *testing.T) {
	service, _, _ := newTestService()

	created, err := service.CreateCandidate(context.Background(), orgA, validInput("ada@example.com"))
	require.NoError(t, err)

	// Same id, different organization: indistinguishable from absence.
	_, err = service.GetCandidate(context.Background(), orgB, created.ID)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.HTTPStatus)

	got, err := service.GetCandidate(context.Background(), orgA, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestCrossTenantMutationsAreNotFound(t *testing.T) {
	service, repo, _ := newTestService()

	created, err := service.CreateCandidate(context.Background(), orgA, validInput("ada@example.com"))
	require.NoError(t, err)

	_, err = service.UpdateCandidate(context.Background(), orgB, created.ID, validInput("new@example.com"))
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.HTTPStatus)

	err = service.DeleteCandidate(context.Background(), orgB, created.ID)
	appErr = apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.HTTPStatus)

	// The foreign mutation attempts changed nothing.
	assert.Contains(t, repo.candidates, created.ID)
	assert.Equal(t, "ada@example.com", repo.candidates[created.ID].Email)
}

func TestEmailUniquePerOrganizationOnly(t *testing.T) {
	service, _, _ := newTestService()

	_, err := service.CreateCandidate(context.Background(), orgA, validInput("ada@example.com"))
	require.NoError(t, err)

	// Duplicate within the same organization: 409.
	_, err = service.CreateCandidate(context.Background(), orgA, validInput("ada@example.com"))
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 409, appErr.HTTPStatus)

	// Same email in another organization is a different person record.
	_, err = service.CreateCandidate(context.Background(), orgB, validInput("ada@example.com"))
	assert.NoError(t, err)
}

func TestDetailCacheRoundTripAndInvalidation(t *testing.T) {
	service, repo, cache := newTestService()

	created, err := service.CreateCandidate(context.Background(), orgA, validInput("ada@example.com"))
	require.NoError(t, err)

	// First read populates the cache; a second read hits it.
	_, err = service.GetCandidate(context.Background(), orgA, created.ID)
	require.NoError(t, err)
	_, cached := cache.Get(context.Background(), orgA, created.ID)
	assert.True(t, cached)

	// Mutations drop the cached detail.
	_, err = service.UpdateCandidate(context.Background(), orgA, created.ID, validInput("ada2@example.com"))
	require.NoError(t, err)
	_, cached = cache.Get(context.Background(), orgA, created.ID)
	assert.False(t, cached)

	require.NoError(t, service.DeleteCandidate(context.Background(), orgA, created.ID))
	assert.NotContains(t, repo.candidates, created.ID)
}

func TestCachedDetailScopedByOrganization(t *testing.T) {
	service, _, _ := newTestService()

	created, err := service.CreateCandidate(context.Background(), orgA, validInput("ada@example.com"))
	require.NoError(t, err)

	_, err = service.GetCandidate(context.Background(), orgA, created.ID)
	require.NoError(t, err)

	// The warm cache must not answer for another tenant.
	_, err = service.GetCandidate(context.Background(), orgB, created.ID)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.HTTPStatus)
}

func TestCreateValidation(t *testing.T) {
	service, _, _ := newTestService()

	_, err := service.CreateCandidate(context.Background(), orgA, CreateInput{
		FirstName: "Ada", LastName: "Lovelace", Email: "not-an-email",
	})
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}
