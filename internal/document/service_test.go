// Copyright (c) 2026 Hirevine. All rights reserved.
// Author: dev@hirevine.io

package document

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirevine/hirevine/internal/core/candidate"
	"github.com/hirevine/hirevine/internal/platform/apperr"
	"github.com/hirevine/hirevine/internal/platform/dberr"
	"github.com/hirevine/hirevine/internal/platform/storage"
)

const (
	orgA = "0192a1b2-0000-7000-8000-00000000000a"
	orgB = "0192a1b2-0000-7000-8000-00000000000b"

	candidateID = "0192a1b2-0000-7000-8000-0000000000c1"
)

type fakeRepo struct {
	documents  map[string]*Document
	failCreate bool
}

func (f *fakeRepo) ListDocuments(_ context.Context, organizationID, candID string) ([]*Document, error) {
	var result []*Document
	for _, d := range f.documents {
		if d.OrganizationID == organizationID && d.CandidateID == candID {
			result = append(result, d)
		}
	}
	return result, nil
}

func (f *fakeRepo) GetDocument(_ context.Context, organizationID, id string) (*Document, error) {
	d, ok := f.documents[id]
	if !ok || d.OrganizationID != organizationID {
		return nil, dberr.ErrNotFound
	}
	return d, nil
}

func (f *fakeRepo) CreateDocument(_ context.Context, d *Document) error {
	if f.failCreate {
		return apperr.Internal(errors.New("insert failed"))
	}
	f.documents[d.ID] = d
	return nil
}

func (f *fakeRepo) DeleteDocument(_ context.Context, organizationID, id string) error {
	d, ok := f.documents[id]
	if !ok || d.OrganizationID != organizationID {
		return dberr.ErrNotFound
	}
	delete(f.documents, id)
	return nil
}

type fakeCandidates struct{}

func (fakeCandidates) GetCandidate(_ context.Context, organizationID, id string) (*candidate.Candidate, error) {
	if organizationID == orgA && id == candidateID {
		return &candidate.Candidate{ID: id, OrganizationID: organizationID}, nil
	}
	return nil, dberr.ErrNotFound
}

type fakeInvalidator struct {
	calls []string
}

func (f *fakeInvalidator) InvalidateDetail(_ context.Context, organizationID, candID string) {
	f.calls = append(f.calls, organizationID+":"+candID)
}

func newTestService() (*Service, *fakeRepo, *storage.MemoryStore, *fakeInvalidator) {
	repo := &fakeRepo{documents: map[string]*Document{}}
	objects := storage.NewMemoryStore()
	invalidator := &fakeInvalidator{}
	service := NewService(repo, objects, fakeCandidates{}, invalidator, slog.Default())
	return service, repo, objects, invalidator
}

func pdfUpload(content []byte) UploadInput {
	return UploadInput{
		CandidateID: candidateID,
		DocType:     TypeResume,
		FileName:    "resume.pdf",
		MimeType:    "application/pdf",
		SizeBytes:   int64(len(content)),
		Body:        bytes.NewReader(content),
	}
}

func TestUploadDownloadRoundTrip(t *testing.T) {
	service, _, _, invalidator := newTestService()

	content := []byte("%PDF-1.7 round trip payload")
	d, err := service.Upload(context.Background(), orgA, pdfUpload(content))
	require.NoError(t, err)
	assert.NotEmpty(t, d.ID)
	assert.Equal(t, int64(len(content)), d.SizeBytes)
	assert.Contains(t, invalidator.calls, orgA+":"+candidateID)

	got, body, err := service.Open(context.Background(), orgA, d.ID)
	require.NoError(t, err)
	defer body.Close()

	downloaded, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, content, downloaded, "stored and retrieved bytes must be identical")
	assert.Equal(t, "resume.pdf", got.FileName)
}

func TestUploadRejectsUnknownDocType(t *testing.T) {
	service, repo, objects, _ := newTestService()

	input := pdfUpload([]byte("data"))
	input.DocType = "passport"

	_, err := service.Upload(context.Background(), orgA, input)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 422, appErr.HTTPStatus)

	// Rejected before any side effect.
	assert.Empty(t, repo.documents)
	assert.Zero(t, objects.Len())
}

func TestUploadForeignCandidateIsNotFound(t *testing.T) {
	service, _, objects, _ := newTestService()

	_, err := service.Upload(context.Background(), orgB, pdfUpload([]byte("data")))
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.HTTPStatus)
	assert.Zero(t, objects.Len(), "no bytes reach storage for a foreign candidate")
}

func TestUploadMetadataFailureOrphansObjectInvisibly(t *testing.T) {
	service, repo, objects, _ := newTestService()
	repo.failCreate = true

	_, err := service.Upload(context.Background(), orgA, pdfUpload([]byte("data")))
	require.Error(t, err)

	// The object exists but nothing references it; listing shows nothing.
	assert.Equal(t, 1, objects.Len())
	documents, err := service.List(context.Background(), orgA, candidateID)
	require.NoError(t, err)
	assert.Empty(t, documents)
}

func TestPreviewPDFOnly(t *testing.T) {
	service, _, objects, _ := newTestService()

	input := pdfUpload([]byte("plain text"))
	input.DocType = TypeOther
	input.FileName = "notes.txt"
	input.MimeType = "text/plain"

	d, err := service.Upload(context.Background(), orgA, input)
	require.NoError(t, err)

	before := objects.Len()
	_, _, err = service.OpenPreview(context.Background(), orgA, d.ID)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 415, appErr.HTTPStatus)
	assert.Equal(t, "UNSUPPORTED_PREVIEW_TYPE", appErr.Code)
	assert.Equal(t, before, objects.Len())

	// A real PDF previews fine.
	pdf, err := service.Upload(context.Background(), orgA, pdfUpload([]byte("%PDF-1.7")))
	require.NoError(t, err)

	_, body, err := service.OpenPreview(context.Background(), orgA, pdf.ID)
	require.NoError(t, err)
	body.Close()
}

func TestCrossTenantDocumentAccessIsNotFound(t *testing.T) {
	service, _, _, _ := newTestService()

	d, err := service.Upload(context.Background(), orgA, pdfUpload([]byte("%PDF-1.7")))
	require.NoError(t, err)

	for _, attempt := range []func() error{
		func() error { _, _, err := service.Open(context.Background(), orgB, d.ID); return err },
		func() error { _, _, err := service.OpenPreview(context.Background(), orgB, d.ID); return err },
		func() error { return service.Delete(context.Background(), orgB, d.ID) },
	} {
		appErr := apperr.As(attempt())
		require.NotNil(t, appErr)
		assert.Equal(t, 404, appErr.HTTPStatus)
	}
}

func TestDeleteRemovesMetadataAndObject(t *testing.T) {
	service, repo, objects, invalidator := newTestService()

	d, err := service.Upload(context.Background(), orgA, pdfUpload([]byte("%PDF-1.7")))
	require.NoError(t, err)
	require.Equal(t, 1, objects.Len())

	invalidator.calls = nil
	require.NoError(t, service.Delete(context.Background(), orgA, d.ID))

	assert.Empty(t, repo.documents)
	assert.Zero(t, objects.Len())
	assert.Contains(t, invalidator.calls, orgA+":"+candidateID)

	err = service.Delete(context.Background(), orgA, d.ID)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.HTTPStatus)
}

func TestStorageKeyNeverSerialized(t *testing.T) {
	service, _, _, _ := newTestService()

	d, err := service.Upload(context.Background(), orgA, pdfUpload([]byte("%PDF-1.7")))
	require.NoError(t, err)
	require.NotEmpty(t, d.StorageKey)

	payload, err := json.Marshal(d)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), d.StorageKey)
	assert.NotContains(t, string(payload), "storage_key")
}
