// Copyright (c) 2026 Hirevine. All rights reserved.
// Author: dev@hirevine.io

package document

import (
	"context"
	"io"
	"log/slog"

	"github.com/hirevine/hirevine/internal/core/candidate"
	"github.com/hirevine/hirevine/internal/platform/apperr"
	"github.com/hirevine/hirevine/internal/platform/constants"
	"github.com/hirevine/hirevine/internal/platform/storage"
	"github.com/hirevine/hirevine/internal/platform/validate"
	"github.com/hirevine/hirevine/pkg/uuidv7"
)

// CandidateDirectory verifies that the target candidate belongs to the
// acting organization before any storage traffic happens.
type CandidateDirectory interface {
	GetCandidate(ctx context.Context, organizationID, id string) (*candidate.Candidate, error)
}

// DetailInvalidator drops the cached candidate detail after an upload or
// delete changes the attachment set.
type DetailInvalidator interface {
	InvalidateDetail(ctx context.Context, organizationID, candidateID string)
}

type Service struct {
	repo        Repository
	objects     storage.ObjectStore
	candidates  CandidateDirectory
	invalidator DetailInvalidator
	logger      *slog.Logger
}

func NewService(repo Repository, objects storage.ObjectStore, candidates CandidateDirectory, invalidator DetailInvalidator, logger *slog.Logger) *Service {
	return &Service{
		repo:        repo,
		objects:     objects,
		candidates:  candidates,
		invalidator: invalidator,
		logger:      logger,
	}
}

// UploadInput carries one multipart upload.
type UploadInput struct {
	CandidateID string
	DocType     string
	FileName    string
	MimeType    string
	SizeBytes   int64
	Body        io.Reader
}

// storageKey builds the object key. It embeds the organization id, so even a
// hypothetical key leak or store misconfiguration keeps tenants apart at the
// object level.
func storageKey(organizationID, candidateID string) string {
	return organizationID + "/" + candidateID + "/" + uuidv7.New()
}

/*
Upload validates, stores, and records a new candidate document.

Order of checks:
 1. doc type must be one of resume, cover_letter, other (422)
 2. the candidate must exist within the acting organization (404)
 3. the object is written to storage
 4. the metadata row is created

A storage failure aborts before any metadata exists. A metadata failure
after a successful object write orphans the object; see the package comment.
*/
func (service *Service) Upload(ctx context.Context, organizationID string, input UploadInput) (*Document, error) {
	typeCheck := &validate.Validator{}
	typeCheck.Required(FieldDocType, input.DocType).OneOf(FieldDocType, input.DocType, DocTypes...)
	if typeCheck.HasErrors() {
		return nil, apperr.Unprocessable("Unknown document type")
	}

	validator := &validate.Validator{}
	validator.Required(FieldFileName, input.FileName).MaxLen(FieldFileName, input.FileName, 255)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if input.SizeBytes <= 0 || input.SizeBytes > constants.MaxDocumentSize {
		return nil, apperr.Unprocessable("Document is empty or exceeds the size limit")
	}

	if _, err := service.candidates.GetCandidate(ctx, organizationID, input.CandidateID); err != nil {
		return nil, err
	}

	d := &Document{
		ID:             uuidv7.New(),
		OrganizationID: organizationID,
		CandidateID:    input.CandidateID,
		DocType:        input.DocType,
		FileName:       input.FileName,
		MimeType:       input.MimeType,
		SizeBytes:      input.SizeBytes,
		StorageKey:     storageKey(organizationID, input.CandidateID),
	}

	if err := service.objects.Put(ctx, d.StorageKey, d.MimeType, input.Body, d.SizeBytes); err != nil {
		return nil, err
	}

	if err := service.repo.CreateDocument(ctx, d); err != nil {
		// The object is now unreferenced. Nothing can reach it, so we log
		// the key for operational cleanup and surface the metadata error.
		service.logger.Error("document_object_orphaned",
			slog.String("storage_key", d.StorageKey),
			slog.String("organization_id", organizationID),
		)
		return nil, err
	}

	service.invalidator.InvalidateDetail(ctx, organizationID, input.CandidateID)
	service.logger.Info("document_uploaded",
		slog.String("document_id", d.ID),
		slog.String("candidate_id", input.CandidateID),
		slog.Int64("size_bytes", d.SizeBytes),
	)
	return d, nil
}

// List returns a candidate's documents. The candidate is resolved first, so
// a foreign candidate id yields 404, not an empty list.
func (service *Service) List(ctx context.Context, organizationID, candidateID string) ([]*Document, error) {
	if _, err := service.candidates.GetCandidate(ctx, organizationID, candidateID); err != nil {
		return nil, err
	}
	return service.repo.ListDocuments(ctx, organizationID, candidateID)
}

/*
Open fetches a document's metadata and opens its content for streaming.

The caller must close the returned reader. Cross-tenant ids are 404 before
any storage call is made.
*/
func (service *Service) Open(ctx context.Context, organizationID, id string) (*Document, io.ReadCloser, error) {
	d, err := service.repo.GetDocument(ctx, organizationID, id)
	if err != nil {
		return nil, nil, err
	}

	body, err := service.objects.Get(ctx, d.StorageKey)
	if err != nil {
		return nil, nil, err
	}
	return d, body, nil
}

/*
OpenPreview is Open restricted to inline-previewable documents.

Only PDF may be rendered inline; any other stored type is rejected with 415
before a single byte is fetched from storage. This keeps the browser from
sniffing content of attacker-supplied uploads in an inline context.
*/
func (service *Service) OpenPreview(ctx context.Context, organizationID, id string) (*Document, io.ReadCloser, error) {
	d, err := service.repo.GetDocument(ctx, organizationID, id)
	if err != nil {
		return nil, nil, err
	}

	if d.MimeType != constants.PreviewMimeType {
		return nil, nil, apperr.UnsupportedPreviewType(d.MimeType)
	}

	body, err := service.objects.Get(ctx, d.StorageKey)
	if err != nil {
		return nil, nil, err
	}
	return d, body, nil
}

/*
Delete removes a document's metadata, then its object.

The metadata row is the source of truth: once it is gone, the document is
gone for every client, so an object-delete failure afterwards only orphans
bytes. That failure is logged and swallowed.
*/
func (service *Service) Delete(ctx context.Context, organizationID, id string) error {
	d, err := service.repo.GetDocument(ctx, organizationID, id)
	if err != nil {
		return err
	}

	if err := service.repo.DeleteDocument(ctx, organizationID, id); err != nil {
		return err
	}

	if err := service.objects.Delete(ctx, d.StorageKey); err != nil {
		service.logger.Error("document_object_orphaned",
			slog.String("storage_key", d.StorageKey),
			slog.String("organization_id", organizationID),
		)
	}

	service.invalidator.InvalidateDetail(ctx, organizationID, d.CandidateID)
	service.logger.Warn("document_deleted",
		slog.String("document_id", id),
		slog.String("candidate_id", d.CandidateID),
	)
	return nil
}
