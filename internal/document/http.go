// Copyright (c) 2026 Hirevine. All rights reserved.
// Author: dev@hirevine.io

package document

import (
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hirevine/hirevine/internal/platform/apperr"
	"github.com/hirevine/hirevine/internal/platform/constants"
	"github.com/hirevine/hirevine/internal/platform/ctxutil"
	"github.com/hirevine/hirevine/internal/platform/middleware"
	requestutil "github.com/hirevine/hirevine/internal/platform/request"
	"github.com/hirevine/hirevine/internal/platform/respond"
)

// Handler implements the document proxy HTTP endpoints.
//
// # Endpoints
//   - POST   /candidates/{candidateID}/documents : multipart upload
//   - GET    /candidates/{candidateID}/documents : metadata listing
//   - GET    /documents/{id}/download            : streamed attachment
//   - GET    /documents/{id}/preview             : inline stream (PDF only)
//   - DELETE /documents/{id}                      : removal
type Handler struct {
	documentService *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{documentService: service}
}

// CandidateRoutes returns the routes nested under a candidate.
func (handler *Handler) CandidateRoutes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireOrganization)

	router.Post("/", handler.upload)
	router.Get("/", handler.list)

	return router
}

// Routes returns the routes addressed by document id.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireOrganization)

	router.Get("/{id}/download", handler.download)
	router.Get("/{id}/preview", handler.preview)
	router.Delete("/{id}", handler.delete)

	return router
}

/*
Upload accepts a multipart form with a binary "file" part and a "doc_type"
field.

POST /api/v1/candidates/{candidateID}/documents

Response:
  - 201: Document: Metadata record (no storage key)
  - 404: ErrNotFound: Candidate absent or cross-tenant
  - 422: UNPROCESSABLE: Unknown document type or oversized file
  - 502: UPSTREAM_FAILURE: Object store unreachable
*/
func (handler *Handler) upload(writer http.ResponseWriter, request *http.Request) {
	_, organizationID, err := requestutil.RequiredOrganization(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	request.Body = http.MaxBytesReader(writer, request.Body, constants.MaxDocumentSize)
	if err := request.ParseMultipartForm(constants.MaxDocumentSize); err != nil {
		respond.Error(writer, request, apperr.Unprocessable("Document is empty or exceeds the size limit"))
		return
	}

	file, header, err := request.FormFile(FieldFile)
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Missing file part"))
		return
	}
	defer file.Close()

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	d, err := handler.documentService.Upload(request.Context(), organizationID, UploadInput{
		CandidateID: requestutil.ID(request, "candidateID"),
		DocType:     request.FormValue(FieldDocType),
		FileName:    header.Filename,
		MimeType:    mimeType,
		SizeBytes:   header.Size,
		Body:        file,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, d)
}

/*
List returns a candidate's document metadata.

GET /api/v1/candidates/{candidateID}/documents
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	_, organizationID, err := requestutil.RequiredOrganization(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	documents, err := handler.documentService.List(request.Context(), organizationID, requestutil.ID(request, "candidateID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, documents)
}

/*
Download streams a document as an attachment.

GET /api/v1/documents/{id}/download

The bytes flow server-side from the object store to the client; no
redirect, no presigned URL.
*/
func (handler *Handler) download(writer http.ResponseWriter, request *http.Request) {
	_, organizationID, err := requestutil.RequiredOrganization(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	d, body, err := handler.documentService.Open(request.Context(), organizationID, requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	defer body.Close()

	handler.stream(writer, request, d, body, "attachment")
}

/*
Preview streams a PDF document inline.

GET /api/v1/documents/{id}/preview

Response:
  - 200: application/pdf stream
  - 404: ErrNotFound: Absent or cross-tenant
  - 415: UNSUPPORTED_PREVIEW_TYPE: Stored document is not a PDF
*/
func (handler *Handler) preview(writer http.ResponseWriter, request *http.Request) {
	_, organizationID, err := requestutil.RequiredOrganization(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	d, body, err := handler.documentService.OpenPreview(request.Context(), organizationID, requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	defer body.Close()

	handler.stream(writer, request, d, body, "inline")
}

/*
Delete removes a document.

DELETE /api/v1/documents/{id}

Response:
  - 204: No Content
  - 404: ErrNotFound: Absent or cross-tenant
*/
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	_, organizationID, err := requestutil.RequiredOrganization(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.documentService.Delete(request.Context(), organizationID, requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// stream writes headers and copies the document body to the client.
// disposition is "attachment" or "inline".
func (handler *Handler) stream(writer http.ResponseWriter, request *http.Request, d *Document, body io.Reader, disposition string) {
	writer.Header().Set("Content-Type", d.MimeType)
	writer.Header().Set("Content-Length", fmt.Sprintf("%d", d.SizeBytes))
	writer.Header().Set("Content-Disposition", mime.FormatMediaType(disposition, map[string]string{
		"filename": d.FileName,
	}))

	if _, err := io.Copy(writer, body); err != nil {
		// Headers are gone; all we can do is log the interrupted transfer.
		logger := ctxutil.GetLogger(request.Context())
		logger.Warn("document_stream_interrupted", "document_id", d.ID, "error", err.Error())
	}
}
