package application

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hirevine/hirevine/internal/platform/middleware"
	requestutil "github.com/hirevine/hirevine/internal/platform/request"
	"github.com/hirevine/hirevine/internal/platform/respond"
	"github.com/hirevine/hirevine/internal/platform/validate"
	"github.com/hirevine/hirevine/pkg/pagination"
)

// Handler implements application pipeline HTTP endpoints.
type Handler struct {
	applicationService *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{applicationService: service}
}

// Routes returns a [chi.Router] for application management.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireOrganization)

	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Get("/{id}", handler.get)
	router.Patch("/{id}", handler.update)
	router.Delete("/{id}", handler.delete)

	return router
}

type createApplicationRequest struct {
	CandidateID string  `json:"candidate_id"`
	JobID       string  `json:"job_id"`
	Notes       *string `json:"notes"`
}

type updateApplicationRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes"`
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	_, organizationID, err := requestutil.RequiredOrganization(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)
	filter := Filter{
		CandidateID: request.URL.Query().Get("candidate_id"),
		JobID:       request.URL.Query().Get("job_id"),
		Status:      request.URL.Query().Get("status"),
	}

	applications, total, err := handler.applicationService.ListApplications(
		request.Context(), organizationID, filter, params.Limit, params.Offset(),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, applications, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	_, organizationID, err := requestutil.RequiredOrganization(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	a, err := handler.applicationService.GetApplication(request.Context(), organizationID, requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, a)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	_, organizationID, err := requestutil.RequiredOrganization(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createApplicationRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	a, err := handler.applicationService.CreateApplication(request.Context(), organizationID, CreateInput{
		CandidateID: input.CandidateID,
		JobID:       input.JobID,
		Notes:       input.Notes,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, a)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	_, organizationID, err := requestutil.RequiredOrganization(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateApplicationRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	a, err := handler.applicationService.UpdateApplication(
		request.Context(), organizationID, requestutil.ID(request, "id"),
		UpdateInput{Status: input.Status, Notes: input.Notes},
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, a)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	_, organizationID, err := requestutil.RequiredOrganization(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.applicationService.DeleteApplication(request.Context(), organizationID, requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
