package job

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hirevine/hirevine/internal/platform/middleware"
	requestutil "github.com/hirevine/hirevine/internal/platform/request"
	"github.com/hirevine/hirevine/internal/platform/respond"
	"github.com/hirevine/hirevine/internal/platform/validate"
	"github.com/hirevine/hirevine/pkg/pagination"
)

// Handler implements job and screening question HTTP endpoints.
type Handler struct {
	jobService *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{jobService: service}
}

// Routes returns a [chi.Router] for job management.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireOrganization)

	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Get("/{id}", handler.get)
	router.Patch("/{id}", handler.update)
	router.Delete("/{id}", handler.delete)

	router.Get("/{id}/questions", handler.listQuestions)
	router.Post("/{id}/questions", handler.createQuestion)
	router.Delete("/{id}/questions/{questionID}", handler.deleteQuestion)

	return router
}

type jobRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
}

type questionRequest struct {
	Prompt   string `json:"prompt"`
	Kind     string `json:"kind"`
	Position int    `json:"position"`
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	_, organizationID, err := requestutil.RequiredOrganization(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)
	filter := Filter{
		Status: request.URL.Query().Get("status"),
		Query:  request.URL.Query().Get("q"),
	}

	jobs, total, err := handler.jobService.ListJobs(
		request.Context(), organizationID, filter, params.Limit, params.Offset(),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, jobs, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	_, organizationID, err := requestutil.RequiredOrganization(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	j, err := handler.jobService.GetJob(request.Context(), organizationID, requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, j)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	_, organizationID, err := requestutil.RequiredOrganization(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input jobRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	j, err := handler.jobService.CreateJob(request.Context(), organizationID, CreateInput{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, j)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	_, organizationID, err := requestutil.RequiredOrganization(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input jobRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	j, err := handler.jobService.UpdateJob(
		request.Context(), organizationID, requestutil.ID(request, "id"),
		CreateInput{
			Title:       input.Title,
			Description: input.Description,
			Status:      input.Status,
		},
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, j)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	_, organizationID, err := requestutil.RequiredOrganization(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.jobService.DeleteJob(request.Context(), organizationID, requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

func (handler *Handler) listQuestions(writer http.ResponseWriter, request *http.Request) {
	_, organizationID, err := requestutil.RequiredOrganization(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	questions, err := handler.jobService.ListQuestions(request.Context(), organizationID, requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, questions)
}

func (handler *Handler) createQuestion(writer http.ResponseWriter, request *http.Request) {
	_, organizationID, err := requestutil.RequiredOrganization(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input questionRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	q, err := handler.jobService.CreateQuestion(
		request.Context(), organizationID, requestutil.ID(request, "id"),
		QuestionInput{
			Prompt:   input.Prompt,
			Kind:     input.Kind,
			Position: input.Position,
		},
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, q)
}

func (handler *Handler) deleteQuestion(writer http.ResponseWriter, request *http.Request) {
	_, organizationID, err := requestutil.RequiredOrganization(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	err = handler.jobService.DeleteQuestion(
		request.Context(), organizationID,
		requestutil.ID(request, "id"), requestutil.ID(request, "questionID"),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
