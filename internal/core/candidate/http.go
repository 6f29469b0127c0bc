package candidate

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hirevine/hirevine/internal/platform/middleware"
	requestutil "github.com/hirevine/hirevine/internal/platform/request"
	"github.com/hirevine/hirevine/internal/platform/respond"
	"github.com/hirevine/hirevine/internal/platform/validate"
	"github.com/hirevine/hirevine/pkg/pagination"
)

// Handler implements candidate HTTP endpoints. All routes require an active
// organization; the organization id flows from the session, never the URL.
type Handler struct {
	candidateService *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{candidateService: service}
}

// Routes returns a [chi.Router] for candidate management.
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

type candidateRequest struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	_, organizationID, err := requestutil.RequiredOrganization(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)
	filter := Filter{Query: request.URL.Query().Get("q")}

	candidates, total, err := handler.candidateService.ListCandidates(
		request.Context(), organizationID, filter, params.Limit, params.Offset(),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, candidates, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	_, organizationID, err := requestutil.RequiredOrganization(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	c, err := handler.candidateService.GetCandidate(request.Context(), organizationID, requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, c)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	_, organizationID, err := requestutil.RequiredOrganization(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input candidateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	c, err := handler.candidateService.CreateCandidate(request.Context(), organizationID, CreateInput{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, c)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	_, organizationID, err := requestutil.RequiredOrganization(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input candidateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	c, err := handler.candidateService.UpdateCandidate(
		request.Context(), organizationID, requestutil.ID(request, "id"),
		CreateInput{
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Email:     input.Email,
			Phone:     input.Phone,
		},
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, c)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	_, organizationID, err := requestutil.RequiredOrganization(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.candidateService.DeleteCandidate(request.Context(), organizationID, requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
