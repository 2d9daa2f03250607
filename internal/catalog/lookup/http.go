package lookup

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/wavecrate/wavecrate/internal/platform/request"
	"github.com/wavecrate/wavecrate/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/{tag}", handler.resolve)
	return router
}

func (handler *Handler) resolve(writer http.ResponseWriter, request *http.Request) {
	result, err := handler.service.Resolve(request.Context(), requestutil.Param(request, "tag"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}
