package genre

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wavecrate/wavecrate/internal/platform/middleware"
	requestutil "github.com/wavecrate/wavecrate/internal/platform/request"
	"github.com/wavecrate/wavecrate/internal/platform/respond"
	"github.com/wavecrate/wavecrate/internal/platform/sec"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listGenres)
	router.Get("/{abbreviation}", handler.getGenre)

	// Catalog writes are music-director territory.
	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))
		admin.Post("/", handler.createGenre)
		admin.Put("/{abbreviation}", handler.updateGenre)
		admin.Delete("/{abbreviation}", handler.deleteGenre)
	})

	return router
}

func (handler *Handler) listGenres(writer http.ResponseWriter, request *http.Request) {
	genres, err := handler.service.ListGenres(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, genres)
}

func (handler *Handler) getGenre(writer http.ResponseWriter, request *http.Request) {
	abbreviation := requestutil.Param(request, "abbreviation")

	genre, err := handler.service.GetGenre(request.Context(), abbreviation)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, genre)
}

func (handler *Handler) createGenre(writer http.ResponseWriter, request *http.Request) {
	var genre Genre
	if err := requestutil.DecodeJSON(request, &genre); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateGenre(request.Context(), &genre); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, genre)
}

func (handler *Handler) updateGenre(writer http.ResponseWriter, request *http.Request) {
	abbreviation := requestutil.Param(request, "abbreviation")

	var genre Genre
	if err := requestutil.DecodeJSON(request, &genre); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateGenre(request.Context(), abbreviation, &genre); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, genre)
}

func (handler *Handler) deleteGenre(writer http.ResponseWriter, request *http.Request) {
	abbreviation := requestutil.Param(request, "abbreviation")

	if err := handler.service.DeleteGenre(request.Context(), abbreviation); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
