package artist

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

	router.Get("/", handler.listArtists)
	router.Get("/{number}", handler.getArtist)
	router.Get("/{number}/next-letter", handler.nextAlbumLetter)

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))
		admin.Post("/", handler.createArtist)
		admin.Put("/{number}", handler.updateArtist)
		admin.Delete("/{number}", handler.deleteArtist)
	})

	return router
}

func (handler *Handler) listArtists(writer http.ResponseWriter, request *http.Request) {
	genreAbbr := requestutil.Param(request, "abbreviation")

	artists, err := handler.service.ListArtists(request.Context(), genreAbbr)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, artists)
}

func (handler *Handler) getArtist(writer http.ResponseWriter, request *http.Request) {
	genreAbbr := requestutil.Param(request, "abbreviation")
	number, err := requestutil.IntParam(request, "number")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	artist, err := handler.service.GetArtist(request.Context(), genreAbbr, number)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, artist)
}

func (handler *Handler) nextAlbumLetter(writer http.ResponseWriter, request *http.Request) {
	genreAbbr := requestutil.Param(request, "abbreviation")
	number, err := requestutil.IntParam(request, "number")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	letter, err := handler.service.NextAlbumLetter(request.Context(), genreAbbr, number)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]string{"next_letter": letter})
}

func (handler *Handler) createArtist(writer http.ResponseWriter, request *http.Request) {
	var artist Artist
	if err := requestutil.DecodeJSON(request, &artist); err != nil {
		respond.Error(writer, request, err)
		return
	}
	artist.GenreAbbr = requestutil.Param(request, "abbreviation")

	if err := handler.service.CreateArtist(request.Context(), &artist); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, artist)
}

func (handler *Handler) updateArtist(writer http.ResponseWriter, request *http.Request) {
	genreAbbr := requestutil.Param(request, "abbreviation")
	number, err := requestutil.IntParam(request, "number")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var artist Artist
	if err := requestutil.DecodeJSON(request, &artist); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateArtist(request.Context(), genreAbbr, number, &artist); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, artist)
}

func (handler *Handler) deleteArtist(writer http.ResponseWriter, request *http.Request) {
	genreAbbr := requestutil.Param(request, "abbreviation")
	number, err := requestutil.IntParam(request, "number")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteArtist(request.Context(), genreAbbr, number); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
