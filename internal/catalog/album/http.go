package album

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wavecrate/wavecrate/internal/platform/middleware"
	requestutil "github.com/wavecrate/wavecrate/internal/platform/request"
	"github.com/wavecrate/wavecrate/internal/platform/respond"
	"github.com/wavecrate/wavecrate/internal/platform/sec"
	"github.com/wavecrate/wavecrate/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes is mounted under an artist ("/genres/{abbreviation}/artists/{number}/albums")
// and reads both parent URL params.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listAlbums)
	router.Get("/{letter}", handler.getAlbum)
	router.Get("/{letter}/reviews", handler.listReviews)
	router.Get("/{letter}/reviews/{djID}", handler.getReview)
	router.Get("/{letter}/problems", handler.listProblems)

	// Any authenticated DJ can annotate; the reviewer identity always
	// comes from the token, never the body.
	router.Group(func(dj chi.Router) {
		dj.Use(middleware.RequireAuth)
		dj.Post("/{letter}/reviews", handler.createReview)
		dj.Put("/{letter}/reviews", handler.updateReview)
		dj.Delete("/{letter}/reviews", handler.deleteReview)
		dj.Post("/{letter}/problems", handler.createProblem)
	})

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))
		admin.Post("/", handler.createAlbum)
		admin.Put("/{letter}", handler.updateAlbum)
		admin.Delete("/{letter}", handler.deleteAlbum)
		admin.Delete("/{letter}/problems/{djID}", handler.deleteProblem)
	})

	return router
}

// NewBin serves the station-wide new bin; mounted at the catalog root.
// The only paginated catalog listing.
func (handler *Handler) NewBin(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	albums, meta, err := handler.service.ListNewAlbums(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, albums, meta)
}

func (handler *Handler) albumKey(request *http.Request) (string, int, string, error) {
	genreAbbr := requestutil.Param(request, "abbreviation")
	number, err := requestutil.IntParam(request, "number")
	if err != nil {
		return "", 0, "", err
	}
	return genreAbbr, number, requestutil.Param(request, "letter"), nil
}

func (handler *Handler) listAlbums(writer http.ResponseWriter, request *http.Request) {
	genreAbbr := requestutil.Param(request, "abbreviation")
	number, err := requestutil.IntParam(request, "number")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	albums, err := handler.service.ListAlbums(request.Context(), genreAbbr, number)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, albums)
}

func (handler *Handler) getAlbum(writer http.ResponseWriter, request *http.Request) {
	genreAbbr, number, letter, err := handler.albumKey(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	album, err := handler.service.GetAlbum(request.Context(), genreAbbr, number, letter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, album)
}

func (handler *Handler) createAlbum(writer http.ResponseWriter, request *http.Request) {
	genreAbbr := requestutil.Param(request, "abbreviation")
	number, err := requestutil.IntParam(request, "number")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var album Album
	if err := requestutil.DecodeJSON(request, &album); err != nil {
		respond.Error(writer, request, err)
		return
	}
	album.GenreAbbr = genreAbbr
	album.ArtistNum = number

	if err := handler.service.CreateAlbum(request.Context(), &album); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, album)
}

func (handler *Handler) updateAlbum(writer http.ResponseWriter, request *http.Request) {
	genreAbbr, number, letter, err := handler.albumKey(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var album Album
	if err := requestutil.DecodeJSON(request, &album); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateAlbum(request.Context(), genreAbbr, number, letter, &album); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, album)
}

func (handler *Handler) deleteAlbum(writer http.ResponseWriter, request *http.Request) {
	genreAbbr, number, letter, err := handler.albumKey(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteAlbum(request.Context(), genreAbbr, number, letter); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) listReviews(writer http.ResponseWriter, request *http.Request) {
	genreAbbr, number, letter, err := handler.albumKey(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	reviews, err := handler.service.ListReviews(request.Context(), genreAbbr, number, letter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, reviews)
}

func (handler *Handler) getReview(writer http.ResponseWriter, request *http.Request) {
	genreAbbr, number, letter, err := handler.albumKey(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	review, err := handler.service.GetReview(request.Context(), genreAbbr, number, letter, requestutil.Param(request, "djID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, review)
}

func (handler *Handler) createReview(writer http.ResponseWriter, request *http.Request) {
	genreAbbr, number, letter, err := handler.albumKey(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	djID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var review Review
	if err := requestutil.DecodeJSON(request, &review); err != nil {
		respond.Error(writer, request, err)
		return
	}
	review.GenreAbbr = genreAbbr
	review.ArtistNum = number
	review.Letter = letter
	review.DJID = djID

	if err := handler.service.CreateReview(request.Context(), &review); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, review)
}

func (handler *Handler) updateReview(writer http.ResponseWriter, request *http.Request) {
	genreAbbr, number, letter, err := handler.albumKey(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	djID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var review Review
	if err := requestutil.DecodeJSON(request, &review); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateReview(request.Context(), genreAbbr, number, letter, djID, &review); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, review)
}

func (handler *Handler) deleteReview(writer http.ResponseWriter, request *http.Request) {
	genreAbbr, number, letter, err := handler.albumKey(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	djID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteReview(request.Context(), genreAbbr, number, letter, djID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) listProblems(writer http.ResponseWriter, request *http.Request) {
	genreAbbr, number, letter, err := handler.albumKey(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	problems, err := handler.service.ListProblems(request.Context(), genreAbbr, number, letter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, problems)
}

func (handler *Handler) createProblem(writer http.ResponseWriter, request *http.Request) {
	genreAbbr, number, letter, err := handler.albumKey(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	djID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var problem Problem
	if err := requestutil.DecodeJSON(request, &problem); err != nil {
		respond.Error(writer, request, err)
		return
	}
	problem.GenreAbbr = genreAbbr
	problem.ArtistNum = number
	problem.Letter = letter
	problem.DJID = djID

	if err := handler.service.CreateProblem(request.Context(), &problem); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, problem)
}

func (handler *Handler) deleteProblem(writer http.ResponseWriter, request *http.Request) {
	genreAbbr, number, letter, err := handler.albumKey(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteProblem(request.Context(), genreAbbr, number, letter, requestutil.Param(request, "djID")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
