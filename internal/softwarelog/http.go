package softwarelog

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/wavecrate/wavecrate/internal/platform/middleware"
	"github.com/wavecrate/wavecrate/internal/platform/respond"
	"github.com/wavecrate/wavecrate/internal/platform/sec"
	"github.com/wavecrate/wavecrate/internal/platform/validate"
)

// Handler is a read-only ops surface; rows arrive through dblog, so there
// is no service layer between here and the store.
type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))
		admin.Get("/", handler.listEntries)
	})

	return router
}

func (handler *Handler) listEntries(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query()

	var since time.Time
	if raw := query.Get("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			respond.Error(writer, request, validate.RequiredError("since", "Must be an RFC 3339 timestamp"))
			return
		}
		since = parsed
	}

	limit := 100
	if raw := query.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 1000 {
			respond.Error(writer, request, validate.RequiredError("limit", "Must be an integer between 1 and 1000"))
			return
		}
		limit = parsed
	}

	entries, err := handler.repo.ListEntries(request.Context(), query.Get("tag"), since, limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, entries)
}
