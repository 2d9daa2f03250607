package program

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/wavecrate/wavecrate/internal/platform/middleware"
	requestutil "github.com/wavecrate/wavecrate/internal/platform/request"
	"github.com/wavecrate/wavecrate/internal/platform/respond"
	"github.com/wavecrate/wavecrate/internal/platform/sec"
	"github.com/wavecrate/wavecrate/internal/platform/validate"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/formats", handler.listFormats)
	router.Get("/formats/{type}", handler.getFormat)
	router.Get("/formats/{type}/programs", handler.listPrograms)
	router.Get("/formats/{type}/log", handler.listLogEntries)
	router.Get("/slots", handler.listSlots)
	router.Get("/quarters", handler.listQuarters)

	// Log entries are written by whoever is on air; the rest of the
	// schedule is managed by station admins.
	router.Group(func(dj chi.Router) {
		dj.Use(middleware.RequireAuth)
		dj.Post("/formats/{type}/log", handler.createLogEntry)
	})

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))
		admin.Post("/formats", handler.createFormat)
		admin.Put("/formats/{type}", handler.updateFormat)
		admin.Delete("/formats/{type}", handler.deleteFormat)
		admin.Post("/formats/{type}/programs", handler.createProgram)
		admin.Delete("/formats/{type}/programs/{name}", handler.deleteProgram)
		admin.Post("/slots", handler.createSlot)
		admin.Delete("/slots/{id}", handler.deleteSlot)
		admin.Post("/quarters", handler.createQuarter)
		admin.Delete("/quarters/{id}", handler.deleteQuarter)
	})

	return router
}

func (handler *Handler) listFormats(writer http.ResponseWriter, request *http.Request) {
	formats, err := handler.service.ListFormats(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, formats)
}

func (handler *Handler) getFormat(writer http.ResponseWriter, request *http.Request) {
	format, err := handler.service.GetFormat(request.Context(), requestutil.Param(request, "type"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, format)
}

func (handler *Handler) createFormat(writer http.ResponseWriter, request *http.Request) {
	var format Format
	if err := requestutil.DecodeJSON(request, &format); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateFormat(request.Context(), &format); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, format)
}

func (handler *Handler) updateFormat(writer http.ResponseWriter, request *http.Request) {
	var format Format
	if err := requestutil.DecodeJSON(request, &format); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateFormat(request.Context(), requestutil.Param(request, "type"), &format); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, format)
}

func (handler *Handler) deleteFormat(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteFormat(request.Context(), requestutil.Param(request, "type")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) listPrograms(writer http.ResponseWriter, request *http.Request) {
	programs, err := handler.service.ListPrograms(request.Context(), requestutil.Param(request, "type"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, programs)
}

func (handler *Handler) createProgram(writer http.ResponseWriter, request *http.Request) {
	var p Program
	if err := requestutil.DecodeJSON(request, &p); err != nil {
		respond.Error(writer, request, err)
		return
	}
	p.FormatType = requestutil.Param(request, "type")

	if err := handler.service.CreateProgram(request.Context(), &p); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, p)
}

func (handler *Handler) deleteProgram(writer http.ResponseWriter, request *http.Request) {
	formatType := requestutil.Param(request, "type")
	name := requestutil.Param(request, "name")

	if err := handler.service.DeleteProgram(request.Context(), formatType, name); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) listSlots(writer http.ResponseWriter, request *http.Request) {
	slots, err := handler.service.ListSlots(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, slots)
}

func (handler *Handler) createSlot(writer http.ResponseWriter, request *http.Request) {
	var s Slot
	if err := requestutil.DecodeJSON(request, &s); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateSlot(request.Context(), &s); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, s)
}

func (handler *Handler) deleteSlot(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteSlot(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) listLogEntries(writer http.ResponseWriter, request *http.Request) {
	var since time.Time
	if raw := request.URL.Query().Get("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			respond.Error(writer, request, validate.RequiredError("since", "Must be an RFC 3339 timestamp"))
			return
		}
		since = parsed
	}

	entries, err := handler.service.ListLogEntries(request.Context(), requestutil.Param(request, "type"), since)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, entries)
}

func (handler *Handler) createLogEntry(writer http.ResponseWriter, request *http.Request) {
	djID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var entry LogEntry
	if err := requestutil.DecodeJSON(request, &entry); err != nil {
		respond.Error(writer, request, err)
		return
	}
	entry.FormatType = requestutil.Param(request, "type")
	entry.DJID = djID

	if err := handler.service.CreateLogEntry(request.Context(), &entry); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, entry)
}

func (handler *Handler) listQuarters(writer http.ResponseWriter, request *http.Request) {
	quarters, err := handler.service.ListQuarters(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, quarters)
}

func (handler *Handler) createQuarter(writer http.ResponseWriter, request *http.Request) {
	var q Quarter
	if err := requestutil.DecodeJSON(request, &q); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateQuarter(request.Context(), &q); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, q)
}

func (handler *Handler) deleteQuarter(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteQuarter(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
