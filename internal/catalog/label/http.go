package label

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

// LabelRoutes serves /labels; PromoterRoutes serves /promoters. The two
// directories share a handler because they share a store and a shape.
func (handler *Handler) LabelRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listLabels)
	router.Get("/{id}", handler.getLabel)

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))
		admin.Post("/", handler.createLabel)
		admin.Put("/{id}", handler.updateLabel)
		admin.Delete("/{id}", handler.deleteLabel)
	})

	return router
}

func (handler *Handler) PromoterRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listPromoters)
	router.Get("/{id}", handler.getPromoter)

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))
		admin.Post("/", handler.createPromoter)
		admin.Put("/{id}", handler.updatePromoter)
		admin.Delete("/{id}", handler.deletePromoter)
	})

	return router
}

func (handler *Handler) listLabels(writer http.ResponseWriter, request *http.Request) {
	labels, err := handler.service.ListLabels(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, labels)
}

func (handler *Handler) getLabel(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	label, err := handler.service.GetLabel(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, label)
}

func (handler *Handler) createLabel(writer http.ResponseWriter, request *http.Request) {
	var label Label
	if err := requestutil.DecodeJSON(request, &label); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateLabel(request.Context(), &label); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, label)
}

func (handler *Handler) updateLabel(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var label Label
	if err := requestutil.DecodeJSON(request, &label); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateLabel(request.Context(), id, &label); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, label)
}

func (handler *Handler) deleteLabel(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteLabel(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) listPromoters(writer http.ResponseWriter, request *http.Request) {
	promoters, err := handler.service.ListPromoters(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, promoters)
}

func (handler *Handler) getPromoter(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	promoter, err := handler.service.GetPromoter(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, promoter)
}

func (handler *Handler) createPromoter(writer http.ResponseWriter, request *http.Request) {
	var promoter Promoter
	if err := requestutil.DecodeJSON(request, &promoter); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreatePromoter(request.Context(), &promoter); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, promoter)
}

func (handler *Handler) updatePromoter(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var promoter Promoter
	if err := requestutil.DecodeJSON(request, &promoter); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdatePromoter(request.Context(), id, &promoter); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, promoter)
}

func (handler *Handler) deletePromoter(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeletePromoter(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
