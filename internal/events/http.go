// Copyright (c) 2026 Corporación Cultural Barco de Papel. All rights reserved.

package events

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/barcodepapel/api/internal/platform/request"
	"github.com/barcodepapel/api/internal/platform/respond"
	"github.com/barcodepapel/api/pkg/convert"
	"github.com/barcodepapel/api/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes mounts the public calendar endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/upcoming", handler.listUpcoming)
	router.Get("/categories", handler.listCategories)
	router.Get("/{id}", handler.getEvent)
	return router
}

// AdminRoutes mounts the administration CRUD. Authentication and role checks
// are applied by the parent router.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listEvents)
	router.Get("/{id}", handler.getEvent)
	router.Post("/", handler.createEvent)
	router.Put("/{id}", handler.updateEvent)
	router.Patch("/{id}/toggle", handler.toggleEventState)
	router.Delete("/{id}", handler.deleteEvent)
	return router
}

func (handler *Handler) listUpcoming(writer http.ResponseWriter, request *http.Request) {
	limit := convert.ToInt(request.URL.Query().Get("limit"))
	if limit < 0 {
		limit = 0
	}

	upcoming, err := handler.service.ListUpcoming(request.Context(), limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, upcoming)
}

func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.service.ListCategories(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, categories)
}

func (handler *Handler) listEvents(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	events, total, err := handler.service.ListEvents(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, events, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getEvent(writer http.ResponseWriter, request *http.Request) {
	eventID := requestutil.ID(request, "id")

	event, err := handler.service.GetEvent(request.Context(), eventID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, event)
}

func (handler *Handler) createEvent(writer http.ResponseWriter, request *http.Request) {
	var input Event

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateEvent(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateEvent(writer http.ResponseWriter, request *http.Request) {
	eventID := requestutil.ID(request, "id")

	var input Event
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateEvent(request.Context(), eventID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) toggleEventState(writer http.ResponseWriter, request *http.Request) {
	eventID := requestutil.ID(request, "id")

	result, err := handler.service.ToggleEventState(request.Context(), eventID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

func (handler *Handler) deleteEvent(writer http.ResponseWriter, request *http.Request) {
	eventID := requestutil.ID(request, "id")

	if err := handler.service.DeleteEvent(request.Context(), eventID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
