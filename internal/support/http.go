// Copyright (c) 2026 Corporación Cultural Barco de Papel. All rights reserved.

package support

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/barcodepapel/api/internal/platform/request"
	"github.com/barcodepapel/api/internal/platform/respond"
	"github.com/barcodepapel/api/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes mounts the public report form endpoint.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/", handler.createTicket)
	return router
}

// AdminRoutes mounts the triage endpoints. Guards live on the parent router.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listTickets)
	router.Get("/{id}", handler.getTicket)
	router.Patch("/{id}/state", handler.updateTicketState)
	return router
}

func (handler *Handler) createTicket(writer http.ResponseWriter, request *http.Request) {
	var input Ticket

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateTicket(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) listTickets(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	tickets, total, err := handler.service.ListTickets(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, tickets, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getTicket(writer http.ResponseWriter, request *http.Request) {
	ticketID := requestutil.ID(request, "id")

	ticket, err := handler.service.GetTicket(request.Context(), ticketID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ticket)
}

func (handler *Handler) updateTicketState(writer http.ResponseWriter, request *http.Request) {
	ticketID := requestutil.ID(request, "id")

	var payload struct {
		State string `json:"state"`
	}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateTicketState(request.Context(), ticketID, payload.State); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
