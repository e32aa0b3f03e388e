// Copyright (c) 2026 Corporación Cultural Barco de Papel. All rights reserved.

package newsletter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/barcodepapel/api/internal/platform/request"
	"github.com/barcodepapel/api/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/subscribe", handler.subscribe)
	return router
}

func (handler *Handler) subscribe(writer http.ResponseWriter, request *http.Request) {
	var payload struct {
		Email string `json:"email"`
	}

	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result := handler.service.Subscribe(request.Context(), payload.Email)
	respond.OK(writer, result)
}
