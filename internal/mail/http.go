// Copyright (c) 2026 Corporación Cultural Barco de Papel. All rights reserved.

package mail

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/barcodepapel/api/internal/platform/apperr"
	"github.com/barcodepapel/api/internal/platform/respond"
)

// Handler exposes the transport diagnostics endpoint.
type Handler struct {
	sender Sender
}

// NewHandler constructs a new [Handler].
func NewHandler(sender Sender) *Handler {
	return &Handler{sender: sender}
}

// Routes returns the mail sub-router. Mounted behind the admin role guard.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/test", handler.test)
	return router
}

/*
Test sends a self-addressed probe through the configured transport.

GET /api/v1/admin/mail/test

Response:
  - 200: SendResult: Probe delivered
  - 503: ErrServiceUnavailable: Transport not configured or probe failed
*/
func (handler *Handler) test(writer http.ResponseWriter, request *http.Request) {
	if !handler.sender.IsConfigured() {
		respond.Error(writer, request, apperr.ServiceUnavailable("Email transport is not configured"))
		return
	}

	result := handler.sender.TestConfiguration(request.Context())
	if !result.Success {
		respond.Error(writer, request, apperr.ServiceUnavailable("Email transport probe failed: "+result.Error))
		return
	}

	respond.OK(writer, result)
}
