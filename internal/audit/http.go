// Copyright (c) 2026 Corporación Cultural Barco de Papel. All rights reserved.

package audit

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/barcodepapel/api/internal/platform/respond"
	"github.com/barcodepapel/api/pkg/pagination"
)

// Handler serves the admin activity-trail screen.
type Handler struct {
	store *PostgresStore
}

// NewHandler constructs a new [Handler].
func NewHandler(store *PostgresStore) *Handler {
	return &Handler{store: store}
}

// Routes returns the audit sub-router. Mounted behind the admin role guard.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.list)
	return router
}

/*
List returns the paginated activity trail, newest first.

GET /api/v1/admin/audit

Response:
  - 200: Paginated list of records
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	records, total, err := handler.store.List(request.Context(), params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, records, pagination.NewMeta(params.Page, params.Limit, total))
}
