// Copyright (c) 2026 Corporación Cultural Barco de Papel. All rights reserved.

package recovery

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/barcodepapel/api/internal/platform/request"
	"github.com/barcodepapel/api/internal/platform/respond"
	"github.com/barcodepapel/api/internal/platform/validate"
)

// Handler implements the credential reset HTTP endpoints.
//
// Both endpoints answer 200 with a [Result] envelope: the pipeline reports
// business failures inside the result value, not as HTTP error statuses.
type Handler struct {
	recoveryService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{recoveryService: service}
}

// Routes returns the public recovery sub-router.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/", handler.recover)
	return router
}

// AdminRoutes returns the administrative reset sub-router. Mounted under
// /admin/recovery behind the admin role guard.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()
	router.Post("/{id}/reset-password", handler.adminReset)
	return router
}

// # Request Payloads

type recoverRequest struct {
	Email string `json:"email"`
}

type adminResetRequest struct {
	SendEmail *bool `json:"send_email"`
}

/*
Recover runs the self-service recovery flow.

POST /api/v1/recovery

Description: Generates a temporary password for the account matching the
email and delivers it by email. The plaintext credential is stripped from
the public response.

Request:
  - Body: recoverRequest (Email)

Response:
  - 200: Result: Outcome value (success flag, localized message)
  - 400: ErrInvalidJSON: Malformed body
*/
func (handler *Handler) recover(writer http.ResponseWriter, request *http.Request) {
	var input recoverRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	result := handler.recoveryService.RecoverBySelf(request.Context(), input.Email)

	// Anonymous callers never see the generated credential.
	result.TemporaryPassword = ""

	respond.OK(writer, result)
}

/*
AdminReset runs the administrative reset flow for a target account.

POST /api/v1/admin/recovery/{id}/reset-password

Description: Resets the target account's credential on behalf of the
authenticated admin. The response includes the plaintext temporary password
so the admin can hand it over out of band when email delivery is disabled.

Request:
  - Body: adminResetRequest (SendEmail, optional, defaults to true)

Response:
  - 200: Result: Outcome value including the temporary password
  - 400: ErrInvalidJSON: Malformed body
*/
func (handler *Handler) adminReset(writer http.ResponseWriter, request *http.Request) {
	targetUserID := requestutil.ID(request, "id")

	// An empty body is accepted; send_email then keeps its default.
	var input adminResetRequest
	if request.ContentLength > 0 {
		if err := requestutil.DecodeJSON(request, &input); err != nil {
			respond.Error(writer, request, validate.ErrInvalidJSON)
			return
		}
	}

	actorID := ""
	if claims := requestutil.Claims(request); claims != nil {
		actorID = claims.UserID
	}

	result := handler.recoveryService.ResetByAdministrator(request.Context(), targetUserID, input.SendEmail, actorID)

	respond.OK(writer, result)
}
