// Copyright (c) 2026 Corporación Cultural Barco de Papel. All rights reserved.

/*
Package recovery implements the credential reset pipeline.

One orchestrator handles both flows:
  - Self-service recovery: an anonymous visitor identifies their account by
    email and receives a temporary password in their inbox.
  - Administrative reset: an authenticated admin resets the credential of a
    specific account, optionally notifying the user by email.

# Failure Model

Every failure is returned as a [Result] value. Nothing propagates past
[Service.HandleReset]: validation errors, missing accounts, storage faults
and email faults all fold into the result, each with its own error code and
a localized user-facing message.
*/
package recovery

import "strings"

// # Reset Kinds

// resetKind discriminates the two reset flows. The values are recorded
// verbatim in audit metadata.
type resetKind string

const (
	kindSelfService    resetKind = "user_recovery"
	kindAdministrative resetKind = "admin_reset"
)

// # Options

// Options describes one reset invocation. It can only be built through
// [SelfService] or [Administrative], so an administrative reset can never
// lack its acting-admin identity.
type Options struct {
	kind      resetKind
	actorID   string
	actorName string

	// SendEmail controls whether the temporary password is delivered by
	// email. Defaults to true in both constructors.
	SendEmail bool
}

// SelfService returns the options of an email-identified recovery.
func SelfService() Options {
	return Options{kind: kindSelfService, SendEmail: true}
}

// Administrative returns the options of an admin-initiated reset.
// An empty actor name falls back to the generic "Administrador" label.
func Administrative(actorID, actorName string) Options {
	if strings.TrimSpace(actorName) == "" {
		actorName = defaultActorName
	}
	return Options{
		kind:      kindAdministrative,
		actorID:   actorID,
		actorName: actorName,
		SendEmail: true,
	}
}

// # Result

// Result is the transient outcome value returned to the caller.
//
// TemporaryPassword is only populated for callers allowed to see it; it must
// never be persisted or logged.
type Result struct {
	Success           bool   `json:"success"`
	Message           string `json:"message"`
	TemporaryPassword string `json:"temporary_password,omitempty"`
	EmailSent         bool   `json:"email_sent"`
	ErrorCode         string `json:"error_code,omitempty"`
	Error             string `json:"error,omitempty"`
}

// # Error Codes

const (
	CodeEmailRequired      = "EMAIL_REQUIRED"
	CodeEmailInvalidFormat = "EMAIL_INVALID_FORMAT"
	CodeUserIDRequired     = "USER_ID_REQUIRED"
	CodeUserNotFoundEmail  = "USER_NOT_FOUND_EMAIL"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeResetFailed        = "RESET_FAILED"
)

// # User-Facing Messages (Spanish)

const (
	defaultActorName = "Administrador"
	selfServiceActor = "Usuario"

	msgEmailRequired     = "Por favor, ingresa tu dirección de email."
	msgEmailInvalid      = "Por favor, ingresa un email con formato válido."
	msgUserIDRequired    = "ID de usuario es requerido para el reset."
	msgUserNotFoundEmail = "No se encontró un usuario con ese email. Verifica que el email sea correcto."
	msgUserNotFound      = "No se pudo encontrar el usuario especificado."

	msgRecoveryEmailSent = "Se ha enviado una nueva contraseña temporal a tu email. Revisa tu bandeja de entrada y carpeta de spam."
	msgRecoveryDone      = "Nueva contraseña temporal generada correctamente."
	msgResetEmailSent    = "Contraseña restablecida exitosamente y email enviado al usuario."
	msgResetDone         = "Contraseña restablecida exitosamente."

	msgRecoveryFailed = "No se pudo procesar la solicitud de recuperación. Por favor, inténtelo de nuevo en unos momentos."
	msgResetFailed    = "Error al restablecer la contraseña. Por favor, inténtelo de nuevo."
)
