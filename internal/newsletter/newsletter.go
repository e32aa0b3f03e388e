// Copyright (c) 2026 Corporación Cultural Barco de Papel. All rights reserved.

// Package newsletter handles public signup for the cultural newsletter:
// input validation, duplicate suppression and the confirmation email.
package newsletter

// Result is the subscription outcome returned to the public form.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// Machine-readable failure codes.
const (
	CodeInvalidEmail       = "INVALID_EMAIL"
	CodeInvalidEmailFormat = "INVALID_EMAIL_FORMAT"
	CodeMissingConfig      = "MISSING_CONFIGURATION"
	CodeSendError          = "SEND_ERROR"
)

// User-facing messages, in the site's voice.
const (
	msgInvalidEmail      = "Email inválido"
	msgInvalidFormat     = "Por favor, ingresa un email con formato válido."
	msgMissingConfig     = "Error de configuración del servidor"
	msgSendError         = "Error al procesar la suscripción. Inténtalo nuevamente."
	msgSubscribed        = "¡Suscripción exitosa! Revisa tu email para confirmar."
	msgAlreadySubscribed = "Este email ya está suscrito al newsletter."
)
