// Copyright (c) 2026 Corporación Cultural Barco de Papel. All rights reserved.

package mail

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

/*
TestRenderBodies_PasswordReset verifies that the credential and the actor
label land in both the plain-text and HTML variants.
*/
func TestRenderBodies_PasswordReset(t *testing.T) {
	payload := struct {
		UserName          string
		TemporaryPassword string
		ResetBy           string
		LoginURL          string
	}{
		UserName:          "Ana Rojas",
		TemporaryPassword: "xK9!mP2qRt7w",
		ResetBy:           "Administrador",
		LoginURL:          "https://www.barcodepapel.cl/login",
	}

	text, html, err := renderBodies("password_reset", payload)
	require.NoError(t, err)

	assert.Contains(t, text, "Hola Ana Rojas")
	assert.Contains(t, text, "xK9!mP2qRt7w")
	assert.Contains(t, text, "restablecida por un Administrador")
	assert.Contains(t, text, "https://www.barcodepapel.cl/login")

	assert.Contains(t, html, "xK9!mP2qRt7w")
	assert.Contains(t, html, "<strong>Administrador</strong>")
}

func TestRenderBodies_Newsletter(t *testing.T) {
	payload := struct {
		UserEmail string
		SiteURL   string
	}{
		UserEmail: "lector@example.cl",
		SiteURL:   "https://www.barcodepapel.cl",
	}

	text, html, err := renderBodies("newsletter", payload)
	require.NoError(t, err)

	assert.Contains(t, text, "Tu email registrado: lector@example.cl")
	assert.Contains(t, html, "<strong>lector@example.cl</strong>")
	assert.Contains(t, html, `href="https://www.barcodepapel.cl"`)
}

/*
TestRenderBodies_Ticket covers the optional description block and the
priority label substitution.
*/
func TestRenderBodies_Ticket(t *testing.T) {
	type ticketPayload struct {
		TicketCode        string
		TicketTitle       string
		PriorityLabel     string
		TicketDescription string
		UserName          string
		UserEmail         string
		SiteURL           string
	}

	withDescription := ticketPayload{
		TicketCode:        "TK-3FA2C1",
		TicketTitle:       "La página no carga",
		PriorityLabel:     "Alta",
		TicketDescription: "Pantalla en blanco al abrir el calendario.",
		UserName:          "Ana Rojas",
		UserEmail:         "ana@example.cl",
		SiteURL:           "https://www.barcodepapel.cl",
	}

	text, html, err := renderBodies("ticket", withDescription)
	require.NoError(t, err)
	assert.Contains(t, text, "Código del Ticket: TK-3FA2C1")
	assert.Contains(t, text, "Prioridad: Alta")
	assert.Contains(t, text, "Descripción: Pantalla en blanco")
	assert.Contains(t, html, "TK-3FA2C1")

	withoutDescription := withDescription
	withoutDescription.TicketDescription = ""

	text, html, err = renderBodies("ticket", withoutDescription)
	require.NoError(t, err)
	assert.NotContains(t, text, "Descripción:")
	assert.NotContains(t, html, "Descripción")
}

func TestPriorityLabel(t *testing.T) {
	tests := []struct {
		name     string
		priority string
		label    string
	}{
		{"high", "HIGH", "Alta"},
		{"medium", "MEDIUM", "Media"},
		{"low", "LOW", "Baja"},
		{"unknown_defaults_low", "WHATEVER", "Baja"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.label, priorityLabel(tt.priority))
		})
	}
}

/*
TestSMTPMailer_IsConfigured checks the minimum viable configuration rule.
*/
func TestSMTPMailer_IsConfigured(t *testing.T) {
	tests := []struct {
		name       string
		config     SMTPConfig
		configured bool
	}{
		{"full", SMTPConfig{Host: "smtp.example.cl", FromEmail: "no-reply@barcodepapel.cl"}, true},
		{"missing_host", SMTPConfig{FromEmail: "no-reply@barcodepapel.cl"}, false},
		{"missing_from", SMTPConfig{Host: "smtp.example.cl"}, false},
		{"empty", SMTPConfig{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mailer := NewSMTPMailer(tt.config, testLogger())
			assert.Equal(t, tt.configured, mailer.IsConfigured())
		})
	}
}

func TestNewMessageID_UsesSenderDomain(t *testing.T) {
	mailer := NewSMTPMailer(SMTPConfig{
		Host:      "smtp.example.cl",
		FromEmail: "no-reply@barcodepapel.cl",
	}, testLogger())

	id := mailer.newMessageID()
	assert.Regexp(t, `^<[0-9a-f-]+@barcodepapel\.cl>$`, id)
}
