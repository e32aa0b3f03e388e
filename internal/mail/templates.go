// Copyright (c) 2026 Corporación Cultural Barco de Papel. All rights reserved.

package mail

import (
	"bytes"
	"fmt"
	htemplate "html/template"
	ttemplate "text/template"
)

// # Subjects

const (
	subjectPasswordReset = "Contraseña Restablecida - Barco de Papel"
	subjectNewsletter    = "¡Bienvenido al Newsletter de Barco de Papel!"
	subjectTest          = "Test de Configuración SMTP - Barco de Papel"
)

// # Plain-Text Bodies

const passwordResetText = `Hola {{.UserName}},

Tu contraseña ha sido restablecida por un {{.ResetBy}}.

Tu nueva contraseña temporal es: {{.TemporaryPassword}}

IMPORTANTE:
• Esta contraseña es temporal y debe cambiarse después del primer inicio de sesión
• Por seguridad, no compartas esta contraseña con nadie
• Si no solicitaste este cambio, contacta inmediatamente al administrador

Puedes iniciar sesión en: {{.LoginURL}}

Saludos,
Equipo Barco de Papel`

const newsletterText = `¡Bienvenido al Newsletter de Barco de Papel!

Gracias por suscribirte a nuestro boletín mensual. Te mantendremos informado sobre los últimos eventos, noticias y novedades de nuestra comunidad literaria.

Tu email registrado: {{.UserEmail}}

¿Qué recibirás?
• Novedades sobre eventos literarios
• Noticias y artículos exclusivos
• Contenido cultural seleccionado
• Actualizaciones de la comunidad

Visita: {{.SiteURL}}

Si no te suscribiste a este newsletter, puedes ignorar este email.

Saludos,
Equipo Barco de Papel`

const ticketText = `Nuevo Ticket Creado - Barco de Papel

Se ha creado un nuevo ticket en el sistema.

Código del Ticket: {{.TicketCode}}
Título: {{.TicketTitle}}
Prioridad: {{.PriorityLabel}}
{{- if .TicketDescription}}
Descripción: {{.TicketDescription}}
{{- end}}

Información del Usuario:
Nombre: {{.UserName}}
Email: {{.UserEmail}}

Ver ticket en: {{.SiteURL}}/admin/settings/tickets

Este es un email automático del sistema de tickets.
Equipo Barco de Papel`

// # HTML Bodies

const passwordResetHTML = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Contraseña Restablecida</h2>
  <p>Hola {{.UserName}},</p>
  <p>Tu contraseña ha sido restablecida por un <strong>{{.ResetBy}}</strong>.</p>
  <p>Tu nueva contraseña temporal es:</p>
  <p style="font-size: 18px; font-weight: bold; background: #f4f4f4; padding: 12px; letter-spacing: 1px;">{{.TemporaryPassword}}</p>
  <p><strong>IMPORTANTE:</strong></p>
  <ul>
    <li>Esta contraseña es temporal y debe cambiarse después del primer inicio de sesión</li>
    <li>Por seguridad, no compartas esta contraseña con nadie</li>
    <li>Si no solicitaste este cambio, contacta inmediatamente al administrador</li>
  </ul>
  <p>Puedes iniciar sesión en: <a href="{{.LoginURL}}">{{.LoginURL}}</a></p>
  <p>Saludos,<br>Equipo Barco de Papel</p>
</div>`

const newsletterHTML = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>¡Bienvenido al Newsletter de Barco de Papel!</h2>
  <p>Gracias por suscribirte a nuestro boletín mensual. Te mantendremos informado sobre los últimos eventos, noticias y novedades de nuestra comunidad literaria.</p>
  <p>Tu email registrado: <strong>{{.UserEmail}}</strong></p>
  <p>¿Qué recibirás?</p>
  <ul>
    <li>Novedades sobre eventos literarios</li>
    <li>Noticias y artículos exclusivos</li>
    <li>Contenido cultural seleccionado</li>
    <li>Actualizaciones de la comunidad</li>
  </ul>
  <p>Visita: <a href="{{.SiteURL}}">{{.SiteURL}}</a></p>
  <p style="color: #888; font-size: 12px;">Si no te suscribiste a este newsletter, puedes ignorar este email.</p>
  <p>Saludos,<br>Equipo Barco de Papel</p>
</div>`

const ticketHTML = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Nuevo Ticket Creado</h2>
  <p>Se ha creado un nuevo ticket en el sistema.</p>
  <table style="border-collapse: collapse;">
    <tr><td style="padding: 4px 12px 4px 0;"><strong>Código</strong></td><td>{{.TicketCode}}</td></tr>
    <tr><td style="padding: 4px 12px 4px 0;"><strong>Título</strong></td><td>{{.TicketTitle}}</td></tr>
    <tr><td style="padding: 4px 12px 4px 0;"><strong>Prioridad</strong></td><td>{{.PriorityLabel}}</td></tr>
    {{- if .TicketDescription}}
    <tr><td style="padding: 4px 12px 4px 0;"><strong>Descripción</strong></td><td>{{.TicketDescription}}</td></tr>
    {{- end}}
  </table>
  <p><strong>Información del Usuario</strong><br>
  Nombre: {{.UserName}}<br>
  Email: {{.UserEmail}}</p>
  <p>Ver ticket en: <a href="{{.SiteURL}}/admin/settings/tickets">{{.SiteURL}}/admin/settings/tickets</a></p>
  <p style="color: #888; font-size: 12px;">Este es un email automático del sistema de tickets.</p>
</div>`

// # Rendering

var (
	textTemplates = ttemplate.Must(ttemplate.New("password_reset").Parse(passwordResetText))
	htmlTemplates = htemplate.Must(htemplate.New("password_reset").Parse(passwordResetHTML))
)

func init() {
	ttemplate.Must(textTemplates.New("newsletter").Parse(newsletterText))
	ttemplate.Must(textTemplates.New("ticket").Parse(ticketText))
	htemplate.Must(htmlTemplates.New("newsletter").Parse(newsletterHTML))
	htemplate.Must(htmlTemplates.New("ticket").Parse(ticketHTML))
}

// renderBodies produces the plain-text and HTML variants of one template.
func renderBodies(name string, data any) (text string, html string, err error) {
	var textBuffer bytes.Buffer
	if err := textTemplates.ExecuteTemplate(&textBuffer, name, data); err != nil {
		return "", "", fmt.Errorf("mail_template_text_render_failed: %w", err)
	}

	var htmlBuffer bytes.Buffer
	if err := htmlTemplates.ExecuteTemplate(&htmlBuffer, name, data); err != nil {
		return "", "", fmt.Errorf("mail_template_html_render_failed: %w", err)
	}

	return textBuffer.String(), htmlBuffer.String(), nil
}

// priorityLabel maps a ticket priority code to its Spanish display label.
func priorityLabel(priority string) string {
	switch priority {
	case "HIGH":
		return "Alta"
	case "MEDIUM":
		return "Media"
	default:
		return "Baja"
	}
}
