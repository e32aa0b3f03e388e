// Copyright (c) 2026 Corporación Cultural Barco de Papel. All rights reserved.

package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"strings"

	gomail "github.com/go-mail/mail"

	"github.com/barcodepapel/api/internal/platform/constants"
	"github.com/barcodepapel/api/pkg/uuid"
)

// # SMTP Transport

// SMTPConfig contains the connection settings of the SMTP transport.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string

	// TLSMode is one of "auto", "starttls", "ssl", "none".
	TLSMode string

	// InsecureSkipVerify disables certificate verification. Dev only.
	InsecureSkipVerify bool
}

// SMTPMailer implements [Sender] over an SMTP relay.
type SMTPMailer struct {
	config SMTPConfig
	logger *slog.Logger
}

// NewSMTPMailer constructs a new [SMTPMailer].
func NewSMTPMailer(config SMTPConfig, logger *slog.Logger) *SMTPMailer {
	if config.TLSMode == "" {
		config.TLSMode = "auto"
	}
	return &SMTPMailer{config: config, logger: logger}
}

// IsConfigured reports whether the transport can attempt a delivery.
// A host and a sender address are the minimum viable configuration.
func (mailer *SMTPMailer) IsConfigured() bool {
	return mailer.config.Host != "" && mailer.config.FromEmail != ""
}

/*
SendPasswordReset delivers the temporary credential to the user.

Parameters:
  - context: context.Context
  - data: PasswordResetData

Returns:
  - SendResult: Delivery outcome.
*/
func (mailer *SMTPMailer) SendPasswordReset(context context.Context, data PasswordResetData) SendResult {
	payload := struct {
		UserName          string
		TemporaryPassword string
		ResetBy           string
		LoginURL          string
	}{
		UserName:          data.UserName,
		TemporaryPassword: data.TemporaryPassword,
		ResetBy:           data.ResetBy,
		LoginURL:          constants.SiteLoginURL,
	}

	textBody, htmlBody, err := renderBodies("password_reset", payload)
	if err != nil {
		return SendResult{Success: false, Error: err.Error()}
	}

	return mailer.send(context, data.UserEmail, data.UserName, subjectPasswordReset, textBody, htmlBody)
}

/*
SendNewsletterWelcome delivers the subscription confirmation.

Parameters:
  - context: context.Context
  - data: NewsletterData

Returns:
  - SendResult: Delivery outcome.
*/
func (mailer *SMTPMailer) SendNewsletterWelcome(context context.Context, data NewsletterData) SendResult {
	payload := struct {
		UserEmail string
		SiteURL   string
	}{
		UserEmail: data.UserEmail,
		SiteURL:   constants.SiteBaseURL,
	}

	textBody, htmlBody, err := renderBodies("newsletter", payload)
	if err != nil {
		return SendResult{Success: false, Error: err.Error()}
	}

	return mailer.send(context, data.UserEmail, "", subjectNewsletter, textBody, htmlBody)
}

/*
SendTicketNotification notifies the admin inbox about a new ticket.

Parameters:
  - context: context.Context
  - data: TicketNotificationData

Returns:
  - SendResult: Delivery outcome.
*/
func (mailer *SMTPMailer) SendTicketNotification(context context.Context, data TicketNotificationData) SendResult {
	payload := struct {
		TicketCode        string
		TicketTitle       string
		PriorityLabel     string
		TicketDescription string
		UserName          string
		UserEmail         string
		SiteURL           string
	}{
		TicketCode:        data.TicketCode,
		TicketTitle:       data.TicketTitle,
		PriorityLabel:     priorityLabel(data.TicketPriority),
		TicketDescription: data.TicketDescription,
		UserName:          data.UserName,
		UserEmail:         data.UserEmail,
		SiteURL:           constants.SiteBaseURL,
	}

	textBody, htmlBody, err := renderBodies("ticket", payload)
	if err != nil {
		return SendResult{Success: false, Error: err.Error()}
	}

	subject := fmt.Sprintf("Nuevo Ticket: %s - %s", data.TicketCode, data.TicketTitle)
	return mailer.send(context, data.AdminEmail, "Administrador", subject, textBody, htmlBody)
}

/*
TestConfiguration sends a self-addressed probe to verify the transport.

Parameters:
  - context: context.Context

Returns:
  - SendResult: Delivery outcome of the probe.
*/
func (mailer *SMTPMailer) TestConfiguration(context context.Context) SendResult {
	const probeText = "Este es un email de prueba para verificar la configuración del servidor de correo."
	const probeHTML = "<p>Este es un email de prueba para verificar la configuración del servidor de correo.</p>"

	return mailer.send(context, mailer.config.FromEmail, mailer.config.FromName, subjectTest, probeText, probeHTML)
}

// # Delivery

// send builds a multipart message and delivers it through the SMTP relay.
// All failures are folded into the returned [SendResult].
func (mailer *SMTPMailer) send(ctx context.Context, to, toName, subject, textBody, htmlBody string) SendResult {
	if !mailer.IsConfigured() {
		return SendResult{Success: false, Error: "SMTP transport is not configured"}
	}

	// Delivery inherits the request deadline. Bail out early if it already passed.
	if err := ctx.Err(); err != nil {
		return SendResult{Success: false, Error: err.Error()}
	}

	messageID := mailer.newMessageID()

	message := gomail.NewMessage()
	message.SetAddressHeader("From", mailer.config.FromEmail, mailer.config.FromName)
	if toName != "" {
		message.SetAddressHeader("To", to, toName)
	} else {
		message.SetHeader("To", to)
	}
	message.SetHeader("Subject", subject)
	message.SetHeader("Message-ID", messageID)

	// Multipart alternative: plain text first, HTML preferred by capable clients.
	message.SetBody("text/plain", textBody)
	message.AddAlternative("text/html", htmlBody)

	dialer := gomail.NewDialer(mailer.config.Host, mailer.config.Port, mailer.config.Username, mailer.config.Password)
	dialer.TLSConfig = &tls.Config{
		ServerName:         mailer.config.Host,
		InsecureSkipVerify: mailer.config.InsecureSkipVerify,
	}

	switch mailer.config.TLSMode {
	case "ssl":
		dialer.SSL = true
	case "none":
		dialer.TLSConfig = &tls.Config{InsecureSkipVerify: mailer.config.InsecureSkipVerify}
	default:
		// "auto"/"starttls": STARTTLS is negotiated when the server offers it.
	}

	if err := dialer.DialAndSend(message); err != nil {
		mailer.logger.Error("mail_send_failed",
			slog.String("to", to),
			slog.String("subject", subject),
			slog.String("error", err.Error()),
		)
		return SendResult{Success: false, Error: err.Error()}
	}

	mailer.logger.Info("mail_sent",
		slog.String("to", to),
		slog.String("subject", subject),
		slog.String("message_id", messageID),
	)

	return SendResult{Success: true, MessageID: messageID}
}

// newMessageID builds an RFC 5322 Message-ID using the sender's domain.
func (mailer *SMTPMailer) newMessageID() string {
	domain := mailer.config.Host
	if at := strings.LastIndex(mailer.config.FromEmail, "@"); at >= 0 {
		domain = mailer.config.FromEmail[at+1:]
	}
	return fmt.Sprintf("<%s@%s>", uuid.New(), domain)
}
