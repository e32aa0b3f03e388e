// Copyright (c) 2026 Corporación Cultural Barco de Papel. All rights reserved.

package support

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/barcodepapel/api/internal/audit"
	"github.com/barcodepapel/api/internal/mail"
	"github.com/barcodepapel/api/internal/platform/ctxutil"
	"github.com/barcodepapel/api/internal/platform/sec"
	"github.com/barcodepapel/api/internal/platform/validate"
	"github.com/barcodepapel/api/pkg/uuid"
)

// ticketCodeBytes yields six hex characters after encoding.
const ticketCodeBytes = 3

type Service struct {
	repo       Repository
	mailer     mail.Sender
	recorder   audit.Recorder
	adminEmail string
	logger     *slog.Logger
}

func NewService(repo Repository, mailer mail.Sender, recorder audit.Recorder, adminEmail string, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		mailer:     mailer,
		recorder:   recorder,
		adminEmail: adminEmail,
		logger:     logger,
	}
}

func (service *Service) ListTickets(context context.Context, limit, offset int) ([]*Ticket, int, error) {
	return service.repo.ListTickets(context, limit, offset)
}

func (service *Service) GetTicket(context context.Context, id string) (*Ticket, error) {
	return service.repo.GetTicket(context, id)
}

/*
CreateTicket validates the report, persists it under a short human-friendly
code and notifies the admin address. A failed notification never fails the
ticket: the row is already safe in the database.
*/
func (service *Service) CreateTicket(context context.Context, ticket *Ticket) error {
	if ticket.Priority == "" {
		ticket.Priority = PriorityMedium
	}

	validator := &validate.Validator{}
	validator.Required(FieldTitle, ticket.Title).MaxLen(FieldTitle, ticket.Title, 200)
	validator.Required(FieldDescription, ticket.Description).MaxLen(FieldDescription, ticket.Description, 5000)
	validator.Required(FieldReporterName, ticket.ReporterName).MaxLen(FieldReporterName, ticket.ReporterName, 120)
	validator.Required(FieldReporterEmail, ticket.ReporterEmail)
	if ticket.ReporterEmail != "" {
		validator.Email(FieldReporterEmail, ticket.ReporterEmail)
	}
	validator.OneOf(FieldPriority, ticket.Priority, PriorityLow, PriorityMedium, PriorityHigh)
	if err := validator.Err(); err != nil {
		return err
	}

	ticket.ID = uuid.New()
	ticket.State = StateOpen

	code, err := newTicketCode()
	if err != nil {
		return fmt.Errorf("ticket_code_generation_failed: %w", err)
	}
	ticket.Code = code

	if err := service.repo.CreateTicket(context, ticket); err != nil {
		return err
	}

	service.notifyAdmin(context, ticket)

	record := audit.Record{
		Action:      audit.ActionTicketCreate,
		Entity:      audit.EntityTicket,
		EntityID:    ticket.ID,
		Description: fmt.Sprintf("Ticket %s created: %s", ticket.Code, ticket.Title),
		Metadata: map[string]any{
			"ticketId": ticket.ID,
			"code":     ticket.Code,
			"priority": ticket.Priority,
		},
	}
	if err := service.recorder.Append(context, record); err != nil {
		return fmt.Errorf("audit_append_failed: %w", err)
	}

	service.logger.Info("ticket_created",
		slog.String("ticket_id", ticket.ID),
		slog.String("code", ticket.Code),
		slog.String("priority", ticket.Priority),
	)
	return nil
}

func (service *Service) UpdateTicketState(context context.Context, id, state string) error {
	validator := &validate.Validator{}
	validator.OneOf(FieldState, state, StateOpen, StateInProgress, StateClosed)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.UpdateState(context, id, state); err != nil {
		return err
	}

	service.logger.Info("ticket_state_updated", slog.String("ticket_id", id), slog.String("state", state))
	return nil
}

// notifyAdmin is best effort. Outages of the mail provider must not hide
// the ticket from the admins, it is already persisted.
func (service *Service) notifyAdmin(context context.Context, ticket *Ticket) {
	logger := ctxutil.GetLogger(context)

	if service.adminEmail == "" || !service.mailer.IsConfigured() {
		logger.Warn("ticket_notification_skipped", slog.String("ticket_id", ticket.ID))
		return
	}

	result := service.mailer.SendTicketNotification(context, mail.TicketNotificationData{
		TicketCode:        ticket.Code,
		TicketTitle:       ticket.Title,
		TicketPriority:    ticket.Priority,
		TicketDescription: ticket.Description,
		UserName:          ticket.ReporterName,
		UserEmail:         ticket.ReporterEmail,
		AdminEmail:        service.adminEmail,
	})
	if !result.Success {
		logger.Error("ticket_notification_failed",
			slog.String("ticket_id", ticket.ID),
			slog.String("error", result.Error),
		)
	}
}

// newTicketCode builds the short reference shown to reporters (TK-3FA2C1).
func newTicketCode() (string, error) {
	random, err := sec.GenerateSecureToken(ticketCodeBytes)
	if err != nil {
		return "", err
	}
	return "TK-" + strings.ToUpper(random), nil
}
