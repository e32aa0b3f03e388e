// Copyright (c) 2026 Corporación Cultural Barco de Papel. All rights reserved.

package support_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barcodepapel/api/internal/audit"
	"github.com/barcodepapel/api/internal/mail"
	"github.com/barcodepapel/api/internal/platform/apperr"
	"github.com/barcodepapel/api/internal/support"
)

// # Fakes

type fakeRepository struct {
	tickets []*support.Ticket
	states  map[string]string
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{states: map[string]string{}}
}

func (r *fakeRepository) ListTickets(_ context.Context, _, _ int) ([]*support.Ticket, int, error) {
	return r.tickets, len(r.tickets), nil
}

func (r *fakeRepository) GetTicket(_ context.Context, id string) (*support.Ticket, error) {
	for _, ticket := range r.tickets {
		if ticket.ID == id {
			return ticket, nil
		}
	}
	return nil, apperr.NotFound("Ticket")
}

func (r *fakeRepository) CreateTicket(_ context.Context, t *support.Ticket) error {
	copied := *t
	r.tickets = append(r.tickets, &copied)
	return nil
}

func (r *fakeRepository) UpdateState(_ context.Context, id, state string) error {
	if _, err := r.GetTicket(context.Background(), id); err != nil {
		return err
	}
	r.states[id] = state
	return nil
}

type fakeMailer struct {
	configured bool
	failSend   bool
	sent       []mail.TicketNotificationData
}

func (m *fakeMailer) IsConfigured() bool { return m.configured }

func (m *fakeMailer) SendPasswordReset(_ context.Context, _ mail.PasswordResetData) mail.SendResult {
	return mail.SendResult{Success: true}
}

func (m *fakeMailer) SendNewsletterWelcome(_ context.Context, _ mail.NewsletterData) mail.SendResult {
	return mail.SendResult{Success: true}
}

func (m *fakeMailer) SendTicketNotification(_ context.Context, data mail.TicketNotificationData) mail.SendResult {
	m.sent = append(m.sent, data)
	if m.failSend {
		return mail.SendResult{Success: false, Error: "smtp unreachable"}
	}
	return mail.SendResult{Success: true}
}

func (m *fakeMailer) TestConfiguration(_ context.Context) mail.SendResult {
	return mail.SendResult{Success: m.configured}
}

type fakeRecorder struct {
	records []audit.Record
}

func (r *fakeRecorder) Append(_ context.Context, record audit.Record) error {
	r.records = append(r.records, record)
	return nil
}

func newFixture() (*support.Service, *fakeRepository, *fakeMailer, *fakeRecorder) {
	repository := newFakeRepository()
	mailer := &fakeMailer{configured: true}
	recorder := &fakeRecorder{}
	service := support.NewService(repository, mailer, recorder, "soporte@barcodepapel.cl", slog.Default())
	return service, repository, mailer, recorder
}

func validTicket() support.Ticket {
	return support.Ticket{
		Title:         "La página de eventos no carga",
		Priority:      support.PriorityHigh,
		Description:   "Al abrir el calendario aparece una pantalla en blanco.",
		ReporterName:  "Ana Rojas",
		ReporterEmail: "ana@example.cl",
	}
}

// # Tests

/*
TestCreateTicket_Validation rejects incomplete reports before any write.
*/
func TestCreateTicket_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(ticket *support.Ticket)
	}{
		{"missing_title", func(ticket *support.Ticket) { ticket.Title = "" }},
		{"missing_description", func(ticket *support.Ticket) { ticket.Description = "" }},
		{"missing_reporter_name", func(ticket *support.Ticket) { ticket.ReporterName = "" }},
		{"bad_reporter_email", func(ticket *support.Ticket) { ticket.ReporterEmail = "not-an-email" }},
		{"unknown_priority", func(ticket *support.Ticket) { ticket.Priority = "URGENT" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repository, mailer, recorder := newFixture()

			ticket := validTicket()
			tt.mutate(&ticket)

			err := service.CreateTicket(context.Background(), &ticket)

			require.Error(t, err)
			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, "VALIDATION_ERROR", appError.Code)
			assert.Empty(t, repository.tickets)
			assert.Empty(t, mailer.sent)
			assert.Empty(t, recorder.records)
		})
	}
}

/*
TestCreateTicket_Success verifies persistence, the generated code format,
the admin notification and the audit record.
*/
func TestCreateTicket_Success(t *testing.T) {
	service, repository, mailer, recorder := newFixture()

	ticket := validTicket()
	err := service.CreateTicket(context.Background(), &ticket)
	require.NoError(t, err)

	assert.NotEmpty(t, ticket.ID)
	assert.Equal(t, support.StateOpen, ticket.State)
	assert.True(t, strings.HasPrefix(ticket.Code, "TK-"))
	assert.Len(t, ticket.Code, 9)
	assert.Equal(t, strings.ToUpper(ticket.Code), ticket.Code)

	require.Len(t, repository.tickets, 1)

	require.Len(t, mailer.sent, 1)
	notification := mailer.sent[0]
	assert.Equal(t, ticket.Code, notification.TicketCode)
	assert.Equal(t, "soporte@barcodepapel.cl", notification.AdminEmail)
	assert.Equal(t, "Ana Rojas", notification.UserName)

	require.Len(t, recorder.records, 1)
	record := recorder.records[0]
	assert.Equal(t, audit.ActionTicketCreate, record.Action)
	assert.Equal(t, audit.EntityTicket, record.Entity)
	assert.Equal(t, ticket.Code, record.Metadata["code"])
}

func TestCreateTicket_DefaultPriority(t *testing.T) {
	service, _, _, _ := newFixture()

	ticket := validTicket()
	ticket.Priority = ""

	err := service.CreateTicket(context.Background(), &ticket)
	require.NoError(t, err)
	assert.Equal(t, support.PriorityMedium, ticket.Priority)
}

/*
TestCreateTicket_NotificationFailure verifies the notification is best
effort: the ticket and its audit record survive a mail outage.
*/
func TestCreateTicket_NotificationFailure(t *testing.T) {
	service, repository, mailer, recorder := newFixture()
	mailer.failSend = true

	ticket := validTicket()
	err := service.CreateTicket(context.Background(), &ticket)

	require.NoError(t, err)
	assert.Len(t, repository.tickets, 1)
	assert.Len(t, recorder.records, 1)
}

func TestUpdateTicketState(t *testing.T) {
	service, repository, _, _ := newFixture()

	ticket := validTicket()
	require.NoError(t, service.CreateTicket(context.Background(), &ticket))

	err := service.UpdateTicketState(context.Background(), ticket.ID, support.StateClosed)
	require.NoError(t, err)
	assert.Equal(t, support.StateClosed, repository.states[ticket.ID])

	err = service.UpdateTicketState(context.Background(), ticket.ID, "ARCHIVED")
	require.Error(t, err)
}
