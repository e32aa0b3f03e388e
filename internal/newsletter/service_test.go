// Copyright (c) 2026 Corporación Cultural Barco de Papel. All rights reserved.

package newsletter_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barcodepapel/api/internal/mail"
	"github.com/barcodepapel/api/internal/newsletter"
)

// # Fakes

type fakeCache struct {
	registered  map[string]bool
	registerErr error
	forgotten   []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{registered: map[string]bool{}}
}

func (c *fakeCache) Register(_ context.Context, email string) (bool, error) {
	if c.registerErr != nil {
		return false, c.registerErr
	}
	if c.registered[email] {
		return false, nil
	}
	c.registered[email] = true
	return true, nil
}

func (c *fakeCache) Forget(_ context.Context, email string) error {
	delete(c.registered, email)
	c.forgotten = append(c.forgotten, email)
	return nil
}

type fakeMailer struct {
	configured bool
	failSend   bool
	sent       []mail.NewsletterData
}

func (m *fakeMailer) IsConfigured() bool { return m.configured }

func (m *fakeMailer) SendPasswordReset(_ context.Context, _ mail.PasswordResetData) mail.SendResult {
	return mail.SendResult{Success: true}
}

func (m *fakeMailer) SendNewsletterWelcome(_ context.Context, data mail.NewsletterData) mail.SendResult {
	m.sent = append(m.sent, data)
	if m.failSend {
		return mail.SendResult{Success: false, Error: "smtp unreachable"}
	}
	return mail.SendResult{Success: true, MessageID: "<test@barcodepapel.cl>"}
}

func (m *fakeMailer) SendTicketNotification(_ context.Context, _ mail.TicketNotificationData) mail.SendResult {
	return mail.SendResult{Success: true}
}

func (m *fakeMailer) TestConfiguration(_ context.Context) mail.SendResult {
	return mail.SendResult{Success: m.configured}
}

// # Tests

/*
TestSubscribe_Validation checks the rejection codes for malformed addresses
and that no email leaves the building.
*/
func TestSubscribe_Validation(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		errorCode string
	}{
		{"empty", "", "INVALID_EMAIL"},
		{"missing_at", "lector.barcodepapel.cl", "INVALID_EMAIL"},
		{"missing_domain_dot", "lector@localhost", "INVALID_EMAIL_FORMAT"},
		{"embedded_space", "lector uno@example.cl", "INVALID_EMAIL_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mailer := &fakeMailer{configured: true}
			service := newsletter.NewService(newFakeCache(), mailer)

			result := service.Subscribe(context.Background(), tt.email)

			assert.False(t, result.Success)
			assert.Equal(t, tt.errorCode, result.Error)
			assert.Empty(t, mailer.sent)
		})
	}
}

func TestSubscribe_UnconfiguredTransport(t *testing.T) {
	mailer := &fakeMailer{configured: false}
	service := newsletter.NewService(newFakeCache(), mailer)

	result := service.Subscribe(context.Background(), "lector@example.cl")

	assert.False(t, result.Success)
	assert.Equal(t, "MISSING_CONFIGURATION", result.Error)
	assert.Equal(t, "Error de configuración del servidor", result.Message)
	assert.Empty(t, mailer.sent)
}

/*
TestSubscribe_Success covers the happy path and the duplicate suppression on
a second signup with the same address.
*/
func TestSubscribe_Success(t *testing.T) {
	cache := newFakeCache()
	mailer := &fakeMailer{configured: true}
	service := newsletter.NewService(cache, mailer)

	first := service.Subscribe(context.Background(), "Lector@Example.cl")
	require.True(t, first.Success)
	assert.Equal(t, "¡Suscripción exitosa! Revisa tu email para confirmar.", first.Message)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "Lector@Example.cl", mailer.sent[0].UserEmail)

	// Same address, different casing: suppressed, no second email.
	second := service.Subscribe(context.Background(), "lector@example.cl")
	assert.True(t, second.Success)
	assert.Equal(t, "Este email ya está suscrito al newsletter.", second.Message)
	assert.Len(t, mailer.sent, 1)
}

/*
TestSubscribe_SendFailure verifies the SEND_ERROR outcome and that the
registration is released so the subscriber can retry.
*/
func TestSubscribe_SendFailure(t *testing.T) {
	cache := newFakeCache()
	mailer := &fakeMailer{configured: true, failSend: true}
	service := newsletter.NewService(cache, mailer)

	result := service.Subscribe(context.Background(), "lector@example.cl")

	assert.False(t, result.Success)
	assert.Equal(t, "SEND_ERROR", result.Error)
	assert.Equal(t, []string{"lector@example.cl"}, cache.forgotten)
}

/*
TestSubscribe_CacheOutage verifies that a broken cache degrades to sending
anyway instead of blocking the signup.
*/
func TestSubscribe_CacheOutage(t *testing.T) {
	cache := newFakeCache()
	cache.registerErr = errors.New("connection refused")
	mailer := &fakeMailer{configured: true}
	service := newsletter.NewService(cache, mailer)

	result := service.Subscribe(context.Background(), "lector@example.cl")

	assert.True(t, result.Success)
	assert.Len(t, mailer.sent, 1)
}
