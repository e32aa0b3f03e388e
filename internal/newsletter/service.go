// Copyright (c) 2026 Corporación Cultural Barco de Papel. All rights reserved.

package newsletter

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/barcodepapel/api/internal/mail"
	"github.com/barcodepapel/api/internal/platform/ctxutil"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

/*
SubscriptionCache suppresses duplicate signups. Register reports whether the
email was newly registered; Forget releases a registration so a failed send
can be retried.
*/
type SubscriptionCache interface {
	Register(context context.Context, email string) (bool, error)
	Forget(context context.Context, email string) error
}

type Service struct {
	cache  SubscriptionCache
	mailer mail.Sender
}

func NewService(cache SubscriptionCache, mailer mail.Sender) *Service {
	return &Service{
		cache:  cache,
		mailer: mailer,
	}
}

/*
Subscribe validates the address, suppresses duplicates and sends the
confirmation email. All outcomes are Result values; the HTTP layer never
sees a business failure as an error.
*/
func (service *Service) Subscribe(context context.Context, email string) *Result {
	logger := ctxutil.GetLogger(context)

	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return &Result{Success: false, Message: msgInvalidEmail, Error: CodeInvalidEmail}
	}
	if !emailPattern.MatchString(email) {
		return &Result{Success: false, Message: msgInvalidFormat, Error: CodeInvalidEmailFormat}
	}

	if !service.mailer.IsConfigured() {
		logger.Error("newsletter_transport_unconfigured")
		return &Result{Success: false, Message: msgMissingConfig, Error: CodeMissingConfig}
	}

	normalized := strings.ToLower(email)
	fresh, err := service.cache.Register(context, normalized)
	if err != nil {
		// Cache trouble must not block signups. Worst case we re-send a
		// confirmation the subscriber already has.
		logger.Warn("newsletter_cache_unavailable", slog.String("error", err.Error()))
		fresh = true
	}
	if !fresh {
		logger.Info("newsletter_duplicate_signup", slog.String("email", normalized))
		return &Result{Success: true, Message: msgAlreadySubscribed}
	}

	sendResult := service.mailer.SendNewsletterWelcome(context, mail.NewsletterData{UserEmail: email})
	if !sendResult.Success {
		logger.Error("newsletter_send_failed", slog.String("error", sendResult.Error))
		// Release the registration so the subscriber can try again.
		_ = service.cache.Forget(context, normalized)
		return &Result{Success: false, Message: msgSendError, Error: CodeSendError}
	}

	logger.Info("newsletter_subscribed", slog.String("email", normalized))
	return &Result{Success: true, Message: msgSubscribed}
}
