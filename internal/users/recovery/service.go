// Copyright (c) 2026 Corporación Cultural Barco de Papel. All rights reserved.

package recovery

import (
	"context"
	"log/slog"
	"regexp"
	"time"

	"github.com/barcodepapel/api/internal/audit"
	"github.com/barcodepapel/api/internal/mail"
	"github.com/barcodepapel/api/internal/platform/apperr"
	"github.com/barcodepapel/api/internal/platform/ctxutil"
	"github.com/barcodepapel/api/internal/platform/sec"
	"github.com/barcodepapel/api/internal/users/auth"
	"github.com/barcodepapel/api/pkg/pointer"
)

// emailPattern is the minimal shape check applied before any collaborator
// call: one non-blank local part, one "@", one dot in the domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// # Contracts

// UserDirectory is the narrow slice of the account repository the pipeline
// needs. Satisfied by [auth.PostgresUserRepository].
type UserDirectory interface {

	/*
		FindByEmail returns the account with the given email.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *auth.User: Hydrated entity
		  - error: Not found or retrieval failures
	*/
	FindByEmail(context context.Context, email string) (*auth.User, error)

	/*
		FindByID returns the account with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *auth.User: Hydrated entity
		  - error: Not found or retrieval failures
	*/
	FindByID(context context.Context, id string) (*auth.User, error)

	/*
		UpdatePassword replaces only the account's password hash.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - newHash: string

		Returns:
		  - error: Persistence failures
	*/
	UpdatePassword(context context.Context, userID, newHash string) error
}

// Service orchestrates the credential reset pipeline.
type Service struct {
	directory UserDirectory
	mailer    mail.Sender
	recorder  audit.Recorder
}

// NewService constructs a new [Service] with its collaborators.
func NewService(directory UserDirectory, mailer mail.Sender, recorder audit.Recorder) *Service {
	return &Service{
		directory: directory,
		mailer:    mailer,
		recorder:  recorder,
	}
}

// # Entry Points

/*
RecoverBySelf runs the self-service recovery flow for the given email.

Description: Validates the email shape locally, then hands off to
[Service.HandleReset] with self-service options. The notification email is
always attempted for this flow. No collaborator is called when validation
fails.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - *Result: Outcome value. Never nil.
*/
func (service *Service) RecoverBySelf(context context.Context, email string) *Result {
	if email == "" {
		return &Result{
			Success:   false,
			Message:   msgEmailRequired,
			ErrorCode: CodeEmailRequired,
			Error:     "Email requerido",
		}
	}

	if !emailPattern.MatchString(email) {
		return &Result{
			Success:   false,
			Message:   msgEmailInvalid,
			ErrorCode: CodeEmailInvalidFormat,
			Error:     "Formato de email inválido",
		}
	}

	return service.HandleReset(context, email, SelfService())
}

/*
ResetByAdministrator runs the administrative reset flow for a target account.

Description: Resolves the acting admin's display name from the directory
(best effort, falling back to "Administrador"), then hands off to
[Service.HandleReset]. sendEmail defaults to true when nil.

Parameters:
  - context: context.Context
  - targetUserID: string
  - sendEmail: *bool (nil means true)
  - actorID: string (acting admin account ID, may be empty)

Returns:
  - *Result: Outcome value. Never nil.
*/
func (service *Service) ResetByAdministrator(context context.Context, targetUserID string, sendEmail *bool, actorID string) *Result {
	if targetUserID == "" {
		return &Result{
			Success:   false,
			Message:   msgUserIDRequired,
			ErrorCode: CodeUserIDRequired,
			Error:     "User ID requerido",
		}
	}

	actorName := defaultActorName
	if actorID != "" {
		if actor, err := service.directory.FindByID(context, actorID); err == nil {
			if name := actor.DisplayName(); name != "" {
				actorName = name
			}
		}
	}

	options := Administrative(actorID, actorName)
	options.SendEmail = pointer.Fallback(sendEmail, true)

	return service.HandleReset(context, targetUserID, options)
}

// # Orchestrator

/*
HandleReset is the unified credential reset orchestrator.

Description: Runs the full pipeline in strict order with no retries:
resolve the target account, generate a temporary password, hash it, persist
the new hash, optionally deliver it by email, and append one audit record.
An email failure degrades the outcome message but never rolls back the
credential change. Any collaborator fault folds into a failure [Result];
nothing propagates to the caller.

Parameters:
  - context: context.Context
  - identifier: string (email for self-service, account ID for administrative)
  - options: Options

Returns:
  - *Result: Outcome value. Never nil.
*/
func (service *Service) HandleReset(context context.Context, identifier string, options Options) *Result {
	logger := ctxutil.GetLogger(context)
	logger.Info("password_reset_started",
		slog.String("reset_type", string(options.kind)),
	)

	// 1. Resolve the target account.
	user, failure := service.resolveUser(context, identifier, options)
	if failure != nil {
		return failure
	}

	// 2. Generate the temporary password.
	temporaryPassword, err := sec.GenerateTemporaryPassword(sec.TemporaryPasswordLength)
	if err != nil {
		return service.failure(options, err)
	}

	// 3. Hash it. The plaintext only travels into the result and the email.
	hashedPassword, err := sec.HashPassword(temporaryPassword)
	if err != nil {
		return service.failure(options, err)
	}

	// Captured before the overwrite: only a truncated prefix of the PRIOR
	// hash is ever recorded, never the new plaintext or the new hash.
	previousHashPrefix := truncateHash(user.PasswordHash)

	// 4. Persist the new hash. Unconditional, last writer wins.
	if err := service.directory.UpdatePassword(context, user.ID, hashedPassword); err != nil {
		return service.failure(options, err)
	}

	// 5. Deliver the temporary password when requested and possible.
	emailSent := false
	if options.SendEmail && service.mailer.IsConfigured() {
		resetBy := selfServiceActor
		if options.kind == kindAdministrative {
			resetBy = options.actorName
		}

		sendResult := service.mailer.SendPasswordReset(context, mail.PasswordResetData{
			UserName:          user.DisplayName(),
			UserEmail:         user.Email,
			TemporaryPassword: temporaryPassword,
			ResetBy:           resetBy,
		})

		emailSent = sendResult.Success
		if !sendResult.Success {
			logger.Error("password_reset_email_failed",
				slog.String("reset_type", string(options.kind)),
				slog.String("error", sendResult.Error),
			)
		}
	} else if options.SendEmail {
		logger.Error("password_reset_transport_unconfigured",
			slog.String("reset_type", string(options.kind)),
		)
	}

	// 6. Append exactly one audit record, regardless of the email outcome.
	if err := service.appendAudit(context, user, options, emailSent, previousHashPrefix); err != nil {
		return service.failure(options, err)
	}

	logger.Info("password_reset_completed",
		slog.String("reset_type", string(options.kind)),
		slog.Bool("email_sent", emailSent),
	)

	// 7. Success message: four variants (kind x emailSent).
	return &Result{
		Success:           true,
		Message:           successMessage(options.kind, emailSent),
		TemporaryPassword: temporaryPassword,
		EmailSent:         emailSent,
	}
}

// # Pipeline Steps

// resolveUser looks up the target account per the reset kind. Returns a
// failure result (never an error) when the lookup does not produce a user.
// Only a missing account maps to the not-found outcome; any other directory
// fault folds into the kind-specific generic failure.
//
// The not-found message for self-service recovery discloses account
// existence. Deliberate product decision, kept as-is.
func (service *Service) resolveUser(context context.Context, identifier string, options Options) (*auth.User, *Result) {
	if options.kind == kindSelfService {
		user, err := service.directory.FindByEmail(context, identifier)
		if err != nil {
			if !apperr.IsNotFound(err) {
				return nil, service.failure(options, err)
			}
			return nil, &Result{
				Success:   false,
				Message:   msgUserNotFoundEmail,
				ErrorCode: CodeUserNotFoundEmail,
				Error:     "No se encontró un usuario con ese email",
			}
		}
		return user, nil
	}

	user, err := service.directory.FindByID(context, identifier)
	if err != nil {
		if !apperr.IsNotFound(err) {
			return nil, service.failure(options, err)
		}
		return nil, &Result{
			Success:   false,
			Message:   msgUserNotFound,
			ErrorCode: CodeUserNotFound,
			Error:     "Usuario no encontrado",
		}
	}
	return user, nil
}

// appendAudit writes the single audit record of a completed reset.
func (service *Service) appendAudit(context context.Context, user *auth.User, options Options, emailSent bool, previousHashPrefix string) error {
	description := "Recuperación de contraseña completada para " + user.Email
	if options.kind == kindAdministrative {
		description = "Reset de contraseña para usuario \"" + user.DisplayName() + "\""
	}

	metadata := map[string]any{
		"userId":               user.ID,
		"email":                user.Email,
		"resetType":            string(options.kind),
		"emailSent":            emailSent,
		"previousPasswordHash": previousHashPrefix,
		"resetTimestamp":       time.Now().Format(time.RFC3339),
		"emailService":         mail.ServiceName,
	}
	if options.kind == kindAdministrative {
		metadata["resetByUserId"] = options.actorID
		metadata["resetByUserName"] = options.actorName
	}

	return service.recorder.Append(context, audit.Record{
		Action:      audit.ActionUserUpdate,
		Entity:      audit.EntityUser,
		EntityID:    user.ID,
		Description: description,
		Metadata:    metadata,
		UserID:      options.actorID,
		UserName:    options.actorName,
	})
}

// failure converts an unexpected collaborator fault into the kind-specific
// generic failure result. The diagnostic goes into Error, never into Message.
func (service *Service) failure(options Options, err error) *Result {
	message := msgRecoveryFailed
	if options.kind == kindAdministrative {
		message = msgResetFailed
	}
	return &Result{
		Success:   false,
		Message:   message,
		ErrorCode: CodeResetFailed,
		Error:     err.Error(),
	}
}

// successMessage selects among the four success variants.
func successMessage(kind resetKind, emailSent bool) string {
	if kind == kindSelfService {
		if emailSent {
			return msgRecoveryEmailSent
		}
		return msgRecoveryDone
	}
	if emailSent {
		return msgResetEmailSent
	}
	return msgResetDone
}

// truncateHash reduces a credential hash to a short prefix safe for audit
// metadata.
func truncateHash(hash string) string {
	if len(hash) > 10 {
		hash = hash[:10]
	}
	return hash + "..."
}
