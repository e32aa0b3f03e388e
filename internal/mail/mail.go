// Copyright (c) 2026 Corporación Cultural Barco de Papel. All rights reserved.

/*
Package mail implements the transactional email transport.

It centralizes every outbound email of the platform:
  - Credential reset notifications
  - Newsletter subscription confirmations
  - Support ticket notifications to the admin inbox

# Architecture

Domain services depend on the [Sender] contract, never on the SMTP
implementation. A send against an unconfigured transport returns a failed
[SendResult]; it never panics and never blocks the calling operation.
*/
package mail

import "context"

// ServiceName identifies the transport in audit metadata.
const ServiceName = "SMTP"

// SendResult describes the outcome of a single delivery attempt.
type SendResult struct {
	Success   bool   `json:"success"`
	MessageID string `json:"message_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

// # Payloads

// PasswordResetData carries the fields of a credential reset notification.
type PasswordResetData struct {
	UserName          string
	UserEmail         string
	TemporaryPassword string
	ResetBy           string
}

// NewsletterData carries the fields of a subscription confirmation.
type NewsletterData struct {
	UserEmail string
}

// TicketNotificationData carries the fields of a new-ticket notification.
type TicketNotificationData struct {
	TicketCode        string
	TicketTitle       string
	TicketPriority    string
	TicketDescription string
	UserName          string
	UserEmail         string
	AdminEmail        string
}

// # Contract

// Sender defines the outbound email contract used by the domain services.
type Sender interface {

	// IsConfigured reports whether the transport has enough configuration
	// to attempt a delivery.
	IsConfigured() bool

	/*
		SendPasswordReset delivers the temporary credential to the user.

		Parameters:
		  - context: context.Context
		  - data: PasswordResetData

		Returns:
		  - SendResult: Delivery outcome. Never panics on misconfiguration.
	*/
	SendPasswordReset(context context.Context, data PasswordResetData) SendResult

	/*
		SendNewsletterWelcome delivers the subscription confirmation.

		Parameters:
		  - context: context.Context
		  - data: NewsletterData

		Returns:
		  - SendResult: Delivery outcome.
	*/
	SendNewsletterWelcome(context context.Context, data NewsletterData) SendResult

	/*
		SendTicketNotification notifies the admin inbox about a new ticket.

		Parameters:
		  - context: context.Context
		  - data: TicketNotificationData

		Returns:
		  - SendResult: Delivery outcome.
	*/
	SendTicketNotification(context context.Context, data TicketNotificationData) SendResult

	/*
		TestConfiguration sends a self-addressed probe to verify the transport.

		Parameters:
		  - context: context.Context

		Returns:
		  - SendResult: Delivery outcome of the probe.
	*/
	TestConfiguration(context context.Context) SendResult
}
