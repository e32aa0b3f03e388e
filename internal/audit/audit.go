// Copyright (c) 2026 Corporación Cultural Barco de Papel. All rights reserved.

/*
Package audit implements the append-only activity trail of the back office.

Every sensitive mutation (account changes, credential resets, event
management, ticket intake) appends one Record describing who did what to
which entity. Records are never updated or deleted.
*/
package audit

import (
	"context"
	"time"
)

// # Actions & Entities

// Action identifiers recorded in the trail. Dot-separated entity.verb form.
const (
	ActionUserCreate   = "user.create"
	ActionUserUpdate   = "user.update"
	ActionEventCreate  = "event.create"
	ActionEventUpdate  = "event.update"
	ActionEventDelete  = "event.delete"
	ActionTicketCreate = "ticket.create"
)

// Entity identifiers recorded in the trail.
const (
	EntityUser   = "User"
	EntityEvent  = "Event"
	EntityTicket = "Ticket"
)

// # Domain Entities

// Record represents one immutable entry of the activity trail.
type Record struct {
	ID          string         `json:"id"`
	Action      string         `json:"action"`
	Entity      string         `json:"entity"`
	EntityID    string         `json:"entity_id"`
	Description string         `json:"description"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	UserID      string         `json:"user_id,omitempty"`
	UserName    string         `json:"user_name,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// # Contracts

// Recorder defines the append contract used by the domain services.
type Recorder interface {

	/*
		Append persists one record to the trail.

		Parameters:
		  - context: context.Context
		  - record: Record

		Returns:
		  - error: Persistence failures
	*/
	Append(context context.Context, record Record) error
}
