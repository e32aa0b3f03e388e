// Copyright (c) 2026 Corporación Cultural Barco de Papel. All rights reserved.

// Package support receives problem reports from the public site and turns
// them into tickets the administrators triage from the admin panel.
package support

import "time"

// Ticket is a single problem report.
type Ticket struct {
	ID            string    `json:"id"`
	Code          string    `json:"code"`
	Title         string    `json:"title"`
	Priority      string    `json:"priority"`
	Description   string    `json:"description"`
	ReporterName  string    `json:"reporter_name"`
	ReporterEmail string    `json:"reporter_email"`
	State         string    `json:"state"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Priorities, as submitted by the report form.
const (
	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
)

// Lifecycle states.
const (
	StateOpen       = "OPEN"
	StateInProgress = "IN_PROGRESS"
	StateClosed     = "CLOSED"
)

const (
	FieldTitle         = "title"
	FieldPriority      = "priority"
	FieldDescription   = "description"
	FieldReporterName  = "reporter_name"
	FieldReporterEmail = "reporter_email"
	FieldState         = "state"
)
