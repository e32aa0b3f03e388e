// Copyright (c) 2026 Corporación Cultural Barco de Papel. All rights reserved.

// Package events manages the cultural event calendar: the events shown on
// the public site plus the administration CRUD behind the admin panel.
package events

import "time"

// Event represents a calendar entry such as a concert, workshop or reading.
type Event struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Image        string    `json:"image"`
	Date         time.Time `json:"date"`
	Venue        string    `json:"venue"`
	EventDays    string    `json:"event_days"`
	ShowTime     string    `json:"show_time"`
	AudienceType string    `json:"audience_type"`
	Price        string    `json:"price"`
	State        int       `json:"state"`
	LinkURL      string    `json:"link_url"`
	CategoryID   string    `json:"category_id"`
	CategoryName string    `json:"category_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Category is the reference table grouping events (Música, Literatura, ...).
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Event states. Inactive events stay in the admin table but never reach the
// public calendar.
const (
	StateInactive = 0
	StateActive   = 1
)

// Read-side display defaults for optional columns.
const (
	DefaultPrice    = "Gratis"
	DefaultShowTime = "Sin hora"
)

// UpcomingWindowDays bounds the public calendar query: today through this
// many days ahead.
const UpcomingWindowDays = 60

const (
	FieldName       = "name"
	FieldDate       = "date"
	FieldCategoryID = "category_id"
	FieldLinkURL    = "link_url"
)

// ToggleResult is the outcome of flipping an event's state.
type ToggleResult struct {
	Success  bool   `json:"success"`
	NewState int    `json:"newState"`
	Message  string `json:"message"`
}

// stateLabel renders a state for audit descriptions.
func stateLabel(state int) string {
	if state == StateActive {
		return "Active"
	}
	return "Inactive"
}
