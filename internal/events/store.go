// Copyright (c) 2026 Corporación Cultural Barco de Papel. All rights reserved.

package events

import (
	"context"
	"time"
)

type Repository interface {
	ListEvents(context context.Context, limit, offset int) ([]*Event, int, error)
	GetEvent(context context.Context, id string) (*Event, error)
	ListUpcoming(context context.Context, from, until time.Time, limit int) ([]*Event, error)
	CreateEvent(context context.Context, e *Event) error
	UpdateEvent(context context.Context, e *Event) error
	UpdateState(context context.Context, id string, state int) error
	DeleteEvent(context context.Context, id string) error
	ListCategories(context context.Context) ([]*Category, error)
}
