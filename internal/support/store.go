// Copyright (c) 2026 Corporación Cultural Barco de Papel. All rights reserved.

package support

import "context"

type Repository interface {
	ListTickets(context context.Context, limit, offset int) ([]*Ticket, int, error)
	GetTicket(context context.Context, id string) (*Ticket, error)
	CreateTicket(context context.Context, t *Ticket) error
	UpdateState(context context.Context, id, state string) error
}
