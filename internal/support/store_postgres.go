// Copyright (c) 2026 Corporación Cultural Barco de Papel. All rights reserved.

package support

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/barcodepapel/api/internal/platform/database/schema"
	"github.com/barcodepapel/api/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListTickets(context context.Context, limit, offset int) ([]*Ticket, int, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.SupportTicket.Table)

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_tickets")
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s DESC
		LIMIT $1 OFFSET $2
	`,
		schema.SupportTicket.ID, schema.SupportTicket.Code, schema.SupportTicket.Title,
		schema.SupportTicket.Priority, schema.SupportTicket.Description,
		schema.SupportTicket.ReporterName, schema.SupportTicket.ReporterEmail,
		schema.SupportTicket.State, schema.SupportTicket.CreatedAt, schema.SupportTicket.UpdatedAt,
		schema.SupportTicket.Table, schema.SupportTicket.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_tickets")
	}
	defer rows.Close()

	var tickets []*Ticket
	for rows.Next() {
		t := &Ticket{}
		if err := rows.Scan(
			&t.ID, &t.Code, &t.Title, &t.Priority, &t.Description,
			&t.ReporterName, &t.ReporterEmail, &t.State, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_ticket")
		}
		tickets = append(tickets, t)
	}

	return tickets, total, nil
}

func (repository *PostgresRepository) GetTicket(context context.Context, id string) (*Ticket, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.SupportTicket.ID, schema.SupportTicket.Code, schema.SupportTicket.Title,
		schema.SupportTicket.Priority, schema.SupportTicket.Description,
		schema.SupportTicket.ReporterName, schema.SupportTicket.ReporterEmail,
		schema.SupportTicket.State, schema.SupportTicket.CreatedAt, schema.SupportTicket.UpdatedAt,
		schema.SupportTicket.Table, schema.SupportTicket.ID,
	)

	t := &Ticket{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&t.ID, &t.Code, &t.Title, &t.Priority, &t.Description,
		&t.ReporterName, &t.ReporterEmail, &t.State, &t.CreatedAt, &t.UpdatedAt,
	)

	return t, dberr.Wrap(err, "get_ticket")
}

func (repository *PostgresRepository) CreateTicket(context context.Context, t *Ticket) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.SupportTicket.Table,
		schema.SupportTicket.ID, schema.SupportTicket.Code, schema.SupportTicket.Title,
		schema.SupportTicket.Priority, schema.SupportTicket.Description,
		schema.SupportTicket.ReporterName, schema.SupportTicket.ReporterEmail,
		schema.SupportTicket.State, schema.SupportTicket.CreatedAt, schema.SupportTicket.UpdatedAt,
		schema.SupportTicket.CreatedAt, schema.SupportTicket.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		t.ID, t.Code, t.Title, t.Priority, t.Description,
		t.ReporterName, t.ReporterEmail, t.State,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
	return dberr.Wrap(err, "create_ticket")
}

func (repository *PostgresRepository) UpdateState(context context.Context, id, state string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1`,
		schema.SupportTicket.Table, schema.SupportTicket.State, schema.SupportTicket.UpdatedAt,
		schema.SupportTicket.ID,
	)

	cmd, err := repository.db.Exec(context, query, id, state)
	if err != nil {
		return dberr.Wrap(err, "update_ticket_state")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
