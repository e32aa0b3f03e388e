// Copyright (c) 2026 Corporación Cultural Barco de Papel. All rights reserved.

package events

import (
	"context"
	"fmt"
	"time"

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

// selectColumns is the shared projection joining each event to its category
// name. Nullable text columns collapse to empty strings here so the entity
// stays pointer-free.
func selectColumns() string {
	return fmt.Sprintf(`
		e.%s, e.%s, e.%s, COALESCE(e.%s, ''), e.%s,
		COALESCE(e.%s, ''), COALESCE(e.%s, ''), COALESCE(e.%s, ''), COALESCE(e.%s, ''),
		COALESCE(e.%s, ''), e.%s, COALESCE(e.%s, ''), e.%s, COALESCE(c.%s, ''),
		e.%s, e.%s
	`,
		schema.ContentEvent.ID, schema.ContentEvent.Name, schema.ContentEvent.Slug,
		schema.ContentEvent.Image, schema.ContentEvent.Date,
		schema.ContentEvent.Venue, schema.ContentEvent.EventDays, schema.ContentEvent.ShowTime,
		schema.ContentEvent.AudienceType,
		schema.ContentEvent.Price, schema.ContentEvent.State, schema.ContentEvent.LinkURL,
		schema.ContentEvent.CategoryID, schema.ContentEventCategory.Name,
		schema.ContentEvent.CreatedAt, schema.ContentEvent.UpdatedAt,
	)
}

func fromJoin() string {
	return fmt.Sprintf(`FROM %s e LEFT JOIN %s c ON c.%s = e.%s`,
		schema.ContentEvent.Table, schema.ContentEventCategory.Table,
		schema.ContentEventCategory.ID, schema.ContentEvent.CategoryID,
	)
}

func scanEvent(row interface{ Scan(dest ...any) error }, e *Event) error {
	return row.Scan(
		&e.ID, &e.Name, &e.Slug, &e.Image, &e.Date,
		&e.Venue, &e.EventDays, &e.ShowTime, &e.AudienceType,
		&e.Price, &e.State, &e.LinkURL, &e.CategoryID, &e.CategoryName,
		&e.CreatedAt, &e.UpdatedAt,
	)
}

func (repository *PostgresRepository) ListEvents(context context.Context, limit, offset int) ([]*Event, int, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.ContentEvent.Table)

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_events")
	}

	query := fmt.Sprintf(`SELECT %s %s ORDER BY e.%s DESC LIMIT $1 OFFSET $2`,
		selectColumns(), fromJoin(), schema.ContentEvent.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_events")
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		e := &Event{}
		if err := scanEvent(rows, e); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_event")
		}
		events = append(events, e)
	}

	return events, total, nil
}

func (repository *PostgresRepository) GetEvent(context context.Context, id string) (*Event, error) {
	query := fmt.Sprintf(`SELECT %s %s WHERE e.%s = $1`,
		selectColumns(), fromJoin(), schema.ContentEvent.ID,
	)

	e := &Event{}
	err := scanEvent(repository.db.QueryRow(context, query, id), e)

	return e, dberr.Wrap(err, "get_event")
}

func (repository *PostgresRepository) ListUpcoming(context context.Context, from, until time.Time, limit int) ([]*Event, error) {
	query := fmt.Sprintf(`
		SELECT %s %s
		WHERE e.%s >= $1 AND e.%s <= $2 AND e.%s = $3
		ORDER BY e.%s ASC
	`,
		selectColumns(), fromJoin(),
		schema.ContentEvent.Date, schema.ContentEvent.Date, schema.ContentEvent.State,
		schema.ContentEvent.Date,
	)

	args := []any{from, until, StateActive}
	if limit > 0 {
		query += ` LIMIT $4`
		args = append(args, limit)
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_upcoming_events")
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		e := &Event{}
		if err := scanEvent(rows, e); err != nil {
			return nil, dberr.Wrap(err, "scan_event")
		}
		events = append(events, e)
	}

	return events, nil
}

func (repository *PostgresRepository) CreateEvent(context context.Context, e *Event) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''),
		        NULLIF($9, ''), NULLIF($10, ''), $11, NULLIF($12, ''), $13, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.ContentEvent.Table,
		schema.ContentEvent.ID, schema.ContentEvent.Name, schema.ContentEvent.Slug,
		schema.ContentEvent.Image, schema.ContentEvent.Date, schema.ContentEvent.Venue,
		schema.ContentEvent.EventDays, schema.ContentEvent.ShowTime, schema.ContentEvent.AudienceType,
		schema.ContentEvent.Price, schema.ContentEvent.State, schema.ContentEvent.LinkURL,
		schema.ContentEvent.CategoryID, schema.ContentEvent.CreatedAt, schema.ContentEvent.UpdatedAt,
		schema.ContentEvent.CreatedAt, schema.ContentEvent.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		e.ID, e.Name, e.Slug, e.Image, e.Date, e.Venue,
		e.EventDays, e.ShowTime, e.AudienceType, e.Price, e.State, e.LinkURL, e.CategoryID,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
	return dberr.Wrap(err, "create_event")
}

func (repository *PostgresRepository) UpdateEvent(context context.Context, e *Event) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = NULLIF($4, ''), %s = $5, %s = NULLIF($6, ''),
		    %s = NULLIF($7, ''), %s = NULLIF($8, ''), %s = NULLIF($9, ''), %s = NULLIF($10, ''),
		    %s = $11, %s = NULLIF($12, ''), %s = $13, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.ContentEvent.Table,
		schema.ContentEvent.Name, schema.ContentEvent.Slug, schema.ContentEvent.Image,
		schema.ContentEvent.Date, schema.ContentEvent.Venue,
		schema.ContentEvent.EventDays, schema.ContentEvent.ShowTime, schema.ContentEvent.AudienceType,
		schema.ContentEvent.Price,
		schema.ContentEvent.State, schema.ContentEvent.LinkURL, schema.ContentEvent.CategoryID,
		schema.ContentEvent.UpdatedAt,
		schema.ContentEvent.ID,
		schema.ContentEvent.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		e.ID, e.Name, e.Slug, e.Image, e.Date, e.Venue,
		e.EventDays, e.ShowTime, e.AudienceType, e.Price, e.State, e.LinkURL, e.CategoryID,
	).Scan(&e.UpdatedAt)
	return dberr.Wrap(err, "update_event")
}

func (repository *PostgresRepository) UpdateState(context context.Context, id string, state int) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1`,
		schema.ContentEvent.Table, schema.ContentEvent.State, schema.ContentEvent.UpdatedAt,
		schema.ContentEvent.ID,
	)

	cmd, err := repository.db.Exec(context, query, id, state)
	if err != nil {
		return dberr.Wrap(err, "update_event_state")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteEvent(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.ContentEvent.Table, schema.ContentEvent.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_event")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) ListCategories(context context.Context) ([]*Category, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s ORDER BY %s ASC`,
		schema.ContentEventCategory.ID, schema.ContentEventCategory.Name,
		schema.ContentEventCategory.CreatedAt, schema.ContentEventCategory.Table,
		schema.ContentEventCategory.Name,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_event_categories")
	}
	defer rows.Close()

	var categories []*Category
	for rows.Next() {
		c := &Category{}
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_event_category")
		}
		categories = append(categories, c)
	}

	return categories, nil
}
