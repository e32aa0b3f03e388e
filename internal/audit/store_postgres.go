// Copyright (c) 2026 Corporación Cultural Barco de Papel. All rights reserved.

package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/barcodepapel/api/internal/platform/database/schema"
	"github.com/barcodepapel/api/pkg/uuid"
)

// PostgresStore implements [Recorder] over the system.auditlog table.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgreSQL-backed audit store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

/*
Append persists one record to the system.auditlog table.

Description: Assigns the ID and timestamp when the caller leaves them zero.
Metadata is stored as JSONB.

Parameters:
  - context: context.Context
  - record: Record

Returns:
  - error: Persistence failures
*/
func (store *PostgresStore) Append(context context.Context, record Record) error {
	const query = `
		INSERT INTO system.auditlog (
			id, action, entitytype, entityid, description, metadata, userid, username, createdat
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	if record.ID == "" {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	_, err := store.pool.Exec(context, query,
		record.ID,
		record.Action,
		record.Entity,
		record.EntityID,
		record.Description,
		record.Metadata,
		record.UserID,
		record.UserName,
		record.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_audit_store_append_failed: %w", err)
	}

	return nil
}

/*
List returns a page of records, newest first.

Parameters:
  - context: context.Context
  - limit: int
  - offset: int

Returns:
  - []Record: Page of records
  - int: Total count
  - error: Retrieval failures
*/
func (store *PostgresStore) List(context context.Context, limit, offset int) ([]Record, int, error) {
	countQuery := fmt.Sprintf("SELECT count(*) FROM %s", schema.SystemAuditLog.Table)

	var total int
	if err := store.pool.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("postgres_audit_store_count_failed: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s DESC
		LIMIT $1 OFFSET $2`,
		schema.SystemAuditLog.ID, schema.SystemAuditLog.Action, schema.SystemAuditLog.EntityType,
		schema.SystemAuditLog.EntityID, schema.SystemAuditLog.Description, schema.SystemAuditLog.Metadata,
		schema.SystemAuditLog.UserID, schema.SystemAuditLog.UserName, schema.SystemAuditLog.CreatedAt,
		schema.SystemAuditLog.Table, schema.SystemAuditLog.CreatedAt,
	)

	rows, err := store.pool.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_audit_store_list_failed: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var record Record
		if err := rows.Scan(
			&record.ID,
			&record.Action,
			&record.Entity,
			&record.EntityID,
			&record.Description,
			&record.Metadata,
			&record.UserID,
			&record.UserName,
			&record.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("postgres_audit_store_scan_failed: %w", err)
		}
		records = append(records, record)
	}

	return records, total, nil
}
