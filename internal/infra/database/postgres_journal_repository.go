package database

import (
	"context"
	"database/sql"
	"fmt"

	"homework_status_bot/internal/domain/notification"
)

const createDeliveriesTable = `CREATE TABLE IF NOT EXISTS notification_deliveries (
	id         BIGSERIAL PRIMARY KEY,
	chat_id    BIGINT      NOT NULL,
	kind       TEXT        NOT NULL,
	text       TEXT        NOT NULL,
	result     TEXT        NOT NULL,
	error      TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresJournalRepository stores delivery attempts in 'notification_deliveries'.
type PostgresJournalRepository struct {
	db *sql.DB
}

func NewPostgresJournalRepository(db *sql.DB) *PostgresJournalRepository {
	return &PostgresJournalRepository{db: db}
}

// EnsureSchema creates the journal table if it does not exist yet.
func (r *PostgresJournalRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createDeliveriesTable); err != nil {
		return fmt.Errorf("error creating notification_deliveries table: %w", err)
	}
	return nil
}

func (r *PostgresJournalRepository) Record(ctx context.Context, d *notification.Delivery) error {
	query := `INSERT INTO notification_deliveries (chat_id, kind, text, result, error)
               VALUES ($1, $2, $3, $4, $5)
               RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query, d.ChatID, d.Kind, d.Text, d.Result, d.Error).Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		return fmt.Errorf("error recording notification delivery: %w", err)
	}
	return nil
}
