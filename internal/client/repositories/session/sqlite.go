package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pilearning/pilearn/internal/client/models"
	"github.com/pilearning/pilearn/internal/dbx"
)

// SQLiteRepository stores the session as a single JSON row. The CHECK
// constraint on the table keeps it to at most one row.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context) (*models.Identity, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM session WHERE id = 1`).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var ident models.Identity
	if err := json.Unmarshal(payload, &ident); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &ident, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, ident models.Identity) error {
	payload, err := json.Marshal(ident)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO session (id, payload) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET payload = excluded.payload
	`, payload)
	if err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM session`)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
