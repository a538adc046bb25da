package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"spice-garden/models"
)

// PostgresStore keeps session ledgers in a sessions table, order lines as
// JSONB. Survives process restarts, so web sessions can resume mid-order.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Load(ctx context.Context, sessionID string) ([]models.OrderLine, error) {
	var linesJSON []byte
	err := s.pool.QueryRow(ctx, `
		SELECT orders FROM sessions WHERE id = $1`,
		sessionID,
	).Scan(&linesJSON)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var lines []models.OrderLine
	if len(linesJSON) > 0 {
		if err := json.Unmarshal(linesJSON, &lines); err != nil {
			return nil, fmt.Errorf("unmarshal session orders: %w", err)
		}
	}
	return lines, nil
}

func (s *PostgresStore) Save(ctx context.Context, sessionID string, lines []models.OrderLine) error {
	linesJSON, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("marshal session orders: %w", err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO sessions (id, orders, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (id) DO UPDATE SET
			orders = $2,
			updated_at = now()`,
		sessionID, linesJSON,
	)
	return err
}

func (s *PostgresStore) Delete(ctx context.Context, sessionID string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, sessionID)
	return err
}
