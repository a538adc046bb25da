package session

import (
	"context"

	"spice-garden/models"
)

// Store persists one order ledger per session ID. Load returns an empty
// ledger for a session that has never been saved (or whose entry expired).
type Store interface {
	Load(ctx context.Context, sessionID string) ([]models.OrderLine, error)
	Save(ctx context.Context, sessionID string, lines []models.OrderLine) error
	Delete(ctx context.Context, sessionID string) error
}
