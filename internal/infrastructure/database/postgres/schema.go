package postgres

import (
	"context"
	"customer-service/internal/pkg/apperrors"
	"fmt"
	"log/slog"
)

const createCustomersTableQuery = `
        CREATE TABLE IF NOT EXISTS customers (
            id            UUID PRIMARY KEY,
            first_name    TEXT NOT NULL,
            last_name     TEXT NOT NULL,
            email_address TEXT NOT NULL UNIQUE,
            phone_number  TEXT NOT NULL DEFAULT '',
            address       TEXT NOT NULL DEFAULT '',
            created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`

// EnsureSchema creates the customers table when it does not exist yet.
func EnsureSchema(ctx context.Context, db DBPool, logger *slog.Logger) error {
	logger.Info("Ensuring customers table exists...")
	if _, err := db.Exec(ctx, createCustomersTableQuery); err != nil {
		logger.Error("Failed to create customers table", "error", err)
		return fmt.Errorf("%w: failed to create customers table: %w", apperrors.ErrDatabase, err)
	}
	return nil
}
