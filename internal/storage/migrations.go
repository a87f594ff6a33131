package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version the application
// expects. Failure to reach it is fatal.
const ExpectedSchemaVersion = 3

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Messages table with dedup hash",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS messages (
					hash TEXT PRIMARY KEY,
					sender TEXT NOT NULL,
					body TEXT NOT NULL,
					timestamp_millis INTEGER NOT NULL,
					direction TEXT NOT NULL DEFAULT 'inbox',
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_messages_sender ON messages(sender)`,
				`CREATE INDEX idx_messages_timestamp ON messages(timestamp_millis)`,
			}
			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Bank messages table for classifier output",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS bank_messages (
					hash TEXT PRIMARY KEY,
					sender TEXT NOT NULL,
					body TEXT NOT NULL,
					timestamp_millis INTEGER NOT NULL,
					confidence REAL NOT NULL DEFAULT 0,
					indicators TEXT,
					classified_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE UNIQUE INDEX idx_bank_messages_key ON bank_messages(sender, body, timestamp_millis)`,
			}
			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     3,
		Description: "Bill events table with mutable status",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS bill_events (
					id TEXT PRIMARY KEY,
					bank TEXT NOT NULL,
					amount REAL NOT NULL DEFAULT 0,
					due_date TEXT,
					type TEXT NOT NULL,
					raw_message TEXT NOT NULL,
					sender TEXT NOT NULL,
					status TEXT NOT NULL,
					confidence REAL NOT NULL DEFAULT 0,
					parsed_at DATETIME NOT NULL,
					user_id TEXT
				)`,
				`CREATE INDEX idx_bill_events_bank ON bill_events(bank)`,
				`CREATE INDEX idx_bill_events_status ON bill_events(status)`,
			}
			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
}

// Migrate applies all pending schema migrations in order.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var currentVersion int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion); err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin migration transaction: %w", err)
		}

		if err := migration.Up(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", migration.Version, migration.Description, err)
		}

		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to set schema version %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}

		slog.Info("applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	return nil
}
