package storage

import (
	"context"
	"fmt"

	"github.com/Veraticus/inbox-ledger/internal/model"
)

// SaveMessages inserts messages, deduplicating by hash. It returns the
// number of genuinely new rows.
func (s *SQLiteStorage) SaveMessages(ctx context.Context, messages []model.Message) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO messages (hash, sender, body, timestamp_millis, direction)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	inserted := 0
	for _, msg := range messages {
		direction := msg.Direction
		if direction == "" {
			direction = model.DirectionInbox
		}
		res, execErr := stmt.ExecContext(ctx,
			msg.GenerateHash(), msg.Sender, msg.Body, msg.TimestampMillis, string(direction))
		if execErr != nil {
			return 0, fmt.Errorf("failed to insert message: %w", execErr)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			inserted++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}
	return inserted, nil
}

// GetMessages returns all stored messages ordered by timestamp.
func (s *SQLiteStorage) GetMessages(ctx context.Context) ([]model.Message, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT sender, body, timestamp_millis, direction
		FROM messages
		ORDER BY timestamp_millis
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var messages []model.Message
	for rows.Next() {
		var msg model.Message
		var direction string
		if err := rows.Scan(&msg.Sender, &msg.Body, &msg.TimestampMillis, &direction); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		msg.Direction = model.MessageDirection(direction)
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

// GetMessageCount returns the number of stored messages.
func (s *SQLiteStorage) GetMessageCount(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM messages").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}
	return count, nil
}
