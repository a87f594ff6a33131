package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Veraticus/inbox-ledger/internal/model"
)

// ExistsBankMessage reports whether a bank message with the same
// sender, body, and timestamp is already stored. This triple is the
// orchestrator's duplicate-detection key.
func (s *SQLiteStorage) ExistsBankMessage(ctx context.Context, sender, body string, timestampMillis int64) (bool, error) {
	if err := validateContext(ctx); err != nil {
		return false, err
	}

	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM bank_messages
		WHERE sender = ? AND body = ? AND timestamp_millis = ?
	`, sender, body, timestampMillis).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check bank message existence: %w", err)
	}
	return count > 0, nil
}

// InsertBankMessages batch-inserts bank messages and returns the hashes
// of the rows actually written.
func (s *SQLiteStorage) InsertBankMessages(ctx context.Context, records []model.BankMessage) ([]string, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO bank_messages
			(hash, sender, body, timestamp_millis, confidence, indicators, classified_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	var inserted []string
	for _, record := range records {
		indicatorsJSON := ""
		if len(record.Indicators) > 0 {
			data, marshalErr := json.Marshal(record.Indicators)
			if marshalErr == nil {
				indicatorsJSON = string(data)
			}
		}

		res, execErr := stmt.ExecContext(ctx,
			record.Hash,
			record.Sender,
			record.Body,
			record.TimestampMillis,
			record.Confidence,
			indicatorsJSON,
			record.ClassifiedAt,
		)
		if execErr != nil {
			return nil, fmt.Errorf("failed to insert bank message %s: %w", record.Hash, execErr)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			inserted = append(inserted, record.Hash)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}
	return inserted, nil
}
