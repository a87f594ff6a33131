package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Veraticus/inbox-ledger/internal/model"
)

// SaveBillEvents inserts a batch of extracted events.
func (s *SQLiteStorage) SaveBillEvents(ctx context.Context, events []model.BillEvent) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO bill_events
			(id, bank, amount, due_date, type, raw_message, sender, status, confidence, parsed_at, user_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, event := range events {
		if _, execErr := stmt.ExecContext(ctx,
			event.ID,
			event.Bank,
			event.Amount,
			event.DueDate,
			string(event.Type),
			event.RawMessage,
			event.Sender,
			string(event.Status),
			event.Confidence,
			event.ParsedAt,
			event.UserID,
		); execErr != nil {
			return fmt.Errorf("failed to insert bill event %s: %w", event.ID, execErr)
		}
	}

	return tx.Commit()
}

// GetBillEvents returns all stored events, newest first.
func (s *SQLiteStorage) GetBillEvents(ctx context.Context) ([]model.BillEvent, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, bank, amount, due_date, type, raw_message, sender, status, confidence, parsed_at, user_id
		FROM bill_events
		ORDER BY parsed_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query bill events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var events []model.BillEvent
	for rows.Next() {
		event, scanErr := scanBillEvent(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		events = append(events, *event)
	}
	return events, rows.Err()
}

// GetBillEventByID fetches a single event.
func (s *SQLiteStorage) GetBillEventByID(ctx context.Context, id string) (*model.BillEvent, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, bank, amount, due_date, type, raw_message, sender, status, confidence, parsed_at, user_id
		FROM bill_events
		WHERE id = ?
	`, id)

	event, err := scanBillEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: bill event %s", ErrNotFound, id)
	}
	return event, err
}

// UpdateBillStatus sets the lifecycle status of an event. Status is the
// only field that changes after extraction.
func (s *SQLiteStorage) UpdateBillStatus(ctx context.Context, id string, status model.BillEventStatus) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		"UPDATE bill_events SET status = ? WHERE id = ?", string(status), id)
	if err != nil {
		return fmt.Errorf("failed to update bill status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: bill event %s", ErrNotFound, id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBillEvent(row rowScanner) (*model.BillEvent, error) {
	var event model.BillEvent
	var eventType, status string
	var dueDate, userID sql.NullString

	err := row.Scan(
		&event.ID,
		&event.Bank,
		&event.Amount,
		&dueDate,
		&eventType,
		&event.RawMessage,
		&event.Sender,
		&status,
		&event.Confidence,
		&event.ParsedAt,
		&userID,
	)
	if err != nil {
		return nil, err
	}

	event.Type = model.BillEventType(eventType)
	event.Status = model.BillEventStatus(status)
	event.DueDate = dueDate.String
	event.UserID = userID.String
	return &event, nil
}
