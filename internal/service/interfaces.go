// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/Veraticus/inbox-ledger/internal/model"
)

// Storage defines the contract for our persistence layer. The engines
// themselves are pure; this is the single point where classification
// and extraction results leave the core.
type Storage interface {
	// Message operations
	SaveMessages(ctx context.Context, messages []model.Message) (int, error)
	GetMessages(ctx context.Context) ([]model.Message, error)
	GetMessageCount(ctx context.Context) (int, error)

	// Bank message operations: the orchestrator's dedup hand-off.
	ExistsBankMessage(ctx context.Context, sender, body string, timestampMillis int64) (bool, error)
	InsertBankMessages(ctx context.Context, records []model.BankMessage) ([]string, error)

	// Bill event operations
	SaveBillEvents(ctx context.Context, events []model.BillEvent) error
	GetBillEvents(ctx context.Context) ([]model.BillEvent, error)
	GetBillEventByID(ctx context.Context, id string) (*model.BillEvent, error)
	UpdateBillStatus(ctx context.Context, id string, status model.BillEventStatus) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}
