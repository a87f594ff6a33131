package model

import (
	"time"

	"github.com/google/uuid"
)

// BillEventType indicates which kind of financial event was extracted.
type BillEventType string

// Bill event type constants.
const (
	EventTypeBill        BillEventType = "bill"
	EventTypePayment     BillEventType = "payment"
	EventTypeTransaction BillEventType = "transaction"
)

// BillEventStatus is the lifecycle state of an extracted event.
type BillEventStatus string

// Bill event status constants. The extractor sets the initial status
// from the event type; only the bill status updater mutates it afterwards.
const (
	StatusPending   BillEventStatus = "pending"
	StatusCompleted BillEventStatus = "completed"
	StatusNoted     BillEventStatus = "noted"
	StatusPaid      BillEventStatus = "paid"
	StatusDismissed BillEventStatus = "dismissed"
)

// UnknownBank is the bank value for a generic match with no resolvable sender.
const UnknownBank = "UNKNOWN"

// BillEvent is a structured financial event extracted from a single SMS.
// The JSON field names are the serialization contract the transport
// layer depends on; do not rename them.
type BillEvent struct {
	ID         string          `json:"id"`
	Bank       string          `json:"bank"`
	Amount     float64         `json:"amount"`
	DueDate    string          `json:"dueDate,omitempty"`
	Type       BillEventType   `json:"type"`
	RawMessage string          `json:"rawMessage"`
	Sender     string          `json:"sender"`
	Status     BillEventStatus `json:"status"`
	Confidence float64         `json:"confidence"`
	ParsedAt   time.Time       `json:"parsedAt"`
	UserID     string          `json:"userId,omitempty"`
}

// NewEventID generates a globally unique event identifier. Uniqueness
// without coordination is the only contract; callers must not parse it.
func NewEventID() string {
	return uuid.New().String()
}

// InitialStatus returns the lifecycle status a freshly extracted event
// of the given type starts in.
func InitialStatus(t BillEventType) BillEventStatus {
	switch t {
	case EventTypePayment:
		return StatusCompleted
	case EventTypeTransaction:
		return StatusNoted
	default:
		return StatusPending
	}
}
