package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialStatus(t *testing.T) {
	tests := []struct {
		name      string
		eventType BillEventType
		want      BillEventStatus
	}{
		{name: "bill starts pending", eventType: EventTypeBill, want: StatusPending},
		{name: "payment starts completed", eventType: EventTypePayment, want: StatusCompleted},
		{name: "transaction starts noted", eventType: EventTypeTransaction, want: StatusNoted},
		{name: "unknown type defaults to pending", eventType: BillEventType("other"), want: StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InitialStatus(tt.eventType))
		})
	}
}

func TestNewEventIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		id := NewEventID()
		require.NotEmpty(t, id)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestBillEventJSONFieldNames(t *testing.T) {
	// The JSON field names are the contract consumers depend on; a
	// rename here is a breaking change.
	event := BillEvent{
		ID:         "abc",
		Bank:       "HDFC",
		Amount:     15000,
		DueDate:    "2024-01-15",
		Type:       EventTypeBill,
		RawMessage: "raw",
		Sender:     "HDFC-BANK",
		Status:     StatusPending,
		Confidence: 0.95,
		UserID:     "user-42",
	}

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))

	for _, key := range []string{
		"id", "bank", "amount", "dueDate", "type", "rawMessage",
		"sender", "status", "confidence", "parsedAt", "userId",
	} {
		assert.Contains(t, fields, key)
	}
}

func TestBillEventJSONOmitsEmptyOptionals(t *testing.T) {
	data, err := json.Marshal(BillEvent{ID: "abc"})
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))

	assert.NotContains(t, fields, "dueDate")
	assert.NotContains(t, fields, "userId")
}
