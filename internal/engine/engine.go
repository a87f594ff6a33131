// Package engine orchestrates classification and extraction over
// batches of messages and hands new Bank traffic to storage.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Veraticus/inbox-ledger/internal/classify"
	"github.com/Veraticus/inbox-ledger/internal/extract"
	"github.com/Veraticus/inbox-ledger/internal/model"
	"github.com/Veraticus/inbox-ledger/internal/service"
)

// Engine wires the pure classifier and extractor to the storage
// collaborator. The engines themselves are stateless; storage access is
// the only stateful step and happens once per batch.
type Engine struct {
	classifier *classify.Classifier
	extractor  *extract.Extractor
	storage    service.Storage
}

// New creates an engine. Storage may be nil for callers that only want
// in-memory batch results; the Bank hand-off is skipped in that case.
func New(storage service.Storage) *Engine {
	return &Engine{
		classifier: classify.NewClassifier(),
		extractor:  extract.NewExtractor(),
		storage:    storage,
	}
}

// Classify classifies a single message.
func (e *Engine) Classify(body, sender string) model.CategoryDecision {
	return e.classifier.Classify(body, sender)
}

// Extract extracts a bill event from a single message, or nil.
func (e *Engine) Extract(body, sender string) *model.BillEvent {
	return e.extractor.Extract(body, sender)
}

// BatchResult aggregates a classification run over a message list.
// Every category bucket is present even when empty.
type BatchResult struct {
	ByCategory      map[model.Category][]model.CategorizedMessage `json:"byCategory"`
	Counts          map[model.Category]int                        `json:"counts"`
	Total           int                                           `json:"total"`
	NewBankMessages []model.BankMessage                           `json:"newBankMessagesForStorage"`
	StoredIDs       []string                                      `json:"-"`
}

// ClassifyAll classifies every message independently, preserving input
// order within each bucket. Bank-classified messages are checked
// against storage by (sender, body, timestamp) and only genuinely new
// ones are batch-inserted, so repeated runs over overlapping message
// sets do not accumulate duplicates.
func (e *Engine) ClassifyAll(ctx context.Context, messages []model.Message) (*BatchResult, error) {
	result := &BatchResult{
		ByCategory: make(map[model.Category][]model.CategorizedMessage, len(model.Categories)),
		Counts:     make(map[model.Category]int, len(model.Categories)),
		Total:      len(messages),
	}
	for _, cat := range model.Categories {
		result.ByCategory[cat] = []model.CategorizedMessage{}
		result.Counts[cat] = 0
	}

	for _, msg := range messages {
		decision := e.classifier.Classify(msg.Body, msg.Sender)
		result.ByCategory[decision.Category] = append(result.ByCategory[decision.Category], model.CategorizedMessage{
			Message:  msg,
			Decision: decision,
		})
		result.Counts[decision.Category]++

		if decision.Category != model.CategoryBank || e.storage == nil {
			continue
		}

		exists, err := e.storage.ExistsBankMessage(ctx, msg.Sender, msg.Body, msg.TimestampMillis)
		if err != nil {
			slog.Warn("existence check failed, skipping bank message",
				"sender", msg.Sender, "error", err)
			continue
		}
		if exists {
			continue
		}
		result.NewBankMessages = append(result.NewBankMessages, model.BankMessage{
			Hash:            msg.GenerateHash(),
			Sender:          msg.Sender,
			Body:            msg.Body,
			TimestampMillis: msg.TimestampMillis,
			Confidence:      decision.Confidence,
			Indicators:      decision.Indicators,
			ClassifiedAt:    time.Now().UTC(),
		})
	}

	if len(result.NewBankMessages) > 0 && e.storage != nil {
		ids, err := e.storage.InsertBankMessages(ctx, result.NewBankMessages)
		if err != nil {
			return result, fmt.Errorf("failed to store bank messages: %w", err)
		}
		result.StoredIDs = ids
	}

	return result, nil
}

// ExtractResult reports an extraction run. Per-message non-matches are
// counted, never treated as errors; the batch always completes.
type ExtractResult struct {
	Events []model.BillEvent `json:"bills"`
	Parsed int               `json:"parsed"`
	Total  int               `json:"total"`
}

// ExtractAll runs the extractor over every message, attaches the given
// user to each event, and persists the batch when storage is present.
func (e *Engine) ExtractAll(ctx context.Context, messages []model.Message, userID string) (*ExtractResult, error) {
	result := &ExtractResult{Total: len(messages)}

	for _, msg := range messages {
		event := e.extractor.Extract(msg.Body, msg.Sender)
		if event == nil {
			slog.Debug("no extraction tier matched", "sender", msg.Sender)
			continue
		}
		event.UserID = userID
		result.Events = append(result.Events, *event)
		result.Parsed++
	}

	if len(result.Events) > 0 && e.storage != nil {
		if err := e.storage.SaveBillEvents(ctx, result.Events); err != nil {
			return result, fmt.Errorf("failed to store bill events: %w", err)
		}
	}

	return result, nil
}
