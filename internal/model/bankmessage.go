package model

import "time"

// BankMessage is a Bank-classified SMS queued for persistence. The
// (sender, body, timestamp) triple is the existence-check key the
// orchestrator uses to avoid duplicate accumulation across overlapping
// batch runs.
type BankMessage struct {
	Hash            string    `json:"hash"`
	Sender          string    `json:"sender"`
	Body            string    `json:"body"`
	TimestampMillis int64     `json:"timestampMillis"`
	Confidence      float64   `json:"confidence"`
	Indicators      []string  `json:"indicators"`
	ClassifiedAt    time.Time `json:"classifiedAt"`
}
