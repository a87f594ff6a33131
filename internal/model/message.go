// Package model defines the core domain models used throughout the application.
package model

import (
	"crypto/sha256"
	"fmt"
)

// MessageDirection indicates whether a message was received or sent.
type MessageDirection string

// Message direction constants.
const (
	DirectionInbox MessageDirection = "inbox"
	DirectionSent  MessageDirection = "sent"
)

// Message is a single SMS as delivered by the retrieval collaborator.
// The engines only consume Body and Sender; the timestamp participates
// in the duplicate-detection key.
type Message struct {
	Body            string           `json:"body"`
	Sender          string           `json:"sender"`
	TimestampMillis int64            `json:"timestampMillis"`
	Direction       MessageDirection `json:"direction"`
}

// GenerateHash creates a unique hash for duplicate detection.
// The key is sender + body + timestamp: the same message delivered in
// two overlapping backup exports hashes identically.
func (m *Message) GenerateHash() string {
	data := fmt.Sprintf("%s:%s:%d", m.Sender, m.Body, m.TimestampMillis)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}
