package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateHash(t *testing.T) {
	msg := Message{Sender: "HDFC-BANK", Body: "statement ready", TimestampMillis: 1000}

	// Deterministic for identical content.
	assert.Equal(t, msg.GenerateHash(), msg.GenerateHash())

	// Any component change produces a different hash.
	differentBody := msg
	differentBody.Body = "statement ready!"
	assert.NotEqual(t, msg.GenerateHash(), differentBody.GenerateHash())

	differentSender := msg
	differentSender.Sender = "SBI-BANK"
	assert.NotEqual(t, msg.GenerateHash(), differentSender.GenerateHash())

	differentTime := msg
	differentTime.TimestampMillis = 2000
	assert.NotEqual(t, msg.GenerateHash(), differentTime.GenerateHash())
}
