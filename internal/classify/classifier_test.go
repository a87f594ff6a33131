package classify

import (
	"testing"

	"github.com/Veraticus/inbox-ledger/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyBankStatement(t *testing.T) {
	classifier := NewClassifier()

	decision := classifier.Classify(
		"HDFC Bank: Your credit card statement is ready. Total amt due AED 1,543.50. Min amt due AED 75.00. Card ending 1234.",
		"HDFC-BANK")

	assert.Equal(t, model.CategoryBank, decision.Category)
	assert.InDelta(t, 1.0, decision.Confidence, 0.001)
	assert.Contains(t, decision.Indicators, "Bank: hdfc")
	assert.Contains(t, decision.Indicators, "Banking keyword: statement")
	assert.Contains(t, decision.Indicators, "Matched card ending pattern")
}

func TestClassifyBankConfidenceFloor(t *testing.T) {
	classifier := NewClassifier()

	// Bank name (+3) plus one keyword (+2) just meets the threshold;
	// 5/15 is well under the floor and gets clamped up.
	decision := classifier.Classify("ICICI statement ready", "ICICI")

	assert.Equal(t, model.CategoryBank, decision.Category)
	assert.InDelta(t, 0.70, decision.Confidence, 0.001)
}

func TestClassifyOTP(t *testing.T) {
	classifier := NewClassifier()

	decision := classifier.Classify(
		"Your OTP is 482916. Do not share it with anyone.",
		"VM-VERIFY")

	assert.Equal(t, model.CategoryOTP, decision.Category)
	assert.InDelta(t, 0.80, decision.Confidence, 0.001)
	assert.Contains(t, decision.Indicators, "6-digit code detected")
}

func TestClassifyDelivery(t *testing.T) {
	classifier := NewClassifier()

	// The six digits are prefixed with '#': a tracking number, not an
	// OTP code. The message must land in Delivery.
	decision := classifier.Classify(
		"Your order #482916 is out for delivery",
		"COURIER")

	assert.Equal(t, model.CategoryDelivery, decision.Category)
	assert.InDelta(t, 1.0, decision.Confidence, 0.001)
	assert.Contains(t, decision.Indicators, "Tracking number detected")
}

func TestClassifyAppointment(t *testing.T) {
	classifier := NewClassifier()

	decision := classifier.Classify(
		"Reminder: your dentist appointment is scheduled for 3:30 pm",
		"CLINIC")

	assert.Equal(t, model.CategoryAppointment, decision.Category)
	assert.InDelta(t, 1.0, decision.Confidence, 0.001)
	assert.Contains(t, decision.Indicators, "Time of day mentioned")
}

func TestClassifySuspicious(t *testing.T) {
	classifier := NewClassifier()

	// A single phrase is enough; 2/3 is under the 0.80 floor and gets
	// clamped up.
	decision := classifier.Classify(
		"Congratulations! You have won a lottery of $1,000,000",
		"UNKNOWN")

	assert.Equal(t, model.CategorySuspicious, decision.Category)
	assert.InDelta(t, 0.80, decision.Confidence, 0.001)
	assert.NotEmpty(t, decision.Indicators)
}

func TestClassifyPromotional(t *testing.T) {
	classifier := NewClassifier()

	decision := classifier.Classify(
		"Flash sale! 50% off everything. Shop now",
		"RETAILER")

	assert.Equal(t, model.CategoryPromotional, decision.Category)
	assert.InDelta(t, 0.80, decision.Confidence, 0.001)
}

func TestClassifyPersonalFallback(t *testing.T) {
	classifier := NewClassifier()

	decision := classifier.Classify("Hey, call me when you get home", "+971501234567")

	assert.Equal(t, model.CategoryPersonal, decision.Category)
	assert.InDelta(t, 0.7, decision.Confidence, 0.001)
	require.NotNil(t, decision.Indicators)
	assert.Empty(t, decision.Indicators)
}

func TestClassifyEmptyBody(t *testing.T) {
	classifier := NewClassifier()

	decision := classifier.Classify("", "")

	assert.Equal(t, model.CategoryPersonal, decision.Category)
	assert.InDelta(t, 0.7, decision.Confidence, 0.001)
}

func TestClassifyBankPrecedence(t *testing.T) {
	classifier := NewClassifier()

	// Carries both banking and OTP signals; Bank is evaluated first and
	// claims the message.
	decision := classifier.Classify(
		"HDFC Bank: OTP 482916 for your credit card transaction. Do not share.",
		"HDFC-BANK")

	assert.Equal(t, model.CategoryBank, decision.Category)
}

func TestClassifyOTPPrecedesDelivery(t *testing.T) {
	classifier := NewClassifier()

	// Both detectors would fire: a standalone OTP code plus tracking and
	// delivery keywords. Precedence, not score magnitude, breaks the tie.
	decision := classifier.Classify(
		"Use code 482916 to verify, do not share. Your package #123456 is out for delivery.",
		"SENDER")

	assert.Equal(t, model.CategoryOTP, decision.Category)
}

func TestClassifyNeverMislabelsAsBank(t *testing.T) {
	classifier := NewClassifier()

	// None of these mention enough banking signal to cross the Bank
	// threshold, however financial they sound.
	bodies := []string{
		"Your OTP is 482916. Do not share it with anyone.",
		"Your order #482916 is out for delivery",
		"Flash sale! 50% off everything. Shop now",
		"Exclusive offer: get a new credit card with cashback deal",
		"You have won a lottery! Pay a processing fee to claim",
		"Hey, did you pay the rent yet?",
	}

	for _, body := range bodies {
		decision := classifier.Classify(body, "SENDER")
		assert.NotEqual(t, model.CategoryBank, decision.Category, "body: %s", body)
	}
}
