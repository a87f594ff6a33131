package classify

import (
	"fmt"
	"strings"

	"github.com/Veraticus/inbox-ledger/internal/model"
)

// detector is one category's scoring function plus the constants that
// turn its raw score into a decision and a bounded confidence. Keeping
// threshold/denominator/clamp table-driven means the clamp logic lives
// in exactly one place.
type detector struct {
	category    model.Category
	threshold   int
	denominator float64
	floor       float64
	ceiling     float64
	score       func(body string) (int, []string)
}

// detectors in strict precedence order. The first detector whose score
// meets its threshold wins and all later detectors are skipped.
var detectors = []detector{
	{
		category:    model.CategoryBank,
		threshold:   5,
		denominator: 15, // calibrated constant, carried over as-is
		floor:       0.70,
		ceiling:     1.0,
		score:       scoreBank,
	},
	{
		category:    model.CategoryOTP,
		threshold:   2,
		denominator: 5,
		floor:       0.60,
		ceiling:     1.0,
		score:       scoreOTP,
	},
	{
		category:    model.CategoryDelivery,
		threshold:   2,
		denominator: 4,
		floor:       0.60,
		ceiling:     1.0,
		score:       scoreDelivery,
	},
	{
		category:    model.CategoryAppointment,
		threshold:   2,
		denominator: 4,
		floor:       0.60,
		ceiling:     1.0,
		score:       scoreAppointment,
	},
	{
		category:    model.CategorySuspicious,
		threshold:   1,
		denominator: 3,
		floor:       0.80,
		ceiling:     1.0,
		score:       scoreSuspicious,
	},
	{
		category:    model.CategoryPromotional,
		threshold:   2,
		denominator: 5,
		floor:       0.60,
		ceiling:     1.0,
		score:       scorePromotional,
	},
}

func clamp(value, floor, ceiling float64) float64 {
	if value < floor {
		return floor
	}
	if value > ceiling {
		return ceiling
	}
	return value
}

// scoreBank: known bank name +3 (first match only), banking keyword +2
// each, bank-specific pattern +2 each, decimal AED amount +1,
// "mobile app" +1. The >=5 threshold demands one strong signal plus a
// second corroborating one, which is what guarantees zero Bank false
// positives on non-bank traffic.
func scoreBank(body string) (int, []string) {
	score := 0
	var indicators []string

	for _, name := range bankNames {
		if strings.Contains(body, name) {
			score += 3
			indicators = append(indicators, "Bank: "+name)
			break
		}
	}
	for _, kw := range bankKeywords {
		if strings.Contains(body, kw) {
			score += 2
			indicators = append(indicators, "Banking keyword: "+kw)
		}
	}
	for _, br := range bankRegexes {
		if br.pattern.MatchString(body) {
			score += 2
			indicators = append(indicators, "Matched "+br.label)
		}
	}
	if currencyAmountRegex.MatchString(body) {
		score++
		indicators = append(indicators, "Currency amount detected")
	}
	if strings.Contains(body, "mobile app") {
		score++
		indicators = append(indicators, "Mobile app mentioned")
	}

	return score, indicators
}

// scoreOTP: OTP keyword +1 each, standalone six-digit code +2.
func scoreOTP(body string) (int, []string) {
	score := 0
	var indicators []string

	for _, kw := range otpKeywords {
		if strings.Contains(body, kw) {
			score++
			indicators = append(indicators, "OTP keyword: "+kw)
		}
	}
	if otpCodeRegex.MatchString(body) {
		score += 2
		indicators = append(indicators, "6-digit code detected")
	}

	return score, indicators
}

// scoreDelivery: delivery keyword +1 each, #NNNNNN tracking number +1.
func scoreDelivery(body string) (int, []string) {
	score := 0
	var indicators []string

	for _, kw := range deliveryKeywords {
		if strings.Contains(body, kw) {
			score++
			indicators = append(indicators, "Delivery keyword: "+kw)
		}
	}
	if trackingRegex.MatchString(body) {
		score++
		indicators = append(indicators, "Tracking number detected")
	}

	return score, indicators
}

// scoreAppointment: appointment keyword +1 each, H:MM am/pm time +1.
func scoreAppointment(body string) (int, []string) {
	score := 0
	var indicators []string

	for _, kw := range appointmentKeywords {
		if strings.Contains(body, kw) {
			score++
			indicators = append(indicators, "Appointment keyword: "+kw)
		}
	}
	if timeRegex.MatchString(body) {
		score++
		indicators = append(indicators, "Time of day mentioned")
	}

	return score, indicators
}

// scoreSuspicious: any single exact phrase match suffices.
func scoreSuspicious(body string) (int, []string) {
	score := 0
	var indicators []string

	for _, phrase := range suspiciousPhrases {
		if strings.Contains(body, phrase) {
			score++
			indicators = append(indicators, fmt.Sprintf("Suspicious phrase: %q", phrase))
		}
	}

	return score, indicators
}

// scorePromotional: promotional keyword +1 each.
func scorePromotional(body string) (int, []string) {
	score := 0
	var indicators []string

	for _, kw := range promotionalKeywords {
		if strings.Contains(body, kw) {
			score++
			indicators = append(indicators, "Promotional keyword: "+kw)
		}
	}

	return score, indicators
}
