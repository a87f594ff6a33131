// Package extract pulls structured bill, payment, and transaction events
// out of raw SMS bodies using ordered pattern tiers.
package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	currencyPrefix = regexp.MustCompile(`(?i)^\s*(?:aed|rs|inr)\.?\s*`)
	amountJunk     = regexp.MustCompile(`[^0-9.]`)
	numericDate    = regexp.MustCompile(`^(\d{1,2})[-/.](\d{1,2})[-/.](\d{2,4})$`)
	monthNameDate  = regexp.MustCompile(`^(\d{1,2})\s+([A-Za-z]{3,9})[,\-]?\s*(\d{2,4})$`)
)

// monthNumbers maps English three-letter month abbreviations to their
// zero-padded month number. Only the first three letters of a matched
// month name are significant.
var monthNumbers = map[string]string{
	"jan": "01", "feb": "02", "mar": "03", "apr": "04",
	"may": "05", "jun": "06", "jul": "07", "aug": "08",
	"sep": "09", "oct": "10", "nov": "11", "dec": "12",
}

// ParseAmount converts a matched amount string with optional thousands
// separators into a decimal. A leading currency token ("Rs.", "AED") is
// stripped so its dot cannot be mistaken for a decimal point.
// Unparsable input yields 0, never an error.
func ParseAmount(raw string) float64 {
	stripped := currencyPrefix.ReplaceAllString(raw, "")
	cleaned := amountJunk.ReplaceAllString(strings.ReplaceAll(stripped, ",", ""), "")
	if cleaned == "" {
		return 0
	}
	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || amount < 0 {
		return 0
	}
	return amount
}

// NormalizeDate converts a matched date substring to canonical
// YYYY-MM-DD. It tries numeric D/M/Y (separators - / .) first, then
// "D MonthName Y". Two-digit years pivot at 30: above 30 is 19xx,
// otherwise 20xx. An unrecognized month abbreviation falls back to
// January. When neither shape matches, the raw input is returned
// unchanged so callers can see the unnormalized original.
func NormalizeDate(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	if m := numericDate.FindStringSubmatch(trimmed); m != nil {
		return fmt.Sprintf("%s-%s-%s", expandYear(m[3]), padTwo(m[2]), padTwo(m[1]))
	}

	if m := monthNameDate.FindStringSubmatch(trimmed); m != nil {
		abbr := strings.ToLower(m[2])
		if len(abbr) > 3 {
			abbr = abbr[:3]
		}
		month, ok := monthNumbers[abbr]
		if !ok {
			month = "01"
		}
		return fmt.Sprintf("%s-%s-%s", expandYear(m[3]), month, padTwo(m[1]))
	}

	return raw
}

// expandYear widens a two-digit year using the pivot the source data
// was observed with: values above 30 are 19xx, the rest 20xx.
func expandYear(year string) string {
	if len(year) != 2 {
		return year
	}
	n, err := strconv.Atoi(year)
	if err != nil {
		return year
	}
	if n > 30 {
		return fmt.Sprintf("19%02d", n)
	}
	return fmt.Sprintf("20%02d", n)
}

func padTwo(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
