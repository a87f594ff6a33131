package extract

import (
	"regexp"
	"strings"
)

// Shared pattern fragments. The amount group accepts comma-grouped
// thousands with an optional two-decimal fraction; the date group
// accepts numeric D/M/Y and "D MonthName Y" shapes.
const (
	currencyAmount = `(?:aed|rs\.?)\s*([\d,]+(?:\.\d{1,2})?)`
	dateToken      = `(\d{1,2}[-/.]\d{1,2}[-/.]\d{2,4}|\d{1,2}\s+[a-z]{3,9}[,\-]?\s*\d{2,4})`
)

// bankPattern binds a canonical bank name to its compiled bill pattern.
// Group 1 captures the amount, group 2 the due date.
type bankPattern struct {
	name    string
	pattern *regexp.Regexp
}

// compileBankPattern builds the per-bank bill pattern: bank token,
// then a bill/due/payment keyword, then a currency amount, then a
// due/by keyword followed by a date.
func compileBankPattern(token string) *regexp.Regexp {
	return regexp.MustCompile(
		`(?is)` + token +
			`.*?(?:bill|due|payment)` +
			`.*?` + currencyAmount +
			`.*?(?:due|by)[^0-9]{0,40}` + dateToken,
	)
}

// bankPatterns is evaluated in declaration order; the first matching
// bank wins. Keys are the canonical names the extractor reports.
var bankPatterns = []bankPattern{
	{"HDFC", compileBankPattern(`\bhdfc\b`)},
	{"SBI", compileBankPattern(`\bsbi\b`)},
	{"ICICI", compileBankPattern(`\bicici\b`)},
	{"AXIS", compileBankPattern(`\baxis\b`)},
	{"KOTAK", compileBankPattern(`\bkotak\b`)},
	{"AMERICAN EXPRESS", compileBankPattern(`(?:\bamex\b|american\s+express)`)},
	{"CITI", compileBankPattern(`\bciti(?:bank)?\b`)},
	{"HSBC", compileBankPattern(`\bhsbc\b`)},
	{"STANDARD CHARTERED", compileBankPattern(`(?:standard\s+chartered|\bstanchart\b)`)},
	{"EMIRATES NBD", compileBankPattern(`(?:emirates\s+nbd|\benbd\b)`)},
	{"ADCB", compileBankPattern(`\badcb\b`)},
	{"FAB", compileBankPattern(`(?:\bfab\b|first\s+abu\s+dhabi)`)},
	{"RAKBANK", compileBankPattern(`\brakbank\b`)},
	{"MASHREQ", compileBankPattern(`\bmashreq\b`)},
	{"DUBAI ISLAMIC BANK", compileBankPattern(`(?:dubai\s+islamic|\bdib\b)`)},
}

// senderCode maps a short code found in a sender address to the
// canonical bank name.
type senderCode struct {
	code string
	name string
}

// senderCodes is checked in order against the upper-cased sender.
var senderCodes = []senderCode{
	{"HDFC", "HDFC"},
	{"SBI", "SBI"},
	{"ICICI", "ICICI"},
	{"AXIS", "AXIS"},
	{"KOTAK", "KOTAK"},
	{"AMEX", "AMERICAN EXPRESS"},
	{"CITI", "CITI"},
	{"HSBC", "HSBC"},
	{"STANCHART", "STANDARD CHARTERED"},
	{"ENBD", "EMIRATES NBD"},
	{"ADCB", "ADCB"},
	{"FAB", "FAB"},
	{"RAKBANK", "RAKBANK"},
	{"MASHREQ", "MASHREQ"},
	{"DIB", "DUBAI ISLAMIC BANK"},
}

// ResolveBank maps a sender address to a canonical bank name by
// substring lookup over the known short codes, in table order. It
// returns "" when no code matches; empty senders never fail.
func ResolveBank(sender string) string {
	upper := strings.ToUpper(sender)
	for _, sc := range senderCodes {
		if strings.Contains(upper, sc.code) {
			return sc.name
		}
	}
	return ""
}
