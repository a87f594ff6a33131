// Package classify assigns each SMS to one of seven fixed categories
// using weighted keyword and pattern signals evaluated in strict
// precedence order.
package classify

import "regexp"

// All lists are matched as case-insensitive substrings of the
// lower-cased message body. Order within a list fixes indicator order.

// bankNames earns +3 for the first known issuer name found.
var bankNames = []string{
	"hdfc",
	"sbi",
	"icici",
	"axis",
	"kotak",
	"amex",
	"american express",
	"citi",
	"hsbc",
	"standard chartered",
	"emirates nbd",
	"enbd",
	"adcb",
	"fab",
	"rakbank",
	"mashreq",
	"dubai islamic",
	"dib",
}

// bankKeywords each earn +2. These are card/statement terms that do not
// occur in ordinary conversational or promotional traffic; combined with
// the high Bank threshold they are what keeps the Bank false-positive
// rate at zero.
var bankKeywords = []string{
	"card ending",
	"credit card",
	"debit card",
	"statement",
	"total amt due",
	"min amt due",
	"minimum due",
	"outstanding balance",
	"available balance",
	"payment due",
	"bill generated",
	"account balance",
}

// bankRegexes each earn +2 when they match.
var bankRegexes = []struct {
	label   string
	pattern *regexp.Regexp
}{
	{"card ending pattern", regexp.MustCompile(`card\s+ending\s+(?:\w+\s+)?\d{4}`)},
	{"total due pattern", regexp.MustCompile(`total\s+(?:amt\s+|amount\s+)?due\s+aed\s*[\d,]+(?:\.\d{1,2})?`)},
	{"minimum due pattern", regexp.MustCompile(`min(?:imum)?\s+(?:amt\s+|amount\s+)?due\s+aed\s*[\d,]+(?:\.\d{1,2})?`)},
	{"masked account pattern", regexp.MustCompile(`a/c\s+[x*]+\d{4}`)},
}

// currencyAmountRegex earns +1: an AED amount with a decimal fraction.
var currencyAmountRegex = regexp.MustCompile(`aed\s*\d+\.\d{2}`)

// otpKeywords each earn +1.
var otpKeywords = []string{
	"otp",
	"one time password",
	"one-time password",
	"verification code",
	"security code",
	"authentication code",
	"do not share",
}

// otpCodeRegex earns +2: a standalone six-digit code. Codes prefixed
// with '#' are tracking numbers and belong to the delivery detector.
var otpCodeRegex = regexp.MustCompile(`(?:^|[^#\d])\d{6}(?:\D|$)`)

// deliveryKeywords each earn +1.
var deliveryKeywords = []string{
	"delivered",
	"delivery",
	"shipped",
	"shipment",
	"out for delivery",
	"courier",
	"tracking",
	"package",
	"order",
	"dispatched",
	"arriving",
}

// trackingRegex earns +1.
var trackingRegex = regexp.MustCompile(`#\d{6}`)

// appointmentKeywords each earn +1.
var appointmentKeywords = []string{
	"appointment",
	"scheduled",
	"reminder",
	"booking confirmed",
	"rescheduled",
	"clinic",
	"dentist",
	"consultation",
}

// timeRegex earns +1: an H:MM am/pm time of day.
var timeRegex = regexp.MustCompile(`\b\d{1,2}:\d{2}\s*(?:am|pm)\b`)

// suspiciousPhrases are exact substrings; any single match classifies
// the message.
var suspiciousPhrases = []string{
	"you have won",
	"claim your prize",
	"lottery",
	"urgent action required",
	"account will be suspended",
	"verify your identity immediately",
	"processing fee to claim",
	"click this link to claim",
}

// promotionalKeywords each earn +1.
var promotionalKeywords = []string{
	"sale",
	"offer",
	"discount",
	"% off",
	"deal",
	"cashback",
	"promo code",
	"voucher",
	"coupon",
	"flash sale",
	"limited time",
	"shop now",
}
