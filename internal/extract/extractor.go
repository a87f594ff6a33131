package extract

import (
	"regexp"
	"strings"
	"time"

	"github.com/Veraticus/inbox-ledger/internal/model"
)

// Per-tier confidence is fixed by match tier, not message content.
const (
	confidenceBankBill    = 0.95
	confidencePayment     = 0.90
	confidenceTransaction = 0.85
	confidenceGenericBill = 0.70
)

// paymentPatterns match completed payments. Tried in order; group 1 is
// the amount.
var paymentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)payment\s+successful.*?` + currencyAmount),
	regexp.MustCompile(`(?is)payment\s+of\s+` + currencyAmount + `.*?(?:received|processed|successful)`),
	regexp.MustCompile(`(?is)receipt\s+of\s+your\s+payment\s+of\s+` + currencyAmount),
	regexp.MustCompile(`(?is)payment\s+(?:received|processed|completed)\b.*?` + currencyAmount),
	regexp.MustCompile(`(?is)` + currencyAmount + `\s+has\s+been\s+(?:credited|debited)`),
}

// transactionPatterns match card spends and debits. Tried in order;
// group 1 is the amount.
var transactionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)` + currencyAmount + `\s+(?:purchase|transaction)\s+(?:approved|processed)`),
	regexp.MustCompile(`(?is)(?:purchase|transaction)\s+of\s+` + currencyAmount),
	regexp.MustCompile(`(?is)card\s+.*?used\s+for\s+` + currencyAmount),
	regexp.MustCompile(`(?is)` + currencyAmount + `\s+(?:was\s+)?(?:spent|charged|debited|used)`),
	regexp.MustCompile(`(?is)(?:spent|charged|debited|purchased)\s+` + currencyAmount),
}

// genericBillPattern is the last-resort bill shape: a bill/due/payment
// keyword, a currency amount, and a due/by keyword with a date, with no
// bank name required. Group 1 is the amount, group 2 the date.
var genericBillPattern = regexp.MustCompile(
	`(?is)(?:bill|due|payment).*?` + currencyAmount + `.*?(?:due|by)[^0-9]{0,40}` + dateToken,
)

// tierRule is one extraction strategy. Rules are evaluated in priority
// order and the first one to produce an event short-circuits the rest.
type tierRule struct {
	name  string
	apply func(body, sender string) *model.BillEvent
}

// Extractor turns a message body and sender into a structured bill,
// payment, or transaction event. It is stateless per call and safe for
// concurrent use.
type Extractor struct {
	tiers []tierRule
}

// NewExtractor builds an extractor with the four tiers in strict
// priority order: bank-specific, payment, transaction, generic bill.
func NewExtractor() *Extractor {
	return &Extractor{
		tiers: []tierRule{
			{name: "bank", apply: matchBankBill},
			{name: "payment", apply: matchPayment},
			{name: "transaction", apply: matchTransaction},
			{name: "generic-bill", apply: matchGenericBill},
		},
	}
}

// Extract returns the structured event for the first matching tier, or
// nil when no tier matches. It never returns an error: malformed or
// empty input is simply a non-match.
func (e *Extractor) Extract(body, sender string) *model.BillEvent {
	if strings.TrimSpace(body) == "" {
		return nil
	}
	for _, tier := range e.tiers {
		if event := tier.apply(body, sender); event != nil {
			return event
		}
	}
	return nil
}

func newEvent(body, sender string, eventType model.BillEventType, confidence float64) *model.BillEvent {
	return &model.BillEvent{
		ID:         model.NewEventID(),
		Type:       eventType,
		RawMessage: body,
		Sender:     sender,
		Status:     model.InitialStatus(eventType),
		Confidence: confidence,
		ParsedAt:   time.Now().UTC(),
	}
}

func matchBankBill(body, sender string) *model.BillEvent {
	for _, bp := range bankPatterns {
		m := bp.pattern.FindStringSubmatch(body)
		if m == nil {
			continue
		}
		event := newEvent(body, sender, model.EventTypeBill, confidenceBankBill)
		event.Bank = bp.name
		event.Amount = ParseAmount(m[1])
		event.DueDate = NormalizeDate(m[2])
		return event
	}
	return nil
}

func matchPayment(body, sender string) *model.BillEvent {
	for _, p := range paymentPatterns {
		m := p.FindStringSubmatch(body)
		if m == nil {
			continue
		}
		event := newEvent(body, sender, model.EventTypePayment, confidencePayment)
		event.Bank = ResolveBank(sender)
		event.Amount = ParseAmount(m[1])
		return event
	}
	return nil
}

func matchTransaction(body, sender string) *model.BillEvent {
	for _, p := range transactionPatterns {
		m := p.FindStringSubmatch(body)
		if m == nil {
			continue
		}
		event := newEvent(body, sender, model.EventTypeTransaction, confidenceTransaction)
		event.Bank = ResolveBank(sender)
		event.Amount = ParseAmount(m[1])
		return event
	}
	return nil
}

func matchGenericBill(body, sender string) *model.BillEvent {
	m := genericBillPattern.FindStringSubmatch(body)
	if m == nil {
		return nil
	}
	event := newEvent(body, sender, model.EventTypeBill, confidenceGenericBill)
	event.Bank = ResolveBank(sender)
	if event.Bank == "" {
		event.Bank = model.UnknownBank
	}
	event.Amount = ParseAmount(m[1])
	event.DueDate = NormalizeDate(m[2])
	return event
}
