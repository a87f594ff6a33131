package model

// Category is one of the seven fixed buckets a message can land in.
type Category string

// Category constants, in classifier precedence order.
const (
	CategoryBank        Category = "Bank"
	CategoryOTP         Category = "OTP/Security"
	CategoryDelivery    Category = "Delivery"
	CategoryAppointment Category = "Appointments"
	CategorySuspicious  Category = "Suspicious/Spam"
	CategoryPromotional Category = "Promotional"
	CategoryPersonal    Category = "Personal/Other"
)

// Categories lists every bucket in precedence order. The orchestrator
// relies on this to keep empty buckets present in its output.
var Categories = []Category{
	CategoryBank,
	CategoryOTP,
	CategoryDelivery,
	CategoryAppointment,
	CategorySuspicious,
	CategoryPromotional,
	CategoryPersonal,
}

// CategoryDecision is the classifier's verdict for a single message.
type CategoryDecision struct {
	Category   Category `json:"category"`
	Confidence float64  `json:"confidence"`
	Indicators []string `json:"indicators"`
}

// CategorizedMessage pairs a message with its classification. Batch
// results carry these so callers keep the original message alongside
// the decision.
type CategorizedMessage struct {
	Message  Message          `json:"message"`
	Decision CategoryDecision `json:"decision"`
}
