package classify

import (
	"strings"

	"github.com/Veraticus/inbox-ledger/internal/model"
)

// fallbackConfidence is the fixed confidence of the Personal/Other
// bucket when no detector fires.
const fallbackConfidence = 0.7

// Classifier assigns a message to exactly one category. It holds no
// mutable state and is safe for concurrent use.
type Classifier struct {
	detectors []detector
}

// NewClassifier builds a classifier with the detectors in their fixed
// precedence order.
func NewClassifier() *Classifier {
	return &Classifier{detectors: detectors}
}

// Classify evaluates the detectors in precedence order and returns the
// decision of the first one whose score meets its threshold. A message
// no detector claims falls back to Personal/Other with constant
// confidence and no indicators. It never returns an error: empty or
// garbled bodies simply land in the fallback bucket.
func (c *Classifier) Classify(body, _ string) model.CategoryDecision {
	lower := strings.ToLower(body)

	for _, d := range c.detectors {
		score, indicators := d.score(lower)
		if score < d.threshold {
			continue
		}
		return model.CategoryDecision{
			Category:   d.category,
			Confidence: clamp(float64(score)/d.denominator, d.floor, d.ceiling),
			Indicators: indicators,
		}
	}

	return model.CategoryDecision{
		Category:   model.CategoryPersonal,
		Confidence: fallbackConfidence,
		Indicators: []string{},
	}
}
