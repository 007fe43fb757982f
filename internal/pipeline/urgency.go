package pipeline

import (
	"time"

	"catering-system/internal/domain"
)

// QuoteFollowUpAfter is how long an order may sit in quote_sent before the
// board flags it for follow-up.
const QuoteFollowUpAfter = 72 * time.Hour

// IsUrgent reports whether an order needs operator attention: it is in
// quote_sent, a quote was actually sent, and more than three days have
// passed since. Derived on every read, never persisted.
func IsUrgent(status domain.Stage, quoteSentAt *time.Time, now time.Time) bool {
	if status != domain.StageQuoteSent || quoteSentAt == nil {
		return false
	}
	return now.Sub(*quoteSentAt) > QuoteFollowUpAfter
}
