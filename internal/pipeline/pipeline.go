// Package pipeline defines what changes when an order moves between stages.
// It performs no I/O: Transition returns the updated record together with
// the exact field set to persist, and the caller decides how to apply it.
package pipeline

import (
	"time"

	"catering-system/internal/domain"
)

// Transition returns a copy of order moved to target, plus the partial
// update that the record store should receive for it.
//
// Rules:
//   - status is always set to target
//   - quote_sent_at is stamped with now the first time the order enters
//     quote_sent, and never cleared or overwritten afterwards
//   - no other field is touched
func Transition(order domain.OrderRecord, target domain.Stage, now time.Time) (domain.OrderRecord, domain.FieldChanges) {
	updated := order
	updated.Status = target

	changes := domain.FieldChanges{Status: &target}
	if target == domain.StageQuoteSent && order.QuoteSentAt == nil {
		stamp := now
		updated.QuoteSentAt = &stamp
		changes.QuoteSentAt = &stamp
	}
	return updated, changes
}

// Policy decides which stage moves the board accepts. The observed behavior
// of the system is fully permissive, including backwards moves such as
// completed back to new; restricting that is a deployment decision, so it
// lives here as a hook rather than a hard-coded rule.
type Policy struct {
	// Allows, when non-nil, gates each move. A nil Policy or a nil
	// Allows permits everything.
	Allows func(from, to domain.Stage) bool
}

// Permits reports whether the policy accepts the move.
func (p *Policy) Permits(from, to domain.Stage) bool {
	if p == nil || p.Allows == nil {
		return true
	}
	return p.Allows(from, to)
}
