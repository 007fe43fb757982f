package pipeline

import (
	"testing"
	"time"

	"catering-system/internal/domain"
)

func TestIsUrgentBoundary(t *testing.T) {
	t.Parallel()
	sent := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"one second before threshold", sent.Add(QuoteFollowUpAfter - time.Second), false},
		{"exactly at threshold", sent.Add(QuoteFollowUpAfter), false},
		{"one second past threshold", sent.Add(QuoteFollowUpAfter + time.Second), true},
		{"four days later", sent.Add(96 * time.Hour), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := IsUrgent(domain.StageQuoteSent, &sent, tc.now)
			if got != tc.want {
				t.Errorf("IsUrgent(quote_sent, %v, %v) = %v, want %v", sent, tc.now, got, tc.want)
			}
		})
	}
}

func TestIsUrgentOtherStages(t *testing.T) {
	t.Parallel()
	sent := time.Now().Add(-96 * time.Hour)
	now := time.Now()

	for _, stage := range domain.Stages() {
		if stage == domain.StageQuoteSent {
			continue
		}
		if IsUrgent(stage, &sent, now) {
			t.Errorf("IsUrgent(%s, ...) = true, want false regardless of timestamps", stage)
		}
	}
}

func TestIsUrgentRequiresTimestamp(t *testing.T) {
	t.Parallel()
	if IsUrgent(domain.StageQuoteSent, nil, time.Now()) {
		t.Error("IsUrgent with no quote_sent_at must be false")
	}
}

func TestUrgencyClearsAfterMove(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC()
	sent := now.Add(-96 * time.Hour)

	order := testOrder(domain.StageQuoteSent)
	order.QuoteSentAt = &sent

	if !IsUrgent(order.Status, order.QuoteSentAt, now) {
		t.Fatal("stale quote_sent order should be urgent")
	}

	moved, _ := Transition(order, domain.StageDepositPaid, now)
	if IsUrgent(moved.Status, moved.QuoteSentAt, now) {
		t.Error("urgency must clear after leaving quote_sent even with timestamps unchanged")
	}
}
