// Package views holds the read-only projections derived from the order
// collection: per-customer history and the calendar. Neither mutates board
// state.
package views

import (
	"context"
	"fmt"
	"sort"
	"time"

	"catering-system/internal/domain"
	"catering-system/internal/store"
)

// HistoryEntry is one past or upcoming event of a customer.
type HistoryEntry struct {
	EventDate  time.Time    `json:"event_date"`
	Descriptor string       `json:"descriptor"`
	Status     domain.Stage `json:"status"`
}

// CustomerHistory returns all orders sharing the given email, newest event
// first. It queries the store directly rather than the board partition, so
// it also sees archived and completed orders that fell off the operator's
// attention.
func CustomerHistory(ctx context.Context, st store.RecordStore, email string) ([]HistoryEntry, error) {
	records, err := st.FindByIdentity(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("customer history for %s: %w", email, err)
	}

	out := make([]HistoryEntry, 0, len(records))
	for _, r := range records {
		out = append(out, HistoryEntry{
			EventDate:  r.EventDate,
			Descriptor: describe(r),
			Status:     r.Status,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EventDate.After(out[j].EventDate)
	})
	return out, nil
}

func describe(r domain.OrderRecord) string {
	if r.Location == "" {
		return fmt.Sprintf("%d guests", r.GuestCount)
	}
	return fmt.Sprintf("%s, %d guests", r.Location, r.GuestCount)
}
