package views

import (
	"fmt"
	"time"

	"catering-system/internal/domain"
)

// CalendarEntry is one order rendered as a single-day calendar event.
type CalendarEntry struct {
	Title  string       `json:"title"`
	Start  time.Time    `json:"start"`
	End    time.Time    `json:"end"`
	Status domain.Stage `json:"status"`
}

// Calendar maps a collection snapshot to calendar entries, one per order.
// It is fed the board's current snapshot so both views always describe the
// same data; it never fetches on its own outside the initial load.
func Calendar(records []domain.OrderRecord) []CalendarEntry {
	out := make([]CalendarEntry, 0, len(records))
	for _, r := range records {
		title := r.CustomerName
		if r.Location != "" {
			title = fmt.Sprintf("%s (%s)", r.CustomerName, r.Location)
		}
		out = append(out, CalendarEntry{
			Title:  title,
			Start:  r.EventDate,
			End:    r.EventDate,
			Status: r.Status,
		})
	}
	return out
}
