// Package data provides seed records for demo runs.
package data

import (
	"time"

	"catering-system/internal/domain"
)

// DemoRecords is a small spread of orders across the pipeline, including
// one stale quote (urgent on the board) and one record with a status no
// stage recognizes, to exercise the defensive reroute.
func DemoRecords(now time.Time) []domain.OrderRecord {
	staleQuote := now.Add(-4 * 24 * time.Hour)
	freshQuote := now.Add(-6 * time.Hour)
	return []domain.OrderRecord{
		{
			ID: "demo-1", CustomerName: "Dana Cohen", Email: "dana@example.com",
			Phone: "050-1234567", Location: "Haifa", GuestCount: 120,
			EventDate: now.Add(30 * 24 * time.Hour), Status: domain.StageNew,
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID: "demo-2", CustomerName: "Yossi Levi", Email: "yossi@example.com",
			Phone: "052-7654321", Location: "Tel Aviv", GuestCount: 80,
			EventDate: now.Add(45 * 24 * time.Hour), Status: domain.StageQuoteSent,
			QuoteSentAt: &staleQuote, CreatedAt: now.Add(-5 * 24 * time.Hour),
		},
		{
			ID: "demo-3", CustomerName: "Rina Mizrahi", Email: "rina@example.com",
			Phone: "054-1112222", Location: "Jerusalem", GuestCount: 200,
			EventDate: now.Add(60 * 24 * time.Hour), Status: domain.StageQuoteSent,
			QuoteSentAt: &freshQuote, CreatedAt: now.Add(-day),
		},
		{
			ID: "demo-4", CustomerName: "Avi Peretz", Email: "avi@example.com",
			Phone: "053-3334444", Location: "Netanya", GuestCount: 60,
			EventDate: now.Add(14 * 24 * time.Hour), Status: domain.StageDepositPaid,
			CreatedAt: now.Add(-10 * day),
		},
		{
			ID: "demo-5", CustomerName: "Maya Bar", Email: "dana@example.com",
			Phone: "050-1234567", Location: "Haifa", GuestCount: 45,
			EventDate: now.Add(-90 * day), Status: domain.StageCompleted,
			CreatedAt: now.Add(-120 * day),
		},
		{
			// Legacy status from before the pipeline rework; the board
			// reroutes it to the first column.
			ID: "demo-6", CustomerName: "Noa Adler", Email: "noa@example.com",
			Phone: "058-9990000", Location: "Eilat", GuestCount: 30,
			EventDate: now.Add(21 * day), Status: domain.Stage("phone_call"),
			CreatedAt: now.Add(-3 * day),
		},
	}
}

const day = 24 * time.Hour
