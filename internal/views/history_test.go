package views

import (
	"context"
	"errors"
	"testing"
	"time"

	"catering-system/internal/domain"
	"catering-system/internal/store"
)

func TestCustomerHistory(t *testing.T) {
	t.Parallel()
	d := func(day int) time.Time { return time.Date(2026, 6, day, 0, 0, 0, 0, time.UTC) }
	st := store.NewMemory(
		domain.OrderRecord{ID: "a", Email: "Dana@Example.com", Location: "Haifa", GuestCount: 120, EventDate: d(1), Status: domain.StageCompleted},
		domain.OrderRecord{ID: "b", Email: "dana@example.com", Location: "Tel Aviv", GuestCount: 60, EventDate: d(20), Status: domain.StageQuoteSent},
		domain.OrderRecord{ID: "c", Email: "someone@else.com", EventDate: d(10), Status: domain.StageNew},
	)

	got, err := CustomerHistory(context.Background(), st, "dana@example.com")
	if err != nil {
		t.Fatalf("CustomerHistory() error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	if !got[0].EventDate.Equal(d(20)) || !got[1].EventDate.Equal(d(1)) {
		t.Errorf("entries not sorted newest event first: %+v", got)
	}
	if got[0].Status != domain.StageQuoteSent {
		t.Errorf("status = %q, want quote_sent", got[0].Status)
	}
	if got[0].Descriptor != "Tel Aviv, 60 guests" {
		t.Errorf("descriptor = %q", got[0].Descriptor)
	}
}

type failingStore struct{ store.RecordStore }

func (failingStore) FindByIdentity(ctx context.Context, email string) ([]domain.OrderRecord, error) {
	return nil, errors.New("store down")
}

func TestCustomerHistoryStoreFailure(t *testing.T) {
	t.Parallel()
	_, err := CustomerHistory(context.Background(), failingStore{}, "dana@example.com")
	if err == nil {
		t.Fatal("CustomerHistory() = nil error, want failure surfaced to the view")
	}
}
