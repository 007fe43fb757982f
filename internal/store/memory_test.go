package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"catering-system/internal/domain"
)

func TestMemoryListAllNewestFirst(t *testing.T) {
	t.Parallel()
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	m := NewMemory(
		domain.OrderRecord{ID: "a", CustomerName: "first", CreatedAt: base},
		domain.OrderRecord{ID: "b", CustomerName: "second", CreatedAt: base.Add(time.Hour)},
		domain.OrderRecord{ID: "c", CustomerName: "third", CreatedAt: base.Add(2 * time.Hour)},
	)

	got, err := m.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll() error: %v", err)
	}
	want := []string{"c", "b", "a"}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d: got %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestMemoryUpdateFieldsPartial(t *testing.T) {
	t.Parallel()
	m := NewMemory(domain.OrderRecord{
		ID:           "a",
		CustomerName: "Dana",
		Status:       domain.StageNew,
		Selections:   []byte(`{"mains":["m1"]}`),
	})

	stage := domain.StageQuoteSent
	stamp := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	if err := m.UpdateFields(context.Background(), "a", domain.FieldChanges{Status: &stage, QuoteSentAt: &stamp}); err != nil {
		t.Fatalf("UpdateFields() error: %v", err)
	}

	all, _ := m.ListAll(context.Background())
	r := all[0]
	if r.Status != domain.StageQuoteSent || r.QuoteSentAt == nil || !r.QuoteSentAt.Equal(stamp) {
		t.Errorf("update not applied: %+v", r)
	}
	if r.CustomerName != "Dana" || string(r.Selections) != `{"mains":["m1"]}` {
		t.Errorf("partial update clobbered unowned fields: %+v", r)
	}
}

func TestMemoryUpdateUnknownID(t *testing.T) {
	t.Parallel()
	m := NewMemory()
	stage := domain.StageArchived
	err := m.UpdateFields(context.Background(), "missing", domain.FieldChanges{Status: &stage})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestMemoryFindByIdentity(t *testing.T) {
	t.Parallel()
	d := func(day int) time.Time { return time.Date(2026, 7, day, 0, 0, 0, 0, time.UTC) }
	m := NewMemory(
		domain.OrderRecord{ID: "a", Email: "Dana@Example.com", EventDate: d(5)},
		domain.OrderRecord{ID: "b", Email: "dana@example.com", EventDate: d(20)},
		domain.OrderRecord{ID: "c", Email: "other@example.com", EventDate: d(10)},
	)

	got, err := m.FindByIdentity(context.Background(), "DANA@example.COM")
	if err != nil {
		t.Fatalf("FindByIdentity() error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if got[0].ID != "b" || got[1].ID != "a" {
		t.Errorf("order = [%s %s], want newest event first [b a]", got[0].ID, got[1].ID)
	}
}
