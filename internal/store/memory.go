package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"catering-system/internal/domain"
)

// Memory is an in-process record store with the same contract as Postgres.
// It backs tests and the --demo dashboard.
type Memory struct {
	mu      sync.Mutex
	records map[string]domain.OrderRecord
}

func NewMemory(seed ...domain.OrderRecord) *Memory {
	m := &Memory{records: make(map[string]domain.OrderRecord, len(seed))}
	for _, r := range seed {
		m.Insert(r)
	}
	return m
}

// Insert adds a record, minting an id and defaulting the stage when the
// caller left them empty. Creation normally belongs to the lead-capture
// flow; this exists for seeding and tests.
func (m *Memory) Insert(r domain.OrderRecord) domain.OrderRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Status == "" {
		r.Status = domain.StageNew
	}
	m.records[r.ID] = r
	return r
}

func (m *Memory) ListAll(ctx context.Context) ([]domain.OrderRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.OrderRecord, 0, len(m.records))
	for _, r := range m.records {
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *Memory) UpdateFields(ctx context.Context, id string, changes domain.FieldChanges) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.records[id]
	if !ok {
		return ErrNotFound
	}
	if changes.Status != nil {
		r.Status = *changes.Status
	}
	if changes.QuoteSentAt != nil {
		stamp := *changes.QuoteSentAt
		r.QuoteSentAt = &stamp
	}
	m.records[id] = r
	return nil
}

func (m *Memory) FindByIdentity(ctx context.Context, email string) ([]domain.OrderRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.OrderRecord
	for _, r := range m.records {
		if strings.EqualFold(r.Email, email) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EventDate.After(out[j].EventDate)
	})
	return out, nil
}
