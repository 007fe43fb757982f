// Package board holds the in-memory order board: one ordered column per
// pipeline stage, a single-writer queue that serializes every mutation, and
// the controller that turns a drag gesture into a store write.
package board

import (
	"errors"

	"catering-system/internal/domain"
)

var (
	ErrCardNotFound   = errors.New("card_not_found")
	ErrUnknownStage   = errors.New("unknown_stage")
	ErrMoveInFlight   = errors.New("move_in_flight")
	ErrMoveNotAllowed = errors.New("move_not_allowed")
)

// Model partitions the cached record collection into stage columns. It has
// no persistence of its own; rebuilding it from a fresh fetch is always
// valid and is exactly what the failure path does.
type Model struct {
	columns map[domain.Stage][]domain.OrderRecord
}

// Partition groups records by status, preserving fetch order inside each
// column. Records with an unrecognized status land in the initial stage;
// they are returned so the caller can log the diagnostic.
func Partition(records []domain.OrderRecord) (*Model, []domain.OrderRecord) {
	m := &Model{columns: make(map[domain.Stage][]domain.OrderRecord, len(domain.Stages()))}
	for _, s := range domain.Stages() {
		m.columns[s] = nil
	}

	var rerouted []domain.OrderRecord
	for _, r := range records {
		stage, ok := domain.ParseStage(string(r.Status))
		if !ok {
			rerouted = append(rerouted, r)
			stage = domain.StageNew
			r.Status = domain.StageNew
		}
		m.columns[stage] = append(m.columns[stage], r)
	}
	return m, rerouted
}

// Column returns a copy of one stage's cards.
func (m *Model) Column(stage domain.Stage) []domain.OrderRecord {
	col := m.columns[stage]
	out := make([]domain.OrderRecord, len(col))
	copy(out, col)
	return out
}

// Len is the total number of cards on the board.
func (m *Model) Len() int {
	n := 0
	for _, col := range m.columns {
		n += len(col)
	}
	return n
}

// Get locates a card by id and reports its current stage and index.
func (m *Model) Get(id string) (domain.OrderRecord, domain.Stage, int, bool) {
	for _, stage := range domain.Stages() {
		for i, r := range m.columns[stage] {
			if r.ID == id {
				return r, stage, i, true
			}
		}
	}
	return domain.OrderRecord{}, "", 0, false
}

// Put replaces the stored copy of a card in place, wherever it sits.
func (m *Model) Put(rec domain.OrderRecord) bool {
	for stage, col := range m.columns {
		for i, r := range col {
			if r.ID == rec.ID {
				m.columns[stage][i] = rec
				return true
			}
		}
	}
	return false
}

// MoveCard removes the card from its source column and inserts it into the
// destination. The given indexes are hints from the gesture: if fromIndex
// no longer points at id (the board was reloaded under the user's cursor),
// the card is re-located by id before removal. toIndex is clamped to the
// destination length.
func (m *Model) MoveCard(from domain.Stage, fromIndex int, to domain.Stage, toIndex int, id string) error {
	if _, ok := m.columns[from]; !ok {
		return ErrUnknownStage
	}
	if _, ok := m.columns[to]; !ok {
		return ErrUnknownStage
	}

	src := m.columns[from]
	if fromIndex < 0 || fromIndex >= len(src) || src[fromIndex].ID != id {
		_, actualStage, actualIndex, ok := m.Get(id)
		if !ok {
			return ErrCardNotFound
		}
		from, fromIndex = actualStage, actualIndex
		src = m.columns[from]
	}

	card := src[fromIndex]
	m.columns[from] = append(src[:fromIndex:fromIndex], src[fromIndex+1:]...)

	dst := m.columns[to]
	if toIndex < 0 {
		toIndex = 0
	}
	if toIndex > len(dst) {
		toIndex = len(dst)
	}
	dst = append(dst, domain.OrderRecord{})
	copy(dst[toIndex+1:], dst[toIndex:])
	dst[toIndex] = card
	m.columns[to] = dst
	return nil
}

// Snapshot flattens the board in column order. Derived views (the calendar
// projection) read this so they stay on the same collection snapshot as the
// board itself.
func (m *Model) Snapshot() []domain.OrderRecord {
	out := make([]domain.OrderRecord, 0, m.Len())
	for _, stage := range domain.Stages() {
		out = append(out, m.columns[stage]...)
	}
	return out
}
