// Package store is the narrow client surface over the collection of order
// records. The collection itself lives elsewhere (Postgres in production);
// everything here treats it as an opaque per-row-updatable set.
package store

import (
	"context"
	"errors"

	"catering-system/internal/domain"
)

var ErrNotFound = errors.New("order_not_found")

// RecordStore lists, partially updates, and searches order records.
type RecordStore interface {
	// ListAll fetches the full collection, newest first.
	ListAll(ctx context.Context) ([]domain.OrderRecord, error)

	// UpdateFields applies exactly the non-nil fields of changes to one
	// record. It never accepts or writes a full-record payload.
	UpdateFields(ctx context.Context, id string, changes domain.FieldChanges) error

	// FindByIdentity returns every record whose email matches,
	// case-insensitively.
	FindByIdentity(ctx context.Context, email string) ([]domain.OrderRecord, error)
}
