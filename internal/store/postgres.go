package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"catering-system/internal/domain"
)

// Postgres serves the record store from the event_requests table.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *Postgres { return &Postgres{pool: pool} }

const recordColumns = `id, customer_name, email, phone, location, event_date,
guest_count, status, quote_sent_at, selected_menu_id, selections, created_at`

func (p *Postgres) ListAll(ctx context.Context) ([]domain.OrderRecord, error) {
	rows, err := p.pool.Query(ctx, `
SELECT `+recordColumns+`
FROM event_requests
ORDER BY created_at DESC
`)
	if err != nil {
		return nil, fmt.Errorf("list event_requests: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

func (p *Postgres) FindByIdentity(ctx context.Context, email string) ([]domain.OrderRecord, error) {
	rows, err := p.pool.Query(ctx, `
SELECT `+recordColumns+`
FROM event_requests
WHERE lower(email) = lower($1)
ORDER BY event_date DESC
`, email)
	if err != nil {
		return nil, fmt.Errorf("find event_requests by email: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

// UpdateFields builds the SET list from the non-nil members of changes, so
// the statement only ever names the columns the caller owns.
func (p *Postgres) UpdateFields(ctx context.Context, id string, changes domain.FieldChanges) error {
	if changes.Empty() {
		return nil
	}

	set := make([]string, 0, 2)
	args := []any{id}
	if changes.Status != nil {
		args = append(args, string(*changes.Status))
		set = append(set, fmt.Sprintf("status = $%d", len(args)))
	}
	if changes.QuoteSentAt != nil {
		args = append(args, *changes.QuoteSentAt)
		set = append(set, fmt.Sprintf("quote_sent_at = $%d", len(args)))
	}

	tag, err := p.pool.Exec(ctx,
		"UPDATE event_requests SET "+strings.Join(set, ", ")+" WHERE id = $1", args...)
	if err != nil {
		return fmt.Errorf("update event_requests %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update event_requests %s: %w", id, ErrNotFound)
	}
	return nil
}

func scanRecords(rows pgx.Rows) ([]domain.OrderRecord, error) {
	var out []domain.OrderRecord
	for rows.Next() {
		var (
			r      domain.OrderRecord
			status string
			menuID *string
		)
		if err := rows.Scan(
			&r.ID, &r.CustomerName, &r.Email, &r.Phone, &r.Location,
			&r.EventDate, &r.GuestCount, &status, &r.QuoteSentAt,
			&menuID, &r.Selections, &r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan event_request: %w", err)
		}
		// Stored as raw text; the board decides what to do with values
		// it does not recognize.
		r.Status = domain.Stage(status)
		if menuID != nil {
			r.SelectedMenuID = *menuID
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
