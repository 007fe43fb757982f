package domain

import (
	"encoding/json"
	"time"
)

// Stage is one column of the order board. The value is stored as-is in the
// record store, so the constants double as wire values.
type Stage string

const (
	StageNew         Stage = "new"
	StageQuoteSent   Stage = "quote_sent"
	StageDepositPaid Stage = "deposit_paid"
	StageConfirmed   Stage = "confirmed"
	StageCompleted   Stage = "completed"
	StageArchived    Stage = "archived"
)

// Stages returns all stages in board column order.
func Stages() []Stage {
	return []Stage{StageNew, StageQuoteSent, StageDepositPaid, StageConfirmed, StageCompleted, StageArchived}
}

// ParseStage reports whether s names a recognized stage.
func ParseStage(s string) (Stage, bool) {
	switch Stage(s) {
	case StageNew, StageQuoteSent, StageDepositPaid, StageConfirmed, StageCompleted, StageArchived:
		return Stage(s), true
	}
	return "", false
}

// OrderRecord is one catering event request. The record store owns it; the
// board holds a locally cached copy that may go stale until the next reload.
type OrderRecord struct {
	ID             string          `json:"id"`
	CustomerName   string          `json:"customer_name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Location       string          `json:"location"`
	EventDate      time.Time       `json:"event_date"`
	GuestCount     int             `json:"guest_count"`
	Status         Stage           `json:"status"`
	QuoteSentAt    *time.Time      `json:"quote_sent_at,omitempty"`
	SelectedMenuID string          `json:"selected_menu_id,omitempty"`
	// Selections is written by the menu-selection flow and never
	// interpreted here.
	Selections json.RawMessage `json:"selections,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// FieldChanges describes a partial update to one record. Nil fields are
// left untouched by the store; the board controller never writes anything
// it does not own through any other path.
type FieldChanges struct {
	Status      *Stage
	QuoteSentAt *time.Time
}

// Empty reports whether the change set would touch nothing.
func (c FieldChanges) Empty() bool {
	return c.Status == nil && c.QuoteSentAt == nil
}
