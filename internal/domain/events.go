package domain

import "time"

// StatusChanged is published after a stage transition has been persisted.
type StatusChanged struct {
	OrderID      string    `json:"order_id"`
	CustomerName string    `json:"customer_name"`
	OldStatus    Stage     `json:"old_status"`
	NewStatus    Stage     `json:"new_status"`
	ChangedBy    string    `json:"changed_by"`
	Timestamp    time.Time `json:"timestamp"`
}
