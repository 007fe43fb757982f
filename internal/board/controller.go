package board

import (
	"context"
	"fmt"
	"sync"
	"time"

	"catering-system/internal/common/logger"
	"catering-system/internal/domain"
	"catering-system/internal/pipeline"
	"catering-system/internal/store"
)

// Publisher emits a status-change event after a persisted move. Optional.
type Publisher interface {
	StatusChanged(ctx context.Context, ev domain.StatusChanged) error
}

// DragEvent is one drag-end gesture from the board UI. The stage/index
// pairs describe where the user saw the card, which may already be stale.
type DragEvent struct {
	RecordID  string       `json:"record_id"`
	From      domain.Stage `json:"from_stage"`
	FromIndex int          `json:"from_index"`
	To        domain.Stage `json:"to_stage"`
	ToIndex   int          `json:"to_index"`
}

// Controller turns drag gestures into board mutations and store writes.
// The move is applied optimistically, then persisted as a partial update;
// when the write fails the whole collection is re-fetched and the board
// rebuilt from it, discarding the optimistic state. No per-field merge is
// attempted: the board has no versioning to merge with.
type Controller struct {
	queue  *Queue
	store  store.RecordStore
	policy *pipeline.Policy
	pub    Publisher
	lg     *logger.Logger

	// Notify surfaces a user-visible notice. Called exactly once per
	// failed move.
	Notify func(msg string)

	// WriteTimeout bounds the persist call. Zero keeps the legacy
	// behavior of waiting indefinitely.
	WriteTimeout time.Duration

	// Guard rejects a second move for a record whose previous move is
	// still persisting. Without it two racing moves for the same record
	// may settle in either order.
	Guard bool

	// Now is swappable for tests.
	Now func() time.Time

	// ChangedBy labels published events.
	ChangedBy string

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewController(q *Queue, st store.RecordStore, lg *logger.Logger) *Controller {
	return &Controller{
		queue:     q,
		store:     st,
		lg:        lg,
		Guard:     true,
		Now:       time.Now,
		ChangedBy: "dashboard",
		inFlight:  make(map[string]struct{}),
	}
}

// WithPolicy installs a move policy. The default permits every move.
func (c *Controller) WithPolicy(p *pipeline.Policy) *Controller { c.policy = p; return c }

// WithPublisher installs the event publisher.
func (c *Controller) WithPublisher(p Publisher) *Controller { c.pub = p; return c }

// HandleDragEnd processes one gesture end to end.
func (c *Controller) HandleDragEnd(ctx context.Context, ev DragEvent) error {
	if ev.From == ev.To && ev.FromIndex == ev.ToIndex {
		return nil
	}
	if !c.policy.Permits(ev.From, ev.To) {
		return fmt.Errorf("%s -> %s: %w", ev.From, ev.To, ErrMoveNotAllowed)
	}

	if c.Guard {
		if !c.acquire(ev.RecordID) {
			return fmt.Errorf("record %s: %w", ev.RecordID, ErrMoveInFlight)
		}
		defer c.release(ev.RecordID)
	}

	// Optimistic apply: move the card and stamp the transition fields on
	// the cached copy before the store has confirmed anything.
	var (
		moveErr  error
		oldStage domain.Stage
		updated  domain.OrderRecord
		changes  domain.FieldChanges
	)
	now := c.Now()
	c.queue.Apply(func(m *Model) {
		current, stage, _, ok := m.Get(ev.RecordID)
		if !ok {
			moveErr = ErrCardNotFound
			return
		}
		oldStage = stage
		if moveErr = m.MoveCard(ev.From, ev.FromIndex, ev.To, ev.ToIndex, ev.RecordID); moveErr != nil {
			return
		}
		updated, changes = pipeline.Transition(current, ev.To, now)
		m.Put(updated)
	})
	if moveErr != nil {
		return moveErr
	}

	if err := c.persist(ctx, ev.RecordID, changes); err != nil {
		c.lg.Error("order_update_failed", err, map[string]any{
			"record_id": ev.RecordID, "from": ev.From, "to": ev.To,
		})
		c.reconcile(ctx)
		if c.Notify != nil {
			c.Notify("update failed, state reloaded")
		}
		return fmt.Errorf("persist move of %s: %w", ev.RecordID, err)
	}

	c.lg.Info("order_stage_changed", map[string]any{
		"record_id": ev.RecordID, "from": oldStage, "to": ev.To,
	})
	c.publish(ctx, updated, oldStage, now)
	return nil
}

// Reload fetches the collection and rebuilds the board from it. Used at
// startup and by any caller that wants a server-authoritative refresh.
func (c *Controller) Reload(ctx context.Context) error {
	records, err := c.store.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("reload orders: %w", err)
	}
	c.install(records)
	return nil
}

func (c *Controller) persist(ctx context.Context, id string, changes domain.FieldChanges) error {
	if c.WriteTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.WriteTimeout)
		defer cancel()
	}
	return c.store.UpdateFields(ctx, id, changes)
}

// reconcile discards the optimistic state in favor of a fresh fetch. A
// failed fetch leaves the optimistic board in place and is logged; the
// next successful load repairs it.
func (c *Controller) reconcile(ctx context.Context) {
	records, err := c.store.ListAll(ctx)
	if err != nil {
		c.lg.Error("board_reload_failed", err, nil)
		return
	}
	c.install(records)
}

func (c *Controller) install(records []domain.OrderRecord) {
	fresh, rerouted := Partition(records)
	for _, r := range rerouted {
		c.lg.Warn("unrecognized_status_rerouted", map[string]any{
			"record_id": r.ID, "routed_to": domain.StageNew,
		})
	}
	c.queue.Apply(func(m *Model) { *m = *fresh })
}

// publish is best-effort: the move already persisted, so a broker problem
// is logged and swallowed.
func (c *Controller) publish(ctx context.Context, rec domain.OrderRecord, old domain.Stage, now time.Time) {
	if c.pub == nil {
		return
	}
	err := c.pub.StatusChanged(ctx, domain.StatusChanged{
		OrderID:      rec.ID,
		CustomerName: rec.CustomerName,
		OldStatus:    old,
		NewStatus:    rec.Status,
		ChangedBy:    c.ChangedBy,
		Timestamp:    now,
	})
	if err != nil {
		c.lg.Error("status_event_publish_failed", err, map[string]any{"record_id": rec.ID})
	}
}

func (c *Controller) acquire(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, busy := c.inFlight[id]; busy {
		return false
	}
	c.inFlight[id] = struct{}{}
	return true
}

func (c *Controller) release(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inFlight, id)
}
