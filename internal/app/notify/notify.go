// Package notify tails the status-change events so an operator terminal
// (or a future delivery channel) can follow the pipeline in real time.
package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"catering-system/internal/common/config"
	"catering-system/internal/common/logger"
	"catering-system/internal/connections/rabbitmq"
	"catering-system/internal/domain"
)

type Config struct {
	App      config.App
	Prefetch int
}

func Run(ctx context.Context, cfg Config) error {
	lg := logger.New("notification-subscriber")

	rmq, err := rabbitmq.Dial(cfg.App.RabbitMQ, false)
	if err != nil {
		return fmt.Errorf("notify: rabbitmq: %w", err)
	}
	defer rmq.Close()
	if err := rmq.DeclareTopology(); err != nil {
		return fmt.Errorf("notify: declare topology: %w", err)
	}

	deliveries, err := rmq.Consume(rabbitmq.NotificationsQueue, "notification-subscriber", cfg.Prefetch)
	if err != nil {
		return fmt.Errorf("notify: consume: %w", err)
	}
	lg.Info("subscribed", map[string]any{"queue": rabbitmq.NotificationsQueue})

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("notify: delivery channel closed")
			}
			var ev domain.StatusChanged
			if err := json.Unmarshal(d.Body, &ev); err != nil {
				lg.Error("bad_event_payload", err, map[string]any{"routing_key": d.RoutingKey})
				_ = d.Nack(false, false)
				continue
			}
			lg.Info("order_status_changed", map[string]any{
				"order_id": ev.OrderID,
				"customer": ev.CustomerName,
				"from":     ev.OldStatus,
				"to":       ev.NewStatus,
				"by":       ev.ChangedBy,
				"at":       ev.Timestamp,
			})
			_ = d.Ack(false)
		}
	}
}
