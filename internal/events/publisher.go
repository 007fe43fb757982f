// Package events publishes order status changes to the message broker.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"catering-system/internal/connections/rabbitmq"
	"catering-system/internal/domain"
)

// AMQPPublisher emits StatusChanged events on the orders topic exchange,
// one routing key per destination stage so subscribers can filter.
type AMQPPublisher struct {
	client *rabbitmq.Client
}

func NewAMQPPublisher(client *rabbitmq.Client) *AMQPPublisher {
	return &AMQPPublisher{client: client}
}

func (p *AMQPPublisher) StatusChanged(ctx context.Context, ev domain.StatusChanged) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal status event: %w", err)
	}
	key := fmt.Sprintf("%s.%s", rabbitmq.StatusChangedKey, ev.NewStatus)
	if err := p.client.Publish(ctx, rabbitmq.OrdersExchange, key, body); err != nil {
		return fmt.Errorf("publish %s: %w", key, err)
	}
	return nil
}
