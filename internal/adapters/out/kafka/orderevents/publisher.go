// Package orderevents publishes order lifecycle events to Kafka. Messages are
// keyed by order id so every event of one order lands on the same partition
// in commit order.
package orderevents

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

const eventTypeHeader = "event-type"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

var _ ports.OrderEventPublisher = (*Publisher)(nil)

// Publisher implements ports.OrderEventPublisher.
type Publisher struct {
	writer messageWriter
}

func NewPublisher(writer messageWriter) (*Publisher, error) {
	if writer == nil {
		return nil, errors.New("kafka writer required for order events")
	}
	return &Publisher{writer: writer}, nil
}

// NewWriter builds the writer for topic on a comma separated broker list.
func NewWriter(brokers, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(splitBrokers(brokers)...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
}

func (p *Publisher) Publish(ctx context.Context, events ...ports.OrderEvent) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		payload, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("encode %s event: %w", event.Type, err)
		}
		msgs = append(msgs, kafka.Message{
			Key:     []byte(event.OrderID),
			Value:   payload,
			Time:    event.OccurredAt,
			Headers: []kafka.Header{{Key: eventTypeHeader, Value: []byte(event.Type)}},
		})
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write %d order events: %w", len(msgs), err)
	}
	return nil
}

func splitBrokers(brokers string) []string {
	parts := strings.Split(brokers, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
