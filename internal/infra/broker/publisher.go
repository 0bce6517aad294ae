// Package broker publishes booking events to RabbitMQ. Each event type has
// its own durable queue named after the type and is routed through the
// default exchange.
package broker

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"hotel-booking-gateway/internal/domain/booking"
	"hotel-booking-gateway/internal/pkg/config"
	"hotel-booking-gateway/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

var ErrPublishFailed = errs.New("event publish failed")

var queues = []booking.EventType{
	booking.EventPending,
	booking.EventConfirmed,
	booking.EventExpired,
}

// RabbitPublisher keeps one connection open and opens a channel per publish.
// A dropped connection is redialed on the next publish.
type RabbitPublisher struct {
	url  string
	mu   sync.Mutex
	conn *amqp.Connection
}

func NewRabbitPublisher(cfg config.BrokerConfig) *RabbitPublisher {
	return &RabbitPublisher{url: cfg.URL}
}

// Connect dials the broker and declares every event queue.
func (p *RabbitPublisher) Connect(_ context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, err := p.connection()
	return err
}

func (p *RabbitPublisher) connection() (*amqp.Connection, error) {
	if p.conn != nil && !p.conn.IsClosed() {
		return p.conn, nil
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "rabbitmq dial"), ErrPublishFailed)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Mark(errs.Wrap(err, "rabbitmq channel"), ErrPublishFailed)
	}
	defer func() { _ = ch.Close() }()

	for _, q := range queues {
		if _, err := ch.QueueDeclare(string(q), true, false, false, false, nil); err != nil {
			_ = conn.Close()
			return nil, errs.Mark(errs.Wrapf(err, "declare queue %s", q), ErrPublishFailed)
		}
	}

	p.conn = conn
	slog.Info("Connected to RabbitMQ", "queues", len(queues))
	return conn, nil
}

func (p *RabbitPublisher) Publish(ctx context.Context, event booking.Event) error {
	msg, err := newPublishing(event)
	if err != nil {
		return errs.Mark(err, ErrPublishFailed)
	}

	p.mu.Lock()
	conn, err := p.connection()
	p.mu.Unlock()
	if err != nil {
		return err
	}

	ch, err := conn.Channel()
	if err != nil {
		return errs.Mark(errs.Wrap(err, "rabbitmq channel"), ErrPublishFailed)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.PublishWithContext(ctx, "", string(event.Type), false, false, msg); err != nil {
		return errs.Mark(errs.Wrapf(err, "publish %s", event.Type), ErrPublishFailed)
	}

	slog.Debug("Event published", "type", event.Type, "reference", event.Reference)
	return nil
}

func (p *RabbitPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.conn == nil || p.conn.IsClosed() {
		return nil
	}
	return p.conn.Close()
}

func newPublishing(event booking.Event) (amqp.Publishing, error) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	body, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, errs.Wrap(err, "marshal event")
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.Reference.String() + ":" + string(event.Type),
		Type:         string(event.Type),
		Timestamp:    event.OccurredAt,
		Body:         body,
	}, nil
}

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(_ context.Context, event booking.Event) error {
	slog.Debug("Event dropped, no broker configured", "type", event.Type, "reference", event.Reference)
	return nil
}
