package queue

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	QueueBookingCreated = "booking.created"
	QueueBookingMoved   = "booking.moved"
)

// Publisher emits booking events to RabbitMQ. Publish failures are
// logged and returned; callers on the request path ignore them so a
// broker outage never fails a booking.
type Publisher struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

// Connect dials the broker and declares the durable booking queues.
func Connect(url string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	for _, name := range []string{QueueBookingCreated, QueueBookingMoved} {
		if _, err := ch.QueueDeclare(name, true, false, false, false, nil); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return nil, err
		}
	}

	return &Publisher{conn: conn, ch: ch}, nil
}

func (p *Publisher) Close() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

func (p *Publisher) PublishBookingCreated(ctx context.Context, ev BookingCreatedEvent) error {
	return p.publish(ctx, QueueBookingCreated, ev)
}

func (p *Publisher) PublishBookingMoved(ctx context.Context, ev BookingMovedEvent) error {
	return p.publish(ctx, QueueBookingMoved, ev)
}

func (p *Publisher) publish(ctx context.Context, queueName string, ev any) error {
	body, err := json.Marshal(ev)
	if err != nil {
		log.Printf("queue: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := p.ch.PublishWithContext(ctx, "", queueName, false, false, pub); err != nil {
		log.Printf("queue: publish to %s failed: %v", queueName, err)
		return err
	}
	return nil
}
