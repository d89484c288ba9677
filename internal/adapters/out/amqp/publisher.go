// Package amqp publishes order lifecycle events to a RabbitMQ queue.
package amqp

import (
	"context"
	"encoding/json"

	"ecom/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

// OrderEventPublisher implements ports.OrderEventPublisher on top of a
// RabbitMQ connection. The queue is declared durable on construction so
// events survive broker restarts.
type OrderEventPublisher struct {
	conn      *amqp.Connection
	channel   *amqp.Channel
	queueName string
}

// NewOrderEventPublisher dials the broker and declares the queue.
func NewOrderEventPublisher(url, queueName string) (*OrderEventPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}

	return &OrderEventPublisher{conn: conn, channel: ch, queueName: queueName}, nil
}

// Publish serializes the event as JSON and sends it to the queue.
func (p *OrderEventPublisher) Publish(ctx context.Context, event ports.OrderEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(ctx,
		"", p.queueName, false, false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}

// Close releases the channel and connection.
func (p *OrderEventPublisher) Close() error {
	if err := p.channel.Close(); err != nil {
		_ = p.conn.Close()
		return err
	}

	return p.conn.Close()
}
