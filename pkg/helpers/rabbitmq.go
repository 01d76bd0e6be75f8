package helpers

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// RabbitPublisher wraps an AMQP channel and queue for publishing messages.
type RabbitPublisher struct {
	mu    sync.Mutex
	conn  *amqp.Connection
	ch    *amqp.Channel
	Queue string
}

func dialQueue(url, queue string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}
	// Declare durable queue
	_, err = ch.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, err
	}
	return conn, ch, nil
}

func NewRabbitPublisher(url, queue string) (*RabbitPublisher, error) {
	conn, ch, err := dialQueue(url, queue)
	if err != nil {
		return nil, err
	}
	return &RabbitPublisher{conn: conn, ch: ch, Queue: queue}, nil
}

func (p *RabbitPublisher) Close() {
	if p == nil {
		return
	}
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

// PublishJSON publishes a JSON-encoded message to the default queue.
// amqp channels are not safe for concurrent publishing, so calls are serialized.
func (p *RabbitPublisher) PublishJSON(ctx context.Context, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ch.PublishWithContext(ctx,
		"",      // default exchange
		p.Queue, // routing key = queue
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         b,
		},
	)
}

// RabbitConsumer reads deliveries from a durable queue with manual acks.
type RabbitConsumer struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	Queue string
}

func NewRabbitConsumer(url, queue string, prefetch int) (*RabbitConsumer, error) {
	conn, ch, err := dialQueue(url, queue)
	if err != nil {
		return nil, err
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	return &RabbitConsumer{conn: conn, ch: ch, Queue: queue}, nil
}

// Deliveries starts consuming. The channel closes when the connection does.
func (c *RabbitConsumer) Deliveries() (<-chan amqp.Delivery, error) {
	return c.ch.Consume(c.Queue, "", false, false, false, false, nil)
}

func (c *RabbitConsumer) Close() {
	if c == nil {
		return
	}
	if c.ch != nil {
		_ = c.ch.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
}
