package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher публикует доменные события бронирований в RabbitMQ.
// Ошибки публикации не прерывают основной поток запроса: вызывающая
// сторона логирует их и продолжает работу. Сообщения публикуются
// персистентными в durable-очереди, чтобы пережить рестарт брокера.
type Publisher struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewPublisher подключается к брокеру и декларирует очереди событий
func NewPublisher(url string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	for _, queue := range []string{QueueBookingCreated, QueueBookingStatusChanged} {
		if _, err := ch.QueueDeclare(
			queue,
			true,  // durable
			false, // autoDelete
			false, // exclusive
			false, // noWait
			nil,
		); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return nil, fmt.Errorf("failed to declare queue %s: %w", queue, err)
		}
	}

	return &Publisher{conn: conn, ch: ch}, nil
}

// PublishBookingCreated публикует событие создания пакета бронирований
func (p *Publisher) PublishBookingCreated(ctx context.Context, event BookingCreatedEvent) error {
	return p.publish(ctx, QueueBookingCreated, event)
}

// PublishBookingStatusChanged публикует событие смены статуса бронирования
func (p *Publisher) PublishBookingStatusChanged(ctx context.Context, event BookingStatusChangedEvent) error {
	return p.publish(ctx, QueueBookingStatusChanged, event)
}

func (p *Publisher) publish(ctx context.Context, queue string, event any) error {
	if p == nil || p.ch == nil {
		return nil
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	// Публикация в default exchange, routing key совпадает с именем очереди
	if err := p.ch.PublishWithContext(ctx, "", queue, false, false, pub); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", queue, err)
	}

	return nil
}

// Close закрывает канал и соединение с брокером
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
