package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	RoutingBookingConfirmed = "booking.confirmed"
	RoutingBookingFailed    = "booking.failed"
)

// BookingEvent is the message published to the topic exchange after a
// callback reconciliation reaches a terminal status.
type BookingEvent struct {
	Event      string `json:"event"`
	Version    int    `json:"version"`
	OccurredAt string `json:"occurred_at"` // RFC3339
	Data       struct {
		BookingID      string `json:"booking_id"`
		RoomID         string `json:"room_id"`
		GatewayOrderID string `json:"gateway_order_id"`
		AmountPaise    int64  `json:"amount_paise"`
		Currency       string `json:"currency"`
		Status         string `json:"status"`
	} `json:"data"`
}

func NewBookingEvent(routingKey, bookingID, roomID, orderID string, amountPaise int64, currency, status string, occurredAt time.Time) BookingEvent {
	evt := BookingEvent{
		Event:      routingKey,
		Version:    1,
		OccurredAt: occurredAt.UTC().Format(time.RFC3339),
	}
	evt.Data.BookingID = bookingID
	evt.Data.RoomID = roomID
	evt.Data.GatewayOrderID = orderID
	evt.Data.AmountPaise = amountPaise
	evt.Data.Currency = currency
	evt.Data.Status = status
	return evt
}

// Publisher pushes booking lifecycle events to a durable topic exchange.
type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

func NewPublisher(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &Publisher{conn: conn, ch: ch, exchange: exchange}, nil
}

// PublishJSON is best effort from the caller's point of view: reconciliation
// must never fail because the broker is down.
func (p *Publisher) PublishJSON(ctx context.Context, key string, v any) error {
	if p == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        b,
	})
}

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
