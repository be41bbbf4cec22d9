package usecase

import (
	"context"
	"time"

	"cinema-ticketing/internal/dto/response"
)

// Routing keys of the domain events.
const (
	EventSessionScheduled = "session.scheduled"
	EventOrderPlaced      = "order.placed"
)

// EventPublisher is satisfied by *mq.Publisher.
type EventPublisher interface {
	Publish(ctx context.Context, key string, v any) error
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, any) error { return nil }

// SessionScheduledEvent carries what a flyer needs: where, what and when.
type SessionScheduledEvent struct {
	SessionID     string    `json:"session_id"`
	Venue         string    `json:"venue"`
	HallNumber    int       `json:"hall_number"`
	SessionNumber int       `json:"session_number"`
	Name          string    `json:"name"`
	Start         string    `json:"start"`
	End           string    `json:"end"`
	Capacity      int       `json:"capacity"`
	ScheduledAt   time.Time `json:"scheduled_at"`
}

type OrderPlacedEvent struct {
	OrderID      string                  `json:"order_id"`
	OrderRef     string                  `json:"order_ref"`
	SessionID    string                  `json:"session_id"`
	Venue        string                  `json:"venue"`
	HallNumber   int                     `json:"hall_number"`
	SessionName  string                  `json:"session_name"`
	CustomerName string                  `json:"customer_name"`
	Seats        []response.SeatResponse `json:"seats"`
	PlacedAt     time.Time               `json:"placed_at"`
}
