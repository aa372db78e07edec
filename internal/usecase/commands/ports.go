package commands

import (
	"context"

	"dining-concierge/internal/domain/restaurant"
)

// QueueMessage is one received reservation message. ReceiptToken acknowledges
// exactly this delivery.
type QueueMessage struct {
	Body         []byte
	ReceiptToken string
}

// ReservationQueue is the durable at-least-once queue between the dialog and
// the fulfillment worker. A received message stays invisible to other
// consumers until deleted or until the queue's visibility timeout elapses.
type ReservationQueue interface {
	Enqueue(ctx context.Context, body []byte) error
	Receive(ctx context.Context) ([]QueueMessage, error)
	Delete(ctx context.Context, receiptToken string) error
}

// RestaurantSearch returns candidate ids whose category matches the cuisine.
// No ordering guarantee; callers must tolerate duplicate ids.
type RestaurantSearch interface {
	SearchByCategory(ctx context.Context, cuisine string) ([]string, error)
}

// RestaurantStore is a point lookup by id. A missing record surfaces as an
// infra error of kind NOT_FOUND.
type RestaurantStore interface {
	GetByID(ctx context.Context, id string) (*restaurant.Record, error)
}

// Notifier delivers the composed suggestion text to the guest's phone number.
type Notifier interface {
	Send(ctx context.Context, phoneNumber, text string) error
}
