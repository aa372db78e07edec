package commands

import (
	"context"
	"log/slog"

	"dining-concierge/internal/domain/notification"
	"dining-concierge/internal/domain/reservation"
	"dining-concierge/internal/pkg/errs"
)

var (
	ErrMalformedMessage  = errs.New("malformed reservation message")
	ErrDispatchFailed    = errs.New("failed to dispatch notification")
	ErrAcknowledgeFailed = errs.New("failed to acknowledge reservation message")
)

// FulfillmentCommands runs one queue message through the fulfillment pipeline:
// receive, parse, recommend, compose, send, acknowledge.
type FulfillmentCommands interface {
	// ProcessNext processes at most one message to a terminal state and
	// reports whether a message was processed. An empty queue is (false, nil).
	ProcessNext(ctx context.Context) (bool, error)
}

type fulfillmentCommandsImpl struct {
	queue    ReservationQueue
	selector *RecommendationSelector
	notifier Notifier
}

func NewFulfillmentCommands(
	queue ReservationQueue,
	selector *RecommendationSelector,
	notifier Notifier,
) FulfillmentCommands {
	return &fulfillmentCommandsImpl{
		queue:    queue,
		selector: selector,
		notifier: notifier,
	}
}

// Every failure before a successful acknowledge leaves the message unacked so
// the queue redelivers it; an acknowledge failure after a successful send is
// the one fatal outcome, since redelivery then duplicates the notification.
func (f *fulfillmentCommandsImpl) ProcessNext(ctx context.Context) (bool, error) {
	messages, err := f.queue.Receive(ctx)
	if err != nil {
		return false, err
	}
	if len(messages) == 0 {
		return false, nil
	}
	message := messages[0]

	request, err := reservation.Decode(message.Body)
	if err != nil {
		slog.Warn("malformed reservation message left for redelivery", "receipt", message.ReceiptToken, "error", err)
		return false, errs.Mark(err, ErrMalformedMessage)
	}

	picks, err := f.selector.Select(ctx, request.Cuisine)
	if err != nil {
		return false, err
	}

	text := notification.Compose(request, picks)
	if err := f.notifier.Send(ctx, request.PhoneNumber, text); err != nil {
		return false, errs.Mark(err, ErrDispatchFailed)
	}

	if err := f.queue.Delete(ctx, message.ReceiptToken); err != nil {
		slog.Error("failed to acknowledge after successful send; redelivery may duplicate the notification",
			"receipt", message.ReceiptToken, "error", err)
		return false, errs.Mark(err, ErrAcknowledgeFailed)
	}

	slog.Info("reservation request fulfilled", "cuisine", request.Cuisine, "date", request.Date)
	return true, nil
}
