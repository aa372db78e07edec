package commands

import (
	"context"
	"log/slog"
	"time"

	"dining-concierge/internal/domain/dialog"
	"dining-concierge/internal/domain/reservation"
	"dining-concierge/internal/pkg/clock"
	"dining-concierge/internal/pkg/config"
	"dining-concierge/internal/pkg/errs"
)

var (
	ErrUnsupportedIntent = errs.New("unsupported intent")
	ErrInvalidSlots      = errs.New("invalid slot values")
	ErrEnqueueFailed     = errs.New("failed to enqueue reservation request")
)

const (
	confirmationText = "You're all set. Expect my suggestions shortly! Have a good day."
	thankYouText     = "You are welcome."
	greetingText     = "Hi there, how can I help?"
)

// DialogCommands drives one conversational turn to exactly one dialog action.
type DialogCommands interface {
	HandleTurn(ctx context.Context, event dialog.TurnEvent) (*dialog.TurnResult, error)
}

type dialogCommandsImpl struct {
	queue          ReservationQueue
	rules          dialog.Rules
	clock          clock.Clock
	businessZone   *time.Location
	enqueueTimeout time.Duration
}

func NewDialogCommands(
	queue ReservationQueue,
	rules dialog.Rules,
	clk clock.Clock,
	cfg config.Config,
) (DialogCommands, error) {
	zone, err := time.LoadLocation(cfg.Dialog.TimeZone)
	if err != nil {
		return nil, errs.Wrap(err, "invalid business time zone")
	}
	return &dialogCommandsImpl{
		queue:          queue,
		rules:          rules,
		clock:          clk,
		businessZone:   zone,
		enqueueTimeout: cfg.Queue.EnqueueTimeout,
	}, nil
}

func (d *dialogCommandsImpl) HandleTurn(ctx context.Context, event dialog.TurnEvent) (*dialog.TurnResult, error) {
	slog.Debug("dialog turn", "user_id", event.UserID, "intent", event.IntentName, "source", event.InvocationSource)

	switch event.IntentName {
	case dialog.IntentDiningSuggestions:
		return d.reservationTurn(ctx, event)
	case dialog.IntentThankYou:
		return closeTurn(event, thankYouText), nil
	case dialog.IntentGreeting:
		return closeTurn(event, greetingText), nil
	default:
		return nil, errs.Mark(errs.Newf("intent %q not supported", event.IntentName), ErrUnsupportedIntent)
	}
}

// reservationTurn is the dialog state machine: while slots are being elicited,
// re-prompt on the first violation or delegate; on the fulfillment turn,
// enqueue the completed request and close the conversation.
func (d *dialogCommandsImpl) reservationTurn(ctx context.Context, event dialog.TurnEvent) (*dialog.TurnResult, error) {
	if event.InvocationSource == dialog.SourceValidation {
		today := d.clock.Now().In(d.businessZone)
		result := d.rules.Validate(event.Slots, today)
		if !result.Valid {
			// Clear the violated slot in a copy so the host re-elicits it;
			// the host-owned map is never mutated in place.
			slots := event.Slots.Clone()
			delete(slots, result.ViolatedSlot)
			return &dialog.TurnResult{
				SessionAttributes: event.SessionAttributes,
				Action:            dialog.ElicitSlot(event.IntentName, slots, result.ViolatedSlot, result.Message),
			}, nil
		}
		return &dialog.TurnResult{
			SessionAttributes: event.SessionAttributes,
			Action:            dialog.Delegate(event.Slots.Clone()),
		}, nil
	}

	request, err := reservation.FromSlots(event.Slots)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSlots)
	}
	body, err := request.Encode()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSlots)
	}

	enqueueCtx, cancel := context.WithTimeout(ctx, d.enqueueTimeout)
	defer cancel()
	if err := d.queue.Enqueue(enqueueCtx, body); err != nil {
		slog.Error("failed to enqueue reservation request", "user_id", event.UserID, "error", err)
		return nil, errs.Mark(err, ErrEnqueueFailed)
	}

	return closeTurn(event, confirmationText), nil
}

func closeTurn(event dialog.TurnEvent, message string) *dialog.TurnResult {
	attrs := event.SessionAttributes
	if attrs == nil {
		attrs = map[string]string{}
	}
	return &dialog.TurnResult{
		SessionAttributes: attrs,
		Action:            dialog.Close(message),
	}
}
