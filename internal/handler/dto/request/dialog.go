package request

import (
	"dining-concierge/internal/domain/dialog"
)

// TurnEventRequest is the per-turn event posted by the conversational host.
// Slot values are nullable: null means the slot has not been collected yet.
type TurnEventRequest struct {
	UserID            string            `json:"userId" binding:"required"`
	SessionAttributes map[string]string `json:"sessionAttributes"`
	InvocationSource  string            `json:"invocationSource" binding:"required,oneof=DialogCodeHook FulfillmentCodeHook"`
	CurrentIntent     CurrentIntent     `json:"currentIntent" binding:"required"`
}

type CurrentIntent struct {
	Name  string             `json:"name" binding:"required"`
	Slots map[string]*string `json:"slots"`
}

func (r TurnEventRequest) ToDomain() dialog.TurnEvent {
	slots := make(dialog.Slots, len(r.CurrentIntent.Slots))
	for name, value := range r.CurrentIntent.Slots {
		if value == nil || *value == "" {
			continue
		}
		slots[name] = *value
	}
	return dialog.TurnEvent{
		UserID:            r.UserID,
		IntentName:        r.CurrentIntent.Name,
		InvocationSource:  r.InvocationSource,
		SessionAttributes: r.SessionAttributes,
		Slots:             slots,
	}
}
