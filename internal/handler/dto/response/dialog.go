package response

import (
	"dining-concierge/internal/domain/dialog"
)

type TurnResponse struct {
	SessionAttributes map[string]string `json:"sessionAttributes"`
	DialogAction      DialogAction      `json:"dialogAction"`
}

type DialogAction struct {
	Type             string             `json:"type"`
	IntentName       string             `json:"intentName,omitempty"`
	Slots            map[string]*string `json:"slots,omitempty"`
	SlotToElicit     string             `json:"slotToElicit,omitempty"`
	FulfillmentState string             `json:"fulfillmentState,omitempty"`
	Message          *Message           `json:"message,omitempty"`
}

type Message struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

func NewTurnResponse(result *dialog.TurnResult) TurnResponse {
	action := DialogAction{
		Type:             string(result.Action.Type),
		IntentName:       result.Action.IntentName,
		SlotToElicit:     result.Action.SlotToElicit,
		FulfillmentState: result.Action.FulfillmentState,
	}
	if result.Action.Slots != nil {
		action.Slots = slotMap(result.Action.Slots)
	}
	if result.Action.Message != "" {
		action.Message = &Message{ContentType: "PlainText", Content: result.Action.Message}
	}
	return TurnResponse{
		SessionAttributes: result.SessionAttributes,
		DialogAction:      action,
	}
}

// slotMap renders the full slot map with explicit nulls for slots still to be
// collected, which is what the host expects on ElicitSlot and Delegate.
func slotMap(slots dialog.Slots) map[string]*string {
	out := make(map[string]*string, len(dialog.SlotNames()))
	for _, name := range dialog.SlotNames() {
		if value, ok := slots.Get(name); ok {
			v := value
			out[name] = &v
			continue
		}
		out[name] = nil
	}
	return out
}
