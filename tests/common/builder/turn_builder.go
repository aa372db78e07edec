//go:build unit || e2e

package builder

import (
	"dining-concierge/internal/domain/dialog"
	reqdto "dining-concierge/internal/handler/dto/request"
)

type TurnBuilder struct {
	UserID            string
	IntentName        string
	InvocationSource  string
	SessionAttributes map[string]string
	Slots             map[string]string
}

func NewTurnBuilder() *TurnBuilder {
	return &TurnBuilder{
		UserID:           "user-123",
		IntentName:       dialog.IntentDiningSuggestions,
		InvocationSource: dialog.SourceValidation,
		Slots: map[string]string{
			dialog.SlotCuisine:        "japanese",
			dialog.SlotDate:           "2031-01-02",
			dialog.SlotTime:           "13:00",
			dialog.SlotLocation:       "manhattan",
			dialog.SlotNumberOfPeople: "2",
			dialog.SlotPhoneNumber:    "+15551234567",
		},
	}
}

func (b *TurnBuilder) WithIntent(name string) *TurnBuilder {
	b.IntentName = name
	return b
}

func (b *TurnBuilder) WithSource(source string) *TurnBuilder {
	b.InvocationSource = source
	return b
}

func (b *TurnBuilder) WithSlot(name, value string) *TurnBuilder {
	b.Slots[name] = value
	return b
}

func (b *TurnBuilder) WithoutSlot(name string) *TurnBuilder {
	delete(b.Slots, name)
	return b
}

func (b *TurnBuilder) WithSessionAttribute(key, value string) *TurnBuilder {
	if b.SessionAttributes == nil {
		b.SessionAttributes = map[string]string{}
	}
	b.SessionAttributes[key] = value
	return b
}

// Build methods
func (b *TurnBuilder) BuildDomain() dialog.TurnEvent {
	slots := make(dialog.Slots, len(b.Slots))
	for name, value := range b.Slots {
		slots[name] = value
	}
	return dialog.TurnEvent{
		UserID:            b.UserID,
		IntentName:        b.IntentName,
		InvocationSource:  b.InvocationSource,
		SessionAttributes: b.SessionAttributes,
		Slots:             slots,
	}
}

func (b *TurnBuilder) BuildRequestDTO() reqdto.TurnEventRequest {
	slots := make(map[string]*string, len(b.Slots))
	for name, value := range b.Slots {
		v := value
		slots[name] = &v
	}
	return reqdto.TurnEventRequest{
		UserID:            b.UserID,
		SessionAttributes: b.SessionAttributes,
		InvocationSource:  b.InvocationSource,
		CurrentIntent: reqdto.CurrentIntent{
			Name:  b.IntentName,
			Slots: slots,
		},
	}
}
