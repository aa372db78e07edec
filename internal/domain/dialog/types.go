package dialog

// Slot names used across the conversational host boundary. The violated slot
// reported by validation is always one of these keys, so the host's "clear and
// re-elicit" step can never target a slot the map does not contain.
const (
	SlotCuisine        = "Cuisine"
	SlotDate           = "Date"
	SlotTime           = "Time"
	SlotLocation       = "Location"
	SlotNumberOfPeople = "NumberOfPeople"
	SlotPhoneNumber    = "PhoneNumber"
)

// SlotNames lists the slots of the reservation intent in elicitation order.
func SlotNames() []string {
	return []string{SlotCuisine, SlotDate, SlotTime, SlotLocation, SlotNumberOfPeople, SlotPhoneNumber}
}

// Intent names supplied by the conversational host.
const (
	IntentDiningSuggestions = "DiningSuggestionsIntent"
	IntentThankYou          = "ThankYouIntent"
	IntentGreeting          = "GreetingIntent"
)

// Invocation sources: the host calls once per turn, either while slots are
// still being elicited or once to execute the completed intent.
const (
	SourceValidation  = "DialogCodeHook"
	SourceFulfillment = "FulfillmentCodeHook"
)

// Slots maps slot name to the value collected so far. A missing key means the
// slot has not been elicited yet. The map is owned by the host across turns;
// this package only ever returns modified copies.
type Slots map[string]string

func (s Slots) Get(name string) (string, bool) {
	v, ok := s[name]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func (s Slots) Clone() Slots {
	out := make(Slots, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Result is the verdict of one validation pass. An empty Message on an invalid
// result means the host should fall back to its own default prompt for the
// violated slot.
type Result struct {
	Valid        bool
	ViolatedSlot string
	Message      string
}

func valid() Result {
	return Result{Valid: true}
}

func violated(slot, message string) Result {
	return Result{ViolatedSlot: slot, Message: message}
}

type ActionType string

const (
	ActionElicitSlot ActionType = "ElicitSlot"
	ActionDelegate   ActionType = "Delegate"
	ActionClose      ActionType = "Close"
)

const FulfillmentStateFulfilled = "Fulfilled"

// Action is the dialog action handed back to the host at the end of a turn.
type Action struct {
	Type             ActionType
	IntentName       string
	Slots            Slots
	SlotToElicit     string
	FulfillmentState string
	Message          string
}

func ElicitSlot(intentName string, slots Slots, slotToElicit, message string) Action {
	return Action{
		Type:         ActionElicitSlot,
		IntentName:   intentName,
		Slots:        slots,
		SlotToElicit: slotToElicit,
		Message:      message,
	}
}

func Delegate(slots Slots) Action {
	return Action{
		Type:  ActionDelegate,
		Slots: slots,
	}
}

func Close(message string) Action {
	return Action{
		Type:             ActionClose,
		FulfillmentState: FulfillmentStateFulfilled,
		Message:          message,
	}
}

// TurnEvent is the host-supplied input for one conversational turn.
type TurnEvent struct {
	UserID            string
	IntentName        string
	InvocationSource  string
	SessionAttributes map[string]string
	Slots             Slots
}

// TurnResult is the core's answer for one turn: the (possibly updated) session
// attributes and exactly one dialog action.
type TurnResult struct {
	SessionAttributes map[string]string
	Action            Action
}
