package reservation

import (
	"encoding/json"
	"strconv"

	"dining-concierge/internal/domain/dialog"
	"dining-concierge/internal/pkg/errs"
)

// Request is the completed reservation enquiry handed from the dialog to the
// fulfillment worker. It is immutable once enqueued; the JSON field names are
// the queue message contract.
type Request struct {
	Cuisine        string `json:"Cuisine"`
	Date           string `json:"Date"`
	Time           string `json:"Time"`
	Location       string `json:"Location"`
	NumberOfPeople int    `json:"NumberOfPeople"`
	PhoneNumber    string `json:"PhoneNumber"`
}

// FromSlots builds a Request from a fully collected slot map. It only runs on
// the fulfillment turn, after every slot has passed validation.
func FromSlots(slots dialog.Slots) (Request, error) {
	numberOfPeople, err := strconv.Atoi(slots[dialog.SlotNumberOfPeople])
	if err != nil {
		return Request{}, errs.Wrap(err, "number of people is not an integer")
	}
	return Request{
		Cuisine:        slots[dialog.SlotCuisine],
		Date:           slots[dialog.SlotDate],
		Time:           slots[dialog.SlotTime],
		Location:       slots[dialog.SlotLocation],
		NumberOfPeople: numberOfPeople,
		PhoneNumber:    slots[dialog.SlotPhoneNumber],
	}, nil
}

func (r Request) Encode() ([]byte, error) {
	body, err := json.Marshal(r)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode reservation request")
	}
	return body, nil
}

// Decode parses a queue message body. Bodies missing the fields fulfillment
// depends on are rejected, so malformed messages fail before any side effect.
func Decode(body []byte) (Request, error) {
	var req Request
	if err := json.Unmarshal(body, &req); err != nil {
		return Request{}, errs.Wrap(err, "failed to decode reservation request")
	}
	if req.Cuisine == "" {
		return Request{}, errs.New("reservation request missing cuisine")
	}
	if req.PhoneNumber == "" {
		return Request{}, errs.New("reservation request missing phone number")
	}
	return req, nil
}
