package dialog

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Rules holds the injectable business constraints the slot validator enforces.
type Rules struct {
	Cuisines       []string
	PopularCuisine string
	Location       string
	OpenHour       int // inclusive
	CloseHour      int // inclusive
}

type slotCheck func(slots Slots, today time.Time) (Result, bool)

// Validate runs the slot checks in a fixed priority order and returns on the
// first violation, so one turn re-prompts for at most one slot. Slots not yet
// collected skip their check. `today` is the processing day in the business
// time zone.
func (r Rules) Validate(slots Slots, today time.Time) Result {
	checks := []slotCheck{
		r.checkCuisine,
		r.checkDate,
		r.checkTime,
		r.checkLocation,
	}
	for _, check := range checks {
		if result, ok := check(slots, today); !ok {
			return result
		}
	}
	return valid()
}

func (r Rules) checkCuisine(slots Slots, _ time.Time) (Result, bool) {
	cuisine, ok := slots.Get(SlotCuisine)
	if !ok {
		return valid(), true
	}
	for _, supported := range r.Cuisines {
		if strings.EqualFold(cuisine, supported) {
			return valid(), true
		}
	}
	msg := fmt.Sprintf(
		"We do not have %s, would you like a different type of cuisine? Our most popular cuisine is %s.",
		cuisine, r.PopularCuisine,
	)
	return violated(SlotCuisine, msg), false
}

func (r Rules) checkDate(slots Slots, today time.Time) (Result, bool) {
	date, ok := slots.Get(SlotDate)
	if !ok {
		return valid(), true
	}
	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return violated(SlotDate, "I did not understand that, what date would you like to reserve the restaurant?"), false
	}
	y, m, d := today.Date()
	todayDate := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if !parsed.After(todayDate) {
		return violated(SlotDate, "You can reserve the restaurant from tomorrow onwards. What day would you like to reserve?"), false
	}
	return valid(), true
}

func (r Rules) checkTime(slots Slots, _ time.Time) (Result, bool) {
	reserveTime, ok := slots.Get(SlotTime)
	if !ok {
		return valid(), true
	}
	// Malformed times carry no message: the host falls back to its own
	// slot-specific prompt.
	if len(reserveTime) != 5 {
		return violated(SlotTime, ""), false
	}
	parts := strings.Split(reserveTime, ":")
	if len(parts) != 2 {
		return violated(SlotTime, ""), false
	}
	hour, hourErr := strconv.Atoi(parts[0])
	_, minuteErr := strconv.Atoi(parts[1])
	if hourErr != nil || minuteErr != nil {
		return violated(SlotTime, ""), false
	}
	if hour < r.OpenHour || hour > r.CloseHour {
		msg := fmt.Sprintf(
			"Our business hours are from %d:00 to %d:59. Can you specify a time during this range?",
			r.OpenHour, r.CloseHour,
		)
		return violated(SlotTime, msg), false
	}
	return valid(), true
}

func (r Rules) checkLocation(slots Slots, _ time.Time) (Result, bool) {
	location, ok := slots.Get(SlotLocation)
	if !ok {
		return valid(), true
	}
	if !strings.EqualFold(location, r.Location) {
		msg := fmt.Sprintf("You can only reserve a restaurant in %s for now.", r.Location)
		return violated(SlotLocation, msg), false
	}
	return valid(), true
}
