package notification

import (
	"fmt"
	"strings"

	"dining-concierge/internal/domain/reservation"
	"dining-concierge/internal/domain/restaurant"
)

// Compose renders the suggestion SMS for a reservation request and the selected
// restaurants. Pure formatting: deterministic given its inputs.
func Compose(req reservation.Request, picks []restaurant.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b,
		"Hello! Here are my %s restaurant suggestions for %d people, for %s at %s.",
		req.Cuisine, req.NumberOfPeople, req.Date, req.Time,
	)
	for i, pick := range picks {
		fmt.Fprintf(&b, " %d. %s, located at %s.", i+1, pick.Name, pick.Address)
	}
	b.WriteString(" Enjoy your meal!")
	return b.String()
}
