//go:build unit

package notification_test

import (
	"testing"

	"dining-concierge/internal/domain/notification"
	"dining-concierge/internal/domain/reservation"
	"dining-concierge/internal/domain/restaurant"

	"github.com/stretchr/testify/assert"
)

func TestCompose(t *testing.T) {
	req := reservation.Request{
		Cuisine:        "japanese",
		Date:           "2031-01-02",
		Time:           "13:00",
		Location:       "manhattan",
		NumberOfPeople: 2,
		PhoneNumber:    "+15551234567",
	}
	picks := []restaurant.Record{
		{Name: "Sushi Nakazawa", Address: "23 Commerce St"},
		{Name: "Ippudo NY", Address: "65 4th Ave"},
		{Name: "Omen Azen", Address: "113 Thompson St"},
	}

	got := notification.Compose(req, picks)

	want := "Hello! Here are my japanese restaurant suggestions for 2 people, for 2031-01-02 at 13:00." +
		" 1. Sushi Nakazawa, located at 23 Commerce St." +
		" 2. Ippudo NY, located at 65 4th Ave." +
		" 3. Omen Azen, located at 113 Thompson St." +
		" Enjoy your meal!"
	assert.Equal(t, want, got)
}

func TestComposeOrderFollowsPicks(t *testing.T) {
	req := reservation.Request{Cuisine: "italian", Date: "2031-03-04", Time: "12:00", NumberOfPeople: 4}
	picks := []restaurant.Record{
		{Name: "B", Address: "2nd St"},
		{Name: "A", Address: "1st St"},
	}

	got := notification.Compose(req, picks)

	assert.Contains(t, got, "1. B, located at 2nd St.")
	assert.Contains(t, got, "2. A, located at 1st St.")
}
