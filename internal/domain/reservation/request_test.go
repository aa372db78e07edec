//go:build unit

package reservation_test

import (
	"testing"

	"dining-concierge/internal/domain/dialog"
	"dining-concierge/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullSlots() dialog.Slots {
	return dialog.Slots{
		dialog.SlotCuisine:        "japanese",
		dialog.SlotDate:           "2031-01-02",
		dialog.SlotTime:           "13:00",
		dialog.SlotLocation:       "manhattan",
		dialog.SlotNumberOfPeople: "2",
		dialog.SlotPhoneNumber:    "+15551234567",
	}
}

func TestFromSlots(t *testing.T) {
	t.Run("builds a request from collected slots", func(t *testing.T) {
		req, err := reservation.FromSlots(fullSlots())
		require.NoError(t, err)

		assert.Equal(t, reservation.Request{
			Cuisine:        "japanese",
			Date:           "2031-01-02",
			Time:           "13:00",
			Location:       "manhattan",
			NumberOfPeople: 2,
			PhoneNumber:    "+15551234567",
		}, req)
	})

	t.Run("rejects a non-integer party size", func(t *testing.T) {
		slots := fullSlots()
		slots[dialog.SlotNumberOfPeople] = "two"

		_, err := reservation.FromSlots(slots)
		assert.Error(t, err)
	})
}

func TestEncodeDecode(t *testing.T) {
	req, err := reservation.FromSlots(fullSlots())
	require.NoError(t, err)

	body, err := req.Encode()
	require.NoError(t, err)

	decoded, err := reservation.Decode(body)
	require.NoError(t, err)
	assert.Equal(t, req, decoded)
}

func TestDecode(t *testing.T) {
	t.Run("rejects invalid JSON", func(t *testing.T) {
		_, err := reservation.Decode([]byte("{not json"))
		assert.Error(t, err)
	})

	t.Run("rejects a body without cuisine", func(t *testing.T) {
		_, err := reservation.Decode([]byte(`{"PhoneNumber":"+15551234567"}`))
		assert.Error(t, err)
	})

	t.Run("rejects a body without phone number", func(t *testing.T) {
		_, err := reservation.Decode([]byte(`{"Cuisine":"japanese"}`))
		assert.Error(t, err)
	})
}
