package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingStatus_Transitions(t *testing.T) {
	assert.True(t, BookingStatusPending.CanCancel())
	assert.True(t, BookingStatusConfirmed.CanCancel())
	assert.False(t, BookingStatusCancelled.CanCancel())

	assert.False(t, BookingStatusPending.CanTransitionTo(BookingStatusConfirmed))
	assert.False(t, BookingStatusCancelled.CanTransitionTo(BookingStatusPending))
	assert.False(t, BookingStatusCancelled.CanTransitionTo(BookingStatusConfirmed))

	assert.True(t, BookingStatusCancelled.IsTerminal())
	assert.False(t, BookingStatusConfirmed.IsTerminal())

	assert.True(t, BookingStatusPending.IsActive())
	assert.True(t, BookingStatusConfirmed.IsActive())
	assert.False(t, BookingStatusCancelled.IsActive())

	unknown := BookingStatus("Refunded")
	assert.False(t, unknown.IsValid())
	assert.False(t, unknown.CanCancel())
}

func TestParseBookingStatus(t *testing.T) {
	status, err := ParseBookingStatus("Confirmed")
	require.NoError(t, err)
	assert.Equal(t, BookingStatusConfirmed, status)

	_, err = ParseBookingStatus("confirmed")
	assert.Error(t, err)
}

func TestBooking_Cancel(t *testing.T) {
	b := Booking{BookingID: "b1", Status: BookingStatusConfirmed}
	require.NoError(t, b.Cancel())
	assert.Equal(t, BookingStatusCancelled, b.Status)

	err := b.Cancel()
	assert.True(t, errors.Is(err, ErrBookingNotCancellable))
	assert.Equal(t, BookingStatusCancelled, b.Status)
}

func TestReplaceBooking(t *testing.T) {
	list := []Booking{
		{BookingID: "a", Status: BookingStatusPending},
		{BookingID: "b", Status: BookingStatusConfirmed},
	}

	updated := ReplaceBooking(list, Booking{BookingID: "b", Status: BookingStatusCancelled})

	assert.Equal(t, BookingStatusConfirmed, list[1].Status)
	assert.Equal(t, BookingStatusCancelled, updated[1].Status)

	found, ok := FindBooking(updated, "a")
	assert.True(t, ok)
	assert.Equal(t, BookingStatusPending, found.Status)

	_, ok = FindBooking(updated, "missing")
	assert.False(t, ok)
}

func TestRoomCatalog(t *testing.T) {
	catalog := NewRoomCatalog(append(DefaultRoomTypes(), RoomType{ID: "single", Price: 1}))

	assert.Equal(t, 3, catalog.Len())
	assert.Equal(t, int64(2000), catalog.PriceOf("single"))
	assert.Equal(t, int64(0), catalog.PriceOf("penthouse"))

	room, ok := catalog.Lookup("suite")
	assert.True(t, ok)
	assert.Equal(t, "Suite", room.Name)

	all := catalog.All()
	all[0].Price = 1
	assert.Equal(t, int64(2000), catalog.PriceOf("single"))
}

func TestGuestCount_UnmarshalJSON(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want GuestCount
	}{
		{name: "number", raw: `{"guests":3}`, want: 3},
		{name: "numeric string", raw: `{"guests":"2"}`, want: 2},
		{name: "padded string", raw: `{"guests":" 4 "}`, want: 4},
		{name: "word", raw: `{"guests":"two"}`, want: 0},
		{name: "null", raw: `{"guests":null}`, want: 0},
		{name: "missing", raw: `{}`, want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var req BookingRequest
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &req))
			assert.Equal(t, tc.want, req.Guests)
		})
	}
}
