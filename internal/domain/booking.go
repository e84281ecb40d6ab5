package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

// bookingTransitions lists every status change the guest side may apply.
// Pending -> Confirmed is decided by the hotel API and is deliberately absent.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCancelled},
	BookingStatusCancelled: {},
}

func (s BookingStatus) IsValid() bool {
	_, ok := bookingTransitions[s]
	return ok
}

// IsActive reports whether the booking still holds a stay.
func (s BookingStatus) IsActive() bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed
}

func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, t := range bookingTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

func (s BookingStatus) CanCancel() bool {
	return s.CanTransitionTo(BookingStatusCancelled)
}

func (s BookingStatus) IsTerminal() bool {
	return len(bookingTransitions[s]) == 0
}

func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid booking status: %s", s)
	}
	return status, nil
}

// BookingRequest is the booking form as the guest fills it in.
type BookingRequest struct {
	Name           string     `json:"name" validate:"required"`
	Email          string     `json:"email" validate:"required,email"`
	Phone          string     `json:"phone" validate:"required"`
	RoomType       string     `json:"roomType" validate:"required"`
	Guests         GuestCount `json:"guests" validate:"min=1"`
	Breakfast      bool       `json:"breakfast"`
	CheckInDate    Date       `json:"checkInDate"`
	CheckOutDate   Date       `json:"checkOutDate"`
	SpecialRequest string     `json:"specialRequest" validate:"max=1000"`
}

// GuestCount is the number of guests on a booking. Older bookings carry it as a
// numeric string, so both forms decode; anything else decodes to 0.
type GuestCount int

func (g *GuestCount) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*g = GuestCount(n)
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		*g = 0
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		*g = 0
		return nil
	}
	*g = GuestCount(n)
	return nil
}

// Booking is a submitted booking as owned by the hotel API.
type Booking struct {
	BookingID string `json:"bookingId"`
	BookingRequest
	TotalPrice int64         `json:"totalPrice"`
	Status     BookingStatus `json:"status"`
}

// Cancel applies the Cancel transition in place.
func (b *Booking) Cancel() error {
	if !b.Status.CanCancel() {
		return fmt.Errorf("%w: booking %s is %s", ErrBookingNotCancellable, b.BookingID, b.Status)
	}
	b.Status = BookingStatusCancelled
	return nil
}

// FindBooking returns the booking with the given id from list.
func FindBooking(list []Booking, id string) (Booking, bool) {
	for _, b := range list {
		if b.BookingID == id {
			return b, true
		}
	}
	return Booking{}, false
}

// ReplaceBooking returns a copy of list with the entry matching b.BookingID swapped for b.
func ReplaceBooking(list []Booking, b Booking) []Booking {
	out := make([]Booking, len(list))
	copy(out, list)
	for i := range out {
		if out[i].BookingID == b.BookingID {
			out[i] = b
		}
	}
	return out
}
