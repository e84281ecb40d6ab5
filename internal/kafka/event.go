package kafka

import (
	"time"

	"github.com/Domenick1991/sunshinehotel/internal/domain"
)

const (
	EventBookingCreated   = "booking_created"
	EventBookingCancelled = "booking_cancelled"
	EventFoodOrdered      = "food_ordered"
)

// BookingEvent is published after the hotel API has confirmed a change.
type BookingEvent struct {
	Type         string    `json:"type"`
	BookingID    string    `json:"booking_id,omitempty"`
	GuestID      string    `json:"guest_id,omitempty"`
	Name         string    `json:"name,omitempty"`
	Email        string    `json:"email"`
	RoomType     string    `json:"room_type,omitempty"`
	CheckIn      string    `json:"check_in,omitempty"`
	CheckOut     string    `json:"check_out,omitempty"`
	Status       string    `json:"status,omitempty"`
	TotalPrice   int64     `json:"total_price"`
	ChargeAmount int64     `json:"charge_amount,omitempty"`
	Item         string    `json:"item,omitempty"`
	Quantity     int       `json:"quantity,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// Key partitions events per booking, falling back to the guest for food orders.
func (e BookingEvent) Key() string {
	if e.BookingID != "" {
		return e.BookingID
	}
	return e.GuestID
}

func NewBookingEvent(eventType string, b domain.Booking, sess *domain.Session, at time.Time) BookingEvent {
	ev := BookingEvent{
		Type:       eventType,
		BookingID:  b.BookingID,
		Name:       b.Name,
		Email:      b.Email,
		RoomType:   b.RoomType,
		CheckIn:    b.CheckInDate.String(),
		CheckOut:   b.CheckOutDate.String(),
		Status:     string(b.Status),
		TotalPrice: b.TotalPrice,
		OccurredAt: at,
	}
	if sess != nil {
		ev.GuestID = sess.GuestID
		if ev.Email == "" {
			ev.Email = sess.Email
		}
		if ev.Name == "" {
			ev.Name = sess.Name
		}
	}
	return ev
}

func NewFoodOrderEvent(order domain.FoodOrder, sess *domain.Session, at time.Time) BookingEvent {
	ev := BookingEvent{
		Type:       EventFoodOrdered,
		GuestID:    order.GuestID,
		Item:       order.FoodName,
		Quantity:   order.Quantity,
		TotalPrice: order.Total,
		OccurredAt: at,
	}
	if sess != nil {
		ev.Name = sess.Name
		ev.Email = sess.Email
	}
	return ev
}
