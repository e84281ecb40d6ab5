package email

import (
	"context"
	"fmt"
	"log"

	"github.com/Domenick1991/sunshinehotel/internal/kafka"
)

// Sender turns booking events into guest notifications. Delivery is a log line.
type Sender struct {
	hotel    string
	currency string
}

func NewSender(hotel, currency string) *Sender {
	return &Sender{hotel: hotel, currency: currency}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	if event.Email == "" {
		log.Printf("no recipient for %s event %s, skipping", event.Type, event.Key())
		return nil
	}
	subject, body := s.Render(event)
	log.Printf("send email to %s: %s | %s", event.Email, subject, body)
	return nil
}

// Render builds the subject and body for event.
func (s *Sender) Render(event kafka.BookingEvent) (string, string) {
	switch event.Type {
	case kafka.EventBookingCreated:
		return fmt.Sprintf("%s: booking %s received", s.hotel, event.BookingID),
			fmt.Sprintf("Dear %s, your %s room from %s to %s is %s. Total %d %s.",
				event.Name, event.RoomType, event.CheckIn, event.CheckOut, event.Status, event.TotalPrice, s.currency)
	case kafka.EventBookingCancelled:
		body := fmt.Sprintf("Dear %s, booking %s has been cancelled.", event.Name, event.BookingID)
		if event.ChargeAmount > 0 {
			body += fmt.Sprintf(" A late cancellation charge of %d %s applies.", event.ChargeAmount, s.currency)
		} else {
			body += " No cancellation charge applies."
		}
		return fmt.Sprintf("%s: booking %s cancelled", s.hotel, event.BookingID), body
	case kafka.EventFoodOrdered:
		return fmt.Sprintf("%s: food order placed", s.hotel),
			fmt.Sprintf("%d x %s, total %d %s.", event.Quantity, event.Item, event.TotalPrice, s.currency)
	default:
		return fmt.Sprintf("%s: %s", s.hotel, event.Type), fmt.Sprintf("Update for %s.", event.Key())
	}
}
