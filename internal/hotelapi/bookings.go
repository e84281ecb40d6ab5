package hotelapi

import (
	"context"
	"net/url"

	"github.com/Domenick1991/sunshinehotel/internal/domain"
)

type CreateBookingPayload struct {
	domain.BookingRequest
	TotalPrice int64 `json:"totalPrice"`
}

type CreateBookingResult struct {
	BookingID string               `json:"bookingId"`
	Status    domain.BookingStatus `json:"status"`
	Message   string               `json:"message"`
}

type bookingsResponse struct {
	Bookings []domain.Booking `json:"bookings"`
}

func (c *Client) CreateBooking(ctx context.Context, sess *domain.Session, payload CreateBookingPayload) (CreateBookingResult, error) {
	req, err := c.authRequest(ctx, sess)
	if err != nil {
		return CreateBookingResult{}, err
	}
	var out CreateBookingResult
	resp, err := req.SetBody(payload).SetResult(&out).Post("/api/bookings")
	if err := check(resp, err, "Booking failed"); err != nil {
		return CreateBookingResult{}, err
	}
	return out, nil
}

func (c *Client) ListMyBookings(ctx context.Context, sess *domain.Session) ([]domain.Booking, error) {
	req, err := c.authRequest(ctx, sess)
	if err != nil {
		return nil, err
	}
	var out bookingsResponse
	resp, err := req.SetResult(&out).Get("/api/bookings/user")
	if err := check(resp, err, "Failed to fetch bookings"); err != nil {
		return nil, err
	}
	if out.Bookings == nil {
		return []domain.Booking{}, nil
	}
	return out.Bookings, nil
}

// CancelBooking asks the API to cancel bookingID and returns its confirmation message.
func (c *Client) CancelBooking(ctx context.Context, sess *domain.Session, bookingID string) (string, error) {
	req, err := c.authRequest(ctx, sess)
	if err != nil {
		return "", err
	}
	var out messageResponse
	resp, err := req.SetResult(&out).Patch("/api/bookings/" + url.PathEscape(bookingID) + "/cancel")
	if err := check(resp, err, "Failed to cancel"); err != nil {
		return "", err
	}
	return orDefault(out.Message, "Booking cancelled"), nil
}

func (c *Client) ListAllBookings(ctx context.Context) ([]domain.Booking, error) {
	var out bookingsResponse
	resp, err := c.request(ctx).SetResult(&out).Get("/api/admin/bookings")
	if err := check(resp, err, "Failed to fetch bookings"); err != nil {
		return nil, err
	}
	if out.Bookings == nil {
		return []domain.Booking{}, nil
	}
	return out.Bookings, nil
}
