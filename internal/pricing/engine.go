package pricing

import (
	"github.com/Domenick1991/sunshinehotel/internal/domain"
)

// DefaultBreakfastRate is charged per night when breakfast is included.
const DefaultBreakfastRate int64 = 300

type QuoteInput struct {
	CheckIn    domain.Date `json:"checkInDate"`
	CheckOut   domain.Date `json:"checkOutDate"`
	RoomTypeID string      `json:"roomType"`
	Breakfast  bool        `json:"breakfast"`
}

type Quote struct {
	Nights        int   `json:"nights"`
	RoomRate      int64 `json:"roomRate"`
	BreakfastRate int64 `json:"breakfastRate"`
	Base          int64 `json:"basePrice"`
	Extras        int64 `json:"extras"`
	TotalPrice    int64 `json:"totalPrice"`
}

// Valid reports whether the quote describes a bookable stay.
func (q Quote) Valid() bool {
	return q.Nights > 0
}

// Engine prices a stay against a fixed room catalog. It holds no mutable state.
type Engine struct {
	catalog       domain.RoomCatalog
	breakfastRate int64
}

type EngineOption func(*Engine)

func WithBreakfastRate(rate int64) EngineOption {
	return func(e *Engine) {
		if rate >= 0 {
			e.breakfastRate = rate
		}
	}
}

func NewEngine(catalog domain.RoomCatalog, opts ...EngineOption) *Engine {
	e := &Engine{
		catalog:       catalog,
		breakfastRate: DefaultBreakfastRate,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Catalog() domain.RoomCatalog {
	return e.catalog
}

func (e *Engine) BreakfastRate() int64 {
	return e.breakfastRate
}

// Quote computes nights and total price. An incomplete or inverted date range is not an
// error: it yields a zero quote.
func (e *Engine) Quote(in QuoteInput) Quote {
	q := Quote{
		RoomRate:      e.catalog.PriceOf(in.RoomTypeID),
		BreakfastRate: e.breakfastRate,
	}
	nights := Nights(in.CheckIn, in.CheckOut)
	if nights <= 0 {
		return q
	}

	q.Nights = nights
	q.Base = int64(nights) * q.RoomRate
	if in.Breakfast {
		q.Extras = int64(nights) * e.breakfastRate
	}
	q.TotalPrice = q.Base + q.Extras
	return q
}

// QuoteBooking prices the stored fields of a booking request.
func (e *Engine) QuoteBooking(req domain.BookingRequest) Quote {
	return e.Quote(QuoteInput{
		CheckIn:    req.CheckInDate,
		CheckOut:   req.CheckOutDate,
		RoomTypeID: req.RoomType,
		Breakfast:  req.Breakfast,
	})
}

// Nights is the billable number of nights between two dates, 0 when the range is empty.
func Nights(checkIn, checkOut domain.Date) int {
	if checkIn.IsZero() || checkOut.IsZero() {
		return 0
	}
	n := checkIn.DaysUntil(checkOut)
	if n < 0 {
		return 0
	}
	return n
}
