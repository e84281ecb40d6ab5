package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Domenick1991/sunshinehotel/internal/clock"
	"github.com/Domenick1991/sunshinehotel/internal/domain"
	"github.com/Domenick1991/sunshinehotel/internal/hotelapi"
	"github.com/Domenick1991/sunshinehotel/internal/kafka"
	"github.com/Domenick1991/sunshinehotel/internal/lifecycle"
	"github.com/Domenick1991/sunshinehotel/internal/pricing"
	"github.com/Domenick1991/sunshinehotel/internal/validation"
)

type BookingUseCase interface {
	Quote(input pricing.QuoteInput) pricing.Quote
	CreateBooking(ctx context.Context, sess *domain.Session, req domain.BookingRequest) (*CreateResult, error)
	ListBookings(ctx context.Context, sess *domain.Session) ([]BookingView, error)
	CancelBooking(ctx context.Context, sess *domain.Session, bookingID string) (*lifecycle.CancelOutcome, error)
	CancellationQuote(ctx context.Context, sess *domain.Session, bookingID string) (*CancellationView, error)
}

// API is the slice of the hotel REST API the booking flow talks to.
type API interface {
	CreateBooking(ctx context.Context, sess *domain.Session, payload hotelapi.CreateBookingPayload) (hotelapi.CreateBookingResult, error)
	ListMyBookings(ctx context.Context, sess *domain.Session) ([]domain.Booking, error)
	CancelBooking(ctx context.Context, sess *domain.Session, bookingID string) (string, error)
}

// SnapshotStore keeps each session's last confirmed booking list.
type SnapshotStore interface {
	GetBookings(ctx context.Context, sessionID string) ([]domain.Booking, bool, error)
	SetBookings(ctx context.Context, sessionID string, bookings []domain.Booking) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value any) error
}

type CreateResult struct {
	BookingID string               `json:"bookingId"`
	Status    domain.BookingStatus `json:"status"`
	Message   string               `json:"message"`
	Quote     pricing.Quote        `json:"quote"`
}

// BookingView is a booking as the status screen shows it.
type BookingView struct {
	domain.Booking
	CanCancel     bool                     `json:"canCancel"`
	Cancellation  domain.CancellationQuote `json:"cancellation"`
	PriceVerified bool                     `json:"priceVerified"`
}

type CancellationView struct {
	BookingID string                   `json:"bookingId"`
	Status    domain.BookingStatus     `json:"status"`
	CanCancel bool                     `json:"canCancel"`
	Quote     domain.CancellationQuote `json:"cancellation"`
	Rules     []string                 `json:"rules"`
}

type BookingService struct {
	api                API
	engine             *pricing.Engine
	lifecycle          *lifecycle.Manager
	snapshots          SnapshotStore
	producer           Producer
	validator          *validation.Validator
	clock              clock.Clock
	bookingTopic       string
	notificationsTopic string
}

type BookingServiceOption func(*BookingService)

func WithProducer(p Producer, bookingTopic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = p
		s.bookingTopic = bookingTopic
	}
}

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func WithClock(c clock.Clock) BookingServiceOption {
	return func(s *BookingService) {
		s.clock = c
	}
}

func NewBookingService(
	api API,
	engine *pricing.Engine,
	manager *lifecycle.Manager,
	snapshots SnapshotStore,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		api:       api,
		engine:    engine,
		lifecycle: manager,
		snapshots: snapshots,
		validator: validation.New(),
		clock:     clock.NewSystem(),
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) Quote(input pricing.QuoteInput) pricing.Quote {
	return s.engine.Quote(input)
}

func (s *BookingService) CreateBooking(ctx context.Context, sess *domain.Session, req domain.BookingRequest) (*CreateResult, error) {
	if !sess.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}

	quote := s.engine.QuoteBooking(req)
	res, err := s.api.CreateBooking(ctx, sess, hotelapi.CreateBookingPayload{
		BookingRequest: req,
		TotalPrice:     quote.TotalPrice,
	})
	if err != nil {
		return nil, err
	}
	log.Printf("booking %s created for session %s, status %q, total %d", res.BookingID, sess.ID, res.Status, quote.TotalPrice)

	created := domain.Booking{
		BookingID:      res.BookingID,
		BookingRequest: req,
		TotalPrice:     quote.TotalPrice,
		Status:         res.Status,
	}
	s.appendSnapshot(ctx, sess, created)
	if err := s.publish(ctx, kafka.NewBookingEvent(kafka.EventBookingCreated, created, sess, s.clock.Now())); err != nil {
		log.Printf("WARNING: failed to publish booking_created event for booking %s: %v", res.BookingID, err)
	}

	return &CreateResult{
		BookingID: res.BookingID,
		Status:    res.Status,
		Message:   res.Message,
		Quote:     quote,
	}, nil
}

func (s *BookingService) validate(req domain.BookingRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return err
	}
	if _, ok := s.engine.Catalog().Lookup(req.RoomType); !ok {
		return &domain.ValidationError{Field: "roomType", Message: domain.ErrRoomTypeNotFound.Error()}
	}
	if req.CheckInDate.IsZero() {
		return &domain.ValidationError{Field: "checkInDate", Message: "is required"}
	}
	if req.CheckOutDate.IsZero() {
		return &domain.ValidationError{Field: "checkOutDate", Message: "is required"}
	}
	today := domain.DateOf(s.clock.Now().In(s.lifecycle.Location()))
	if req.CheckInDate.Before(today) {
		return &domain.ValidationError{Field: "checkInDate", Message: domain.ErrCheckInInPast.Error()}
	}
	if pricing.Nights(req.CheckInDate, req.CheckOutDate) <= 0 {
		return &domain.ValidationError{Field: "checkOutDate", Message: domain.ErrInvalidStay.Error()}
	}
	return nil
}

// ListBookings fetches the guest's bookings and makes them the session's local view.
func (s *BookingService) ListBookings(ctx context.Context, sess *domain.Session) ([]BookingView, error) {
	bookings, err := s.refresh(ctx, sess)
	if err != nil {
		return nil, err
	}
	views := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, s.view(b))
	}
	return views, nil
}

func (s *BookingService) view(b domain.Booking) BookingView {
	price := s.engine.QuoteBooking(b.BookingRequest).TotalPrice
	v := BookingView{
		Booking:       b,
		CanCancel:     b.Status.CanCancel(),
		PriceVerified: price == b.TotalPrice,
	}
	if v.CanCancel {
		v.Cancellation = s.quote(b)
	}
	return v
}

// quote evaluates the cancellation policy for b. The charge is always taken from the price
// recomputed from the booking's own request, never from a stored total that does not reproduce.
func (s *BookingService) quote(b domain.Booking) domain.CancellationQuote {
	return s.lifecycle.Quote(b).Repriced(s.engine.QuoteBooking(b.BookingRequest).TotalPrice)
}

// CancelBooking cancels a booking from the local view. The view is only updated after the
// hotel API confirms the cancellation.
func (s *BookingService) CancelBooking(ctx context.Context, sess *domain.Session, bookingID string) (*lifecycle.CancelOutcome, error) {
	current, err := s.find(ctx, sess, bookingID)
	if err != nil {
		return nil, err
	}

	outcome, err := s.lifecycle.Cancel(ctx, sess, current)
	if err != nil {
		return nil, err
	}

	outcome.Quote = outcome.Quote.Repriced(s.engine.QuoteBooking(current.BookingRequest).TotalPrice)
	s.replaceSnapshot(ctx, sess, outcome.Booking)
	event := kafka.NewBookingEvent(kafka.EventBookingCancelled, outcome.Booking, sess, s.clock.Now())
	event.ChargeAmount = outcome.Quote.ChargeAmount
	if err := s.publish(ctx, event); err != nil {
		log.Printf("WARNING: failed to publish booking_cancelled event for booking %s: %v", bookingID, err)
	}
	return &outcome, nil
}

func (s *BookingService) CancellationQuote(ctx context.Context, sess *domain.Session, bookingID string) (*CancellationView, error) {
	current, err := s.find(ctx, sess, bookingID)
	if err != nil {
		return nil, err
	}
	view := &CancellationView{
		BookingID: current.BookingID,
		Status:    current.Status,
		CanCancel: current.Status.CanCancel(),
		Rules:     s.lifecycle.Policy().Rules(),
	}
	if view.CanCancel {
		view.Quote = s.quote(current)
	}
	return view, nil
}

// find looks the booking up in the local view, refreshing it from the API once when absent.
func (s *BookingService) find(ctx context.Context, sess *domain.Session, bookingID string) (domain.Booking, error) {
	if !sess.Authenticated() {
		return domain.Booking{}, domain.ErrUnauthenticated
	}
	if cached, ok, err := s.snapshots.GetBookings(ctx, sess.ID); err != nil {
		log.Printf("failed to read booking snapshot for session %s: %v", sess.ID, err)
	} else if ok {
		if b, found := domain.FindBooking(cached, bookingID); found {
			return b, nil
		}
	}

	fresh, err := s.refresh(ctx, sess)
	if err != nil {
		return domain.Booking{}, err
	}
	if b, found := domain.FindBooking(fresh, bookingID); found {
		return b, nil
	}
	return domain.Booking{}, fmt.Errorf("%w: %s", domain.ErrBookingNotFound, bookingID)
}

func (s *BookingService) refresh(ctx context.Context, sess *domain.Session) ([]domain.Booking, error) {
	if !sess.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}
	bookings, err := s.api.ListMyBookings(ctx, sess)
	if err != nil {
		return nil, err
	}
	if err := s.snapshots.SetBookings(ctx, sess.ID, bookings); err != nil {
		log.Printf("failed to store booking snapshot for session %s: %v", sess.ID, err)
	}
	return bookings, nil
}

func (s *BookingService) appendSnapshot(ctx context.Context, sess *domain.Session, b domain.Booking) {
	cached, ok, err := s.snapshots.GetBookings(ctx, sess.ID)
	if err != nil || !ok {
		return
	}
	if err := s.snapshots.SetBookings(ctx, sess.ID, append(cached, b)); err != nil {
		log.Printf("failed to store booking snapshot for session %s: %v", sess.ID, err)
	}
}

func (s *BookingService) replaceSnapshot(ctx context.Context, sess *domain.Session, b domain.Booking) {
	cached, ok, err := s.snapshots.GetBookings(ctx, sess.ID)
	if err != nil || !ok {
		return
	}
	if err := s.snapshots.SetBookings(ctx, sess.ID, domain.ReplaceBooking(cached, b)); err != nil {
		log.Printf("failed to store booking snapshot for session %s: %v", sess.ID, err)
	}
}

func (s *BookingService) publish(ctx context.Context, event kafka.BookingEvent) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	var errs []error
	if err := s.producer.Publish(ctx, s.bookingTopic, event.Key(), event); err != nil {
		errs = append(errs, err)
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, event.Key(), event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

var _ BookingUseCase = (*BookingService)(nil)
