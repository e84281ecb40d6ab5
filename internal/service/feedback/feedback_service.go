package feedback

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Domenick1991/sunshinehotel/internal/clock"
	"github.com/Domenick1991/sunshinehotel/internal/domain"
	"github.com/Domenick1991/sunshinehotel/internal/kafka"
	"github.com/Domenick1991/sunshinehotel/internal/pricing"
	"github.com/Domenick1991/sunshinehotel/internal/validation"
)

type FeedbackUseCase interface {
	Submit(ctx context.Context, fb domain.Feedback) (string, error)
	Menu() []domain.MenuItem
	PlaceFoodOrder(ctx context.Context, sess *domain.Session, req FoodOrderRequest) (*FoodOrderResult, error)
}

type API interface {
	SubmitFeedback(ctx context.Context, fb domain.Feedback) (string, error)
	PlaceFoodOrder(ctx context.Context, order domain.FoodOrder) (string, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value any) error
}

type FoodOrderRequest struct {
	FoodName string `json:"foodName" validate:"required"`
	Quantity int    `json:"quantity"`
}

type FoodOrderResult struct {
	Order   domain.FoodOrder `json:"order"`
	Message string           `json:"message"`
}

type FeedbackService struct {
	api       API
	menu      []domain.MenuItem
	validator *validation.Validator
	producer  Producer
	topic     string
	clock     clock.Clock
}

type FeedbackServiceOption func(*FeedbackService)

// WithProducer publishes food orders to topic for the notification worker.
func WithProducer(p Producer, topic string) FeedbackServiceOption {
	return func(s *FeedbackService) {
		s.producer = p
		s.topic = topic
	}
}

func WithClock(c clock.Clock) FeedbackServiceOption {
	return func(s *FeedbackService) {
		s.clock = c
	}
}

func NewFeedbackService(api API, menu []domain.MenuItem, opts ...FeedbackServiceOption) *FeedbackService {
	s := &FeedbackService{
		api:       api,
		menu:      menu,
		validator: validation.New(),
		clock:     clock.NewSystem(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *FeedbackService) Submit(ctx context.Context, fb domain.Feedback) (string, error) {
	if err := s.validator.Struct(fb); err != nil {
		return "", err
	}
	return s.api.SubmitFeedback(ctx, fb)
}

func (s *FeedbackService) Menu() []domain.MenuItem {
	out := make([]domain.MenuItem, len(s.menu))
	copy(out, s.menu)
	return out
}

// PlaceFoodOrder prices the order from the menu and sends it on behalf of the session's guest.
func (s *FeedbackService) PlaceFoodOrder(ctx context.Context, sess *domain.Session, req FoodOrderRequest) (*FoodOrderResult, error) {
	if !sess.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}
	if req.Quantity < 1 {
		return nil, &domain.ValidationError{Field: "quantity", Message: domain.ErrInvalidQuantity.Error()}
	}
	unit, total, err := pricing.FoodTotal(s.menu, req.FoodName, req.Quantity)
	if err != nil {
		return nil, &domain.ValidationError{Field: "foodName", Message: fmt.Sprintf("%v: %s", err, req.FoodName)}
	}

	order := domain.FoodOrder{
		FoodName:     req.FoodName,
		Quantity:     req.Quantity,
		PricePerUnit: unit,
		Total:        total,
		GuestID:      sess.GuestID,
	}
	msg, err := s.api.PlaceFoodOrder(ctx, order)
	if err != nil {
		return nil, err
	}

	if s.producer != nil && s.topic != "" {
		event := kafka.NewFoodOrderEvent(order, sess, s.clock.Now())
		pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := s.producer.Publish(pubCtx, s.topic, event.Key(), event); err != nil {
			log.Printf("WARNING: failed to publish food_ordered event for guest %s: %v", sess.GuestID, err)
		}
	}
	return &FoodOrderResult{Order: order, Message: msg}, nil
}

var _ FeedbackUseCase = (*FeedbackService)(nil)
