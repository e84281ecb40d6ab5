package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/sunshinehotel/api"
	"github.com/Domenick1991/sunshinehotel/config"
	"github.com/Domenick1991/sunshinehotel/internal/bootstrap"
	"github.com/Domenick1991/sunshinehotel/internal/cache"
	"github.com/Domenick1991/sunshinehotel/internal/clock"
	"github.com/Domenick1991/sunshinehotel/internal/domain"
	"github.com/Domenick1991/sunshinehotel/internal/hotelapi"
	"github.com/Domenick1991/sunshinehotel/internal/kafka"
	"github.com/Domenick1991/sunshinehotel/internal/lifecycle"
	"github.com/Domenick1991/sunshinehotel/internal/pricing"
	"github.com/Domenick1991/sunshinehotel/internal/service/admin"
	"github.com/Domenick1991/sunshinehotel/internal/service/auth"
	"github.com/Domenick1991/sunshinehotel/internal/service/booking"
	"github.com/Domenick1991/sunshinehotel/internal/service/feedback"
	"github.com/Domenick1991/sunshinehotel/internal/service/rooms"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	loc, err := cfg.Hotel.Location()
	if err != nil {
		log.Fatalf("load timezone: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := newStore(ctx, cfg)
	systemClock := clock.NewSystem()

	client := hotelapi.NewClient(cfg.API.BaseURL, cfg.API.Timeout())
	catalog := domain.NewRoomCatalog(cfg.Hotel.RoomTypes)
	engine := pricing.NewEngine(catalog, pricing.WithBreakfastRate(cfg.Hotel.BreakfastRate))
	policy := cfg.Cancellation.Policy()
	manager := lifecycle.NewManager(client, store,
		lifecycle.WithPolicy(policy),
		lifecycle.WithLocation(loc),
		lifecycle.WithClock(systemClock),
	)

	bookingOpts := []booking.BookingServiceOption{booking.WithClock(systemClock)}
	feedbackOpts := []feedback.FeedbackServiceOption{feedback.WithClock(systemClock)}
	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		if err := producer.CheckConnection(ctx); err != nil {
			log.Printf("WARNING: kafka unreachable, events will be dropped until it recovers: %v", err)
		}
		bookingOpts = append(bookingOpts,
			booking.WithProducer(producer, cfg.Kafka.BookingTopic),
			booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		)
		feedbackOpts = append(feedbackOpts, feedback.WithProducer(producer, cfg.Kafka.NotificationsTopic))
	}

	authService := auth.NewAuthService(client, store, auth.AdminAccount{
		ID:           cfg.Admin.ID,
		Email:        cfg.Admin.Email,
		PasswordHash: cfg.Admin.PasswordHash,
	}, systemClock)
	bookingService := booking.NewBookingService(client, engine, manager, store, bookingOpts...)
	feedbackService := feedback.NewFeedbackService(client, cfg.Hotel.Menu, feedbackOpts...)

	handlers := api.Handlers{
		Rooms:    api.NewRoomHandler(rooms.NewRoomService(catalog)),
		Bookings: api.NewBookingHandler(bookingService),
		Auth: api.NewAuthHandler(authService, api.CookieConfig{
			Name:   cfg.Session.CookieName,
			MaxAge: int(cfg.Session.TTL().Seconds()),
			Secure: cfg.Session.SecureCookie,
		}),
		Feedback: api.NewFeedbackHandler(feedbackService),
		Admin:    api.NewAdminHandler(admin.NewAdminService(client, cfg.Hotel.TotalRooms)),
		UI: api.NewUIHandler(api.UIConfig{
			HotelName:         cfg.Hotel.Name,
			Tagline:           cfg.Hotel.Tagline,
			Currency:          cfg.Hotel.Currency,
			Timezone:          loc.String(),
			Theme:             cfg.Hotel.Theme,
			Rooms:             catalog.All(),
			BreakfastRate:     engine.BreakfastRate(),
			Menu:              cfg.Hotel.Menu,
			CancellationRules: policy.Rules(),
		}),
	}
	router := api.NewRouter(api.RouterConfig{
		CookieName: cfg.Session.CookieName,
		SwaggerDir: cfg.HTTP.SwaggerDir,
	}, handlers, authService, store)

	if err := bootstrap.Run(ctx, cfg, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// newStore uses Redis when configured so sessions survive restarts and cancel guards
// hold across replicas. Without Redis everything stays in process.
func newStore(ctx context.Context, cfg *config.Config) cache.Store {
	if cfg.Redis.Addr == "" {
		log.Printf("redis not configured, using in-memory session store")
		return cache.NewMemoryCache(cfg.Session.TTL(), cfg.Session.CancelLockTTL())
	}
	store := cache.NewRedisCache(cfg.Redis, cfg.Session.TTL(), cfg.Session.CancelLockTTL())
	if err := store.Ping(ctx); err != nil {
		log.Fatalf("connect redis %s: %v", cfg.Redis.Addr, err)
	}
	return store
}
