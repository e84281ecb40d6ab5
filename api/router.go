package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Handlers struct {
	Rooms    *RoomHandler
	Bookings *BookingHandler
	Auth     *AuthHandler
	Feedback *FeedbackHandler
	Admin    *AdminHandler
	UI       *UIHandler
}

type RouterConfig struct {
	CookieName string
	// SwaggerDir holds hotel.swagger.json; empty disables /swagger.
	SwaggerDir string
}

func NewRouter(cfg RouterConfig, h Handlers, sessions SessionLoader, store Pinger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(), Sessions(sessions, cfg.CookieName))

	router.GET("/health", health(store))

	api := router.Group("/api")
	h.UI.Register(api)
	h.Rooms.Register(api.Group("/rooms"))
	h.Bookings.RegisterQuote(api)
	h.Auth.Register(api.Group("/guests"))
	h.Feedback.Register(api)

	guest := api.Group("", RequireGuest())
	h.Bookings.Register(guest.Group("/bookings"))
	h.Feedback.RegisterOrders(guest)

	h.Auth.RegisterAdmin(api.Group("/admin"))
	h.Admin.Register(api.Group("/admin", RequireAdmin()))

	if cfg.SwaggerDir != "" {
		router.StaticFS("/swagger-spec", http.Dir(cfg.SwaggerDir))
		router.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/swagger-spec/hotel.swagger.json"))))
	}

	return router
}
