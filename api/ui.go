package api

import (
	"context"
	"net/http"

	"github.com/Domenick1991/sunshinehotel/internal/domain"
	"github.com/gin-gonic/gin"
)

// UIConfig is the single document every screen reads its labels, theme and catalog from.
type UIConfig struct {
	HotelName         string            `json:"hotelName"`
	Tagline           string            `json:"tagline,omitempty"`
	Currency          string            `json:"currency"`
	Timezone          string            `json:"timezone"`
	Theme             map[string]string `json:"theme"`
	Rooms             []domain.RoomType `json:"rooms"`
	BreakfastRate     int64             `json:"breakfastRate"`
	Menu              []domain.MenuItem `json:"menu"`
	CancellationRules []string          `json:"cancellationRules"`
}

type UIHandler struct {
	config UIConfig
}

func NewUIHandler(config UIConfig) *UIHandler {
	if config.Theme == nil {
		config.Theme = map[string]string{}
	}
	return &UIHandler{config: config}
}

func (h *UIHandler) Register(router *gin.RouterGroup) {
	router.GET("/ui", h.get)
}

func (h *UIHandler) get(c *gin.Context) {
	c.JSON(http.StatusOK, h.config)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

// health reports liveness plus the state of the session store.
func health(store Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "store": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
