package api

import (
	"net/http"

	"github.com/Domenick1991/sunshinehotel/internal/domain"
	"github.com/Domenick1991/sunshinehotel/internal/service/feedback"
	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	service feedback.FeedbackUseCase
}

func NewFeedbackHandler(service feedback.FeedbackUseCase) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

func (h *FeedbackHandler) Register(router *gin.RouterGroup) {
	router.POST("/feedback", h.submit)
	router.GET("/menu", h.menu)
}

// RegisterOrders mounts food ordering; the group must require a guest session.
func (h *FeedbackHandler) RegisterOrders(router *gin.RouterGroup) {
	router.POST("/food-orders", h.order)
}

func (h *FeedbackHandler) submit(c *gin.Context) {
	var fb domain.Feedback
	if err := c.ShouldBindJSON(&fb); err != nil {
		badRequest(c, err)
		return
	}
	msg, err := h.service.Submit(c.Request.Context(), fb)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

func (h *FeedbackHandler) menu(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"menu": h.service.Menu()})
}

func (h *FeedbackHandler) order(c *gin.Context) {
	var req feedback.FoodOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	res, err := h.service.PlaceFoodOrder(c.Request.Context(), currentSession(c), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}
