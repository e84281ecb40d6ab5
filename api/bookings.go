package api

import (
	"net/http"

	"github.com/Domenick1991/sunshinehotel/internal/domain"
	"github.com/Domenick1991/sunshinehotel/internal/pricing"
	"github.com/Domenick1991/sunshinehotel/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

// RegisterQuote mounts the public price preview.
func (h *BookingHandler) RegisterQuote(router *gin.RouterGroup) {
	router.POST("/quote", h.quote)
}

// Register mounts the guest booking routes; the group must require a guest session.
func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.GET("", h.list)
	router.GET("/:id/cancellation", h.cancellation)
	router.PATCH("/:id/cancel", h.cancel)
}

// quote never fails on incomplete dates: the form gets a zero total until the range is valid.
func (h *BookingHandler) quote(c *gin.Context) {
	var in pricing.QuoteInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, h.service.Quote(in))
}

func (h *BookingHandler) create(c *gin.Context) {
	var req domain.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.service.CreateBooking(c.Request.Context(), currentSession(c), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *BookingHandler) list(c *gin.Context) {
	views, err := h.service.ListBookings(c.Request.Context(), currentSession(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": views})
}

func (h *BookingHandler) cancellation(c *gin.Context) {
	view, err := h.service.CancellationQuote(c.Request.Context(), currentSession(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *BookingHandler) cancel(c *gin.Context) {
	out, err := h.service.CancelBooking(c.Request.Context(), currentSession(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
