package api

import (
	"net/http"

	"github.com/Domenick1991/sunshinehotel/internal/service/admin"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	service admin.AdminUseCase
}

func NewAdminHandler(service admin.AdminUseCase) *AdminHandler {
	return &AdminHandler{service: service}
}

// Register mounts the dashboard routes; the group must require an admin session.
func (h *AdminHandler) Register(router *gin.RouterGroup) {
	router.GET("/bookings", h.bookings)
	router.GET("/feedbacks", h.feedbacks)
	router.GET("/stats", h.stats)
}

func (h *AdminHandler) bookings(c *gin.Context) {
	list, err := h.service.Bookings(c.Request.Context(), currentSession(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": list})
}

func (h *AdminHandler) feedbacks(c *gin.Context) {
	list, err := h.service.Feedbacks(c.Request.Context(), currentSession(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"feedbacks": list})
}

func (h *AdminHandler) stats(c *gin.Context) {
	st, err := h.service.Stats(c.Request.Context(), currentSession(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}
