package api

import (
	"net/http"

	"github.com/Domenick1991/sunshinehotel/internal/service/rooms"
	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	service rooms.RoomUseCase
}

func NewRoomHandler(service rooms.RoomUseCase) *RoomHandler {
	return &RoomHandler{service: service}
}

func (h *RoomHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
}

func (h *RoomHandler) list(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"rooms": h.service.List()})
}

func (h *RoomHandler) get(c *gin.Context) {
	room, err := h.service.GetByID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}
