package httpHandler

import (
	"net/http"
	"strconv"

	"hotel-server/entities"
	"hotel-server/usecases"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	useCase *usecases.RoomUseCase
}

func NewRoomHandler(useCase *usecases.RoomUseCase) *RoomHandler {
	return &RoomHandler{useCase: useCase}
}

// Create handles POST /api/v1/rooms
func (h *RoomHandler) Create(c *gin.Context) {
	var room entities.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := h.useCase.Create(&room); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": room})
}

// GetAll handles GET /api/v1/rooms
func (h *RoomHandler) GetAll(c *gin.Context) {
	rooms, err := h.useCase.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rooms"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  rooms,
		"count": len(rooms),
	})
}

// Get handles GET /api/v1/rooms/:id
func (h *RoomHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room id"})
		return
	}

	room, err := h.useCase.Get(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": room})
}
