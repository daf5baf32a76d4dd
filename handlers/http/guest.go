package httpHandler

import (
	"net/http"

	"hotel-server/entities"
	"hotel-server/usecases"

	"github.com/gin-gonic/gin"
)

type GuestHandler struct {
	useCase *usecases.GuestUseCase
}

func NewGuestHandler(useCase *usecases.GuestUseCase) *GuestHandler {
	return &GuestHandler{useCase: useCase}
}

// Create handles POST /api/v1/guests
func (h *GuestHandler) Create(c *gin.Context) {
	var guest entities.Guest
	if err := c.ShouldBindJSON(&guest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := h.useCase.Create(&guest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": guest})
}

// GetAll handles GET /api/v1/guests
func (h *GuestHandler) GetAll(c *gin.Context) {
	guests, err := h.useCase.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve guests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  guests,
		"count": len(guests),
	})
}
