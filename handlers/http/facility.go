package httpHandler

import (
	"net/http"

	"hotel-server/entities"
	"hotel-server/usecases"

	"github.com/gin-gonic/gin"
)

type FacilityHandler struct {
	useCase *usecases.FacilityUseCase
}

func NewFacilityHandler(useCase *usecases.FacilityUseCase) *FacilityHandler {
	return &FacilityHandler{useCase: useCase}
}

// Create handles POST /api/v1/facilities
func (h *FacilityHandler) Create(c *gin.Context) {
	var facility entities.Facility
	if err := c.ShouldBindJSON(&facility); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := h.useCase.Create(&facility); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": facility})
}

// GetAll handles GET /api/v1/facilities
func (h *FacilityHandler) GetAll(c *gin.Context) {
	facilities, err := h.useCase.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve facilities"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  facilities,
		"count": len(facilities),
	})
}
