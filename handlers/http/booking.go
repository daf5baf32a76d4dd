package httpHandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"hotel-server/entities"
	"hotel-server/services"
	"hotel-server/usecases"
	"hotel-server/ws"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	useCase  *usecases.BookingUseCase
	hub      *ws.Hub
	recorder *services.ActivityRecorder
}

func NewBookingHandler(useCase *usecases.BookingUseCase, hub *ws.Hub, recorder *services.ActivityRecorder) *BookingHandler {
	return &BookingHandler{
		useCase:  useCase,
		hub:      hub,
		recorder: recorder,
	}
}

func bookingStatus(err error) int {
	switch {
	case errors.Is(err, usecases.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecases.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, usecases.ErrInvalidReference):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// publish records the mutation for the audit trail and broadcasts it to
// websocket subscribers.
func (h *BookingHandler) publish(action string, booking *entities.Booking, userID uint) {
	if h.recorder != nil {
		h.recorder.Record(action, booking, userID)
	}
	if h.hub != nil {
		payload, err := json.Marshal(gin.H{
			"type":          action,
			"booking_id":    booking.ID,
			"bookingnumber": booking.BookingNumber,
		})
		if err == nil {
			h.hub.Broadcast(payload)
		}
	}
}

func bookingID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking id"})
		return 0, false
	}
	return uint(id), true
}

// Create handles POST /api/v1/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	var req usecases.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	userID := CurrentUserID(c)
	booking, err := h.useCase.Create(req, userID)
	if err != nil {
		c.JSON(bookingStatus(err), gin.H{"error": err.Error()})
		return
	}

	h.publish(entities.BookingCreated, booking, userID)
	c.JSON(http.StatusCreated, gin.H{"data": booking})
}

// GetAll handles GET /api/v1/bookings
func (h *BookingHandler) GetAll(c *gin.Context) {
	bookings, err := h.useCase.GetAll(CurrentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bookings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  bookings,
		"count": len(bookings),
	})
}

// Get handles GET /api/v1/bookings/:id
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	booking, err := h.useCase.Get(id, CurrentUserID(c))
	if err != nil {
		c.JSON(bookingStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": booking})
}

// Update handles PUT /api/v1/bookings/:id
func (h *BookingHandler) Update(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	var req usecases.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	userID := CurrentUserID(c)
	booking, err := h.useCase.Update(id, req, userID)
	if err != nil {
		c.JSON(bookingStatus(err), gin.H{"error": err.Error()})
		return
	}

	h.publish(entities.BookingUpdated, booking, userID)
	c.JSON(http.StatusOK, gin.H{"data": booking})
}

// Delete handles DELETE /api/v1/bookings/:id
func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	userID := CurrentUserID(c)
	if err := h.useCase.Delete(id, userID); err != nil {
		c.JSON(bookingStatus(err), gin.H{"error": err.Error()})
		return
	}

	h.publish(entities.BookingDeleted, &entities.Booking{ID: id}, userID)
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}

// GetIncomplete handles GET /api/v1/bookings/incomplete
func (h *BookingHandler) GetIncomplete(c *gin.Context) {
	bookings, err := h.useCase.GetIncomplete(CurrentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bookings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  bookings,
		"count": len(bookings),
	})
}
