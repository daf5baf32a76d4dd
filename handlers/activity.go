package handlers

import (
	"net/http"
	"strconv"

	"hotel-server/repositories"
	"hotel-server/services"

	"github.com/gin-gonic/gin"
)

// ActivityHandler exposes the booking audit trail and its buffer.
type ActivityHandler struct {
	recorder  *services.ActivityRecorder
	eventRepo repositories.BookingEventRepository
}

func NewActivityHandler(recorder *services.ActivityRecorder, eventRepo repositories.BookingEventRepository) *ActivityHandler {
	return &ActivityHandler{recorder: recorder, eventRepo: eventRepo}
}

// Recent GET /api/v1/activity
func (h *ActivityHandler) Recent(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	events, err := h.eventRepo.Recent(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve activity"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  events,
		"count": len(events),
	})
}

// Stats GET /api/v1/activity/stats
func (h *ActivityHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"pending": h.recorder.Pending(),
	})
}

// Flush POST /api/v1/activity/flush
func (h *ActivityHandler) Flush(c *gin.Context) {
	h.recorder.Flush()
	c.JSON(http.StatusOK, gin.H{"message": "Activity buffer flushed"})
}
