package handlers

import (
	"net/http"
	"strconv"

	"barberbook/models"
	"barberbook/services/scheduling"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler exposes the availability engine over HTTP.
type AvailabilityHandler struct {
	Scheduler scheduling.SchedulingService
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(scheduler scheduling.SchedulingService) *AvailabilityHandler {
	return &AvailabilityHandler{Scheduler: scheduler}
}

// GetAvailability handles GET /availability with query parameters
// (backwards-compatible surface).
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	req := models.AvailabilityRequest{
		BarberID:    c.Query("barberId"),
		Date:        c.Query("date"),
		ServiceID:   c.Query("serviceId"),
		SlotMinutes: scheduling.DefaultSlotMinutes,
	}
	if req.BarberID == "" || req.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "barberId and date are required"})
		return
	}
	if raw := c.Query("slotMinutes"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "slotMinutes must be an integer"})
			return
		}
		req.SlotMinutes = m
	}

	result, err := h.Scheduler.ComputeAvailability(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// PostAvailability handles POST /availability with a JSON body.
func (h *AvailabilityHandler) PostAvailability(c *gin.Context) {
	var req models.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	result, err := h.Scheduler.ComputeAvailability(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
