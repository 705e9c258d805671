package handlers

import (
	"net/http"
	"strconv"

	"barberbook/models"
	"barberbook/services/scheduling"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes booking admission and lifecycle over HTTP.
type BookingHandler struct {
	Scheduler scheduling.SchedulingService
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(scheduler scheduling.SchedulingService) *BookingHandler {
	return &BookingHandler{Scheduler: scheduler}
}

// actorID returns the authenticated user's id set by the auth middleware.
func actorID(c *gin.Context) string {
	id, _ := c.Get("userID")
	s, _ := id.(string)
	return s
}

// ListBookings handles GET /bookings with optional barberId/date filters.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	filter := models.BookingFilter{
		BarberID: c.Query("barberId"),
		Date:     c.Query("date"),
	}
	bookings, err := h.Scheduler.ListBookings(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ListMyBookings handles GET /bookings/me.
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	bookings, err := h.Scheduler.ListUserBookings(actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ListMyUpcoming handles GET /bookings/me/upcoming.
func (h *BookingHandler) ListMyUpcoming(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 50 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer between 1 and 50"})
			return
		}
		limit = n
	}
	states := c.QueryArray("states")

	bookings, err := h.Scheduler.ListUserUpcoming(actorID(c), limit, states)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBooking handles GET /bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, err := h.Scheduler.GetBooking(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// CreateBooking handles POST /bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input models.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	booking, err := h.Scheduler.CreateBooking(input, actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// CancelBooking handles POST /bookings/:id/cancel.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	booking, err := h.Scheduler.CancelBooking(c.Param("id"), actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// UpdateBooking handles PUT /bookings/:id.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	var input models.UpdateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	booking, err := h.Scheduler.UpdateBooking(c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}
