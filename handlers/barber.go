package handlers

import (
	"net/http"

	barberRepo "barberbook/database/repository/barber"

	"github.com/gin-gonic/gin"
)

// BarberHandler exposes the staff directory read side.
type BarberHandler struct {
	Barbers barberRepo.BarberRepository
}

// NewBarberHandler constructs a BarberHandler.
func NewBarberHandler(barbers barberRepo.BarberRepository) *BarberHandler {
	return &BarberHandler{Barbers: barbers}
}

// ListBarbers handles GET /barbers.
func (h *BarberHandler) ListBarbers(c *gin.Context) {
	barbers, err := h.Barbers.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, barbers)
}
