package barberRepo

import (
	"errors"

	"barberbook/models"
)

// ErrNotFound is returned when no barber matches the given id.
var ErrNotFound = errors.New("barber not found")

// BarberRepository is the staff directory, read-only to the scheduling core.
type BarberRepository interface {
	// GetByID retrieves a barber with their weekly working hours.
	GetByID(barberID string) (*models.Barber, error)
	// GetAll lists every barber.
	GetAll() ([]models.Barber, error)
}
