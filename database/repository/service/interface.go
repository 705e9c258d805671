package serviceRepo

import (
	"errors"

	"barberbook/models"
)

// ErrNotFound is returned when no service matches the given id.
var ErrNotFound = errors.New("service not found")

// ServiceRepository is the service catalog lookup, read-only to the core.
type ServiceRepository interface {
	GetByID(serviceID string) (*models.Service, error)
}
