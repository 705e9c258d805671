package userRepo

import (
	"errors"

	"barberbook/models"
)

// ErrNotFound is returned when no user matches the given id.
var ErrNotFound = errors.New("user not found")

// UserRepository resolves authenticated caller ids to identity records.
// Account management happens elsewhere; the core only reads.
type UserRepository interface {
	GetByID(userID string) (*models.User, error)
}
