package bookingRepo

import (
	"errors"

	"barberbook/models"
)

// ErrNotFound is returned when no booking matches the given id.
var ErrNotFound = errors.New("booking not found")

// ErrDuplicateSlot is returned when an insert collides with the unique
// (barber_id, start) index over confirmed bookings.
var ErrDuplicateSlot = errors.New("slot already booked")

// BookingRepository is the single source of truth for bookings. The
// availability engine only reads it; admission is the only writer of new
// rows and the reconciler the only writer of automatic transitions.
type BookingRepository interface {
	// Create persists a new booking. A unique-index collision surfaces as
	// ErrDuplicateSlot so admission can report a conflict.
	Create(booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(bookingID string) (*models.Booking, error)
	// Update replaces the mutable fields of an existing booking.
	Update(booking *models.Booking) error
	// List returns bookings matching the optional barber/date filter.
	List(filter models.BookingFilter) ([]models.Booking, error)
	// ListByUser returns a user's bookings by durable id, falling back to a
	// legacy customer-name match when the id yields nothing.
	ListByUser(userID string, nameFallbacks []string) ([]models.Booking, error)
	// ListUpcoming returns a user's bookings starting at or after afterISO
	// whose status is in states, ascending by start, capped at limit.
	ListUpcoming(userID string, afterISO string, states []string, limit int) ([]models.Booking, error)
	// HasActiveAtStart reports whether a non-cancelled booking exists for the
	// barber at exactly startISO, excluding excludeID when non-empty.
	HasActiveAtStart(barberID, startISO, excludeID string) (bool, error)
	// ActiveIntervals returns the blocked [start, end) intervals on a date,
	// in minutes from that date's midnight. Cancelled bookings are excluded;
	// completed ones still block their historical slot.
	ActiveIntervals(barberID, date string) ([]models.Interval, error)
	// CompleteExpired marks every booking with end <= nowISO and a
	// non-terminal status as completed, in one batch. Returns rows changed.
	CompleteExpired(nowISO string) (int64, error)
}
