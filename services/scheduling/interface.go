package scheduling

import (
	barberRepo "barberbook/database/repository/barber"
	bookingRepo "barberbook/database/repository/booking"
	serviceRepo "barberbook/database/repository/service"
	userRepo "barberbook/database/repository/user"
	"barberbook/models"
)

// SchedulingService is the appointment scheduling core: availability
// computation, booking admission and lifecycle operations.
type SchedulingService interface {
	// ComputeAvailability returns the bookable start times for a barber on a
	// date. A closed day yields an empty list, never an error.
	ComputeAvailability(req models.AvailabilityRequest) (*models.AvailabilityResult, error)
	// CreateBooking validates and atomically admits a booking under the
	// authenticated caller's identity.
	CreateBooking(input models.CreateBookingInput, actorID string) (*models.BookingResponse, error)
	// CancelBooking marks a future booking cancelled. Owner only; cancelling
	// an already-cancelled booking is a no-op returning the record.
	CancelBooking(bookingID, actorID string) (*models.BookingResponse, error)
	// UpdateBooking applies a partial update, re-running the slot conflict
	// pre-check when barber or start changes.
	UpdateBooking(bookingID string, input models.UpdateBookingInput) (*models.BookingResponse, error)
	// GetBooking returns one booking, enriched for display.
	GetBooking(bookingID string) (*models.BookingResponse, error)
	// ListBookings returns bookings matching the optional filter.
	ListBookings(filter models.BookingFilter) ([]models.BookingResponse, error)
	// ListUserBookings returns the caller's bookings (durable id first,
	// legacy name fallback).
	ListUserBookings(actorID string) ([]models.BookingResponse, error)
	// ListUserUpcoming returns the caller's next bookings in the given states.
	ListUserUpcoming(actorID string, limit int, states []string) ([]models.BookingResponse, error)
}

// ReminderScheduler schedules a reminder ahead of a booking's start. A nil
// scheduler disables reminders.
type ReminderScheduler interface {
	ScheduleReminder(booking models.Booking) error
}

// DefaultSchedulingService is the production implementation, composed from
// the repositories and the per-slot admission lock.
type DefaultSchedulingService struct {
	Bookings bookingRepo.BookingRepository
	Barbers  barberRepo.BarberRepository
	Services serviceRepo.ServiceRepository
	Users    userRepo.UserRepository
	Locker   SlotLocker
	// Reminders is optional; when set, admissions enqueue a reminder task.
	Reminders ReminderScheduler
	// DefaultTimezone labels availability results for barbers without one.
	DefaultTimezone string
}
