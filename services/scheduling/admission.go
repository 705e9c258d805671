package scheduling

import (
	"errors"
	"time"

	barberRepo "barberbook/database/repository/barber"
	bookingRepo "barberbook/database/repository/booking"
	serviceRepo "barberbook/database/repository/service"
	userRepo "barberbook/database/repository/user"
	"barberbook/models"
	"barberbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// slotLockTTL bounds how long an admission may hold a slot lock; expiry frees
// locks left behind by a crashed request.
const slotLockTTL = 5 * time.Second

// CreateBooking validates a booking request and atomically admits it.
//
// Validation order is fail-fast: references, date/time format, working
// hours, then slot conflicts. The conflict window (check through insert) runs
// under a per-(barber, start) lock, with the store's unique index as the
// commit-time backstop.
func (svc *DefaultSchedulingService) CreateBooking(input models.CreateBookingInput, actorID string) (*models.BookingResponse, error) {
	barber, err := svc.Barbers.GetByID(input.BarberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrNotFound) {
			return nil, newError(KindValidation, "invalid barberId %s", input.BarberID)
		}
		return nil, err
	}
	service, err := svc.Services.GetByID(input.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrNotFound) {
			return nil, newError(KindValidation, "invalid serviceId %s", input.ServiceID)
		}
		return nil, err
	}

	date, err := time.Parse(models.DateLayout, input.Date)
	if err != nil {
		return nil, newError(KindValidation, "invalid date format %q, expected YYYY-MM-DD", input.Date)
	}
	startMin, err := ParseClock(input.Time)
	if err != nil {
		return nil, err
	}

	open, close, closed, err := ResolveWindow(barber.WorkingHours, date)
	if err != nil {
		return nil, err
	}
	if closed {
		return nil, newError(KindOutOfHours, "barber does not work on %s", input.Date)
	}
	if startMin < open || startMin >= close {
		return nil, newError(KindOutOfHours, "requested time %s is outside working hours", input.Time)
	}

	duration := service.DurationMinutes
	if duration <= 0 {
		duration = DefaultSlotMinutes
	}
	startAt := date.Add(time.Duration(startMin) * time.Minute)
	startISO := startAt.Format(models.DateTimeLayout)
	endISO := startAt.Add(time.Duration(duration) * time.Minute).Format(models.DateTimeLayout)

	lockKey := input.BarberID + ":" + startISO
	acquired, err := svc.Locker.Acquire(lockKey, slotLockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, newError(KindConflict, "slot %s is being booked by another request", startISO)
	}
	defer svc.Locker.Release(lockKey)

	taken, err := svc.Bookings.HasActiveAtStart(input.BarberID, startISO, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, newError(KindConflict, "slot %s is already booked", startISO)
	}
	// Full-interval check on top of the exact-start one: a long service must
	// not slide into a partially overlapping slot.
	existing, err := svc.Bookings.ActiveIntervals(input.BarberID, input.Date)
	if err != nil {
		return nil, err
	}
	if overlapsAny(existing, startMin, startMin+duration) {
		return nil, newError(KindConflict, "requested time overlaps an existing booking")
	}

	actor := svc.lookupActor(actorID)
	customerName := input.CustomerName
	if customerName == "" && actor != nil {
		if actor.Name != "" {
			customerName = actor.Name
		} else {
			customerName = actor.Username
		}
	}

	booking := &models.Booking{
		ID:            uuid.New().String(),
		BarberID:      input.BarberID,
		ServiceID:     input.ServiceID,
		UserID:        actorID,
		CustomerName:  customerName,
		CustomerPhone: input.CustomerPhone,
		Start:         startISO,
		End:           endISO,
		Status:        models.StatusConfirmed,
		CreatedAt:     time.Now(),
	}
	if err := svc.Bookings.Create(booking); err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicateSlot) {
			return nil, newError(KindConflict, "slot %s is already booked", startISO)
		}
		return nil, err
	}

	if svc.Reminders != nil {
		if err := svc.Reminders.ScheduleReminder(*booking); err != nil {
			utils.GetLogger().Warn("failed to schedule booking reminder",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}

	return svc.enrich(booking), nil
}

// CancelBooking marks a future booking cancelled. Only the owner may cancel;
// ownership is the durable user id, with a legacy name/username fallback for
// rows created before identity linkage.
func (svc *DefaultSchedulingService) CancelBooking(bookingID, actorID string) (*models.BookingResponse, error) {
	booking, err := svc.Bookings.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, newError(KindNotFound, "no booking with id %s", bookingID)
		}
		return nil, err
	}

	if !svc.ownedBy(booking, actorID) {
		return nil, newError(KindForbidden, "booking %s does not belong to the caller", bookingID)
	}

	// Re-cancelling is a no-op, not an error.
	if booking.IsCancelled() {
		return svc.enrich(booking), nil
	}

	startAt, err := time.Parse(models.DateTimeLayout, booking.Start)
	if err != nil {
		return nil, newError(KindValidation, "booking %s has a malformed start time", bookingID)
	}
	if !startAt.After(time.Now()) {
		return nil, newError(KindInvalidState, "cannot cancel a booking that has already started")
	}

	booking.Status = models.StatusCancelled
	if err := svc.Bookings.Update(booking); err != nil {
		return nil, err
	}
	return svc.enrich(booking), nil
}

// UpdateBooking applies a partial update. When the barber or start changes,
// the exact-start conflict pre-check runs again, excluding the booking's own
// row.
func (svc *DefaultSchedulingService) UpdateBooking(bookingID string, input models.UpdateBookingInput) (*models.BookingResponse, error) {
	booking, err := svc.Bookings.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, newError(KindNotFound, "no booking with id %s", bookingID)
		}
		return nil, err
	}

	newBarberID := booking.BarberID
	if input.BarberID != "" {
		newBarberID = input.BarberID
	}
	newStart := booking.Start
	if input.Start != "" {
		newStart = input.Start
	}
	if newBarberID != booking.BarberID || newStart != booking.Start {
		taken, err := svc.Bookings.HasActiveAtStart(newBarberID, newStart, booking.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, newError(KindConflict, "slot %s is already booked", newStart)
		}
	}

	booking.BarberID = newBarberID
	booking.Start = newStart
	if input.ServiceID != "" {
		booking.ServiceID = input.ServiceID
	}
	if input.CustomerName != "" {
		booking.CustomerName = input.CustomerName
	}
	if input.CustomerPhone != "" {
		booking.CustomerPhone = input.CustomerPhone
	}
	if input.End != "" {
		booking.End = input.End
	}
	if input.Status != "" {
		booking.Status = input.Status
	}

	if err := svc.Bookings.Update(booking); err != nil {
		return nil, err
	}
	return svc.enrich(booking), nil
}

// lookupActor resolves the caller's identity record; a missing record is not
// fatal, it only disables the name fallbacks.
func (svc *DefaultSchedulingService) lookupActor(actorID string) *models.User {
	if actorID == "" {
		return nil
	}
	actor, err := svc.Users.GetByID(actorID)
	if err != nil {
		if !errors.Is(err, userRepo.ErrNotFound) {
			utils.GetLogger().Warn("failed to resolve caller identity",
				zap.String("userID", actorID), zap.Error(err))
		}
		return nil
	}
	return actor
}

func (svc *DefaultSchedulingService) ownedBy(booking *models.Booking, actorID string) bool {
	if booking.UserID != "" && booking.UserID == actorID {
		return true
	}
	if actor := svc.lookupActor(actorID); actor != nil {
		for _, name := range actor.NameCandidates() {
			if booking.CustomerName == name {
				return true
			}
		}
	}
	return false
}
