package scheduling

import (
	"errors"
	"time"

	bookingRepo "barberbook/database/repository/booking"
	"barberbook/models"
)

// GetBooking returns one booking enriched for display.
func (svc *DefaultSchedulingService) GetBooking(bookingID string) (*models.BookingResponse, error) {
	booking, err := svc.Bookings.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, newError(KindNotFound, "no booking with id %s", bookingID)
		}
		return nil, err
	}
	return svc.enrich(booking), nil
}

// ListBookings returns bookings matching the optional barber/date filter.
func (svc *DefaultSchedulingService) ListBookings(filter models.BookingFilter) ([]models.BookingResponse, error) {
	bookings, err := svc.Bookings.List(filter)
	if err != nil {
		return nil, err
	}
	return svc.enrichAll(bookings), nil
}

// ListUserBookings returns the caller's bookings, matching by durable user id
// first and by legacy customer name when the id yields nothing.
func (svc *DefaultSchedulingService) ListUserBookings(actorID string) ([]models.BookingResponse, error) {
	actor := svc.lookupActor(actorID)
	if actor == nil {
		return nil, newError(KindNotFound, "no user with id %s", actorID)
	}
	bookings, err := svc.Bookings.ListByUser(actorID, actor.NameCandidates())
	if err != nil {
		return nil, err
	}
	return svc.enrichAll(bookings), nil
}

// ListUserUpcoming returns the caller's next bookings in the given states,
// ascending by start.
func (svc *DefaultSchedulingService) ListUserUpcoming(actorID string, limit int, states []string) ([]models.BookingResponse, error) {
	if actor := svc.lookupActor(actorID); actor == nil {
		return nil, newError(KindNotFound, "no user with id %s", actorID)
	}
	if limit <= 0 {
		limit = 10
	}
	if len(states) == 0 {
		states = []string{models.StatusConfirmed}
	}
	nowISO := time.Now().Format(models.DateTimeLayout)
	bookings, err := svc.Bookings.ListUpcoming(actorID, nowISO, states, limit)
	if err != nil {
		return nil, err
	}
	return svc.enrichAll(bookings), nil
}

// enrich resolves display names from the catalog and derives the
// display-time status. The derivation never writes back; the reconciler is
// the authoritative writer and this only covers its latency window.
func (svc *DefaultSchedulingService) enrich(booking *models.Booking) *models.BookingResponse {
	resp := &models.BookingResponse{Booking: *booking}

	if barber, err := svc.Barbers.GetByID(booking.BarberID); err == nil {
		resp.BarberName = barber.Name
	}
	if service, err := svc.Services.GetByID(booking.ServiceID); err == nil {
		resp.ServiceName = service.Name
	}
	resp.Status = displayStatus(booking, time.Now())
	return resp
}

func (svc *DefaultSchedulingService) enrichAll(bookings []models.Booking) []models.BookingResponse {
	responses := make([]models.BookingResponse, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, *svc.enrich(&bookings[i]))
	}
	return responses
}

// displayStatus presents an ended but not-yet-reconciled booking as
// completed. Cancelled and already-completed rows keep their stored status.
func displayStatus(booking *models.Booking, now time.Time) string {
	if booking.IsCancelled() || booking.Status == models.StatusCompleted {
		return booking.Status
	}
	endAt, err := time.Parse(models.DateTimeLayout, booking.End)
	if err != nil {
		return booking.Status
	}
	if !endAt.After(now) {
		return models.StatusCompleted
	}
	return booking.Status
}
