package scheduling

import (
	"errors"
	"time"

	barberRepo "barberbook/database/repository/barber"
	"barberbook/models"
)

// ComputeAvailability lists the bookable start times for a barber on a date.
//
// The display granularity (SlotMinutes) spaces the candidates; the blocking
// duration is the requested service's duration when resolvable, otherwise the
// granularity itself, clamped to a 5-minute floor. A 30-minute listing can
// therefore still block 45 minutes per candidate.
func (svc *DefaultSchedulingService) ComputeAvailability(req models.AvailabilityRequest) (*models.AvailabilityResult, error) {
	barber, err := svc.Barbers.GetByID(req.BarberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrNotFound) {
			return nil, newError(KindNotFound, "no barber with id %s", req.BarberID)
		}
		return nil, err
	}

	slotMinutes := req.SlotMinutes
	if slotMinutes == 0 {
		slotMinutes = DefaultSlotMinutes
	}
	if !ValidSlotMinutes(slotMinutes) {
		return nil, newError(KindValidation, "slotMinutes must be between %d and %d", MinSlotMinutes, MaxSlotMinutes)
	}

	date, err := time.Parse(models.DateLayout, req.Date)
	if err != nil {
		return nil, newError(KindValidation, "invalid date format %q, expected YYYY-MM-DD", req.Date)
	}

	tz := barber.WorkingHours.Timezone
	if tz == "" {
		tz = svc.DefaultTimezone
	}
	result := &models.AvailabilityResult{
		BarberID:    req.BarberID,
		Date:        req.Date,
		Timezone:    tz,
		SlotMinutes: slotMinutes,
		Available:   []string{},
	}

	open, close, closed, err := ResolveWindow(barber.WorkingHours, date)
	if err != nil {
		return nil, err
	}
	if closed {
		return result, nil
	}

	duration := svc.effectiveDuration(req.ServiceID, slotMinutes)

	existing, err := svc.Bookings.ActiveIntervals(req.BarberID, req.Date)
	if err != nil {
		return nil, err
	}

	for s := range Slots(open, close, slotMinutes) {
		e := s + duration
		if e > close {
			continue
		}
		if overlapsAny(existing, s, e) {
			continue
		}
		result.Available = append(result.Available, FormatClock(s))
	}
	return result, nil
}

// effectiveDuration resolves the minutes a candidate booking would block.
// An unresolvable service id falls back to the granularity rather than
// erroring; admission is where an unknown service is rejected.
func (svc *DefaultSchedulingService) effectiveDuration(serviceID string, slotMinutes int) int {
	duration := slotMinutes
	if serviceID != "" {
		if service, err := svc.Services.GetByID(serviceID); err == nil && service.DurationMinutes > 0 {
			duration = service.DurationMinutes
		}
	}
	if duration < MinSlotMinutes {
		duration = MinSlotMinutes
	}
	return duration
}

func overlapsAny(intervals []models.Interval, start, end int) bool {
	for _, iv := range intervals {
		if iv.Overlaps(start, end) {
			return true
		}
	}
	return false
}
