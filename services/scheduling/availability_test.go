package scheduling

import (
	"testing"

	"barberbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-03-10 is a Monday; the test barber works 09:00-18:00 that day.
const testMonday = "2025-03-10"

func confirmedBooking(store *fakeBookingStore, id, barberID, start, end string) {
	store.bookings = append(store.bookings, models.Booking{
		ID:       id,
		BarberID: barberID,
		Start:    start,
		End:      end,
		Status:   models.StatusConfirmed,
	})
}

func TestComputeAvailabilityFullDay(t *testing.T) {
	svc, _ := newTestService()

	result, err := svc.ComputeAvailability(models.AvailabilityRequest{
		BarberID:    "barber-1",
		Date:        testMonday,
		SlotMinutes: 30,
	})
	require.NoError(t, err)

	require.Len(t, result.Available, 18)
	assert.Equal(t, "09:00", result.Available[0])
	assert.Equal(t, "17:30", result.Available[17])
	assert.NotContains(t, result.Available, "18:00")
	assert.Equal(t, 30, result.SlotMinutes)
	assert.Equal(t, "Europe/Madrid", result.Timezone)
}

func TestComputeAvailabilityExcludesBookedSlot(t *testing.T) {
	svc, store := newTestService()
	confirmedBooking(store, "b1", "barber-1", testMonday+"T10:00", testMonday+"T10:30")

	result, err := svc.ComputeAvailability(models.AvailabilityRequest{
		BarberID:    "barber-1",
		Date:        testMonday,
		SlotMinutes: 30,
	})
	require.NoError(t, err)

	assert.NotContains(t, result.Available, "10:00")
	assert.Contains(t, result.Available, "09:30")
	assert.Contains(t, result.Available, "10:30")
	assert.Len(t, result.Available, 17)
}

func TestComputeAvailabilityIgnoresCancelled(t *testing.T) {
	svc, store := newTestService()
	store.bookings = append(store.bookings, models.Booking{
		ID:       "b1",
		BarberID: "barber-1",
		Start:    testMonday + "T10:00",
		End:      testMonday + "T10:30",
		Status:   models.StatusCancelled,
	})

	result, err := svc.ComputeAvailability(models.AvailabilityRequest{
		BarberID: "barber-1",
		Date:     testMonday,
	})
	require.NoError(t, err)
	assert.Contains(t, result.Available, "10:00")
}

func TestComputeAvailabilityClosedDay(t *testing.T) {
	svc, _ := newTestService()

	// Sunday: closed day yields an empty list, not an error.
	result, err := svc.ComputeAvailability(models.AvailabilityRequest{
		BarberID: "barber-1",
		Date:     "2025-03-09",
	})
	require.NoError(t, err)
	assert.NotNil(t, result.Available)
	assert.Empty(t, result.Available)
}

func TestComputeAvailabilityServiceDurationBlocks(t *testing.T) {
	svc, store := newTestService()
	confirmedBooking(store, "b1", "barber-1", testMonday+"T10:00", testMonday+"T10:30")

	// A 45-minute service listed on a 30-minute grid: candidates still start
	// every 30 minutes, but each blocks 45.
	result, err := svc.ComputeAvailability(models.AvailabilityRequest{
		BarberID:    "barber-1",
		Date:        testMonday,
		ServiceID:   "svc-45",
		SlotMinutes: 30,
	})
	require.NoError(t, err)

	// 09:30+45 runs into the 10:00 booking.
	assert.NotContains(t, result.Available, "09:30")
	assert.NotContains(t, result.Available, "10:00")
	assert.Contains(t, result.Available, "10:30")
	// 17:30+45 would pass closing time.
	assert.NotContains(t, result.Available, "17:30")
	assert.Contains(t, result.Available, "17:00")
}

func TestComputeAvailabilityUnknownServiceFallsBack(t *testing.T) {
	svc, _ := newTestService()

	result, err := svc.ComputeAvailability(models.AvailabilityRequest{
		BarberID:    "barber-1",
		Date:        testMonday,
		ServiceID:   "no-such-service",
		SlotMinutes: 30,
	})
	require.NoError(t, err)
	// Falls back to the granularity as blocking duration.
	assert.Len(t, result.Available, 18)
}

func TestComputeAvailabilityDefaultsSlotMinutes(t *testing.T) {
	svc, _ := newTestService()

	result, err := svc.ComputeAvailability(models.AvailabilityRequest{
		BarberID: "barber-1",
		Date:     testMonday,
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultSlotMinutes, result.SlotMinutes)
}

func TestComputeAvailabilityRejections(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.ComputeAvailability(models.AvailabilityRequest{
		BarberID: "no-such-barber",
		Date:     testMonday,
	})
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))

	_, err = svc.ComputeAvailability(models.AvailabilityRequest{
		BarberID:    "barber-1",
		Date:        testMonday,
		SlotMinutes: 90,
	})
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))

	_, err = svc.ComputeAvailability(models.AvailabilityRequest{
		BarberID: "barber-1",
		Date:     "10/03/2025",
	})
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
}
