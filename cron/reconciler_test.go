package cron

import (
	"testing"

	bookingRepo "barberbook/database/repository/booking"
	"barberbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sweepStore implements just enough of BookingRepository to drive the
// reconciler; everything but CompleteExpired is unused here.
type sweepStore struct {
	bookings []models.Booking
}

func (s *sweepStore) Create(*models.Booking) error          { return nil }
func (s *sweepStore) GetByID(string) (*models.Booking, error) { return nil, bookingRepo.ErrNotFound }
func (s *sweepStore) Update(*models.Booking) error          { return nil }
func (s *sweepStore) List(models.BookingFilter) ([]models.Booking, error) { return nil, nil }
func (s *sweepStore) ListByUser(string, []string) ([]models.Booking, error) { return nil, nil }
func (s *sweepStore) ListUpcoming(string, string, []string, int) ([]models.Booking, error) {
	return nil, nil
}
func (s *sweepStore) HasActiveAtStart(string, string, string) (bool, error) { return false, nil }
func (s *sweepStore) ActiveIntervals(string, string) ([]models.Interval, error) { return nil, nil }

func (s *sweepStore) CompleteExpired(nowISO string) (int64, error) {
	var changed int64
	for i := range s.bookings {
		b := &s.bookings[i]
		if b.End == "" || b.End > nowISO {
			continue
		}
		terminal := false
		for _, t := range models.TerminalStates {
			if b.Status == t {
				terminal = true
				break
			}
		}
		if !terminal {
			b.Status = models.StatusCompleted
			changed++
		}
	}
	return changed, nil
}

func TestReconcileOnce(t *testing.T) {
	store := &sweepStore{bookings: []models.Booking{
		{ID: "ended", End: "2020-01-06T10:30", Status: models.StatusConfirmed},
		{ID: "cancelled", End: "2020-01-06T11:30", Status: models.StatusCancelled},
		{ID: "legacy-cancelled", End: "2020-01-06T12:30", Status: "canceled"},
		{ID: "future", End: "2030-01-07T10:30", Status: models.StatusConfirmed},
	}}

	count, err := ReconcileOnce(store)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, models.StatusCompleted, store.bookings[0].Status)
	// Terminal spellings and future bookings are untouched.
	assert.Equal(t, models.StatusCancelled, store.bookings[1].Status)
	assert.Equal(t, "canceled", store.bookings[2].Status)
	assert.Equal(t, models.StatusConfirmed, store.bookings[3].Status)
}

func TestReconcileOnceIdempotent(t *testing.T) {
	store := &sweepStore{bookings: []models.Booking{
		{ID: "ended", End: "2020-01-06T10:30", Status: models.StatusConfirmed},
	}}

	first, err := ReconcileOnce(store)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first)

	second, err := ReconcileOnce(store)
	require.NoError(t, err)
	assert.Zero(t, second)
}
