package scheduling

import (
	"strings"
	"sync"
	"time"

	barberRepo "barberbook/database/repository/barber"
	bookingRepo "barberbook/database/repository/booking"
	serviceRepo "barberbook/database/repository/service"
	userRepo "barberbook/database/repository/user"
	"barberbook/models"
)

// fakeBookingStore is an in-memory BookingRepository good enough to exercise
// the engine end to end, including the unique-slot behavior of the real
// store's partial index.
type fakeBookingStore struct {
	mu       sync.Mutex
	bookings []models.Booking
}

func (f *fakeBookingStore) Create(b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.bookings {
		if existing.BarberID == b.BarberID && existing.Start == b.Start &&
			existing.Status == models.StatusConfirmed && b.Status == models.StatusConfirmed {
			return bookingRepo.ErrDuplicateSlot
		}
	}
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeBookingStore) GetByID(id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, bookingRepo.ErrNotFound
}

func (f *fakeBookingStore) Update(b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.bookings {
		if f.bookings[i].ID == b.ID {
			f.bookings[i] = *b
			return nil
		}
	}
	return bookingRepo.ErrNotFound
}

func (f *fakeBookingStore) List(filter models.BookingFilter) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if filter.BarberID != "" && b.BarberID != filter.BarberID {
			continue
		}
		if filter.Date != "" && !strings.HasPrefix(b.Start, filter.Date+"T") {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingStore) ListByUser(userID string, nameFallbacks []string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	if len(out) > 0 {
		return out, nil
	}
	for _, b := range f.bookings {
		for _, name := range nameFallbacks {
			if b.CustomerName == name {
				out = append(out, b)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeBookingStore) ListUpcoming(userID string, afterISO string, states []string, limit int) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.UserID != userID || b.Start < afterISO {
			continue
		}
		for _, s := range states {
			if b.Status == s {
				out = append(out, b)
				break
			}
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeBookingStore) HasActiveAtStart(barberID, startISO, excludeID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.BarberID == barberID && b.Start == startISO && !b.IsCancelled() && b.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookingStore) ActiveIntervals(barberID, date string) ([]models.Interval, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	midnight, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return nil, err
	}
	var intervals []models.Interval
	for _, b := range f.bookings {
		if b.BarberID != barberID || b.IsCancelled() || !strings.HasPrefix(b.Start, date+"T") {
			continue
		}
		sdt, serr := time.Parse(models.DateTimeLayout, b.Start)
		edt, eerr := time.Parse(models.DateTimeLayout, b.End)
		if serr != nil || eerr != nil {
			continue
		}
		intervals = append(intervals, models.Interval{
			Start: int(sdt.Sub(midnight).Minutes()),
			End:   int(edt.Sub(midnight).Minutes()),
		})
	}
	return intervals, nil
}

func (f *fakeBookingStore) CompleteExpired(nowISO string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var changed int64
	for i := range f.bookings {
		b := &f.bookings[i]
		if b.End == "" || b.End > nowISO {
			continue
		}
		terminal := false
		for _, s := range models.TerminalStates {
			if b.Status == s {
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

type fakeBarberDir struct {
	barbers map[string]models.Barber
}

func (f *fakeBarberDir) GetByID(id string) (*models.Barber, error) {
	b, ok := f.barbers[id]
	if !ok {
		return nil, barberRepo.ErrNotFound
	}
	return &b, nil
}

func (f *fakeBarberDir) GetAll() ([]models.Barber, error) {
	var out []models.Barber
	for _, b := range f.barbers {
		out = append(out, b)
	}
	return out, nil
}

type fakeServiceDir struct {
	services map[string]models.Service
}

func (f *fakeServiceDir) GetByID(id string) (*models.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, serviceRepo.ErrNotFound
	}
	return &s, nil
}

type fakeUserDir struct {
	users map[string]models.User
}

func (f *fakeUserDir) GetByID(id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, userRepo.ErrNotFound
	}
	return &u, nil
}

// fakeLocker grants every acquisition unless held is set.
type fakeLocker struct {
	mu       sync.Mutex
	held     map[string]bool
	acquired []string
}

func (f *fakeLocker) Acquire(key string, _ time.Duration) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.held[key] {
		return false, nil
	}
	f.acquired = append(f.acquired, key)
	return true, nil
}

func (f *fakeLocker) Release(string) {}

func newTestService() (*DefaultSchedulingService, *fakeBookingStore) {
	store := &fakeBookingStore{}
	svc := &DefaultSchedulingService{
		Bookings: store,
		Barbers: &fakeBarberDir{barbers: map[string]models.Barber{
			"barber-1": {
				ID:   "barber-1",
				Name: "Marco Díaz",
				WorkingHours: models.WorkingHours{
					Timezone: "Europe/Madrid",
					Weekly: []models.WeeklyRule{
						{Day: 1, Open: "09:00", Close: "18:00"},
						{Day: 2, Open: "09:00", Close: "18:00"},
						{Day: 3, Open: "09:00", Close: "18:00"},
						{Day: 4, Open: "09:00", Close: "18:00"},
						{Day: 5, Open: "09:00", Close: "18:00"},
					},
				},
			},
		}},
		Services: &fakeServiceDir{services: map[string]models.Service{
			"svc-30": {ID: "svc-30", Name: "Haircut", DurationMinutes: 30},
			"svc-45": {ID: "svc-45", Name: "Cut and beard", DurationMinutes: 45},
		}},
		Users: &fakeUserDir{users: map[string]models.User{
			"user-1": {ID: "user-1", Username: "alice", Name: "Alice Pérez"},
			"user-2": {ID: "user-2", Username: "bob", Name: "Bob Ruiz"},
		}},
		Locker:          &fakeLocker{},
		DefaultTimezone: "Europe/Madrid",
	}
	return svc, store
}
