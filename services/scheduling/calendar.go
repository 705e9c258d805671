package scheduling

import (
	"fmt"
	"time"

	"barberbook/models"
)

// ParseClock converts an "HH:MM" string to minutes from midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(models.ClockLayout, s)
	if err != nil {
		return 0, newError(KindValidation, "invalid time format %q, expected HH:MM", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes from midnight as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ISOWeekday returns Monday=1 .. Sunday=7 for a date.
func ISOWeekday(d time.Time) int {
	wd := int(d.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// ResolveDay looks up the working-hours rule covering the given date. A nil
// rule means the barber is closed that day; that is not an error.
func ResolveDay(wh models.WorkingHours, date time.Time) *models.WeeklyRule {
	day := ISOWeekday(date)
	for i := range wh.Weekly {
		if wh.Weekly[i].Day == day {
			return &wh.Weekly[i]
		}
	}
	return nil
}

// ResolveWindow resolves the rule for a date into an open/close window in
// minutes from midnight. closed is true when no rule covers the day.
func ResolveWindow(wh models.WorkingHours, date time.Time) (open, close int, closed bool, err error) {
	rule := ResolveDay(wh, date)
	if rule == nil {
		return 0, 0, true, nil
	}
	open, err = ParseClock(rule.Open)
	if err != nil {
		return 0, 0, false, err
	}
	close, err = ParseClock(rule.Close)
	if err != nil {
		return 0, 0, false, err
	}
	return open, close, false, nil
}
