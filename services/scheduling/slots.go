package scheduling

import "iter"

// Granularity bounds for candidate slot spacing, in minutes.
const (
	MinSlotMinutes     = 5
	MaxSlotMinutes     = 60
	DefaultSlotMinutes = 30
)

// Slots yields candidate start times at a fixed step, in minutes from
// midnight, beginning at open and strictly below close. The sequence is
// lazy and can be ranged over more than once. A non-positive step yields
// nothing, so the loop terminates for any input.
func Slots(open, close, step int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if step < 1 {
			return
		}
		for s := open; s < close; s += step {
			if !yield(s) {
				return
			}
		}
	}
}

// ValidSlotMinutes reports whether a requested granularity is within bounds.
func ValidSlotMinutes(m int) bool {
	return m >= MinSlotMinutes && m <= MaxSlotMinutes
}
