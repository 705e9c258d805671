package models

// AvailabilityRequest asks for the bookable start times of one barber on one
// date. SlotMinutes is the display granularity; ServiceID, when set, sizes
// the blocked interval instead.
type AvailabilityRequest struct {
	BarberID    string `json:"barberId" binding:"required"`
	Date        string `json:"date" binding:"required"` // "YYYY-MM-DD"
	SlotMinutes int    `json:"slotMinutes"`
	ServiceID   string `json:"serviceId"`
}

// AvailabilityResult lists bookable "HH:MM" start times, ascending, no
// duplicates. A closed day yields an empty list, not an error.
type AvailabilityResult struct {
	BarberID    string   `json:"barberId"`
	Date        string   `json:"date"`
	Timezone    string   `json:"timezone"`
	SlotMinutes int      `json:"slotMinutes"`
	Available   []string `json:"available"`
}
