package models

// WeeklyRule defines a barber's open window for one ISO day of week
// (Monday=1 .. Sunday=7). Absence of a rule for a day means closed.
type WeeklyRule struct {
	Day   int    `bson:"day" json:"day"`
	Open  string `bson:"open" json:"open"`   // "HH:MM"
	Close string `bson:"close" json:"close"` // "HH:MM"
}

// WorkingHours is a barber's weekly calendar. Timezone is a display label
// only; no conversion is performed anywhere.
type WorkingHours struct {
	Timezone string       `bson:"timezone,omitempty" json:"timezone,omitempty"`
	Weekly   []WeeklyRule `bson:"weekly" json:"weekly"`
}

// Barber is a bookable staff member.
type Barber struct {
	ID              string       `bson:"id" json:"id"`
	Name            string       `bson:"name" json:"name"`
	Specialty       string       `bson:"specialty,omitempty" json:"specialty,omitempty"`
	PhotoURL        string       `bson:"photo_url,omitempty" json:"photoUrl,omitempty"`
	IsActive        bool         `bson:"is_active" json:"isActive"`
	WorkingHours    WorkingHours `bson:"working_hours" json:"workingHours"`
	ServicesOffered []string     `bson:"services_offered,omitempty" json:"servicesOffered,omitempty"`
}
