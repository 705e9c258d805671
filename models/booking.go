package models

import "time"

// Booking timestamps are naive local strings at minute precision. Keep the
// layouts here so repositories, services and cron share them.
const (
	DateLayout     = "2006-01-02"
	ClockLayout    = "15:04"
	DateTimeLayout = "2006-01-02T15:04"
)

// Booking lifecycle states.
const (
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// CancelledStates are the spellings that count as cancelled on legacy rows.
var CancelledStates = []string{"cancelled", "canceled"}

// TerminalStates are excluded from reconciliation sweeps.
var TerminalStates = []string{"cancelled", "canceled", "completed"}

// Booking represents an appointment with a barber for a timed service.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	BarberID      string    `bson:"barber_id" json:"barberId"`
	ServiceID     string    `bson:"service_id" json:"serviceId"`
	UserID        string    `bson:"user_id,omitempty" json:"userId,omitempty"` // empty on rows created before identity linkage
	CustomerName  string    `bson:"customer_name" json:"customerName"`
	CustomerPhone string    `bson:"customer_phone,omitempty" json:"customerPhone,omitempty"`
	Start         string    `bson:"start" json:"start"` // "YYYY-MM-DDTHH:MM"
	End           string    `bson:"end" json:"end"`     // "YYYY-MM-DDTHH:MM"
	Status        string    `bson:"status" json:"status"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
}

// IsCancelled reports whether the stored status is a cancelled spelling.
func (b *Booking) IsCancelled() bool {
	for _, s := range CancelledStates {
		if b.Status == s {
			return true
		}
	}
	return false
}

// BookingResponse is a Booking enriched with display names resolved from the
// catalog; Status carries the display-time derivation for ended bookings.
type BookingResponse struct {
	Booking
	BarberName  string `json:"barberName,omitempty"`
	ServiceName string `json:"serviceName,omitempty"`
}

// CreateBookingInput is the admission request payload.
type CreateBookingInput struct {
	BarberID      string `json:"barberId" binding:"required"`
	ServiceID     string `json:"serviceId" binding:"required"`
	Date          string `json:"date" binding:"required"` // "YYYY-MM-DD"
	Time          string `json:"time" binding:"required"` // "HH:MM"
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
}

// UpdateBookingInput carries a partial update; empty fields are left unchanged.
type UpdateBookingInput struct {
	BarberID      string `json:"barberId"`
	ServiceID     string `json:"serviceId"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	Start         string `json:"start"`
	End           string `json:"end"`
	Status        string `json:"status"`
}

// BookingFilter narrows booking listings.
type BookingFilter struct {
	BarberID string
	Date     string // "YYYY-MM-DD"
}

// Interval is a half-open [Start, End) block in minutes from midnight of the
// date it was queried for.
type Interval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Overlaps applies the half-open interval test.
func (iv Interval) Overlaps(start, end int) bool {
	return !(end <= iv.Start || start >= iv.End)
}
