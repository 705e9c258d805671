package models

// Service is a catalog entry; the scheduling core only reads DurationMinutes
// to size the blocked interval of a booking.
type Service struct {
	ID              string  `bson:"id" json:"id"`
	CategoryID      string  `bson:"category_id,omitempty" json:"categoryId,omitempty"`
	Name            string  `bson:"name" json:"name"`
	Description     string  `bson:"description,omitempty" json:"description,omitempty"`
	Price           float64 `bson:"price" json:"price"`
	DurationMinutes int     `bson:"duration_minutes" json:"durationMinutes"`
	IsActive        bool    `bson:"is_active" json:"isActive"`
}
