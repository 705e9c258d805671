package models

import "time"

// User is the identity record behind an authenticated caller. Credential
// issuance lives outside this service; the core only reads id, username and
// name to attribute and match bookings.
type User struct {
	ID        string    `bson:"id" json:"id"`
	Username  string    `bson:"username" json:"username"`
	Email     string    `bson:"email,omitempty" json:"email,omitempty"`
	Name      string    `bson:"name,omitempty" json:"name,omitempty"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Roles     []string  `bson:"roles,omitempty" json:"roles,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// NameCandidates returns the strings that may appear as customerName on
// legacy bookings created before identity linkage existed.
func (u *User) NameCandidates() []string {
	var names []string
	if u.Name != "" {
		names = append(names, u.Name)
	}
	if u.Username != "" {
		names = append(names, u.Username)
	}
	return names
}
