package entity

import "time"

// Contact is an address-book entry owned by exactly one user. Ownership is
// exclusive: every lookup and mutation is keyed by (username, id), so a
// contact owned by someone else is indistinguishable from a missing one.
type Contact struct {
	ID        string
	Username  string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
