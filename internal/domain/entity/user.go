// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core account entity. The username is the primary key and is
// immutable after registration. The password field always holds a bcrypt
// digest, never the plaintext.
//
// Token and TokenExpiredAt implement the single-session bearer credential:
// both are nil while logged out and both are set while a session is active.
// TokenExpiredAt is milliseconds since the Unix epoch.
type User struct {
	Username       string
	Name           string
	Password       string
	Token          *string
	TokenExpiredAt *int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasValidToken reports whether the user carries a session token that has
// not yet expired at the given instant.
func (u *User) HasValidToken(now time.Time) bool {
	if u.Token == nil || u.TokenExpiredAt == nil {
		return false
	}

	return now.UnixMilli() < *u.TokenExpiredAt
}

// ClearToken removes the session credential, returning the user to the
// logged-out state. Calling it on an already logged-out user is a no-op.
func (u *User) ClearToken() {
	u.Token = nil
	u.TokenExpiredAt = nil
}
