package model

import "time"

// Identity is the signed-in user
type Identity struct {
	Name  string `json:"name" msgpack:"name"`
	Email string `json:"email" msgpack:"email"`
}

// Session is the live identity with access token issued for it
type Session struct {
	ID        string
	Identity  Identity
	Token     string
	ExpiresAt int64
	CreatedAt time.Time
}

// Expired reports whether session token has already expired at provided time
func (s *Session) Expired(now time.Time) bool {
	return now.Unix() >= s.ExpiresAt
}
