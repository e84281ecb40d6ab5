package domain

import "time"

type Role string

const (
	RoleGuest Role = "guest"
	RoleAdmin Role = "admin"
)

// Session is the credential of a logged-in user. Token is issued by the hotel API
// and is never inspected here.
type Session struct {
	ID        string    `json:"id"`
	GuestID   string    `json:"guestId,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Token     string    `json:"token,omitempty"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}

// Authenticated reports whether the session can call guest endpoints of the hotel API.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}
