package model

import "time"

// UserProvider tags users created through the Entra sign-in path
const UserProvider = "entra-id"

// User is the local view of a content-backend user record. The backend's
// primary key is the numeric ID, but from this application's perspective a
// user is identified by email (case-insensitive).
type User struct {
	ID              int64     `json:"id,omitempty"`
	Username        string    `json:"username,omitempty"`
	Email           string    `json:"email,omitempty"`
	Provider        string    `json:"provider,omitempty"`
	FirstName       string    `json:"firstName,omitempty"`
	LastName        string    `json:"lastName,omitempty"`
	EntraID         string    `json:"entraId,omitempty"`
	Confirmed       *bool     `json:"confirmed,omitempty"`
	Blocked         *bool     `json:"blocked,omitempty"`
	Role            string    `json:"role,omitempty"`
	IsAdministrator *bool     `json:"isAdministrator,omitempty"`
	CreatedAt       time.Time `json:"createdAt,omitempty"`
	UpdatedAt       time.Time `json:"updatedAt,omitempty"`
}

// Admin reports whether the user has the administrator flag set
func (u *User) Admin() bool {
	return u != nil && u.IsAdministrator != nil && *u.IsAdministrator
}
