package entity

import "github.com/gofrs/uuid/v5"

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

// User is the acting staff member as returned by the auth service.
type User struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
