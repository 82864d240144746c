package domain

import "time"

const (
	RoleAdmin  = "admin"
	RoleLawyer = "lawyer"
	RoleClient = "client"
)

// ValidRole reports whether r is one of the recognised account roles.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleLawyer || r == RoleClient
}

// User models an authenticated actor in the system.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
