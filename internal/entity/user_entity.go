package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleStudent UserRole = "student"
	UserRoleOwner   UserRole = "owner"
	UserRoleAdmin   UserRole = "admin"
)

// Valid reports whether the role is one of the closed set. Roles arrive as
// free-form strings at the signup edge and must be rejected there.
func (r UserRole) Valid() bool {
	switch r {
	case UserRoleStudent, UserRoleOwner, UserRoleAdmin:
		return true
	}
	return false
}

type User struct {
	Id           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         UserRole
	Phone        *string
	// Students are verified at signup; owners and admins start unverified
	// and no flow flips them (matches the legacy surface).
	IsVerified bool
	CreatedAt  time.Time
}
