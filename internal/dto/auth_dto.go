package dto

import (
	"time"

	"smartmess-be/internal/entity"

	"github.com/google/uuid"
)

type SignupRequest struct {
	Name     string  `json:"name" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	Role     string  `json:"role" validate:"required,oneof=student owner admin"`
	Phone    *string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserDTO is the external user representation; the password hash never
// leaves the service layer.
type UserDTO struct {
	Id         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Phone      *string   `json:"phone,omitempty"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}

type AuthResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

func UserFromEntity(u *entity.User) UserDTO {
	return UserDTO{
		Id:         u.Id,
		Name:       u.Name,
		Email:      u.Email,
		Role:       string(u.Role),
		Phone:      u.Phone,
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt,
	}
}

func UsersFromEntities(users []*entity.User) []UserDTO {
	out := make([]UserDTO, len(users))
	for i, u := range users {
		out[i] = UserFromEntity(u)
	}
	return out
}
