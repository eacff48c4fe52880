package dto

import (
	"time"

	"github.com/yukikurage/contest-tracker/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatorDTO is the public part of a contest creator
type CreatorDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// SubmitterDTO is the author of a solution as shown on a contest page
type SubmitterDTO struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginResponse is returned by a successful login
type LoginResponse struct {
	Token      string  `json:"token"`
	User       UserDTO `json:"user"`
	RedirectTo string  `json:"redirect_to"`
}

func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
