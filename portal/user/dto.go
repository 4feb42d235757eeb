package user

import (
	"time"

	"github.com/TechnologicalJerry/job-portal-website/pkg/kernel"
)

// RegisterUserRequest - DTO for creating an account
type RegisterUserRequest struct {
	FirstName            string `json:"firstName" validate:"required"`
	LastName             string `json:"lastName" validate:"required"`
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required,min=6"`
	PasswordConfirmation string `json:"passwordConfirmation" validate:"required"`
}

// LoginRequest - DTO for creating a session
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse - DTO for returning account data
type UserResponse struct {
	ID        kernel.UserID `json:"id"`
	Email     string        `json:"email"`
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	CreatedAt time.Time     `json:"createdAt"`
}

// SessionResponse - DTO for a successful login
type SessionResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
