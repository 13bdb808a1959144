package auth

import (
	"errors"
	"time"
)

var (
	errEmailTaken         = errors.New("User with this email already exists")
	errInvalidCredentials = errors.New("Invalid email or password")
	errUserNotFound       = errors.New("User not found")
)

// SignupDTO is the signup request body.
type SignupDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginDTO is the login request body.
type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PublicUser is the user shape returned by signup and login.
type PublicUser struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Profile is the user shape returned by the current-user endpoint.
type Profile struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
