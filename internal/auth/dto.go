package auth

import (
	"github.com/openmarket-kr/openmarket-backend/internal/users"
)

// SignUpRequest captures the registration payload.
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
	Name     string `json:"name" validate:"required,min=2"`
	Phone    string `json:"phone" validate:"required,kr_mobile"`
}

// LoginRequest captures the user credentials sent to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResult contains the session identifier and user produced by a
// successful login. The session ID travels back to the client as a cookie.
type LoginResult struct {
	SessionID string
	User      *users.UserDTO
}
