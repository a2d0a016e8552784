package dto

import "skillbridge_backend/internal/models"

type RegisterRequest struct {
	Name     string          `json:"name" validate:"required"`
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=6"`
	Role     models.UserRole `json:"role" validate:"required,is-user-role"`

	// Student fields
	University string   `json:"university,omitempty"`
	Skills     []string `json:"skills,omitempty"`

	// Business fields
	BusinessName string `json:"businessName,omitempty"`
	Industry     string `json:"industry,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned from register and login; the token authenticates
// every subsequent request.
type AuthResponse struct {
	Token   string        `json:"token"`
	User    *UserResponse `json:"user"`
	Message string        `json:"message,omitempty"`
}
