package dto

import (
	"time"

	"skillbridge_backend/internal/models"
)

// UserResponse is the caller's own view of an account. Credential fields are
// never included.
type UserResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Role          models.UserRole `json:"role"`
	IsVerified    bool            `json:"isVerified"`
	University    string          `json:"university,omitempty"`
	Skills        []string        `json:"skills,omitempty"`
	Bio           string          `json:"bio,omitempty"`
	BusinessName  string          `json:"businessName,omitempty"`
	Industry      string          `json:"industry,omitempty"`
	Website       string          `json:"website,omitempty"`
	AverageRating float64         `json:"averageRating"`
	TotalReviews  int64           `json:"totalReviews"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// UserSummary is the lightweight projection embedded in project, bid, and
// review responses.
type UserSummary struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Role          models.UserRole `json:"role,omitempty"`
	University    string          `json:"university,omitempty"`
	Skills        []string        `json:"skills,omitempty"`
	BusinessName  string          `json:"businessName,omitempty"`
	AverageRating float64         `json:"averageRating"`
	TotalReviews  int64           `json:"totalReviews"`
}

type UpdateProfileRequest struct {
	Name string `json:"name,omitempty"`
	Bio  string `json:"bio,omitempty"`

	// Student fields
	University string   `json:"university,omitempty"`
	Skills     []string `json:"skills,omitempty"`

	// Business fields
	BusinessName string `json:"businessName,omitempty"`
	Industry     string `json:"industry,omitempty"`
	Website      string `json:"website,omitempty" validate:"omitempty,url"`
}

func NewUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		Role:          user.Role,
		IsVerified:    user.IsVerified,
		University:    user.University,
		Skills:        user.Skills,
		Bio:           user.Bio,
		BusinessName:  user.BusinessName,
		Industry:      user.Industry,
		Website:       user.Website,
		AverageRating: user.AverageRating,
		TotalReviews:  user.TotalReviews,
		CreatedAt:     user.CreatedAt,
	}
}

func NewUserSummary(user *models.User) *UserSummary {
	if user == nil {
		return nil
	}
	return &UserSummary{
		ID:            user.ID,
		Name:          user.Name,
		Role:          user.Role,
		University:    user.University,
		Skills:        user.Skills,
		BusinessName:  user.BusinessName,
		AverageRating: user.AverageRating,
		TotalReviews:  user.TotalReviews,
	}
}
