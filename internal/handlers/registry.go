package handlers

import (
	"skillbridge_backend/internal/services"
	"skillbridge_backend/internal/validator"
)

// AppHandlers holds every HTTP handler in the application.
type AppHandlers struct {
	AuthHandler    *AuthHandler
	ProjectHandler *ProjectHandler
	BidHandler     *BidHandler
	ReviewHandler  *ReviewHandler
}

func NewAppHandlers(svc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)
	return &AppHandlers{
		AuthHandler:    NewAuthHandler(base, svc.AuthService, svc.UserService),
		ProjectHandler: NewProjectHandler(base, svc.ProjectService),
		BidHandler:     NewBidHandler(base, svc.BidService),
		ReviewHandler:  NewReviewHandler(base, svc.ReviewService),
	}
}
