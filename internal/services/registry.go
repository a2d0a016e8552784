package services

import (
	"skillbridge_backend/internal/email"
	"skillbridge_backend/internal/repositories"
)

// ServiceContainer wires every service over the shared repository set.
type ServiceContainer struct {
	AuthService    AuthService
	UserService    UserService
	ProjectService ProjectService
	BidService     BidService
	ReviewService  ReviewService
}

func NewServiceContainer(
	userRepo repositories.UserRepository,
	projectRepo repositories.ProjectRepository,
	bidRepo repositories.BidRepository,
	reviewRepo repositories.ReviewRepository,
	emailSender email.Sender,
) *ServiceContainer {
	return &ServiceContainer{
		AuthService:    NewAuthService(userRepo, emailSender),
		UserService:    NewUserService(userRepo),
		ProjectService: NewProjectService(projectRepo),
		BidService:     NewBidService(bidRepo, projectRepo, userRepo),
		ReviewService:  NewReviewService(reviewRepo, projectRepo, userRepo),
	}
}
