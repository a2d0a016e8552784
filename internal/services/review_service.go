package services

import (
	"skillbridge_backend/internal/models"
	"skillbridge_backend/internal/repositories"
	"skillbridge_backend/internal/services/dto"
	"skillbridge_backend/pkg/apperrors"
)

type ReviewService interface {
	Create(reviewerID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	ListByUser(userID string) ([]*dto.ReviewResponse, error)
	ListByProject(projectID string) ([]*dto.ReviewResponse, error)
}

type ReviewServiceImpl struct {
	reviewRepo  repositories.ReviewRepository
	projectRepo repositories.ProjectRepository
	userRepo    repositories.UserRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepository, projectRepo repositories.ProjectRepository, userRepo repositories.UserRepository) ReviewService {
	return &ReviewServiceImpl{
		reviewRepo:  reviewRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

// Create records a review on a completed project. Each side of the project
// reviews the other exactly once, and the receiver's rating aggregate is
// updated in the same transaction as the insert.
func (s *ReviewServiceImpl) Create(reviewerID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	project, err := s.projectRepo.FindByID(req.ProjectID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if project.Status != models.ProjectStatusCompleted {
		return nil, apperrors.ErrProjectNotCompleted
	}
	if !isParticipant(project, reviewerID) {
		return nil, apperrors.ErrNotParticipant
	}
	if req.ReceiverID == reviewerID {
		return nil, apperrors.ErrSelfReview
	}
	if !isParticipant(project, req.ReceiverID) {
		return nil, apperrors.ErrReceiverNotInvolved
	}

	review := &models.Review{
		ProjectID:  req.ProjectID,
		ReviewerID: reviewerID,
		ReceiverID: req.ReceiverID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if err := s.reviewRepo.CreateWithAggregate(review); err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrDuplicateReview):
			return nil, apperrors.ErrDuplicateReview
		case apperrors.Is(err, repositories.ErrUserNotFound):
			return nil, apperrors.ErrUserNotFound
		default:
			return nil, apperrors.InternalError(err)
		}
	}

	if reviewer, err := s.userRepo.FindByID(reviewerID); err == nil {
		review.Reviewer = reviewer
	}
	review.Project = project
	return dto.NewReviewResponse(review), nil
}

func (s *ReviewServiceImpl) ListByUser(userID string) ([]*dto.ReviewResponse, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	reviews, err := s.reviewRepo.ListByReceiver(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewReviewListResponse(reviews), nil
}

func (s *ReviewServiceImpl) ListByProject(projectID string) ([]*dto.ReviewResponse, error) {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	reviews, err := s.reviewRepo.ListByProject(projectID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewReviewListResponse(reviews), nil
}
