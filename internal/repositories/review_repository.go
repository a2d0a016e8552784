package repositories

import (
	"errors"
	"math"

	"skillbridge_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrReviewNotFound = errors.New("review not found")
	// ErrDuplicateReview surfaces the (project, reviewer) unique index.
	ErrDuplicateReview = errors.New("review already exists for this project and reviewer")
)

type ReviewRepository interface {
	CreateWithAggregate(review *models.Review) error
	FindByProjectAndReviewer(projectID, reviewerID string) (*models.Review, error)
	ListByReceiver(receiverID string) ([]models.Review, error)
	ListByProject(projectID string) ([]models.Review, error)
}

type ReviewRepositoryImpl struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &ReviewRepositoryImpl{db: db}
}

// CreateWithAggregate inserts the review and recomputes the receiver's
// rating aggregate in the same transaction. The receiver row is locked
// first, which serialises concurrent reviews for the same receiver and keeps
// averageRating/totalReviews consistent with the review rows.
func (r *ReviewRepositoryImpl) CreateWithAggregate(review *models.Review) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var receiver models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&receiver, "id = ?", review.ReceiverID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		if err := tx.Create(review).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateReview
			}
			return err
		}

		var agg struct {
			Avg   float64
			Count int64
		}
		if err := tx.Model(&models.Review{}).
			Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
			Where("receiver_id = ?", review.ReceiverID).
			Scan(&agg).Error; err != nil {
			return err
		}

		return tx.Model(&models.User{}).Where("id = ?", review.ReceiverID).
			Updates(map[string]interface{}{
				"average_rating": math.Round(agg.Avg*10) / 10,
				"total_reviews":  agg.Count,
			}).Error
	})
}

func (r *ReviewRepositoryImpl) FindByProjectAndReviewer(projectID, reviewerID string) (*models.Review, error) {
	var review models.Review
	err := r.db.First(&review, "project_id = ? AND reviewer_id = ?", projectID, reviewerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) ListByReceiver(receiverID string) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Preload("Reviewer").Preload("Project").
		Where("receiver_id = ?", receiverID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepositoryImpl) ListByProject(projectID string) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Preload("Reviewer").Preload("Receiver").
		Where("project_id = ?", projectID).
		Find(&reviews).Error
	return reviews, err
}
