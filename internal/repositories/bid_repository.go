package repositories

import (
	"errors"

	"skillbridge_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrBidNotFound = errors.New("bid not found")
	// ErrDuplicateBid surfaces the (project, student) unique index.
	ErrDuplicateBid = errors.New("bid already exists for this project and student")
)

type BidRepository interface {
	Create(bid *models.Bid) error
	FindByID(id string) (*models.Bid, error)
	FindByProjectAndStudent(projectID, studentID string) (*models.Bid, error)
	ListByProject(projectID string) ([]models.Bid, error)
	ListByStudent(studentID string) ([]models.Bid, error)
	UpdateStatus(id string, status models.BidStatus) error
	AcceptCascade(bid *models.Bid) error
}

type BidRepositoryImpl struct {
	db *gorm.DB
}

func NewBidRepository(db *gorm.DB) BidRepository {
	return &BidRepositoryImpl{db: db}
}

func (r *BidRepositoryImpl) Create(bid *models.Bid) error {
	err := r.db.Create(bid).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateBid
	}
	return err
}

func (r *BidRepositoryImpl) FindByID(id string) (*models.Bid, error) {
	var bid models.Bid
	err := r.db.Preload("Project").Preload("Student").
		First(&bid, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBidNotFound
		}
		return nil, err
	}
	return &bid, nil
}

func (r *BidRepositoryImpl) FindByProjectAndStudent(projectID, studentID string) (*models.Bid, error) {
	var bid models.Bid
	err := r.db.First(&bid, "project_id = ? AND student_id = ?", projectID, studentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBidNotFound
		}
		return nil, err
	}
	return &bid, nil
}

func (r *BidRepositoryImpl) ListByProject(projectID string) ([]models.Bid, error) {
	var bids []models.Bid
	err := r.db.Preload("Student").
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&bids).Error
	return bids, err
}

func (r *BidRepositoryImpl) ListByStudent(studentID string) ([]models.Bid, error) {
	var bids []models.Bid
	err := r.db.Preload("Project").Preload("Project.Business").
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&bids).Error
	return bids, err
}

func (r *BidRepositoryImpl) UpdateStatus(id string, status models.BidStatus) error {
	result := r.db.Model(&models.Bid{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBidNotFound
	}
	return nil
}

// AcceptCascade applies the whole acceptance in one transaction: the project
// moves from open to in-progress with the student and bid recorded, the target bid
// becomes accepted, and every sibling bid becomes rejected. The project
// update is guarded on status = open, so of two racing accepts exactly one
// wins; the loser gets ErrStatusConflict.
func (r *BidRepositoryImpl) AcceptCascade(bid *models.Bid) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Project{}).
			Where("id = ? AND status = ?", bid.ProjectID, models.ProjectStatusOpen).
			Updates(map[string]interface{}{
				"status":              models.ProjectStatusInProgress,
				"assigned_student_id": bid.StudentID,
				"accepted_bid_id":     bid.ID,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrStatusConflict
		}

		if err := tx.Model(&models.Bid{}).Where("id = ?", bid.ID).
			Update("status", models.BidStatusAccepted).Error; err != nil {
			return err
		}

		return tx.Model(&models.Bid{}).
			Where("project_id = ? AND id <> ?", bid.ProjectID, bid.ID).
			Update("status", models.BidStatusRejected).Error
	})
}
