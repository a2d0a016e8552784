package repositories

import (
	"errors"

	"skillbridge_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	// ErrStatusConflict means a guarded status update lost to a concurrent
	// writer: the row exists but is no longer in the expected status.
	ErrStatusConflict = errors.New("project is not in the expected status")
)

// ProjectFilter narrows the public listing. Skill and Search are
// case-insensitive substring matches.
type ProjectFilter struct {
	Status models.ProjectStatus
	Skill  string
	Search string
}

type ProjectRepository interface {
	Create(project *models.Project) error
	FindByID(id string) (*models.Project, error)
	Update(project *models.Project) error
	Delete(id string) error
	List(filter ProjectFilter) ([]models.Project, error)
	ListByBusiness(businessID string) ([]models.Project, error)
	ListByAssignedStudent(studentID string) ([]models.Project, error)
	UpdateStatusGuarded(id string, from, to models.ProjectStatus) error
}

type ProjectRepositoryImpl struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &ProjectRepositoryImpl{db: db}
}

func (r *ProjectRepositoryImpl) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

func (r *ProjectRepositoryImpl) FindByID(id string) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Business").Preload("AssignedStudent").
		First(&project, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepositoryImpl) Update(project *models.Project) error {
	result := r.db.Model(&models.Project{}).Where("id = ?", project.ID).Updates(map[string]interface{}{
		"title":           project.Title,
		"description":     project.Description,
		"required_skills": project.RequiredSkills,
		"budget_min":      project.BudgetMin,
		"budget_max":      project.BudgetMax,
		"deadline":        project.Deadline,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Project{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepositoryImpl) List(filter ProjectFilter) ([]models.Project, error) {
	query := r.db.Preload("Business").Preload("AssignedStudent").
		Order("created_at DESC")

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Skill != "" {
		query = query.Where("required_skills ILIKE ?", "%"+filter.Skill+"%")
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var projects []models.Project
	err := query.Find(&projects).Error
	return projects, err
}

func (r *ProjectRepositoryImpl) ListByBusiness(businessID string) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Preload("AssignedStudent").
		Where("business_id = ?", businessID).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

func (r *ProjectRepositoryImpl) ListByAssignedStudent(studentID string) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Preload("Business").
		Where("assigned_student_id = ?", studentID).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

// UpdateStatusGuarded performs a compare-and-swap on the status column so a
// concurrent transition on the same project cannot be applied twice.
func (r *ProjectRepositoryImpl) UpdateStatusGuarded(id string, from, to models.ProjectStatus) error {
	result := r.db.Model(&models.Project{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&models.Project{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrProjectNotFound
		}
		return ErrStatusConflict
	}
	return nil
}
