package services

import (
	"skillbridge_backend/internal/models"
	"skillbridge_backend/internal/repositories"
	"skillbridge_backend/internal/services/dto"
	"skillbridge_backend/pkg/apperrors"
)

type ProjectService interface {
	Create(businessID string, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	Get(projectID string) (*dto.ProjectResponse, error)
	List(query *dto.ProjectListQuery) ([]*dto.ProjectResponse, error)
	ListMine(businessID string) ([]*dto.ProjectResponse, error)
	ListAssigned(studentID string) ([]*dto.ProjectResponse, error)
	Update(projectID, requesterID string, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	Delete(projectID, requesterID string) error
	Complete(projectID, requesterID string) (*dto.ProjectResponse, error)
}

type ProjectServiceImpl struct {
	projectRepo repositories.ProjectRepository
}

func NewProjectService(projectRepo repositories.ProjectRepository) ProjectService {
	return &ProjectServiceImpl{projectRepo: projectRepo}
}

func (s *ProjectServiceImpl) Create(businessID string, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if req.BudgetMin > req.BudgetMax {
		return nil, apperrors.ErrBudgetRange
	}

	project := &models.Project{
		BusinessID:     businessID,
		Title:          req.Title,
		Description:    req.Description,
		RequiredSkills: models.StringList(req.RequiredSkills),
		BudgetMin:      req.BudgetMin,
		BudgetMax:      req.BudgetMax,
		Deadline:       req.Deadline,
		Status:         models.ProjectStatusOpen,
	}
	if err := s.projectRepo.Create(project); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewProjectResponse(project), nil
}

func (s *ProjectServiceImpl) Get(projectID string) (*dto.ProjectResponse, error) {
	project, err := s.findProject(projectID)
	if err != nil {
		return nil, err
	}
	return dto.NewProjectResponse(project), nil
}

// List returns the public project feed. An absent status filter defaults to
// open, so browsing students only see projects they can still bid on.
func (s *ProjectServiceImpl) List(query *dto.ProjectListQuery) ([]*dto.ProjectResponse, error) {
	filter := repositories.ProjectFilter{
		Status: models.ProjectStatusOpen,
		Skill:  query.Skill,
		Search: query.Search,
	}
	if query.Status != "" {
		filter.Status = models.ProjectStatus(query.Status)
	}

	projects, err := s.projectRepo.List(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewProjectListResponse(projects), nil
}

func (s *ProjectServiceImpl) ListMine(businessID string) ([]*dto.ProjectResponse, error) {
	projects, err := s.projectRepo.ListByBusiness(businessID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewProjectListResponse(projects), nil
}

func (s *ProjectServiceImpl) ListAssigned(studentID string) ([]*dto.ProjectResponse, error) {
	projects, err := s.projectRepo.ListByAssignedStudent(studentID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewProjectListResponse(projects), nil
}

// Update edits an open project owned by the caller. Once a bid has been
// accepted the terms are locked.
func (s *ProjectServiceImpl) Update(projectID, requesterID string, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := s.findProject(projectID)
	if err != nil {
		return nil, err
	}
	if project.BusinessID != requesterID {
		return nil, apperrors.ErrProjectNotOwned
	}
	if project.Status != models.ProjectStatusOpen {
		return nil, apperrors.ErrProjectNotOpen
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.RequiredSkills != nil {
		project.RequiredSkills = models.StringList(req.RequiredSkills)
	}
	if req.BudgetMin != nil {
		project.BudgetMin = *req.BudgetMin
	}
	if req.BudgetMax != nil {
		project.BudgetMax = *req.BudgetMax
	}
	if req.Deadline != nil {
		project.Deadline = *req.Deadline
	}
	if project.BudgetMin > project.BudgetMax {
		return nil, apperrors.ErrBudgetRange
	}

	if err := s.projectRepo.Update(project); err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewProjectResponse(project), nil
}

// Delete removes an open project owned by the caller. Projects with work in
// flight or finished stay on record.
func (s *ProjectServiceImpl) Delete(projectID, requesterID string) error {
	project, err := s.findProject(projectID)
	if err != nil {
		return err
	}
	if project.BusinessID != requesterID {
		return apperrors.ErrProjectNotOwned
	}
	if project.Status != models.ProjectStatusOpen {
		return apperrors.ErrDeleteNotOpen
	}

	if err := s.projectRepo.Delete(projectID); err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// Complete marks an in-progress project as completed. Either participant may
// do it, which unlocks reviews for both sides.
func (s *ProjectServiceImpl) Complete(projectID, requesterID string) (*dto.ProjectResponse, error) {
	project, err := s.findProject(projectID)
	if err != nil {
		return nil, err
	}
	if !isParticipant(project, requesterID) {
		return nil, apperrors.ErrNotParticipant
	}

	err = s.projectRepo.UpdateStatusGuarded(projectID, models.ProjectStatusInProgress, models.ProjectStatusCompleted)
	if err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrProjectNotFound):
			return nil, apperrors.ErrProjectNotFound
		case apperrors.Is(err, repositories.ErrStatusConflict):
			return nil, apperrors.ErrProjectNotStarted
		default:
			return nil, apperrors.InternalError(err)
		}
	}

	project.Status = models.ProjectStatusCompleted
	return dto.NewProjectResponse(project), nil
}

func (s *ProjectServiceImpl) findProject(projectID string) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return project, nil
}

func isParticipant(project *models.Project, userID string) bool {
	if project.BusinessID == userID {
		return true
	}
	return project.AssignedStudentID != nil && *project.AssignedStudentID == userID
}
