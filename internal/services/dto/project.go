package dto

import (
	"time"

	"skillbridge_backend/internal/models"
)

type CreateProjectRequest struct {
	Title          string    `json:"title" validate:"required"`
	Description    string    `json:"description" validate:"required"`
	RequiredSkills []string  `json:"requiredSkills"`
	BudgetMin      float64   `json:"budgetMin" validate:"required,gt=0"`
	BudgetMax      float64   `json:"budgetMax" validate:"required,gtefield=BudgetMin"`
	Deadline       time.Time `json:"deadline" validate:"required"`
}

// UpdateProjectRequest carries optional fields; nil means keep the current
// value, matching the partial-edit semantics of the API.
type UpdateProjectRequest struct {
	Title          *string    `json:"title,omitempty"`
	Description    *string    `json:"description,omitempty"`
	RequiredSkills []string   `json:"requiredSkills,omitempty"`
	BudgetMin      *float64   `json:"budgetMin,omitempty" validate:"omitempty,gt=0"`
	BudgetMax      *float64   `json:"budgetMax,omitempty" validate:"omitempty,gt=0"`
	Deadline       *time.Time `json:"deadline,omitempty"`
}

// ProjectListQuery holds the public list filters. Status defaults to open
// when absent.
type ProjectListQuery struct {
	Status string `form:"status" validate:"omitempty,is-project-status"`
	Skill  string `form:"skill"`
	Search string `form:"search"`
}

type ProjectResponse struct {
	ID                string               `json:"id"`
	Title             string               `json:"title"`
	Description       string               `json:"description"`
	RequiredSkills    []string             `json:"requiredSkills"`
	BudgetMin         float64              `json:"budgetMin"`
	BudgetMax         float64              `json:"budgetMax"`
	Deadline          time.Time            `json:"deadline"`
	Status            models.ProjectStatus `json:"status"`
	BusinessID        string               `json:"businessId"`
	AssignedStudentID *string              `json:"assignedStudentId"`
	AcceptedBidID     *string              `json:"acceptedBidId"`
	Business          *UserSummary         `json:"business,omitempty"`
	AssignedStudent   *UserSummary         `json:"assignedStudent,omitempty"`
	CreatedAt         time.Time            `json:"createdAt"`
	UpdatedAt         time.Time            `json:"updatedAt"`
}

func NewProjectResponse(project *models.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:                project.ID,
		Title:             project.Title,
		Description:       project.Description,
		RequiredSkills:    project.RequiredSkills,
		BudgetMin:         project.BudgetMin,
		BudgetMax:         project.BudgetMax,
		Deadline:          project.Deadline,
		Status:            project.Status,
		BusinessID:        project.BusinessID,
		AssignedStudentID: project.AssignedStudentID,
		AcceptedBidID:     project.AcceptedBidID,
		Business:          NewUserSummary(project.Business),
		AssignedStudent:   NewUserSummary(project.AssignedStudent),
		CreatedAt:         project.CreatedAt,
		UpdatedAt:         project.UpdatedAt,
	}
}

func NewProjectListResponse(projects []models.Project) []*ProjectResponse {
	out := make([]*ProjectResponse, 0, len(projects))
	for i := range projects {
		out = append(out, NewProjectResponse(&projects[i]))
	}
	return out
}
