package services

import (
	"testing"
	"time"

	"skillbridge_backend/internal/models"
	"skillbridge_backend/internal/services/dto"
	"skillbridge_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProjectFixture(t *testing.T) (ProjectService, *fakeProjectRepo) {
	t.Helper()
	repo := newFakeProjectRepo()
	return NewProjectService(repo), repo
}

func createProjectRequest() *dto.CreateProjectRequest {
	return &dto.CreateProjectRequest{
		Title:          "Landing page",
		Description:    "Build a marketing landing page",
		RequiredSkills: []string{"React", "CSS"},
		BudgetMin:      500,
		BudgetMax:      1500,
		Deadline:       time.Now().Add(30 * 24 * time.Hour),
	}
}

func TestCreateProject(t *testing.T) {
	svc, _ := newProjectFixture(t)

	resp, err := svc.Create("biz-1", createProjectRequest())
	require.NoError(t, err)
	assert.Equal(t, models.ProjectStatusOpen, resp.Status)
	assert.Equal(t, "biz-1", resp.BusinessID)
	assert.NotEmpty(t, resp.ID)
	assert.Nil(t, resp.AssignedStudentID)
}

func TestCreateProjectRejectsInvertedBudget(t *testing.T) {
	svc, _ := newProjectFixture(t)

	req := createProjectRequest()
	req.BudgetMin = 2000
	_, err := svc.Create("biz-1", req)
	assert.ErrorIs(t, err, apperrors.ErrBudgetRange)
}

func TestListDefaultsToOpen(t *testing.T) {
	svc, repo := newProjectFixture(t)

	open, err := svc.Create("biz-1", createProjectRequest())
	require.NoError(t, err)
	done, err := svc.Create("biz-1", createProjectRequest())
	require.NoError(t, err)
	repo.projects[done.ID].Status = models.ProjectStatusCompleted

	listed, err := svc.List(&dto.ProjectListQuery{})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, open.ID, listed[0].ID)

	completed, err := svc.List(&dto.ProjectListQuery{Status: "completed"})
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, done.ID, completed[0].ID)
}

func TestListFiltersBySkillAndSearch(t *testing.T) {
	svc, _ := newProjectFixture(t)

	_, err := svc.Create("biz-1", createProjectRequest())
	require.NoError(t, err)

	backend := createProjectRequest()
	backend.Title = "Billing API"
	backend.Description = "Implement invoicing endpoints"
	backend.RequiredSkills = []string{"Go", "PostgreSQL"}
	_, err = svc.Create("biz-1", backend)
	require.NoError(t, err)

	bySkill, err := svc.List(&dto.ProjectListQuery{Skill: "postgre"})
	require.NoError(t, err)
	require.Len(t, bySkill, 1)
	assert.Equal(t, "Billing API", bySkill[0].Title)

	bySearch, err := svc.List(&dto.ProjectListQuery{Search: "landing"})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	assert.Equal(t, "Landing page", bySearch[0].Title)

	both, err := svc.List(&dto.ProjectListQuery{Skill: "go", Search: "invoicing"})
	require.NoError(t, err)
	require.Len(t, both, 1)
}

func TestUpdateProjectGuards(t *testing.T) {
	svc, repo := newProjectFixture(t)

	created, err := svc.Create("biz-1", createProjectRequest())
	require.NoError(t, err)

	newTitle := "Landing page v2"
	_, err = svc.Update(created.ID, "someone-else", &dto.UpdateProjectRequest{Title: &newTitle})
	assert.ErrorIs(t, err, apperrors.ErrProjectNotOwned)

	updated, err := svc.Update(created.ID, "biz-1", &dto.UpdateProjectRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Landing page v2", updated.Title)

	badMin := 5000.0
	_, err = svc.Update(created.ID, "biz-1", &dto.UpdateProjectRequest{BudgetMin: &badMin})
	assert.ErrorIs(t, err, apperrors.ErrBudgetRange)

	repo.projects[created.ID].Status = models.ProjectStatusInProgress
	_, err = svc.Update(created.ID, "biz-1", &dto.UpdateProjectRequest{Title: &newTitle})
	assert.ErrorIs(t, err, apperrors.ErrProjectNotOpen)
}

func TestDeleteProjectGuards(t *testing.T) {
	svc, repo := newProjectFixture(t)

	created, err := svc.Create("biz-1", createProjectRequest())
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(created.ID, "someone-else"), apperrors.ErrProjectNotOwned)

	repo.projects[created.ID].Status = models.ProjectStatusInProgress
	assert.ErrorIs(t, svc.Delete(created.ID, "biz-1"), apperrors.ErrDeleteNotOpen)

	repo.projects[created.ID].Status = models.ProjectStatusOpen
	require.NoError(t, svc.Delete(created.ID, "biz-1"))

	_, err = svc.Get(created.ID)
	assert.ErrorIs(t, err, apperrors.ErrProjectNotFound)
}

func TestCompleteProject(t *testing.T) {
	svc, repo := newProjectFixture(t)

	created, err := svc.Create("biz-1", createProjectRequest())
	require.NoError(t, err)

	// Open projects cannot be completed; work never started.
	_, err = svc.Complete(created.ID, "biz-1")
	assert.ErrorIs(t, err, apperrors.ErrProjectNotStarted)

	studentID := "student-1"
	stored := repo.projects[created.ID]
	stored.Status = models.ProjectStatusInProgress
	stored.AssignedStudentID = &studentID

	_, err = svc.Complete(created.ID, "outsider")
	assert.ErrorIs(t, err, apperrors.ErrNotParticipant)

	resp, err := svc.Complete(created.ID, studentID)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectStatusCompleted, resp.Status)

	// Already completed; the guarded transition fails.
	_, err = svc.Complete(created.ID, "biz-1")
	assert.ErrorIs(t, err, apperrors.ErrProjectNotStarted)
}

func TestListMineAndAssigned(t *testing.T) {
	svc, repo := newProjectFixture(t)

	mine, err := svc.Create("biz-1", createProjectRequest())
	require.NoError(t, err)
	_, err = svc.Create("biz-2", createProjectRequest())
	require.NoError(t, err)

	byBusiness, err := svc.ListMine("biz-1")
	require.NoError(t, err)
	require.Len(t, byBusiness, 1)
	assert.Equal(t, mine.ID, byBusiness[0].ID)

	studentID := "student-1"
	repo.projects[mine.ID].AssignedStudentID = &studentID

	assigned, err := svc.ListAssigned(studentID)
	require.NoError(t, err)
	require.Len(t, assigned, 1)
	assert.Equal(t, mine.ID, assigned[0].ID)
}
