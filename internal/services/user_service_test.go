package services

import (
	"testing"

	"skillbridge_backend/internal/models"
	"skillbridge_backend/internal/services/dto"
	"skillbridge_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserFixture(t *testing.T) (UserService, *fakeUserRepo) {
	t.Helper()
	repo := newFakeUserRepo()

	student := &models.User{
		Name:       "Alice",
		Email:      "alice@example.com",
		Role:       models.UserRoleStudent,
		University: "Nazarbayev University",
	}
	student.ID = "student-1"
	require.NoError(t, repo.Create(student))

	business := &models.User{
		Name:         "Acme",
		Email:        "acme@example.com",
		Role:         models.UserRoleBusiness,
		BusinessName: "Acme Corp",
	}
	business.ID = "biz-1"
	require.NoError(t, repo.Create(business))

	return NewUserService(repo), repo
}

func TestGetMe(t *testing.T) {
	svc, _ := newUserFixture(t)

	resp, err := svc.GetMe("student-1")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", resp.Email)

	_, err = svc.GetMe("missing")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUpdateProfileStudent(t *testing.T) {
	svc, repo := newUserFixture(t)

	resp, err := svc.UpdateProfile("student-1", &dto.UpdateProfileRequest{
		Bio:    "Final-year CS student",
		Skills: []string{"Go", "React"},
		// Business fields are ignored for a student account.
		BusinessName: "should not stick",
	})
	require.NoError(t, err)
	assert.Equal(t, "Final-year CS student", resp.Bio)
	assert.Equal(t, []string{"Go", "React"}, resp.Skills)

	stored, err := repo.FindByID("student-1")
	require.NoError(t, err)
	assert.Empty(t, stored.BusinessName)
	assert.Equal(t, "Nazarbayev University", stored.University)
}

func TestUpdateProfileBusiness(t *testing.T) {
	svc, repo := newUserFixture(t)

	resp, err := svc.UpdateProfile("biz-1", &dto.UpdateProfileRequest{
		Industry: "Logistics",
		Website:  "https://acme.example.com",
		// Student fields are ignored for a business account.
		University: "should not stick",
	})
	require.NoError(t, err)
	assert.Equal(t, "Logistics", resp.Industry)

	stored, err := repo.FindByID("biz-1")
	require.NoError(t, err)
	assert.Empty(t, stored.University)
	assert.Equal(t, "https://acme.example.com", stored.Website)
}

func TestGetPublicProfile(t *testing.T) {
	svc, _ := newUserFixture(t)

	resp, err := svc.GetPublicProfile("biz-1")
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", resp.BusinessName)

	_, err = svc.GetPublicProfile("missing")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
