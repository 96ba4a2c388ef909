package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collegehub/collegehub/internal/app/models"
	"github.com/collegehub/collegehub/internal/pkg/apperrors"
)

func seedDepartment(t *testing.T, svc DepartmentService, code string) *models.Department {
	t.Helper()
	department := &models.Department{
		DepartmentCode: code,
		Name:           "Department " + code,
	}
	require.NoError(t, svc.CreateDepartment(context.Background(), department))
	return department
}

func TestCreateDepartment(t *testing.T) {
	svc := NewDepartmentService(newFakeDepartmentStore())
	ctx := context.Background()

	department := seedDepartment(t, svc, "CS")
	assert.False(t, department.ID.IsZero())
	assert.NotNil(t, department.FacultyIDs)
	assert.NotNil(t, department.CourseIDs)

	err := svc.CreateDepartment(ctx, &models.Department{DepartmentCode: "CS", Name: "Again"})
	assert.ErrorIs(t, err, apperrors.ErrDepartmentAlreadyExists)

	err = svc.CreateDepartment(ctx, &models.Department{DepartmentCode: "", Name: "No code"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestGetDepartmentByCode(t *testing.T) {
	svc := NewDepartmentService(newFakeDepartmentStore())

	created := seedDepartment(t, svc, "CS")

	found, err := svc.GetDepartmentByCode(context.Background(), "CS")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.GetDepartmentByCode(context.Background(), "NOPE")
	assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
}

func TestDepartmentFacultyMembership(t *testing.T) {
	svc := NewDepartmentService(newFakeDepartmentStore())
	ctx := context.Background()

	department := seedDepartment(t, svc, "CS")
	id := department.ID.Hex()

	require.NoError(t, svc.AddFaculty(ctx, id, "fac-1"))
	require.NoError(t, svc.AddFaculty(ctx, id, "fac-2"))
	// Adding the same member twice is a no-op
	require.NoError(t, svc.AddFaculty(ctx, id, "fac-1"))

	stored, err := svc.GetDepartmentByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"fac-1", "fac-2"}, stored.FacultyIDs)

	require.NoError(t, svc.RemoveFaculty(ctx, id, "fac-1"))
	// Removing an absent member is a no-op
	require.NoError(t, svc.RemoveFaculty(ctx, id, "fac-1"))

	stored, err = svc.GetDepartmentByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"fac-2"}, stored.FacultyIDs)
}

func TestDepartmentCourseMembership(t *testing.T) {
	svc := NewDepartmentService(newFakeDepartmentStore())
	ctx := context.Background()

	department := seedDepartment(t, svc, "CS")
	id := department.ID.Hex()

	require.NoError(t, svc.AddCourse(ctx, id, "course-1"))
	require.NoError(t, svc.AddCourse(ctx, id, "course-1"))

	stored, err := svc.GetDepartmentByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"course-1"}, stored.CourseIDs)

	require.NoError(t, svc.RemoveCourse(ctx, id, "course-1"))
	stored, err = svc.GetDepartmentByID(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, stored.CourseIDs)
}

func TestDepartmentMembershipUnknownDepartment(t *testing.T) {
	svc := NewDepartmentService(newFakeDepartmentStore())

	err := svc.AddFaculty(context.Background(), "000000000000000000000000", "fac-1")
	assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
}

func TestDeleteDepartment(t *testing.T) {
	svc := NewDepartmentService(newFakeDepartmentStore())
	ctx := context.Background()

	department := seedDepartment(t, svc, "CS")
	require.NoError(t, svc.DeleteDepartment(ctx, department.ID.Hex()))

	err := svc.DeleteDepartment(ctx, department.ID.Hex())
	assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
}
