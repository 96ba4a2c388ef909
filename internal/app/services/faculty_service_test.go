package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collegehub/collegehub/internal/app/models"
	"github.com/collegehub/collegehub/internal/pkg/apperrors"
)

func validFacultyMember(number string) *models.Faculty {
	return &models.Faculty{
		FacultyID: number,
		FirstName: "Alan",
		LastName:  "Turing",
		Email:     number + "@collegehub.local",
		Position:  "Professor",
	}
}

func TestCreateFaculty(t *testing.T) {
	svc := NewFacultyService(newFakeFacultyStore())
	ctx := context.Background()

	member := validFacultyMember("F001")
	require.NoError(t, svc.CreateFaculty(ctx, member))

	assert.False(t, member.ID.IsZero())
	assert.False(t, member.JoinDate.IsZero())
	assert.NotNil(t, member.CourseIDs)

	err := svc.CreateFaculty(ctx, validFacultyMember("F001"))
	assert.ErrorIs(t, err, apperrors.ErrFacultyAlreadyExists)

	incomplete := validFacultyMember("F002")
	incomplete.Email = ""
	assert.ErrorIs(t, svc.CreateFaculty(ctx, incomplete), apperrors.ErrValidationFailed)
}

func TestGetFacultyByFacultyID(t *testing.T) {
	svc := NewFacultyService(newFakeFacultyStore())
	ctx := context.Background()

	created := validFacultyMember("F001")
	require.NoError(t, svc.CreateFaculty(ctx, created))

	found, err := svc.GetFacultyByFacultyID(ctx, "F001")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.GetFacultyByFacultyID(ctx, "F999")
	assert.ErrorIs(t, err, apperrors.ErrFacultyNotFound)
}

func TestCourseAssignments(t *testing.T) {
	svc := NewFacultyService(newFakeFacultyStore())
	ctx := context.Background()

	member := validFacultyMember("F001")
	require.NoError(t, svc.CreateFaculty(ctx, member))
	id := member.ID.Hex()

	require.NoError(t, svc.AssignCourse(ctx, id, "course-1"))
	require.NoError(t, svc.AssignCourse(ctx, id, "course-2"))
	// Assigning the same course twice is a no-op
	require.NoError(t, svc.AssignCourse(ctx, id, "course-1"))

	stored, err := svc.GetFacultyByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"course-1", "course-2"}, stored.CourseIDs)

	require.NoError(t, svc.RemoveCourseAssignment(ctx, id, "course-1"))
	// Removing an absent assignment is a no-op
	require.NoError(t, svc.RemoveCourseAssignment(ctx, id, "course-1"))

	stored, err = svc.GetFacultyByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"course-2"}, stored.CourseIDs)
}

func TestAssignCourseUnknownFaculty(t *testing.T) {
	svc := NewFacultyService(newFakeFacultyStore())

	err := svc.AssignCourse(context.Background(), "000000000000000000000000", "course-1")
	assert.ErrorIs(t, err, apperrors.ErrFacultyNotFound)
}

func TestGetFacultyByDepartment(t *testing.T) {
	svc := NewFacultyService(newFakeFacultyStore())
	ctx := context.Background()

	inDept := validFacultyMember("F001")
	inDept.DepartmentID = "dept-1"
	other := validFacultyMember("F002")
	other.DepartmentID = "dept-2"
	require.NoError(t, svc.CreateFaculty(ctx, inDept))
	require.NoError(t, svc.CreateFaculty(ctx, other))

	members, err := svc.GetFacultyByDepartment(ctx, "dept-1")
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "F001", members[0].FacultyID)
}
