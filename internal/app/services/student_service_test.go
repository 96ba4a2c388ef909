package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collegehub/collegehub/internal/app/models"
	"github.com/collegehub/collegehub/internal/pkg/apperrors"
)

func validStudent(number string) *models.Student {
	return &models.Student{
		StudentID: number,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     number + "@example.edu",
		Phone:     "555-0100",
	}
}

func TestCreateStudentDefaults(t *testing.T) {
	svc := NewStudentService(newFakeStudentStore())
	ctx := context.Background()

	student := validStudent("S001")
	require.NoError(t, svc.CreateStudent(ctx, student))

	assert.False(t, student.ID.IsZero())
	assert.Equal(t, models.AdmissionPending, student.AdmissionStatus)
	assert.False(t, student.EnrollmentDate.IsZero())
	assert.NotNil(t, student.EnrolledCourseIDs)
}

func TestCreateStudentValidation(t *testing.T) {
	svc := NewStudentService(newFakeStudentStore())
	ctx := context.Background()

	missing := validStudent("S001")
	missing.FirstName = ""
	assert.ErrorIs(t, svc.CreateStudent(ctx, missing), apperrors.ErrValidationFailed)

	badStatus := validStudent("S002")
	badStatus.AdmissionStatus = "Enrolled"
	assert.ErrorIs(t, svc.CreateStudent(ctx, badStatus), apperrors.ErrValidationFailed)
}

func TestCreateStudentDuplicateNumber(t *testing.T) {
	svc := NewStudentService(newFakeStudentStore())
	ctx := context.Background()

	require.NoError(t, svc.CreateStudent(ctx, validStudent("S001")))
	err := svc.CreateStudent(ctx, validStudent("S001"))
	assert.ErrorIs(t, err, apperrors.ErrStudentIDAlreadyExists)
}

func TestGetStudentByStudentID(t *testing.T) {
	svc := NewStudentService(newFakeStudentStore())
	ctx := context.Background()

	created := validStudent("S001")
	require.NoError(t, svc.CreateStudent(ctx, created))

	found, err := svc.GetStudentByStudentID(ctx, "S001")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.GetStudentByStudentID(ctx, "S999")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestUpdateStudentIsWholeReplace(t *testing.T) {
	store := newFakeStudentStore()
	svc := NewStudentService(store)
	ctx := context.Background()

	student := validStudent("S001")
	student.SportsDetails = "chess club"
	require.NoError(t, svc.CreateStudent(ctx, student))

	replacement := validStudent("S001")
	replacement.FirstName = "Grace"
	replacement.AdmissionStatus = models.AdmissionAccepted
	require.NoError(t, svc.UpdateStudent(ctx, student.ID.Hex(), replacement))

	stored, err := svc.GetStudentByID(ctx, student.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Grace", stored.FirstName)
	assert.Equal(t, models.AdmissionAccepted, stored.AdmissionStatus)
	// Fields absent from the replacement document are gone
	assert.Empty(t, stored.SportsDetails)
}

func TestUpdateStudentDefaultsAdmissionStatus(t *testing.T) {
	svc := NewStudentService(newFakeStudentStore())
	ctx := context.Background()

	student := validStudent("S001")
	require.NoError(t, svc.CreateStudent(ctx, student))

	replacement := validStudent("S001")
	require.Empty(t, replacement.AdmissionStatus)
	require.NoError(t, svc.UpdateStudent(ctx, student.ID.Hex(), replacement))

	stored, err := svc.GetStudentByID(ctx, student.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, models.AdmissionPending, stored.AdmissionStatus)
}

func TestUpdateStudentUnknownID(t *testing.T) {
	svc := NewStudentService(newFakeStudentStore())

	err := svc.UpdateStudent(context.Background(), "000000000000000000000000", validStudent("S001"))
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestDeleteStudent(t *testing.T) {
	svc := NewStudentService(newFakeStudentStore())
	ctx := context.Background()

	student := validStudent("S001")
	require.NoError(t, svc.CreateStudent(ctx, student))
	require.NoError(t, svc.DeleteStudent(ctx, student.ID.Hex()))

	err := svc.DeleteStudent(ctx, student.ID.Hex())
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestGetStudentsByDepartment(t *testing.T) {
	svc := NewStudentService(newFakeStudentStore())
	ctx := context.Background()

	inDept := validStudent("S001")
	inDept.DepartmentID = "dept-1"
	other := validStudent("S002")
	other.DepartmentID = "dept-2"
	require.NoError(t, svc.CreateStudent(ctx, inDept))
	require.NoError(t, svc.CreateStudent(ctx, other))

	students, err := svc.GetStudentsByDepartment(ctx, "dept-1")
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "S001", students[0].StudentID)
}
