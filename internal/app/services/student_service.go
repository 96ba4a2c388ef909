package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/collegehub/collegehub/internal/app/models"
	"github.com/collegehub/collegehub/internal/pkg/apperrors"
)

// studentStore abstracts the persistence operations StudentService needs.
type studentStore interface {
	GetAll(ctx context.Context) ([]models.Student, error)
	GetByID(ctx context.Context, id string) (*models.Student, error)
	Find(ctx context.Context, filter bson.M) ([]models.Student, error)
	FindOne(ctx context.Context, filter bson.M) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, id string, student *models.Student) error
	Remove(ctx context.Context, id string) error
}

// StudentService defines the interface for student-related operations
type StudentService interface {
	CreateStudent(ctx context.Context, student *models.Student) error
	GetStudentByID(ctx context.Context, id string) (*models.Student, error)
	GetStudentByStudentID(ctx context.Context, studentID string) (*models.Student, error)
	GetAllStudents(ctx context.Context) ([]models.Student, error)
	GetStudentsByDepartment(ctx context.Context, departmentID string) ([]models.Student, error)
	UpdateStudent(ctx context.Context, id string, student *models.Student) error
	DeleteStudent(ctx context.Context, id string) error
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo studentStore
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo studentStore) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
	}
}

// validateStudent validates student data before persistence
func (s *studentServiceImpl) validateStudent(student *models.Student) error {
	if student == nil {
		return fmt.Errorf("%w: student is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(student.StudentID) == "" {
		return fmt.Errorf("%w: student ID cannot be empty", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(student.FirstName) == "" || strings.TrimSpace(student.LastName) == "" {
		return fmt.Errorf("%w: first and last name are required", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(student.Email) == "" {
		return fmt.Errorf("%w: email is required", apperrors.ErrValidationFailed)
	}

	switch student.AdmissionStatus {
	case models.AdmissionPending, models.AdmissionAccepted, models.AdmissionRejected:
	default:
		return fmt.Errorf("%w: unknown admission status %q", apperrors.ErrValidationFailed, student.AdmissionStatus)
	}

	return nil
}

// CreateStudent creates a new student record
func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student) error {
	if student != nil && student.AdmissionStatus == "" {
		student.AdmissionStatus = models.AdmissionPending
	}

	if err := s.validateStudent(student); err != nil {
		return err
	}

	if student.EnrollmentDate.IsZero() {
		student.EnrollmentDate = time.Now()
	}
	if student.EnrolledCourseIDs == nil {
		student.EnrolledCourseIDs = []string{}
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		if errors.Is(err, apperrors.ErrResourceAlreadyExists) {
			return apperrors.ErrStudentIDAlreadyExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetStudentByID retrieves a student by document id
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, err
	}
	return student, nil
}

// GetStudentByStudentID retrieves a student by the studentId natural key
func (s *studentServiceImpl) GetStudentByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	student, err := s.studentRepo.FindOne(ctx, bson.M{"studentId": studentID})
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, err
	}
	return student, nil
}

// GetAllStudents retrieves all students
func (s *studentServiceImpl) GetAllStudents(ctx context.Context) ([]models.Student, error) {
	return s.studentRepo.GetAll(ctx)
}

// GetStudentsByDepartment retrieves all students in a department
func (s *studentServiceImpl) GetStudentsByDepartment(ctx context.Context, departmentID string) ([]models.Student, error) {
	return s.studentRepo.Find(ctx, bson.M{"departmentId": departmentID})
}

// UpdateStudent replaces a student record
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id string, student *models.Student) error {
	if student != nil && student.AdmissionStatus == "" {
		student.AdmissionStatus = models.AdmissionPending
	}

	if err := s.validateStudent(student); err != nil {
		return err
	}

	if err := s.studentRepo.Update(ctx, id, student); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error updating student: %w", err)
	}

	return nil
}

// DeleteStudent removes a student record
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id string) error {
	if err := s.studentRepo.Remove(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error deleting student: %w", err)
	}
	return nil
}
