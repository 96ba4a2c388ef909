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

// facultyStore abstracts the persistence operations FacultyService needs.
type facultyStore interface {
	GetAll(ctx context.Context) ([]models.Faculty, error)
	GetByID(ctx context.Context, id string) (*models.Faculty, error)
	Find(ctx context.Context, filter bson.M) ([]models.Faculty, error)
	FindOne(ctx context.Context, filter bson.M) (*models.Faculty, error)
	Create(ctx context.Context, faculty *models.Faculty) error
	Update(ctx context.Context, id string, faculty *models.Faculty) error
	Remove(ctx context.Context, id string) error
}

// FacultyService defines the interface for faculty-member operations.
// Course assignment is idempotent in both directions.
type FacultyService interface {
	CreateFaculty(ctx context.Context, faculty *models.Faculty) error
	GetFacultyByID(ctx context.Context, id string) (*models.Faculty, error)
	GetFacultyByFacultyID(ctx context.Context, facultyID string) (*models.Faculty, error)
	GetAllFaculty(ctx context.Context) ([]models.Faculty, error)
	GetFacultyByDepartment(ctx context.Context, departmentID string) ([]models.Faculty, error)
	UpdateFaculty(ctx context.Context, id string, faculty *models.Faculty) error
	DeleteFaculty(ctx context.Context, id string) error

	AssignCourse(ctx context.Context, facultyDocID, courseID string) error
	RemoveCourseAssignment(ctx context.Context, facultyDocID, courseID string) error
}

// facultyServiceImpl implements the FacultyService interface
type facultyServiceImpl struct {
	facultyRepo facultyStore
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(facultyRepo facultyStore) FacultyService {
	return &facultyServiceImpl{
		facultyRepo: facultyRepo,
	}
}

// validateFaculty validates faculty data before persistence
func (s *facultyServiceImpl) validateFaculty(faculty *models.Faculty) error {
	if faculty == nil {
		return fmt.Errorf("%w: faculty is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(faculty.FacultyID) == "" {
		return fmt.Errorf("%w: faculty ID cannot be empty", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(faculty.FirstName) == "" || strings.TrimSpace(faculty.LastName) == "" {
		return fmt.Errorf("%w: first and last name are required", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(faculty.Email) == "" {
		return fmt.Errorf("%w: email is required", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateFaculty creates a new faculty member
func (s *facultyServiceImpl) CreateFaculty(ctx context.Context, faculty *models.Faculty) error {
	if err := s.validateFaculty(faculty); err != nil {
		return err
	}

	if faculty.CourseIDs == nil {
		faculty.CourseIDs = []string{}
	}
	if faculty.JoinDate.IsZero() {
		faculty.JoinDate = time.Now()
	}

	if err := s.facultyRepo.Create(ctx, faculty); err != nil {
		if errors.Is(err, apperrors.ErrResourceAlreadyExists) {
			return apperrors.ErrFacultyAlreadyExists
		}
		return fmt.Errorf("error creating faculty member: %w", err)
	}

	return nil
}

// GetFacultyByID retrieves a faculty member by document id
func (s *facultyServiceImpl) GetFacultyByID(ctx context.Context, id string) (*models.Faculty, error) {
	faculty, err := s.facultyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, err
	}
	return faculty, nil
}

// GetFacultyByFacultyID retrieves a faculty member by the facultyId natural key
func (s *facultyServiceImpl) GetFacultyByFacultyID(ctx context.Context, facultyID string) (*models.Faculty, error) {
	faculty, err := s.facultyRepo.FindOne(ctx, bson.M{"facultyId": facultyID})
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, err
	}
	return faculty, nil
}

// GetAllFaculty retrieves all faculty members
func (s *facultyServiceImpl) GetAllFaculty(ctx context.Context) ([]models.Faculty, error) {
	return s.facultyRepo.GetAll(ctx)
}

// GetFacultyByDepartment retrieves all faculty members of a department
func (s *facultyServiceImpl) GetFacultyByDepartment(ctx context.Context, departmentID string) ([]models.Faculty, error) {
	return s.facultyRepo.Find(ctx, bson.M{"departmentId": departmentID})
}

// UpdateFaculty replaces a faculty record
func (s *facultyServiceImpl) UpdateFaculty(ctx context.Context, id string, faculty *models.Faculty) error {
	if err := s.validateFaculty(faculty); err != nil {
		return err
	}

	if err := s.facultyRepo.Update(ctx, id, faculty); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return apperrors.ErrFacultyNotFound
		}
		return fmt.Errorf("error updating faculty member: %w", err)
	}

	return nil
}

// DeleteFaculty removes a faculty record
func (s *facultyServiceImpl) DeleteFaculty(ctx context.Context, id string) error {
	if err := s.facultyRepo.Remove(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return apperrors.ErrFacultyNotFound
		}
		return fmt.Errorf("error deleting faculty member: %w", err)
	}
	return nil
}

// AssignCourse adds a course to the faculty member's assignment list
func (s *facultyServiceImpl) AssignCourse(ctx context.Context, facultyDocID, courseID string) error {
	faculty, err := s.GetFacultyByID(ctx, facultyDocID)
	if err != nil {
		return err
	}

	faculty.CourseIDs = addIfAbsent(faculty.CourseIDs, courseID)

	if err := s.facultyRepo.Update(ctx, facultyDocID, faculty); err != nil {
		return fmt.Errorf("error updating course assignments: %w", err)
	}

	return nil
}

// RemoveCourseAssignment removes a course from the faculty member's assignment list
func (s *facultyServiceImpl) RemoveCourseAssignment(ctx context.Context, facultyDocID, courseID string) error {
	faculty, err := s.GetFacultyByID(ctx, facultyDocID)
	if err != nil {
		return err
	}

	faculty.CourseIDs = removeIfPresent(faculty.CourseIDs, courseID)

	if err := s.facultyRepo.Update(ctx, facultyDocID, faculty); err != nil {
		return fmt.Errorf("error updating course assignments: %w", err)
	}

	return nil
}
