package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/collegehub/collegehub/internal/app/models"
	"github.com/collegehub/collegehub/internal/pkg/apperrors"
)

// departmentStore abstracts the persistence operations DepartmentService needs.
type departmentStore interface {
	GetAll(ctx context.Context) ([]models.Department, error)
	GetByID(ctx context.Context, id string) (*models.Department, error)
	FindOne(ctx context.Context, filter bson.M) (*models.Department, error)
	Create(ctx context.Context, department *models.Department) error
	Update(ctx context.Context, id string, department *models.Department) error
	Remove(ctx context.Context, id string) error
}

// DepartmentService defines the interface for department-related operations.
// Membership operations (faculty, courses) are idempotent: adding a present
// id or removing an absent one is a no-op, not an error.
type DepartmentService interface {
	CreateDepartment(ctx context.Context, department *models.Department) error
	GetDepartmentByID(ctx context.Context, id string) (*models.Department, error)
	GetDepartmentByCode(ctx context.Context, departmentCode string) (*models.Department, error)
	GetAllDepartments(ctx context.Context) ([]models.Department, error)
	UpdateDepartment(ctx context.Context, id string, department *models.Department) error
	DeleteDepartment(ctx context.Context, id string) error

	AddFaculty(ctx context.Context, departmentID, facultyID string) error
	RemoveFaculty(ctx context.Context, departmentID, facultyID string) error
	AddCourse(ctx context.Context, departmentID, courseID string) error
	RemoveCourse(ctx context.Context, departmentID, courseID string) error
}

// departmentServiceImpl implements the DepartmentService interface
type departmentServiceImpl struct {
	departmentRepo departmentStore
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departmentRepo departmentStore) DepartmentService {
	return &departmentServiceImpl{
		departmentRepo: departmentRepo,
	}
}

// validateDepartment validates department data before persistence
func (s *departmentServiceImpl) validateDepartment(department *models.Department) error {
	if department == nil {
		return fmt.Errorf("%w: department is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(department.DepartmentCode) == "" {
		return fmt.Errorf("%w: department code cannot be empty", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(department.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateDepartment creates a new department
func (s *departmentServiceImpl) CreateDepartment(ctx context.Context, department *models.Department) error {
	if err := s.validateDepartment(department); err != nil {
		return err
	}

	if department.FacultyIDs == nil {
		department.FacultyIDs = []string{}
	}
	if department.CourseIDs == nil {
		department.CourseIDs = []string{}
	}

	if err := s.departmentRepo.Create(ctx, department); err != nil {
		if errors.Is(err, apperrors.ErrResourceAlreadyExists) {
			return apperrors.ErrDepartmentAlreadyExists
		}
		return fmt.Errorf("error creating department: %w", err)
	}

	return nil
}

// GetDepartmentByID retrieves a department by document id
func (s *departmentServiceImpl) GetDepartmentByID(ctx context.Context, id string) (*models.Department, error) {
	department, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, err
	}
	return department, nil
}

// GetDepartmentByCode retrieves a department by the departmentCode natural key
func (s *departmentServiceImpl) GetDepartmentByCode(ctx context.Context, departmentCode string) (*models.Department, error) {
	department, err := s.departmentRepo.FindOne(ctx, bson.M{"departmentCode": departmentCode})
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, err
	}
	return department, nil
}

// GetAllDepartments retrieves all departments
func (s *departmentServiceImpl) GetAllDepartments(ctx context.Context) ([]models.Department, error) {
	return s.departmentRepo.GetAll(ctx)
}

// UpdateDepartment replaces a department record
func (s *departmentServiceImpl) UpdateDepartment(ctx context.Context, id string, department *models.Department) error {
	if err := s.validateDepartment(department); err != nil {
		return err
	}

	if err := s.departmentRepo.Update(ctx, id, department); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("error updating department: %w", err)
	}

	return nil
}

// DeleteDepartment removes a department record
func (s *departmentServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	if err := s.departmentRepo.Remove(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("error deleting department: %w", err)
	}
	return nil
}

// AddFaculty adds a faculty member to the department's membership list
func (s *departmentServiceImpl) AddFaculty(ctx context.Context, departmentID, facultyID string) error {
	return s.updateMembership(ctx, departmentID, func(d *models.Department) {
		d.FacultyIDs = addIfAbsent(d.FacultyIDs, facultyID)
	})
}

// RemoveFaculty removes a faculty member from the department's membership list
func (s *departmentServiceImpl) RemoveFaculty(ctx context.Context, departmentID, facultyID string) error {
	return s.updateMembership(ctx, departmentID, func(d *models.Department) {
		d.FacultyIDs = removeIfPresent(d.FacultyIDs, facultyID)
	})
}

// AddCourse adds a course to the department's course list
func (s *departmentServiceImpl) AddCourse(ctx context.Context, departmentID, courseID string) error {
	return s.updateMembership(ctx, departmentID, func(d *models.Department) {
		d.CourseIDs = addIfAbsent(d.CourseIDs, courseID)
	})
}

// RemoveCourse removes a course from the department's course list
func (s *departmentServiceImpl) RemoveCourse(ctx context.Context, departmentID, courseID string) error {
	return s.updateMembership(ctx, departmentID, func(d *models.Department) {
		d.CourseIDs = removeIfPresent(d.CourseIDs, courseID)
	})
}

// updateMembership loads a department, applies a mutation, and writes it back.
func (s *departmentServiceImpl) updateMembership(ctx context.Context, departmentID string, mutate func(*models.Department)) error {
	department, err := s.GetDepartmentByID(ctx, departmentID)
	if err != nil {
		return err
	}

	mutate(department)

	if err := s.departmentRepo.Update(ctx, departmentID, department); err != nil {
		return fmt.Errorf("error updating department membership: %w", err)
	}

	return nil
}

// addIfAbsent appends id to list when not already present.
func addIfAbsent(list []string, id string) []string {
	for _, v := range list {
		if v == id {
			return list
		}
	}
	return append(list, id)
}

// removeIfPresent removes id from list when present.
func removeIfPresent(list []string, id string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
