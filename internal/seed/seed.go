package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/collegehub/collegehub/internal/app/models"
	"github.com/collegehub/collegehub/internal/app/services"
	"github.com/collegehub/collegehub/internal/pkg/apperrors"
)

// CreateDefaultData creates the default departments and their starter
// courses if they don't exist. Errors are collected so one failed entry
// does not abort the rest.
func CreateDefaultData(
	ctx context.Context,
	departmentService services.DepartmentService,
	courseService services.CourseService,
	lgr zerolog.Logger,
) error {
	lgr.Info().Msg("Checking/Creating default data (Departments/Courses)...")
	var finalErr error

	csID := ensureDepartment(ctx, departmentService, &models.Department{
		DepartmentCode: "CS",
		Name:           "Computer Science",
		Description:    "Computer Science and Engineering",
	}, lgr, &finalErr)

	mathID := ensureDepartment(ctx, departmentService, &models.Department{
		DepartmentCode: "MATH",
		Name:           "Mathematics",
		Description:    "Pure and Applied Mathematics",
	}, lgr, &finalErr)

	if csID != "" {
		ensureCourse(ctx, departmentService, courseService, &models.Course{
			CourseCode:   "CS101",
			Name:         "Introduction to Programming",
			Credits:      4,
			Capacity:     60,
			DepartmentID: csID,
		}, lgr, &finalErr)
		ensureCourse(ctx, departmentService, courseService, &models.Course{
			CourseCode:   "CS201",
			Name:         "Data Structures",
			Credits:      4,
			Capacity:     45,
			DepartmentID: csID,
		}, lgr, &finalErr)
	}

	if mathID != "" {
		ensureCourse(ctx, departmentService, courseService, &models.Course{
			CourseCode:   "MATH101",
			Name:         "Calculus I",
			Credits:      3,
			Capacity:     80,
			DepartmentID: mathID,
		}, lgr, &finalErr)
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data check complete")
	}
	return finalErr
}

// ensureDepartment creates the department if its code is not taken and
// returns its document id, or "" when it could not be resolved.
func ensureDepartment(
	ctx context.Context,
	departmentService services.DepartmentService,
	department *models.Department,
	lgr zerolog.Logger,
	finalErr *error,
) string {
	err := departmentService.CreateDepartment(ctx, department)
	if err == nil {
		return department.ID.Hex()
	}

	if errors.Is(err, apperrors.ErrResourceAlreadyExists) || errors.Is(err, apperrors.ErrDepartmentAlreadyExists) {
		existing, errGet := departmentService.GetDepartmentByCode(ctx, department.DepartmentCode)
		if errGet != nil {
			lgr.Error().Err(errGet).Str("code", department.DepartmentCode).Msg("Error resolving existing department")
			*finalErr = errors.Join(*finalErr, errGet)
			return ""
		}
		return existing.ID.Hex()
	}

	lgr.Error().Err(err).Str("code", department.DepartmentCode).Msg("Error creating default department")
	*finalErr = errors.Join(*finalErr, err)
	return ""
}

func ensureCourse(
	ctx context.Context,
	departmentService services.DepartmentService,
	courseService services.CourseService,
	course *models.Course,
	lgr zerolog.Logger,
	finalErr *error,
) {
	err := courseService.CreateCourse(ctx, course)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceAlreadyExists) || errors.Is(err, apperrors.ErrCourseAlreadyExists) {
			return
		}
		lgr.Error().Err(err).Str("code", course.CourseCode).Msg("Error creating default course")
		*finalErr = errors.Join(*finalErr, err)
		return
	}

	if err := departmentService.AddCourse(ctx, course.DepartmentID, course.ID.Hex()); err != nil {
		lgr.Error().Err(err).Str("code", course.CourseCode).Msg("Error linking default course to department")
		*finalErr = errors.Join(*finalErr, err)
	}
}
