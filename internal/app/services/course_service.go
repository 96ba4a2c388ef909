package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/collegehub/collegehub/internal/app/models"
	"github.com/collegehub/collegehub/internal/pkg/apperrors"
)

// courseStore abstracts the persistence operations CourseService needs.
type courseStore interface {
	GetAll(ctx context.Context) ([]models.Course, error)
	GetByID(ctx context.Context, id string) (*models.Course, error)
	Find(ctx context.Context, filter bson.M) ([]models.Course, error)
	FindOne(ctx context.Context, filter bson.M) (*models.Course, error)
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, id string, course *models.Course) error
	Remove(ctx context.Context, id string) error
}

// CourseService defines the interface for course-related operations.
//
// The course roster (enrolledStudents) is the authoritative record of
// enrollment. Student.enrolledCourseIds is a best-effort mirror: the two
// writes are not atomic, so a crash between them can leave the mirror
// stale. ReconcileEnrollments rebuilds the mirrors from the rosters.
type CourseService interface {
	CreateCourse(ctx context.Context, course *models.Course) error
	GetCourseByID(ctx context.Context, id string) (*models.Course, error)
	GetCourseByCode(ctx context.Context, courseCode string) (*models.Course, error)
	GetAllCourses(ctx context.Context) ([]models.Course, error)
	GetCoursesByDepartment(ctx context.Context, departmentID string) ([]models.Course, error)
	GetCoursesByFaculty(ctx context.Context, facultyID string) ([]models.Course, error)
	UpdateCourse(ctx context.Context, id string, course *models.Course) error
	DeleteCourse(ctx context.Context, id string) error

	// EnrollStudent adds a student to the roster. Enrolling an
	// already-present student is a no-op; enrolling into a full course
	// leaves the roster unchanged and returns apperrors.ErrCourseFull.
	EnrollStudent(ctx context.Context, courseID, studentID string) error
	// WithdrawStudent removes a student from the roster. Withdrawing an
	// absent student is a no-op.
	WithdrawStudent(ctx context.Context, courseID, studentID string) error
	// ReconcileEnrollments rebuilds every student's enrolledCourseIds
	// mirror from the course rosters, repairing any drift left by
	// interrupted enrollment operations.
	ReconcileEnrollments(ctx context.Context) error
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo  courseStore
	studentRepo studentStore
	logger      zerolog.Logger
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo courseStore, studentRepo studentStore, lgr zerolog.Logger) CourseService {
	return &courseServiceImpl{
		courseRepo:  courseRepo,
		studentRepo: studentRepo,
		logger:      lgr,
	}
}

// validateCourse validates course data before persistence
func (s *courseServiceImpl) validateCourse(course *models.Course) error {
	if course == nil {
		return fmt.Errorf("%w: course is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(course.CourseCode) == "" {
		return fmt.Errorf("%w: course code cannot be empty", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(course.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	if course.Credits < 1 || course.Credits > 6 {
		return fmt.Errorf("%w: credits must be between 1 and 6", apperrors.ErrValidationFailed)
	}

	if course.Capacity < 1 {
		return fmt.Errorf("%w: capacity must be positive", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateCourse creates a new course
func (s *courseServiceImpl) CreateCourse(ctx context.Context, course *models.Course) error {
	if course != nil && course.Capacity == 0 {
		course.Capacity = 30
	}

	if err := s.validateCourse(course); err != nil {
		return err
	}

	if course.EnrolledStudentIDs == nil {
		course.EnrolledStudentIDs = []string{}
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		if errors.Is(err, apperrors.ErrResourceAlreadyExists) {
			return apperrors.ErrCourseAlreadyExists
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetCourseByID retrieves a course by document id
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id string) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, err
	}
	return course, nil
}

// GetCourseByCode retrieves a course by the courseCode natural key
func (s *courseServiceImpl) GetCourseByCode(ctx context.Context, courseCode string) (*models.Course, error) {
	course, err := s.courseRepo.FindOne(ctx, bson.M{"courseCode": courseCode})
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, err
	}
	return course, nil
}

// GetAllCourses retrieves all courses
func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]models.Course, error) {
	return s.courseRepo.GetAll(ctx)
}

// GetCoursesByDepartment retrieves all courses of a department
func (s *courseServiceImpl) GetCoursesByDepartment(ctx context.Context, departmentID string) ([]models.Course, error) {
	return s.courseRepo.Find(ctx, bson.M{"departmentId": departmentID})
}

// GetCoursesByFaculty retrieves all courses taught by a faculty member
func (s *courseServiceImpl) GetCoursesByFaculty(ctx context.Context, facultyID string) ([]models.Course, error) {
	return s.courseRepo.Find(ctx, bson.M{"facultyId": facultyID})
}

// UpdateCourse replaces a course record
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, id string, course *models.Course) error {
	if err := s.validateCourse(course); err != nil {
		return err
	}

	if err := s.courseRepo.Update(ctx, id, course); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error updating course: %w", err)
	}

	return nil
}

// DeleteCourse removes a course record
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id string) error {
	if err := s.courseRepo.Remove(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error deleting course: %w", err)
	}
	return nil
}

// EnrollStudent adds a student to a course roster
func (s *courseServiceImpl) EnrollStudent(ctx context.Context, courseID, studentID string) error {
	course, err := s.GetCourseByID(ctx, courseID)
	if err != nil {
		return err
	}

	if course.HasStudent(studentID) {
		return nil
	}

	if course.IsFull() {
		return apperrors.ErrCourseFull
	}

	course.EnrolledStudentIDs = append(course.EnrolledStudentIDs, studentID)
	if err := s.courseRepo.Update(ctx, courseID, course); err != nil {
		return fmt.Errorf("error updating course roster: %w", err)
	}

	// Mirror onto the student record. Not atomic with the roster write;
	// ReconcileEnrollments repairs drift.
	s.mirrorStudentEnrollment(ctx, studentID, courseID, true)

	return nil
}

// WithdrawStudent removes a student from a course roster
func (s *courseServiceImpl) WithdrawStudent(ctx context.Context, courseID, studentID string) error {
	course, err := s.GetCourseByID(ctx, courseID)
	if err != nil {
		return err
	}

	if !course.HasStudent(studentID) {
		return nil
	}

	roster := make([]string, 0, len(course.EnrolledStudentIDs))
	for _, id := range course.EnrolledStudentIDs {
		if id != studentID {
			roster = append(roster, id)
		}
	}
	course.EnrolledStudentIDs = roster

	if err := s.courseRepo.Update(ctx, courseID, course); err != nil {
		return fmt.Errorf("error updating course roster: %w", err)
	}

	s.mirrorStudentEnrollment(ctx, studentID, courseID, false)

	return nil
}

// mirrorStudentEnrollment keeps Student.enrolledCourseIds in step with the
// roster. Failures are logged, not propagated: the roster write already
// succeeded and the mirror is re-derivable.
func (s *courseServiceImpl) mirrorStudentEnrollment(ctx context.Context, studentID, courseID string, enrolled bool) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		s.logger.Warn().Err(err).Str("studentId", studentID).Msg("Could not load student for enrollment mirror")
		return
	}

	courses := make([]string, 0, len(student.EnrolledCourseIDs)+1)
	present := false
	for _, id := range student.EnrolledCourseIDs {
		if id == courseID {
			present = true
			if !enrolled {
				continue
			}
		}
		courses = append(courses, id)
	}
	if enrolled && !present {
		courses = append(courses, courseID)
	}
	student.EnrolledCourseIDs = courses

	if err := s.studentRepo.Update(ctx, studentID, student); err != nil {
		s.logger.Warn().Err(err).Str("studentId", studentID).Msg("Could not update student enrollment mirror")
	}
}

// ReconcileEnrollments rebuilds student enrollment mirrors from rosters
func (s *courseServiceImpl) ReconcileEnrollments(ctx context.Context) error {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("error loading courses for reconciliation: %w", err)
	}

	byStudent := make(map[string][]string)
	for _, course := range courses {
		courseID := course.ID.Hex()
		for _, studentID := range course.EnrolledStudentIDs {
			byStudent[studentID] = append(byStudent[studentID], courseID)
		}
	}

	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("error loading students for reconciliation: %w", err)
	}

	var repaired int
	for i := range students {
		student := &students[i]
		want := byStudent[student.ID.Hex()]
		if want == nil {
			want = []string{}
		}
		if equalStringSets(student.EnrolledCourseIDs, want) {
			continue
		}

		student.EnrolledCourseIDs = want
		if err := s.studentRepo.Update(ctx, student.ID.Hex(), student); err != nil {
			return fmt.Errorf("error repairing enrollment mirror for student %s: %w", student.StudentID, err)
		}
		repaired++
	}

	if repaired > 0 {
		s.logger.Info().Int("students", repaired).Msg("Repaired enrollment mirrors")
	}

	return nil
}

// equalStringSets compares two id lists ignoring order.
func equalStringSets(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]int, len(a))
	for _, v := range a {
		seen[v]++
	}
	for _, v := range b {
		seen[v]--
		if seen[v] < 0 {
			return false
		}
	}
	return true
}
