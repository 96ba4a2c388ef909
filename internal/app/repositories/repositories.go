package repositories

import (
	"github.com/collegehub/collegehub/internal/app/models"
	"github.com/collegehub/collegehub/internal/config"
	"github.com/collegehub/collegehub/internal/db"
)

// Typed repository aliases, one per backing collection.
type (
	StudentRepository    = Repository[models.Student, *models.Student]
	CourseRepository     = Repository[models.Course, *models.Course]
	DepartmentRepository = Repository[models.Department, *models.Department]
	FacultyRepository    = Repository[models.Faculty, *models.Faculty]
	AdminRepository      = Repository[models.Admin, *models.Admin]
	FeedbackRepository   = Repository[models.Feedback, *models.Feedback]
)

// Repositories is the container that holds all repository instances
type Repositories struct {
	Students    *StudentRepository
	Courses     *CourseRepository
	Departments *DepartmentRepository
	Faculty     *FacultyRepository
	Admins      *AdminRepository
	Feedback    *FeedbackRepository
}

// NewRepositories creates all repositories over the configured collections.
func NewRepositories(mdb *db.MongoDB, cfg *config.Config) *Repositories {
	cols := cfg.MongoDB.Collections
	return &Repositories{
		Students:    NewRepository[models.Student](mdb.Collection(cols.Students)),
		Courses:     NewRepository[models.Course](mdb.Collection(cols.Courses)),
		Departments: NewRepository[models.Department](mdb.Collection(cols.Departments)),
		Faculty:     NewRepository[models.Faculty](mdb.Collection(cols.Faculty)),
		Admins:      NewRepository[models.Admin](mdb.Collection(cols.Admins)),
		Feedback:    NewRepository[models.Feedback](mdb.Collection(cols.Feedback)),
	}
}
