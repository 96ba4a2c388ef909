package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/collegehub/collegehub/internal/app/models"
	"github.com/collegehub/collegehub/internal/pkg/apperrors"
)

// In-memory store fakes. Filters are interpreted on the field names the
// services actually query.

type fakeAdminStore struct {
	admins map[string]*models.Admin
	err    error
}

func newFakeAdminStore() *fakeAdminStore {
	return &fakeAdminStore{admins: make(map[string]*models.Admin)}
}

func (f *fakeAdminStore) GetAll(context.Context) ([]models.Admin, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Admin, 0, len(f.admins))
	for _, a := range f.admins {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeAdminStore) GetByID(_ context.Context, id string) (*models.Admin, error) {
	if f.err != nil {
		return nil, f.err
	}
	admin, ok := f.admins[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	copied := *admin
	return &copied, nil
}

func (f *fakeAdminStore) FindOne(_ context.Context, filter bson.M) (*models.Admin, error) {
	if f.err != nil {
		return nil, f.err
	}
	username, _ := filter["username"].(string)
	for _, a := range f.admins {
		if a.Username == username {
			copied := *a
			return &copied, nil
		}
	}
	return nil, apperrors.ErrResourceNotFound
}

func (f *fakeAdminStore) Create(_ context.Context, admin *models.Admin) error {
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.admins {
		if existing.Username == admin.Username {
			return apperrors.ErrResourceAlreadyExists
		}
	}
	if admin.ID.IsZero() {
		admin.SetObjectID(primitive.NewObjectID())
	}
	copied := *admin
	f.admins[admin.ID.Hex()] = &copied
	return nil
}

func (f *fakeAdminStore) Update(_ context.Context, id string, admin *models.Admin) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.admins[id]; !ok {
		return apperrors.ErrResourceNotFound
	}
	copied := *admin
	f.admins[id] = &copied
	return nil
}

type fakeCourseStore struct {
	courses map[string]*models.Course
	err     error
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{courses: make(map[string]*models.Course)}
}

func (f *fakeCourseStore) GetAll(context.Context) ([]models.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Course, 0, len(f.courses))
	for _, c := range f.courses {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCourseStore) GetByID(_ context.Context, id string) (*models.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	course, ok := f.courses[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	copied := *course
	copied.EnrolledStudentIDs = append([]string(nil), course.EnrolledStudentIDs...)
	return &copied, nil
}

func (f *fakeCourseStore) Find(_ context.Context, filter bson.M) ([]models.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Course
	for _, c := range f.courses {
		if dept, ok := filter["departmentId"].(string); ok && c.DepartmentID != dept {
			continue
		}
		if fac, ok := filter["facultyId"].(string); ok && c.FacultyID != fac {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCourseStore) FindOne(_ context.Context, filter bson.M) (*models.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	code, _ := filter["courseCode"].(string)
	for _, c := range f.courses {
		if c.CourseCode == code {
			copied := *c
			return &copied, nil
		}
	}
	return nil, apperrors.ErrResourceNotFound
}

func (f *fakeCourseStore) Create(_ context.Context, course *models.Course) error {
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.courses {
		if existing.CourseCode == course.CourseCode {
			return apperrors.ErrResourceAlreadyExists
		}
	}
	if course.ID.IsZero() {
		course.SetObjectID(primitive.NewObjectID())
	}
	copied := *course
	f.courses[course.ID.Hex()] = &copied
	return nil
}

func (f *fakeCourseStore) Update(_ context.Context, id string, course *models.Course) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.courses[id]; !ok {
		return apperrors.ErrResourceNotFound
	}
	copied := *course
	copied.EnrolledStudentIDs = append([]string(nil), course.EnrolledStudentIDs...)
	f.courses[id] = &copied
	return nil
}

func (f *fakeCourseStore) Remove(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.courses[id]; !ok {
		return apperrors.ErrResourceNotFound
	}
	delete(f.courses, id)
	return nil
}

type fakeStudentStore struct {
	students map[string]*models.Student
	err      error
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: make(map[string]*models.Student)}
}

func (f *fakeStudentStore) GetAll(context.Context) ([]models.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Student, 0, len(f.students))
	for _, s := range f.students {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeStudentStore) GetByID(_ context.Context, id string) (*models.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	student, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	copied := *student
	copied.EnrolledCourseIDs = append([]string(nil), student.EnrolledCourseIDs...)
	return &copied, nil
}

func (f *fakeStudentStore) Find(_ context.Context, filter bson.M) ([]models.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Student
	for _, s := range f.students {
		if dept, ok := filter["departmentId"].(string); ok && s.DepartmentID != dept {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeStudentStore) FindOne(_ context.Context, filter bson.M) (*models.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	number, _ := filter["studentId"].(string)
	for _, s := range f.students {
		if s.StudentID == number {
			copied := *s
			return &copied, nil
		}
	}
	return nil, apperrors.ErrResourceNotFound
}

func (f *fakeStudentStore) Create(_ context.Context, student *models.Student) error {
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.students {
		if existing.StudentID == student.StudentID {
			return apperrors.ErrResourceAlreadyExists
		}
	}
	if student.ID.IsZero() {
		student.SetObjectID(primitive.NewObjectID())
	}
	copied := *student
	f.students[student.ID.Hex()] = &copied
	return nil
}

func (f *fakeStudentStore) Update(_ context.Context, id string, student *models.Student) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.students[id]; !ok {
		return apperrors.ErrResourceNotFound
	}
	copied := *student
	copied.EnrolledCourseIDs = append([]string(nil), student.EnrolledCourseIDs...)
	f.students[id] = &copied
	return nil
}

func (f *fakeStudentStore) Remove(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.students[id]; !ok {
		return apperrors.ErrResourceNotFound
	}
	delete(f.students, id)
	return nil
}

type fakeDepartmentStore struct {
	departments map[string]*models.Department
	err         error
}

func newFakeDepartmentStore() *fakeDepartmentStore {
	return &fakeDepartmentStore{departments: make(map[string]*models.Department)}
}

func (f *fakeDepartmentStore) GetAll(context.Context) ([]models.Department, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Department, 0, len(f.departments))
	for _, d := range f.departments {
		out = append(out, *d)
	}
	return out, nil
}

func (f *fakeDepartmentStore) GetByID(_ context.Context, id string) (*models.Department, error) {
	if f.err != nil {
		return nil, f.err
	}
	department, ok := f.departments[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	copied := *department
	copied.FacultyIDs = append([]string(nil), department.FacultyIDs...)
	copied.CourseIDs = append([]string(nil), department.CourseIDs...)
	return &copied, nil
}

func (f *fakeDepartmentStore) FindOne(_ context.Context, filter bson.M) (*models.Department, error) {
	if f.err != nil {
		return nil, f.err
	}
	code, _ := filter["departmentCode"].(string)
	for _, d := range f.departments {
		if d.DepartmentCode == code {
			copied := *d
			return &copied, nil
		}
	}
	return nil, apperrors.ErrResourceNotFound
}

func (f *fakeDepartmentStore) Create(_ context.Context, department *models.Department) error {
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.departments {
		if existing.DepartmentCode == department.DepartmentCode {
			return apperrors.ErrResourceAlreadyExists
		}
	}
	if department.ID.IsZero() {
		department.SetObjectID(primitive.NewObjectID())
	}
	copied := *department
	f.departments[department.ID.Hex()] = &copied
	return nil
}

func (f *fakeDepartmentStore) Update(_ context.Context, id string, department *models.Department) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.departments[id]; !ok {
		return apperrors.ErrResourceNotFound
	}
	copied := *department
	copied.FacultyIDs = append([]string(nil), department.FacultyIDs...)
	copied.CourseIDs = append([]string(nil), department.CourseIDs...)
	f.departments[id] = &copied
	return nil
}

func (f *fakeDepartmentStore) Remove(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.departments[id]; !ok {
		return apperrors.ErrResourceNotFound
	}
	delete(f.departments, id)
	return nil
}

type fakeFacultyStore struct {
	members map[string]*models.Faculty
	err     error
}

func newFakeFacultyStore() *fakeFacultyStore {
	return &fakeFacultyStore{members: make(map[string]*models.Faculty)}
}

func (f *fakeFacultyStore) GetAll(context.Context) ([]models.Faculty, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Faculty, 0, len(f.members))
	for _, m := range f.members {
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeFacultyStore) GetByID(_ context.Context, id string) (*models.Faculty, error) {
	if f.err != nil {
		return nil, f.err
	}
	member, ok := f.members[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	copied := *member
	copied.CourseIDs = append([]string(nil), member.CourseIDs...)
	return &copied, nil
}

func (f *fakeFacultyStore) Find(_ context.Context, filter bson.M) ([]models.Faculty, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Faculty
	for _, m := range f.members {
		if dept, ok := filter["departmentId"].(string); ok && m.DepartmentID != dept {
			continue
		}
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeFacultyStore) FindOne(_ context.Context, filter bson.M) (*models.Faculty, error) {
	if f.err != nil {
		return nil, f.err
	}
	number, _ := filter["facultyId"].(string)
	for _, m := range f.members {
		if m.FacultyID == number {
			copied := *m
			return &copied, nil
		}
	}
	return nil, apperrors.ErrResourceNotFound
}

func (f *fakeFacultyStore) Create(_ context.Context, faculty *models.Faculty) error {
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.members {
		if existing.FacultyID == faculty.FacultyID || existing.Email == faculty.Email {
			return apperrors.ErrResourceAlreadyExists
		}
	}
	if faculty.ID.IsZero() {
		faculty.SetObjectID(primitive.NewObjectID())
	}
	copied := *faculty
	f.members[faculty.ID.Hex()] = &copied
	return nil
}

func (f *fakeFacultyStore) Update(_ context.Context, id string, faculty *models.Faculty) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.members[id]; !ok {
		return apperrors.ErrResourceNotFound
	}
	copied := *faculty
	copied.CourseIDs = append([]string(nil), faculty.CourseIDs...)
	f.members[id] = &copied
	return nil
}

func (f *fakeFacultyStore) Remove(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.members[id]; !ok {
		return apperrors.ErrResourceNotFound
	}
	delete(f.members, id)
	return nil
}

type fakeFeedbackStore struct {
	entries map[string]*models.Feedback
	err     error
}

func newFakeFeedbackStore() *fakeFeedbackStore {
	return &fakeFeedbackStore{entries: make(map[string]*models.Feedback)}
}

func (f *fakeFeedbackStore) GetAll(context.Context) ([]models.Feedback, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Feedback, 0, len(f.entries))
	for _, e := range f.entries {
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeFeedbackStore) GetByID(_ context.Context, id string) (*models.Feedback, error) {
	if f.err != nil {
		return nil, f.err
	}
	entry, ok := f.entries[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	copied := *entry
	return &copied, nil
}

func (f *fakeFeedbackStore) Find(_ context.Context, filter bson.M) ([]models.Feedback, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Feedback
	for _, e := range f.entries {
		if resolved, ok := filter["isResolved"].(bool); ok && e.IsResolved != resolved {
			continue
		}
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeFeedbackStore) Create(_ context.Context, feedback *models.Feedback) error {
	if f.err != nil {
		return f.err
	}
	if feedback.ID.IsZero() {
		feedback.SetObjectID(primitive.NewObjectID())
	}
	copied := *feedback
	f.entries[feedback.ID.Hex()] = &copied
	return nil
}

func (f *fakeFeedbackStore) Update(_ context.Context, id string, feedback *models.Feedback) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.entries[id]; !ok {
		return apperrors.ErrResourceNotFound
	}
	copied := *feedback
	f.entries[id] = &copied
	return nil
}

func (f *fakeFeedbackStore) Remove(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.entries[id]; !ok {
		return apperrors.ErrResourceNotFound
	}
	delete(f.entries, id)
	return nil
}
