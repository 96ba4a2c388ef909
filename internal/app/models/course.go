package models

// Course represents a course offered by a department.
//
// EnrolledStudentIDs is the roster: the authoritative record of which
// students are enrolled, bounded by Capacity. The bson element name
// "enrolledStudents" is part of the storage contract.
type Course struct {
	identifiable `bson:",inline"`

	CourseCode         string   `bson:"courseCode" json:"courseCode"`
	Name               string   `bson:"name" json:"name"`
	Description        string   `bson:"description,omitempty" json:"description,omitempty"`
	Credits            int      `bson:"credits" json:"credits"`
	DepartmentID       string   `bson:"departmentId,omitempty" json:"departmentId,omitempty"`
	FacultyID          string   `bson:"facultyId,omitempty" json:"facultyId,omitempty"`
	Schedule           string   `bson:"schedule,omitempty" json:"schedule,omitempty"`
	Capacity           int      `bson:"capacity" json:"capacity"`
	EnrolledStudentIDs []string `bson:"enrolledStudents" json:"enrolledStudents"`
}

// HasStudent reports whether the given student id is on the roster.
func (c *Course) HasStudent(studentID string) bool {
	for _, id := range c.EnrolledStudentIDs {
		if id == studentID {
			return true
		}
	}
	return false
}

// IsFull reports whether the roster has reached capacity.
func (c *Course) IsFull() bool {
	return len(c.EnrolledStudentIDs) >= c.Capacity
}
