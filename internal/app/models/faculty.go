package models

import "time"

// Faculty represents a faculty member (instructor). FacultyID is the
// human-meaningful staff identifier, distinct from the document id.
type Faculty struct {
	identifiable `bson:",inline"`

	FacultyID    string    `bson:"facultyId" json:"facultyId"`
	FirstName    string    `bson:"firstName" json:"firstName"`
	LastName     string    `bson:"lastName" json:"lastName"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Position     string    `bson:"position,omitempty" json:"position,omitempty"`
	Office       string    `bson:"office,omitempty" json:"office,omitempty"`
	DepartmentID string    `bson:"departmentId,omitempty" json:"departmentId,omitempty"`
	CourseIDs    []string  `bson:"courses" json:"courseIds"`
	JoinDate     time.Time `bson:"joinDate" json:"joinDate"`
}

// FullName returns the faculty member's display name.
func (f *Faculty) FullName() string {
	return f.FirstName + " " + f.LastName
}
