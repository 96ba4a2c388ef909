package models

import "time"

// PreviousEducation is an embedded record of a student's prior schooling.
type PreviousEducation struct {
	University       string  `bson:"university,omitempty" json:"university,omitempty"`
	EnrollmentNumber string  `bson:"enrollmentNumber,omitempty" json:"enrollmentNumber,omitempty"`
	Center           string  `bson:"center,omitempty" json:"center,omitempty"`
	Stream           string  `bson:"stream,omitempty" json:"stream,omitempty"`
	Field            string  `bson:"field,omitempty" json:"field,omitempty"`
	MarksSecured     float64 `bson:"marksSecured,omitempty" json:"marksSecured,omitempty"`
	OutOf            float64 `bson:"outOf,omitempty" json:"outOf,omitempty"`
	ClassObtained    string  `bson:"classObtained,omitempty" json:"classObtained,omitempty"`
}

// Student represents an enrolled or applying student.
//
// EnrolledCourseIDs mirrors course rosters for display. The authoritative
// enrollment record is Course.EnrolledStudentIDs; see
// CourseService.ReconcileEnrollments.
type Student struct {
	identifiable `bson:",inline"`

	StudentID          string              `bson:"studentId" json:"studentId"`
	FirstName          string              `bson:"firstName" json:"firstName"`
	LastName           string              `bson:"lastName" json:"lastName"`
	FatherName         string              `bson:"fatherName,omitempty" json:"fatherName,omitempty"`
	MotherName         string              `bson:"motherName,omitempty" json:"motherName,omitempty"`
	DateOfBirth        time.Time           `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	Gender             string              `bson:"gender,omitempty" json:"gender,omitempty"`
	ResidentialAddress string              `bson:"residentialAddress,omitempty" json:"residentialAddress,omitempty"`
	PermanentAddress   string              `bson:"permanentAddress,omitempty" json:"permanentAddress,omitempty"`
	PreviousEducation  []PreviousEducation `bson:"previousEducation,omitempty" json:"previousEducation,omitempty"`
	SportsDetails      string              `bson:"sportsDetails,omitempty" json:"sportsDetails,omitempty"`
	AdmissionStatus    AdmissionStatus     `bson:"admissionStatus" json:"admissionStatus"`
	Email              string              `bson:"email" json:"email"`
	Phone              string              `bson:"phone" json:"phone"`
	EnrollmentDate     time.Time           `bson:"enrollmentDate" json:"enrollmentDate"`
	DepartmentID       string              `bson:"departmentId,omitempty" json:"departmentId,omitempty"`
	EnrolledCourseIDs  []string            `bson:"enrolledCourseIds" json:"enrolledCourseIds"`
}

// FullName returns the student's display name.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
