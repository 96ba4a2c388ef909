package models

// Department groups faculty members and courses. The bson element names
// "faculty" and "courses" are part of the storage contract.
type Department struct {
	identifiable `bson:",inline"`

	DepartmentCode     string   `bson:"departmentCode" json:"departmentCode"`
	Name               string   `bson:"name" json:"name"`
	Description        string   `bson:"description,omitempty" json:"description,omitempty"`
	HeadOfDepartmentID string   `bson:"headOfDepartmentId,omitempty" json:"headOfDepartmentId,omitempty"`
	FacultyIDs         []string `bson:"faculty" json:"facultyIds"`
	CourseIDs          []string `bson:"courses" json:"courseIds"`
}
