package models

import "time"

// Feedback is a message submitted through the public contact form.
type Feedback struct {
	identifiable `bson:",inline"`

	Name           string    `bson:"name" json:"name"`
	Email          string    `bson:"email" json:"email"`
	Subject        string    `bson:"subject" json:"subject"`
	Message        string    `bson:"message" json:"message"`
	Rating         int       `bson:"rating" json:"rating"`
	SubmissionDate time.Time `bson:"submissionDate" json:"submissionDate"`
	IsResolved     bool      `bson:"isResolved" json:"isResolved"`
}
