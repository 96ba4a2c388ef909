package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// AdmissionStatus defines the admission state of a student record.
type AdmissionStatus string

const (
	AdmissionPending  AdmissionStatus = "Pending"
	AdmissionAccepted AdmissionStatus = "Accepted"
	AdmissionRejected AdmissionStatus = "Rejected"
)

// RoleAdmin is the only role the admin surface issues today.
const RoleAdmin = "Admin"

// identifiable carries the Mongo document id and the accessors the generic
// repository relies on to assign identifiers on insert and address
// documents by id. Embedded by every persisted model.
type identifiable struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`
}

func (d *identifiable) ObjectID() primitive.ObjectID      { return d.ID }
func (d *identifiable) SetObjectID(id primitive.ObjectID) { d.ID = id }
