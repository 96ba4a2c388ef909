package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/collegehub/collegehub/internal/config"
)

// EnsureIndexes creates the indexes the application depends on. Uniqueness
// of natural keys (studentId, courseCode, facultyId, departmentCode,
// username) is enforced here, at the storage layer, not in application
// code. Creating an index that already exists is a no-op.
func (m *MongoDB) EnsureIndexes(ctx context.Context, cfg *config.Config) error {
	type indexSpec struct {
		collection string
		keys       bson.D
		unique     bool
	}

	cols := cfg.MongoDB.Collections
	specs := []indexSpec{
		{cols.Students, bson.D{{Key: "studentId", Value: 1}}, true},
		{cols.Students, bson.D{{Key: "email", Value: 1}}, false},
		{cols.Students, bson.D{{Key: "departmentId", Value: 1}}, false},
		{cols.Students, bson.D{{Key: "admissionStatus", Value: 1}}, false},

		{cols.Courses, bson.D{{Key: "courseCode", Value: 1}}, true},
		{cols.Courses, bson.D{{Key: "departmentId", Value: 1}}, false},
		{cols.Courses, bson.D{{Key: "facultyId", Value: 1}}, false},

		{cols.Faculty, bson.D{{Key: "facultyId", Value: 1}}, true},
		{cols.Faculty, bson.D{{Key: "email", Value: 1}}, true},
		{cols.Faculty, bson.D{{Key: "departmentId", Value: 1}}, false},

		{cols.Departments, bson.D{{Key: "departmentCode", Value: 1}}, true},

		{cols.Admins, bson.D{{Key: "username", Value: 1}}, true},
		{cols.Admins, bson.D{{Key: "email", Value: 1}}, true},

		{cols.Feedback, bson.D{{Key: "email", Value: 1}}, false},
		{cols.Feedback, bson.D{{Key: "isResolved", Value: 1}}, false},
		{cols.Feedback, bson.D{{Key: "submissionDate", Value: -1}}, false},
	}

	for _, spec := range specs {
		model := mongo.IndexModel{
			Keys:    spec.keys,
			Options: options.Index().SetUnique(spec.unique),
		}

		if _, err := m.Collection(spec.collection).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("failed to create index on %s: %w", spec.collection, err)
		}
	}

	return nil
}
