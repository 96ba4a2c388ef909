package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/collegehub/collegehub/internal/pkg/apperrors"
	"github.com/collegehub/collegehub/internal/pkg/logger"
)

// document constrains the generic repository to pointer types that expose
// their Mongo object id. All persisted models satisfy it.
type document[T any] interface {
	*T
	ObjectID() primitive.ObjectID
	SetObjectID(primitive.ObjectID)
}

// Repository is a typed CRUD gateway over one Mongo collection. It owns no
// state beyond the collection handle, so a single instance is safe for
// concurrent use.
//
// Identifier contract: an id string that does not parse as an ObjectID
// behaves as "not found" rather than surfacing a format error.
// Infrastructure failures are logged once here and propagated as
// apperrors.ErrStorageUnavailable.
type Repository[T any, PT document[T]] struct {
	coll *mongo.Collection
	log  zerolog.Logger
}

// NewRepository creates a repository bound to the given collection.
func NewRepository[T any, PT document[T]](coll *mongo.Collection) *Repository[T, PT] {
	return &Repository[T, PT]{
		coll: coll,
		log:  logger.With("repository").With().Str("collection", coll.Name()).Logger(),
	}
}

// GetAll retrieves every document in the collection.
func (r *Repository[T, PT]) GetAll(ctx context.Context) ([]T, error) {
	return r.Find(ctx, bson.M{})
}

// GetByID retrieves a document by its id string. Returns
// apperrors.ErrResourceNotFound when the id is malformed or no document
// matches.
func (r *Repository[T, PT]) GetByID(ctx context.Context, id string) (PT, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrResourceNotFound
	}

	var doc T
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, r.storageError("get by id", err)
	}

	return &doc, nil
}

// Find retrieves all documents matching the filter.
func (r *Repository[T, PT]) Find(ctx context.Context, filter bson.M) ([]T, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, r.storageError("find", err)
	}
	defer cursor.Close(ctx)

	var docs []T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, r.storageError("decode find results", err)
	}

	return docs, nil
}

// FindOne retrieves the first document matching the filter, or
// apperrors.ErrResourceNotFound.
func (r *Repository[T, PT]) FindOne(ctx context.Context, filter bson.M) (PT, error) {
	var doc T
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, r.storageError("find one", err)
	}

	return &doc, nil
}

// Create inserts a document. A fresh id is assigned when the document does
// not already carry one; the persisted id is set on the passed document.
func (r *Repository[T, PT]) Create(ctx context.Context, doc PT) error {
	if doc.ObjectID().IsZero() {
		doc.SetObjectID(primitive.NewObjectID())
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrResourceAlreadyExists
		}
		return r.storageError("insert", err)
	}

	return nil
}

// Update replaces the whole document at the given id. It does not merge
// partial fields.
func (r *Repository[T, PT]) Update(ctx context.Context, id string, doc PT) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrResourceNotFound
	}

	// The replacement keeps the addressed id regardless of what the
	// caller left in the document.
	doc.SetObjectID(oid)

	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrResourceAlreadyExists
		}
		return r.storageError("replace", err)
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// Remove deletes the document with the given id.
func (r *Repository[T, PT]) Remove(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrResourceNotFound
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return r.storageError("delete", err)
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// storageError logs an infrastructure failure once and wraps it so callers
// can match apperrors.ErrStorageUnavailable.
func (r *Repository[T, PT]) storageError(op string, err error) error {
	r.log.Error().Err(err).Str("op", op).Msg("Storage operation failed")
	return apperrors.NewStorageError(fmt.Errorf("%s: %w", op, err))
}
