package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrStorageUnavailable means no live database connection exists.
var ErrStorageUnavailable = errors.New("document store is not connected")

// OperationError reports a failed read or write against one collection.
type OperationError struct {
	Op         string
	Collection string
	Err        error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s on %q failed: %v", e.Op, e.Collection, e.Err)
}

func (e *OperationError) Unwrap() error { return e.Err }

// Store exposes generic document operations over a mongo database handle.
// A Store built from a nil handle answers every operation with
// ErrStorageUnavailable instead of panicking, so a server started without a
// reachable database still serves its diagnostic endpoint. The handle is
// never reassigned after construction and is safe to share across requests.
type Store struct {
	db *mongo.Database
}

func NewStore(db *mongo.Database) *Store {
	return &Store{db: db}
}

func (s *Store) Connected() bool {
	return s.db != nil
}

// CreateDocument inserts one record into the named collection and returns the
// store-assigned identifier as an opaque hex string.
func (s *Store) CreateDocument(ctx context.Context, collection string, record interface{}) (string, error) {
	if s.db == nil {
		return "", ErrStorageUnavailable
	}

	res, err := s.db.Collection(collection).InsertOne(ctx, record)
	if err != nil {
		return "", &OperationError{Op: "insert", Collection: collection, Err: err}
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}

// GetDocuments returns every document in the collection matching the equality
// filter. An empty or nil filter matches everything.
func (s *Store) GetDocuments(ctx context.Context, collection string, filter bson.M) ([]bson.M, error) {
	if s.db == nil {
		return nil, ErrStorageUnavailable
	}
	if filter == nil {
		filter = bson.M{}
	}

	cursor, err := s.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return nil, &OperationError{Op: "find", Collection: collection, Err: err}
	}

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, &OperationError{Op: "decode", Collection: collection, Err: err}
	}
	return docs, nil
}

func (s *Store) ListCollectionNames(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, ErrStorageUnavailable
	}

	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, &OperationError{Op: "list collections", Collection: "", Err: err}
	}
	return names, nil
}
