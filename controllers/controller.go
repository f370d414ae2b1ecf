package controller

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// DocumentStore is the slice of the database layer the handlers call. The
// mongo-backed database.Store satisfies it; tests substitute an in-memory
// fake.
type DocumentStore interface {
	CreateDocument(ctx context.Context, collection string, record interface{}) (string, error)
	GetDocuments(ctx context.Context, collection string, filter bson.M) ([]bson.M, error)
	ListCollectionNames(ctx context.Context) ([]string, error)
	Connected() bool
}

// Controller holds the dependencies shared by every handler. The store is
// injected once at startup and never reassigned.
type Controller struct {
	store DocumentStore
}

func New(store DocumentStore) *Controller {
	return &Controller{store: store}
}
