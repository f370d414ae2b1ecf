package controller

import (
	"context"
	"errors"
	"sort"
	"sync"

	"go-restaurant-backend/database"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// fakeStore is an in-memory DocumentStore. It mints uuid identifiers where
// mongo would mint ObjectIDs and matches filters by plain equality.
type fakeStore struct {
	mu           sync.Mutex
	collections  map[string][]bson.M
	disconnected bool
	failWrites   bool
	failReads    bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{collections: map[string][]bson.M{}}
}

func (f *fakeStore) Connected() bool {
	return !f.disconnected
}

func (f *fakeStore) CreateDocument(_ context.Context, collection string, record interface{}) (string, error) {
	if f.disconnected {
		return "", database.ErrStorageUnavailable
	}
	if f.failWrites {
		return "", &database.OperationError{Op: "insert", Collection: collection, Err: errors.New("write refused")}
	}

	raw, err := bson.Marshal(record)
	if err != nil {
		return "", err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return "", err
	}

	id := uuid.NewString()
	doc["_id"] = id

	f.mu.Lock()
	defer f.mu.Unlock()
	f.collections[collection] = append(f.collections[collection], doc)
	return id, nil
}

func (f *fakeStore) GetDocuments(_ context.Context, collection string, filter bson.M) ([]bson.M, error) {
	if f.disconnected {
		return nil, database.ErrStorageUnavailable
	}
	if f.failReads {
		return nil, &database.OperationError{Op: "find", Collection: collection, Err: errors.New("read refused")}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	var out []bson.M
	for _, doc := range f.collections[collection] {
		matches := true
		for key, want := range filter {
			if doc[key] != want {
				matches = false
				break
			}
		}
		if matches {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (f *fakeStore) ListCollectionNames(_ context.Context) ([]string, error) {
	if f.disconnected {
		return nil, database.ErrStorageUnavailable
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	names := make([]string, 0, len(f.collections))
	for name := range f.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
