// Package docstore provides a small document-collection store over a
// relational backend. Documents are schemaless JSON objects keyed by a
// server-generated id inside named collections, mirroring the
// get/list/filter/paginate/batch-delete surface the handlers need.
package docstore

import (
	"context"
	"errors"
)

// BatchSize bounds how many deletes go into one commit. This is a
// transaction-size limit of the backing store, not a business rule.
const BatchSize = 500

var (
	// ErrNotFound is returned when a document id does not resolve.
	ErrNotFound = errors.New("docstore: document not found")
	// ErrDuplicateID is returned when a write collides with an
	// existing document key.
	ErrDuplicateID = errors.New("docstore: duplicate document id")
)

// Doc is a single stored document.
type Doc struct {
	ID   string
	Data map[string]any
}

// Query accumulates equality filters, a page limit and a pagination
// start point. The zero value matches every document in a collection.
// Query is an immutable value: each builder method returns a copy, so
// partially built queries can be shared safely.
type Query struct {
	filters    []filter
	limit      int
	startAfter string
}

type filter struct {
	field string
	value any
}

// Where adds an equality filter on a document field.
func (q Query) Where(field string, value any) Query {
	filters := make([]filter, len(q.filters), len(q.filters)+1)
	copy(filters, q.filters)
	q.filters = append(filters, filter{field: field, value: value})
	return q
}

// Limit caps the number of documents returned. Zero means no cap.
func (q Query) Limit(n int) Query {
	q.limit = n
	return q
}

// StartAfter resumes listing after the document with the given id.
// Results are always ordered by document id.
func (q Query) StartAfter(id string) Query {
	q.startAfter = id
	return q
}

// Collection is one named set of documents.
type Collection interface {
	// NewID returns a fresh server-generated document id.
	NewID() string
	// Set writes a full document under id.
	Set(ctx context.Context, id string, data map[string]any) error
	// Get fetches a document by its store key.
	Get(ctx context.Context, id string) (Doc, error)
	// Find executes a query and returns matching documents ordered
	// by id.
	Find(ctx context.Context, q Query) ([]Doc, error)
	// Update merges only the supplied fields into an existing
	// document; untouched fields keep their stored values.
	Update(ctx context.Context, id string, fields map[string]any) error
	// Delete removes a single document.
	Delete(ctx context.Context, id string) error
	// DeleteMatching removes every document matching the query,
	// committing in batches of at most BatchSize, and returns the
	// deleted ids.
	DeleteMatching(ctx context.Context, q Query) ([]string, error)
}

// Store hands out collections by name. A Store is constructed once per
// process and injected into each handler.
type Store interface {
	Collection(name string) Collection
}

// chunkIDs splits ids into consecutive batches of at most size
// elements, preserving order.
func chunkIDs(ids []string, size int) [][]string {
	var chunks [][]string
	for len(ids) > size {
		chunks = append(chunks, ids[:size])
		ids = ids[size:]
	}
	if len(ids) > 0 {
		chunks = append(chunks, ids)
	}
	return chunks
}
