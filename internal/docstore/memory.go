package docstore

import (
	"context"
	"reflect"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemStore is an in-process Store used as the test substitute for the
// relational backend. It applies the same query semantics: equality
// filters, ordering by document id, start-after pagination and
// bounded-batch bulk deletes.
type MemStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]map[string]any
}

func NewMemStore() *MemStore {
	return &MemStore{collections: make(map[string]map[string]map[string]any)}
}

func (s *MemStore) Collection(name string) Collection {
	return &memCollection{store: s, name: name}
}

type memCollection struct {
	store *MemStore
	name  string
}

func (c *memCollection) docs() map[string]map[string]any {
	docs, ok := c.store.collections[c.name]
	if !ok {
		docs = make(map[string]map[string]any)
		c.store.collections[c.name] = docs
	}
	return docs
}

func (c *memCollection) NewID() string {
	return uuid.NewString()
}

func (c *memCollection) Set(ctx context.Context, id string, data map[string]any) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	docs := c.docs()
	if _, exists := docs[id]; exists {
		return ErrDuplicateID
	}
	docs[id] = copyDoc(data)
	return nil
}

func (c *memCollection) Get(ctx context.Context, id string) (Doc, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	data, ok := c.store.collections[c.name][id]
	if !ok {
		return Doc{}, ErrNotFound
	}
	return Doc{ID: id, Data: copyDoc(data)}, nil
}

func (c *memCollection) Find(ctx context.Context, q Query) ([]Doc, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	return c.match(q), nil
}

func (c *memCollection) Update(ctx context.Context, id string, fields map[string]any) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	data, ok := c.store.collections[c.name][id]
	if !ok {
		return ErrNotFound
	}
	for k, v := range fields {
		data[k] = v
	}
	return nil
}

func (c *memCollection) Delete(ctx context.Context, id string) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	docs := c.store.collections[c.name]
	if _, ok := docs[id]; !ok {
		return ErrNotFound
	}
	delete(docs, id)
	return nil
}

func (c *memCollection) DeleteMatching(ctx context.Context, q Query) ([]string, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	matched := c.match(q)
	ids := make([]string, 0, len(matched))
	for _, doc := range matched {
		ids = append(ids, doc.ID)
	}

	docs := c.store.collections[c.name]
	for _, chunk := range chunkIDs(ids, BatchSize) {
		for _, id := range chunk {
			delete(docs, id)
		}
	}
	return ids, nil
}

// match evaluates a query under the caller's lock, ordered by id.
func (c *memCollection) match(q Query) []Doc {
	ids := make([]string, 0, len(c.store.collections[c.name]))
	for id := range c.store.collections[c.name] {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var out []Doc
	for _, id := range ids {
		if q.startAfter != "" && id <= q.startAfter {
			continue
		}
		data := c.store.collections[c.name][id]
		if !matches(data, q.filters) {
			continue
		}
		out = append(out, Doc{ID: id, Data: copyDoc(data)})
		if q.limit > 0 && len(out) == q.limit {
			break
		}
	}
	return out
}

func matches(data map[string]any, filters []filter) bool {
	for _, f := range filters {
		v, ok := data[f.field]
		if !ok || !reflect.DeepEqual(v, f.value) {
			return false
		}
	}
	return true
}

func copyDoc(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = v
	}
	return out
}
