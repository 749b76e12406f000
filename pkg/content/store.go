package content

import (
	"github.com/draftmark/contentstate/internal/ulid"
)

// EntityStore owns every entity created while decoding. Keys are issued by
// the injected generator, so two stores (or two decodes against the same
// store) never hand out the same identity twice as long as the generator
// itself is unique.
//
// The store is not safe for concurrent use; callers decoding in parallel
// must use separate stores or serialize access.
type EntityStore struct {
	generateKey func() string
	entities    map[string]*Entity
	order       []string
}

func NewEntityStore() *EntityStore {
	return NewEntityStoreWithGenerator(ulid.GenerateID)
}

// NewEntityStoreWithGenerator builds a store issuing keys from generate.
// Useful for deterministic keys in tests.
func NewEntityStoreWithGenerator(generate func() string) *EntityStore {
	return &EntityStore{
		generateKey: generate,
		entities:    make(map[string]*Entity),
	}
}

// Create registers a new entity and returns its interned key. The data map
// is copied, so later mutation of the caller's map cannot reach the entity.
func (s *EntityStore) Create(entityType string, mutability Mutability, data map[string]any) string {
	copied := make(map[string]any, len(data))
	for k, v := range data {
		copied[k] = v
	}
	data = copied

	key := s.generateKey()
	s.entities[key] = &Entity{
		key:        key,
		entityType: entityType,
		mutability: mutability,
		data:       data,
	}
	s.order = append(s.order, key)

	return key
}

func (s *EntityStore) Get(key string) (*Entity, bool) {
	e, ok := s.entities[key]
	return e, ok
}

func (s *EntityStore) Len() int {
	return len(s.entities)
}

// Keys returns the interned keys in creation order.
func (s *EntityStore) Keys() []string {
	keys := make([]string, len(s.order))
	copy(keys, s.order)
	return keys
}
