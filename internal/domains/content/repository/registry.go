package repository

import (
	"fmt"

	"vitrine-backend/internal/domains/content/model"
)

var _ Collections = (*Registry)(nil)

// Registry holds the six independent collection stores.
// Stores never coordinate; each one has its own lock.
type Registry struct {
	stores map[model.Category]*CollectionStore
}

// NewRegistry builds one store per category from the initial data.
// Categories missing from seed start empty; unknown categories are rejected.
func NewRegistry(seed map[model.Category][]model.Item, opts ...Option) (*Registry, error) {
	for category := range seed {
		if !category.Valid() {
			return nil, fmt.Errorf("seed category %q: %w", category, model.ErrUnknownCategory)
		}
	}

	r := &Registry{stores: make(map[model.Category]*CollectionStore, len(model.Categories()))}
	for _, category := range model.Categories() {
		store, err := NewCollectionStore(category, seed[category], opts...)
		if err != nil {
			return nil, err
		}
		r.stores[category] = store
	}
	return r, nil
}

func (r *Registry) Store(category model.Category) (CollectionRepository, error) {
	store, ok := r.stores[category]
	if !ok {
		return nil, model.ErrUnknownCategory
	}
	return store, nil
}

// Snapshots returns one snapshot per category in display order.
func (r *Registry) Snapshots() []Snapshot {
	out := make([]Snapshot, 0, len(r.stores))
	for _, category := range model.Categories() {
		out = append(out, r.stores[category].Snapshot())
	}
	return out
}
