package repository

import "vitrine-backend/internal/domains/content/model"

// CollectionRepository is the contract of one category's item sequence.
// Implementations linearize mutations; snapshots handed out are never modified afterwards.
type CollectionRepository interface {
	Category() model.Category
	Snapshot() Snapshot
	Get(id string) (model.Item, error)

	Add(draft model.Draft) model.Item
	Update(id string, patch model.Patch) (model.Item, error)
	UpdateChecked(id string, patch model.Patch, check func(merged model.Item) error) (model.Item, error)
	Delete(id string) (model.Item, error)
	ToggleVisibility(id string) (model.Item, error)
}

// Collections resolves the repository owning a category.
type Collections interface {
	Store(category model.Category) (CollectionRepository, error)
	Snapshots() []Snapshot
}
