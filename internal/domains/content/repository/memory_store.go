package repository

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"vitrine-backend/internal/domains/content/model"
)

// maxIDAttempts bounds retries when an injected generator returns an id already in use.
const maxIDAttempts = 8

var _ CollectionRepository = (*CollectionStore)(nil)

// CollectionStore owns the ordered items of one category.
//
// Every mutation swaps in a freshly built slice (copy-on-write), so a
// Snapshot taken earlier keeps describing the state it was taken from.
type CollectionStore struct {
	category model.Category

	mu      sync.RWMutex
	items   []model.Item
	version uint64

	now   func() time.Time
	newID func() string
}

// Option customizes a CollectionStore.
type Option func(*CollectionStore)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *CollectionStore) {
		s.now = now
	}
}

// WithIDGenerator replaces the UUID generator.
func WithIDGenerator(gen func() string) Option {
	return func(s *CollectionStore) {
		s.newID = gen
	}
}

// NewCollectionStore bootstraps a store from seed items, kept in the given order.
// The seed must hold unique non-empty ids, non-empty content and createdAt <= updatedAt.
func NewCollectionStore(category model.Category, seed []model.Item, opts ...Option) (*CollectionStore, error) {
	if !category.Valid() {
		return nil, model.ErrUnknownCategory
	}
	if err := validateSeed(seed); err != nil {
		return nil, fmt.Errorf("%s: %w", category, err)
	}

	s := &CollectionStore{
		category: category,
		items:    slices.Clone(seed),
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func validateSeed(seed []model.Item) error {
	seen := make(map[string]struct{}, len(seed))
	for i, item := range seed {
		if item.ID == "" {
			return fmt.Errorf("%w: item %d has no id", model.ErrInvalidSeed, i)
		}
		if _, dup := seen[item.ID]; dup {
			return fmt.Errorf("%w: duplicate id %q", model.ErrInvalidSeed, item.ID)
		}
		seen[item.ID] = struct{}{}
		if strings.TrimSpace(item.Content) == "" {
			return fmt.Errorf("%w: item %q has no content", model.ErrInvalidSeed, item.ID)
		}
		if item.UpdatedAt.Before(item.CreatedAt) {
			return fmt.Errorf("%w: item %q updated before it was created", model.ErrInvalidSeed, item.ID)
		}
	}
	return nil
}

func (s *CollectionStore) Category() model.Category {
	return s.category
}

func (s *CollectionStore) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Category: s.category, Version: s.version, Items: s.items}
}

func (s *CollectionStore) Get(id string) (model.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return model.Item{}, model.ErrItemNotFound
	}
	return s.items[i], nil
}

// Add stores a new item at the front of the sequence.
func (s *CollectionStore) Add(draft model.Draft) model.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	item := model.Item{
		ID:          s.uniqueID(),
		Name:        draft.Name,
		Title:       draft.Title,
		Content:     draft.Content,
		Description: draft.Description,
		ImageURL:    draft.ImageURL,
		Visible:     draft.Visible,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	next := make([]model.Item, 0, len(s.items)+1)
	next = append(next, item)
	next = append(next, s.items...)
	s.commit(next)
	return item
}

// Update merges the patch into the matching item, keeping its position.
func (s *CollectionStore) Update(id string, patch model.Patch) (model.Item, error) {
	return s.UpdateChecked(id, patch, nil)
}

// UpdateChecked is Update with a guard evaluated on the merged item under
// the write lock; a guard error aborts without changing anything.
func (s *CollectionStore) UpdateChecked(id string, patch model.Patch, check func(merged model.Item) error) (model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return model.Item{}, model.ErrItemNotFound
	}

	current := s.items[i]
	merged := patch.ApplyTo(current)
	merged.ID = current.ID
	merged.CreatedAt = current.CreatedAt
	merged.UpdatedAt = s.bump(current.UpdatedAt)

	if check != nil {
		if err := check(merged); err != nil {
			return model.Item{}, err
		}
	}

	s.replaceAt(i, merged)
	return merged, nil
}

// Delete removes the item; there is no tombstone.
func (s *CollectionStore) Delete(id string) (model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return model.Item{}, model.ErrItemNotFound
	}

	removed := s.items[i]
	next := make([]model.Item, 0, len(s.items)-1)
	next = append(next, s.items[:i]...)
	next = append(next, s.items[i+1:]...)
	s.commit(next)
	return removed, nil
}

// ToggleVisibility flips the visible flag and bumps UpdatedAt.
func (s *CollectionStore) ToggleVisibility(id string) (model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return model.Item{}, model.ErrItemNotFound
	}

	item := s.items[i]
	item.Visible = !item.Visible
	item.UpdatedAt = s.bump(item.UpdatedAt)
	s.replaceAt(i, item)
	return item, nil
}

// caller holds the lock
func (s *CollectionStore) indexOf(id string) int {
	for i, item := range s.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// caller holds the write lock
func (s *CollectionStore) replaceAt(i int, item model.Item) {
	next := slices.Clone(s.items)
	next[i] = item
	s.commit(next)
}

func (s *CollectionStore) commit(next []model.Item) {
	s.items = next
	s.version++
}

// bump returns the new UpdatedAt, never earlier than prev.
func (s *CollectionStore) bump(prev time.Time) time.Time {
	now := s.now()
	if now.Before(prev) {
		return prev
	}
	return now
}

func (s *CollectionStore) uniqueID() string {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		if id := s.newID(); id != "" && s.indexOf(id) < 0 {
			return id
		}
	}
	return uuid.NewString()
}
