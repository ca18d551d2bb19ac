package service

import (
	"context"
	"sync"

	"vitrine-backend/internal/domains/content/model"
	"vitrine-backend/internal/domains/content/repository"
	"vitrine-backend/pkg/logger"
)

type contentService struct {
	collections repository.Collections

	listenersMu sync.RWMutex
	listeners   []ChangeListener
}

// NewContentService creates the service over the six collection stores
func NewContentService(collections repository.Collections) ServiceInterface {
	return &contentService{collections: collections}
}

// Subscribe registers a listener called after each successful mutation.
func (s *contentService) Subscribe(listener ChangeListener) {
	if listener == nil {
		return
	}
	s.listenersMu.Lock()
	s.listeners = append(s.listeners, listener)
	s.listenersMu.Unlock()
}

// -------------------------------------------------------------------
// READ OPERATIONS
// -------------------------------------------------------------------

// Sections lists every category with its counters, in menu order
func (s *contentService) Sections(_ context.Context) []model.SectionSummary {
	snapshots := s.collections.Snapshots()
	out := make([]model.SectionSummary, 0, len(snapshots))
	for _, snap := range snapshots {
		out = append(out, model.SectionSummary{
			Category:     snap.Category,
			Slug:         snap.Category.Slug(),
			Title:        snap.Category.Title(),
			TotalCount:   snap.Len(),
			VisibleCount: snap.VisibleCount(),
		})
	}
	return out
}

// ListItems projects the current snapshot through the filter.
// Total is the collection size, Matched the size after filtering.
func (s *contentService) ListItems(_ context.Context, category model.Category, filter model.ListFilter) (*model.ListResult, error) {
	store, err := s.collections.Store(category)
	if err != nil {
		return nil, err
	}

	snap := store.Snapshot()
	items := filter.Apply(snap.Items)

	return &model.ListResult{
		Category: category,
		Items:    items,
		Total:    snap.Len(),
		Matched:  len(items),
		Filter:   filter,
	}, nil
}

func (s *contentService) GetItem(_ context.Context, category model.Category, id string) (*model.Item, error) {
	store, err := s.collections.Store(category)
	if err != nil {
		return nil, err
	}
	item, err := store.Get(id)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// -------------------------------------------------------------------
// MUTATIONS
// -------------------------------------------------------------------

// CreateItem validates the entry form and prepends the new item
func (s *contentService) CreateItem(ctx context.Context, category model.Category, req *model.CreateItemRequest) (*model.Item, error) {
	store, err := s.collections.Store(category)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	item := store.Add(req.ToDraft())

	logger.Info("Content item created", map[string]interface{}{
		"category": category,
		"item_id":  item.ID,
	})
	s.notify(ctx, category)
	return &item, nil
}

// UpdateItem merges the request into the stored item.
// The entry form rules are checked against the merged result before commit.
func (s *contentService) UpdateItem(ctx context.Context, category model.Category, id string, req *model.UpdateItemRequest) (*model.Item, error) {
	store, err := s.collections.Store(category)
	if err != nil {
		return nil, err
	}

	item, err := store.UpdateChecked(id, req.ToPatch(), model.ValidateItem)
	if err != nil {
		return nil, err
	}

	logger.Info("Content item updated", map[string]interface{}{
		"category": category,
		"item_id":  item.ID,
	})
	s.notify(ctx, category)
	return &item, nil
}

func (s *contentService) DeleteItem(ctx context.Context, category model.Category, id string) error {
	store, err := s.collections.Store(category)
	if err != nil {
		return err
	}
	if _, err := store.Delete(id); err != nil {
		return err
	}

	logger.Info("Content item deleted", map[string]interface{}{
		"category": category,
		"item_id":  id,
	})
	s.notify(ctx, category)
	return nil
}

func (s *contentService) ToggleVisibility(ctx context.Context, category model.Category, id string) (*model.Item, error) {
	store, err := s.collections.Store(category)
	if err != nil {
		return nil, err
	}

	item, err := store.ToggleVisibility(id)
	if err != nil {
		return nil, err
	}

	logger.Info("Content item visibility toggled", map[string]interface{}{
		"category": category,
		"item_id":  item.ID,
		"visible":  item.Visible,
	})
	s.notify(ctx, category)
	return &item, nil
}

func (s *contentService) notify(ctx context.Context, category model.Category) {
	s.listenersMu.RLock()
	listeners := s.listeners
	s.listenersMu.RUnlock()

	for _, listener := range listeners {
		listener(ctx, category)
	}
}
