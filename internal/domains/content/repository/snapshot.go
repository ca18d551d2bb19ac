package repository

import "vitrine-backend/internal/domains/content/model"

// Snapshot is the state of one collection at a point in time, most recent item first.
// Items must be treated as read-only: the backing array is shared with the store's history.
type Snapshot struct {
	Category model.Category
	Version  uint64
	Items    []model.Item
}

func (s Snapshot) Len() int {
	return len(s.Items)
}

// VisibleCount counts the items flagged visible.
func (s Snapshot) VisibleCount() int {
	n := 0
	for _, item := range s.Items {
		if item.Visible {
			n++
		}
	}
	return n
}

func (s Snapshot) Find(id string) (model.Item, bool) {
	for _, item := range s.Items {
		if item.ID == id {
			return item, true
		}
	}
	return model.Item{}, false
}
