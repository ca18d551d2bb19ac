package model

import "strings"

// Visibility selects items by their visible flag.
type Visibility string

const (
	VisibilityAll     Visibility = "all"
	VisibilityVisible Visibility = "visible"
	VisibilityHidden  Visibility = "hidden"
)

// ParseVisibility maps query values to a Visibility. Empty means all.
func ParseVisibility(raw string) (Visibility, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "all":
		return VisibilityAll, nil
	case "visible", "visible-only":
		return VisibilityVisible, nil
	case "hidden", "hidden-only":
		return VisibilityHidden, nil
	}
	return "", ErrInvalidVisibility
}

func (v Visibility) Matches(visible bool) bool {
	switch v {
	case VisibilityVisible:
		return visible
	case VisibilityHidden:
		return !visible
	default:
		return true
	}
}

// ListFilter is the listing view projection: a search term AND a visibility filter.
type ListFilter struct {
	Search     string
	Visibility Visibility
}

// Active reports whether the filter can hide anything.
func (f ListFilter) Active() bool {
	return f.Search != "" || (f.Visibility != "" && f.Visibility != VisibilityAll)
}

// Matches applies the case-insensitive search on the display label or the
// content, combined with the visibility filter.
func (f ListFilter) Matches(item Item) bool {
	if !f.Visibility.Matches(item.Visible) {
		return false
	}
	if f.Search == "" {
		return true
	}
	term := strings.ToLower(f.Search)
	return strings.Contains(strings.ToLower(item.DisplayName()), term) ||
		strings.Contains(strings.ToLower(item.Content), term)
}

// Apply keeps the matching items in their original order.
func (f ListFilter) Apply(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if f.Matches(item) {
			out = append(out, item)
		}
	}
	return out
}
