package model

const (
	emptyStateFiltered = "Aucun résultat"
	emptyStateNoItems  = "Aucun élément"
)

// SectionSummary describes one category for the navigation menu.
type SectionSummary struct {
	Category     Category `json:"category"`
	Slug         string   `json:"slug"`
	Title        string   `json:"title"`
	TotalCount   int      `json:"total_count"`
	VisibleCount int      `json:"visible_count"`
}

// ListResult is the listing view of one category.
type ListResult struct {
	Category Category
	Items    []Item
	Total    int
	Matched  int
	Filter   ListFilter
}

// EmptyState is the placeholder shown when nothing matched, "" otherwise.
func (r ListResult) EmptyState() string {
	if r.Matched > 0 {
		return ""
	}
	if r.Filter.Active() {
		return emptyStateFiltered
	}
	return emptyStateNoItems
}
