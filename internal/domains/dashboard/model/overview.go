package model

import (
	"fmt"
	"time"

	content "vitrine-backend/internal/domains/content/model"
)

const (
	// PreviewLimit is how many visible items each category shows on the dashboard.
	PreviewLimit = 3

	MaxLabelRunes   = 60
	MaxSummaryRunes = 120
)

// Preview is one visible item as rendered on a dashboard card.
type Preview struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Summary  string `json:"summary"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// CategoryOverview is the dashboard card of one category.
type CategoryOverview struct {
	Category     content.Category `json:"category"`
	Slug         string           `json:"slug"`
	Title        string           `json:"title"`
	Previews     []Preview        `json:"previews"`
	VisibleCount int              `json:"visible_count"`
	TotalCount   int              `json:"total_count"`
	Remaining    int              `json:"remaining"`
	MoreLabel    string           `json:"more_label,omitempty"`
}

// Overview is the aggregate view over all categories.
type Overview struct {
	Categories  []CategoryOverview `json:"categories"`
	TotalActive int                `json:"total_active"`
	GeneratedAt time.Time          `json:"generated_at"`
}

// MoreLabel renders the "+N autres" hint; empty when nothing is hidden.
func MoreLabel(remaining int) string {
	if remaining <= 0 {
		return ""
	}
	return fmt.Sprintf("+%d autres", remaining)
}

// Truncate shortens s to at most max runes, ending with an ellipsis when cut.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if max <= 0 || len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
