package service

import (
	"context"
	"time"

	content "vitrine-backend/internal/domains/content/model"
	"vitrine-backend/internal/domains/content/repository"
	"vitrine-backend/internal/domains/dashboard/model"
	"vitrine-backend/pkg/cache"
	"vitrine-backend/pkg/logger"
)

// OverviewCacheKey holds the last computed overview.
const OverviewCacheKey = "dashboard:overview"

// cachedOverview pins the overview to the store versions it was built from,
// so an entry written by a request racing a mutation is never served.
type cachedOverview struct {
	Versions map[content.Category]uint64 `json:"versions"`
	Overview model.Overview              `json:"overview"`
}

type dashboardService struct {
	collections repository.Collections
	cache       cache.Cache
	ttl         time.Duration
	now         func() time.Time
}

// NewDashboardService builds the aggregate view service.
// cache may be nil, in which case every call recomputes.
func NewDashboardService(collections repository.Collections, c cache.Cache, ttl time.Duration) ServiceInterface {
	return &dashboardService{
		collections: collections,
		cache:       c,
		ttl:         ttl,
		now:         time.Now,
	}
}

// Overview returns the per-category previews and the total of active items.
func (s *dashboardService) Overview(ctx context.Context) (*model.Overview, error) {
	snapshots := s.collections.Snapshots()
	versions := versionsOf(snapshots)

	// 1. Cache lookup, only trusted when built from the same store versions
	if s.cache != nil {
		var cached cachedOverview
		found, err := s.cache.Get(ctx, OverviewCacheKey, &cached)
		if err != nil {
			logger.Warn("Dashboard cache read failed", map[string]interface{}{"error": err.Error()})
		} else if found && sameVersions(cached.Versions, versions) {
			return &cached.Overview, nil
		}
	}

	// 2. Build from snapshots
	overview := Build(snapshots, s.now())

	// 3. Store for the next reader
	if s.cache != nil {
		entry := cachedOverview{Versions: versions, Overview: *overview}
		if err := s.cache.Set(ctx, OverviewCacheKey, entry, s.ttl); err != nil {
			logger.Warn("Dashboard cache write failed", map[string]interface{}{"error": err.Error()})
		}
	}

	return overview, nil
}

func (s *dashboardService) Invalidate(ctx context.Context, category content.Category) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, OverviewCacheKey); err != nil {
		logger.Warn("Dashboard cache invalidation failed", map[string]interface{}{
			"category": category,
			"error":    err.Error(),
		})
	}
}

// Build computes the overview from one snapshot per category.
// Only visible items count; previews keep store order.
func Build(snapshots []repository.Snapshot, now time.Time) *model.Overview {
	overview := &model.Overview{
		Categories:  make([]model.CategoryOverview, 0, len(snapshots)),
		GeneratedAt: now,
	}

	for _, snap := range snapshots {
		card := model.CategoryOverview{
			Category:   snap.Category,
			Slug:       snap.Category.Slug(),
			Title:      snap.Category.Title(),
			Previews:   make([]model.Preview, 0, model.PreviewLimit),
			TotalCount: snap.Len(),
		}

		for _, item := range snap.Items {
			if !item.Visible {
				continue
			}
			card.VisibleCount++
			if len(card.Previews) < model.PreviewLimit {
				card.Previews = append(card.Previews, previewOf(item))
			}
		}

		card.Remaining = max(card.VisibleCount-model.PreviewLimit, 0)
		card.MoreLabel = model.MoreLabel(card.Remaining)

		overview.TotalActive += card.VisibleCount
		overview.Categories = append(overview.Categories, card)
	}

	return overview
}

func previewOf(item content.Item) model.Preview {
	return model.Preview{
		ID:       item.ID,
		Label:    model.Truncate(item.DisplayName(), model.MaxLabelRunes),
		Summary:  model.Truncate(item.Summary(), model.MaxSummaryRunes),
		ImageURL: item.ImageURL,
	}
}

func versionsOf(snapshots []repository.Snapshot) map[content.Category]uint64 {
	out := make(map[content.Category]uint64, len(snapshots))
	for _, snap := range snapshots {
		out[snap.Category] = snap.Version
	}
	return out
}

func sameVersions(a, b map[content.Category]uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for category, v := range b {
		if a[category] != v {
			return false
		}
	}
	return true
}
