package service

import (
	"context"

	content "vitrine-backend/internal/domains/content/model"
	"vitrine-backend/internal/domains/dashboard/model"
)

type ServiceInterface interface {
	Overview(ctx context.Context) (*model.Overview, error)

	// Invalidate drops the cached overview; it matches content.ChangeListener.
	Invalidate(ctx context.Context, category content.Category)
}
