package service

import (
	"context"

	"github.com/xuri/excelize/v2"

	"vitrine-backend/internal/domains/content/model"
)

// ChangeListener is notified after every committed mutation of a category.
type ChangeListener func(ctx context.Context, category model.Category)

type ServiceInterface interface {
	Sections(ctx context.Context) []model.SectionSummary
	ListItems(ctx context.Context, category model.Category, filter model.ListFilter) (*model.ListResult, error)
	GetItem(ctx context.Context, category model.Category, id string) (*model.Item, error)

	CreateItem(ctx context.Context, category model.Category, req *model.CreateItemRequest) (*model.Item, error)
	UpdateItem(ctx context.Context, category model.Category, id string, req *model.UpdateItemRequest) (*model.Item, error)
	DeleteItem(ctx context.Context, category model.Category, id string) error
	ToggleVisibility(ctx context.Context, category model.Category, id string) (*model.Item, error)

	ExportItems(ctx context.Context, category model.Category, filter model.ListFilter) (*excelize.File, int, error)

	Subscribe(listener ChangeListener)
}
