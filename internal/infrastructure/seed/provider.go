package seed

import (
	"context"

	"vitrine-backend/internal/domains/content/model"
)

// Provider supplies the initial items of every collection, most recent first.
// It is read once at startup; nothing is written back.
type Provider interface {
	Load(ctx context.Context) (map[model.Category][]model.Item, error)
}
