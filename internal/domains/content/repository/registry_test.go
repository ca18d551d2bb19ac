package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrine-backend/internal/domains/content/model"
)

func TestNewRegistry_OneStorePerCategory(t *testing.T) {
	seed := map[model.Category][]model.Item{
		model.CategoryEvents: {
			{ID: "e1", Title: "Conférence", Content: "x", Visible: true, CreatedAt: baseTime, UpdatedAt: baseTime},
		},
	}

	reg, err := NewRegistry(seed)
	require.NoError(t, err)

	snaps := reg.Snapshots()
	require.Len(t, snaps, len(model.Categories()))
	for i, category := range model.Categories() {
		assert.Equal(t, category, snaps[i].Category)
	}

	events, err := reg.Store(model.CategoryEvents)
	require.NoError(t, err)
	assert.Equal(t, 1, events.Snapshot().Len())

	products, err := reg.Store(model.CategoryProducts)
	require.NoError(t, err)
	assert.Equal(t, 0, products.Snapshot().Len())
}

func TestRegistry_StoresAreIndependent(t *testing.T) {
	reg, err := NewRegistry(nil)
	require.NoError(t, err)

	services, err := reg.Store(model.CategoryServices)
	require.NoError(t, err)
	item := services.Add(model.Draft{Name: "Soin", Content: "x"})

	featured, err := reg.Store(model.CategoryFeatured)
	require.NoError(t, err)
	_, err = featured.Get(item.ID)
	assert.ErrorIs(t, err, model.ErrItemNotFound)
	assert.Equal(t, uint64(0), featured.Snapshot().Version)
}

func TestNewRegistry_RejectsUnknownSeedCategory(t *testing.T) {
	_, err := NewRegistry(map[model.Category][]model.Item{
		"recettes": {{ID: "1", Content: "x"}},
	})
	assert.ErrorIs(t, err, model.ErrUnknownCategory)
}

func TestRegistry_UnknownStore(t *testing.T) {
	reg, err := NewRegistry(nil)
	require.NoError(t, err)

	_, err = reg.Store("recettes")
	assert.ErrorIs(t, err, model.ErrUnknownCategory)
}
