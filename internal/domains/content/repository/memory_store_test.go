package repository

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"vitrine-backend/internal/domains/content/model"
)

var baseTime = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

// stepClock advances by one second on every call.
type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

func (c *stepClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func newTestStore(t *testing.T, seed []model.Item) (*CollectionStore, *stepClock) {
	t.Helper()
	clock := &stepClock{now: baseTime}
	store, err := NewCollectionStore(model.CategoryEvents, seed, WithClock(clock.Now))
	require.NoError(t, err)
	return store, clock
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestCollectionStore_AddPrependsNewest(t *testing.T) {
	store, _ := newTestStore(t, nil)

	var added []model.Item
	for i := 0; i < 5; i++ {
		added = append(added, store.Add(model.Draft{
			Title:   fmt.Sprintf("Item %d", i),
			Content: "contenu",
			Visible: true,
		}))
	}

	snap := store.Snapshot()
	require.Equal(t, 5, snap.Len())
	for i, item := range snap.Items {
		assert.Equal(t, added[len(added)-1-i].ID, item.ID, "position %d", i)
	}
	assert.Equal(t, uint64(5), snap.Version)
}

func TestCollectionStore_AddAssignsIdentity(t *testing.T) {
	store, _ := newTestStore(t, nil)

	item := store.Add(model.Draft{Name: "Coupe", Content: "Coupe classique"})

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, item.CreatedAt, item.UpdatedAt)
	assert.Equal(t, baseTime.Add(time.Second), item.CreatedAt)
	assert.False(t, item.Visible)
}

func TestCollectionStore_AddRetriesDuplicateIDs(t *testing.T) {
	ids := []string{"a", "a", "", "b"}
	gen := func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}
	store, err := NewCollectionStore(model.CategoryProducts, nil, WithIDGenerator(gen))
	require.NoError(t, err)

	first := store.Add(model.Draft{Name: "A", Content: "x"})
	second := store.Add(model.Draft{Name: "B", Content: "y"})

	assert.Equal(t, "a", first.ID)
	assert.Equal(t, "b", second.ID)
}

func TestCollectionStore_UpdateMergesAndKeepsPosition(t *testing.T) {
	store, _ := newTestStore(t, nil)
	oldest := store.Add(model.Draft{Title: "Premier", Content: "un", Visible: true})
	middle := store.Add(model.Draft{Title: "Deuxième", Content: "deux", Visible: true})
	store.Add(model.Draft{Title: "Troisième", Content: "trois", Visible: true})

	updated, err := store.Update(middle.ID, model.Patch{Content: strPtr("deux bis")})
	require.NoError(t, err)

	assert.Equal(t, "Deuxième", updated.Title)
	assert.Equal(t, "deux bis", updated.Content)
	assert.Equal(t, middle.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(middle.UpdatedAt))

	snap := store.Snapshot()
	require.Equal(t, 3, snap.Len())
	assert.Equal(t, middle.ID, snap.Items[1].ID)
	assert.Equal(t, oldest.ID, snap.Items[2].ID)
}

func TestCollectionStore_CreatedAtNeverChanges(t *testing.T) {
	store, _ := newTestStore(t, nil)
	item := store.Add(model.Draft{Name: "Stable", Content: "x"})

	for i := 0; i < 3; i++ {
		_, err := store.Update(item.ID, model.Patch{Name: strPtr(fmt.Sprintf("Stable %d", i))})
		require.NoError(t, err)
		_, err = store.ToggleVisibility(item.ID)
		require.NoError(t, err)
	}

	got, err := store.Get(item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.CreatedAt, got.CreatedAt)
}

func TestCollectionStore_UpdatedAtIsMonotonic(t *testing.T) {
	store, clock := newTestStore(t, nil)
	item := store.Add(model.Draft{Name: "Horloge", Content: "x"})

	// clock jumps backwards
	clock.Set(baseTime.Add(-time.Hour))

	toggled, err := store.ToggleVisibility(item.ID)
	require.NoError(t, err)
	assert.False(t, toggled.UpdatedAt.Before(item.UpdatedAt))

	updated, err := store.Update(item.ID, model.Patch{Name: strPtr("Horloge 2")})
	require.NoError(t, err)
	assert.False(t, updated.UpdatedAt.Before(toggled.UpdatedAt))
}

func TestCollectionStore_HideThenToggleRoundTrip(t *testing.T) {
	store, _ := newTestStore(t, nil)
	item := store.Add(model.Draft{Title: "Gala", Content: "Soirée", Visible: true})

	hidden, err := store.Update(item.ID, model.Patch{Visible: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, hidden.Visible)

	toggled, err := store.ToggleVisibility(item.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Visible)
}

func TestCollectionStore_MutationsAfterDelete(t *testing.T) {
	store, _ := newTestStore(t, nil)
	keep := store.Add(model.Draft{Name: "Garder", Content: "x"})
	gone := store.Add(model.Draft{Name: "Supprimer", Content: "y"})

	removed, err := store.Delete(gone.ID)
	require.NoError(t, err)
	assert.Equal(t, gone.ID, removed.ID)

	before := store.Snapshot()
	require.Equal(t, 1, before.Len())

	_, err = store.Update(gone.ID, model.Patch{Name: strPtr("fantôme")})
	assert.ErrorIs(t, err, model.ErrItemNotFound)
	_, err = store.ToggleVisibility(gone.ID)
	assert.ErrorIs(t, err, model.ErrItemNotFound)
	_, err = store.Delete(gone.ID)
	assert.ErrorIs(t, err, model.ErrItemNotFound)
	_, err = store.Get(gone.ID)
	assert.ErrorIs(t, err, model.ErrItemNotFound)

	after := store.Snapshot()
	assert.Equal(t, before.Version, after.Version)
	assert.Equal(t, 1, after.Len())
	assert.Equal(t, keep.ID, after.Items[0].ID)
}

func TestCollectionStore_UpdateCheckedRejectsWithoutChange(t *testing.T) {
	store, _ := newTestStore(t, nil)
	item := store.Add(model.Draft{Name: "Massage", Content: "Relaxant"})
	before := store.Snapshot()

	_, err := store.UpdateChecked(item.ID, model.Patch{Content: strPtr("  ")}, model.ValidateItem)
	require.Error(t, err)

	after := store.Snapshot()
	assert.Equal(t, before.Version, after.Version)
	if diff := cmp.Diff(before.Items, after.Items); diff != "" {
		t.Errorf("rejected update changed the store (-before +after):\n%s", diff)
	}
}

func TestCollectionStore_SnapshotsAreImmutable(t *testing.T) {
	store, _ := newTestStore(t, nil)
	a := store.Add(model.Draft{Name: "A", Content: "a", Visible: true})
	store.Add(model.Draft{Name: "B", Content: "b", Visible: true})

	snap := store.Snapshot()
	frozen := append([]model.Item(nil), snap.Items...)

	_, err := store.ToggleVisibility(a.ID)
	require.NoError(t, err)
	_, err = store.Update(a.ID, model.Patch{Name: strPtr("A2")})
	require.NoError(t, err)
	store.Add(model.Draft{Name: "C", Content: "c"})
	_, err = store.Delete(a.ID)
	require.NoError(t, err)

	if diff := cmp.Diff(frozen, snap.Items); diff != "" {
		t.Errorf("earlier snapshot was modified (-want +got):\n%s", diff)
	}
	assert.Greater(t, store.Snapshot().Version, snap.Version)
}

func TestCollectionStore_SeedKeepsOrder(t *testing.T) {
	seed := []model.Item{
		{ID: "1", Title: "Un", Content: "x", CreatedAt: baseTime, UpdatedAt: baseTime},
		{ID: "2", Title: "Deux", Content: "y", CreatedAt: baseTime, UpdatedAt: baseTime},
	}
	store, _ := newTestStore(t, seed)

	seed[0].Title = "modifié"

	snap := store.Snapshot()
	require.Equal(t, 2, snap.Len())
	assert.Equal(t, "Un", snap.Items[0].Title)
	assert.Equal(t, "2", snap.Items[1].ID)
	assert.Equal(t, uint64(0), snap.Version)
}

func TestNewCollectionStore_InvalidSeed(t *testing.T) {
	tests := []struct {
		name string
		seed []model.Item
	}{
		{
			name: "missing id",
			seed: []model.Item{{Content: "x"}},
		},
		{
			name: "duplicate id",
			seed: []model.Item{{ID: "1", Content: "x"}, {ID: "1", Content: "y"}},
		},
		{
			name: "empty content",
			seed: []model.Item{{ID: "1", Content: "   "}},
		},
		{
			name: "updated before created",
			seed: []model.Item{{ID: "1", Content: "x", CreatedAt: baseTime, UpdatedAt: baseTime.Add(-time.Minute)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCollectionStore(model.CategoryArticles, tt.seed)
			assert.ErrorIs(t, err, model.ErrInvalidSeed)
		})
	}
}

func TestNewCollectionStore_UnknownCategory(t *testing.T) {
	_, err := NewCollectionStore(model.Category("recettes"), nil)
	assert.ErrorIs(t, err, model.ErrUnknownCategory)
}

func TestCollectionStore_ConcurrentMutations(t *testing.T) {
	store, err := NewCollectionStore(model.CategoryServices, nil)
	require.NoError(t, err)

	const writers, perWriter = 8, 25

	var g errgroup.Group
	for w := 0; w < writers; w++ {
		w := w
		g.Go(func() error {
			for i := 0; i < perWriter; i++ {
				item := store.Add(model.Draft{Name: fmt.Sprintf("w%d-%d", w, i), Content: "x"})
				if _, err := store.ToggleVisibility(item.ID); err != nil {
					return err
				}
				_ = store.Snapshot().VisibleCount()
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	snap := store.Snapshot()
	assert.Equal(t, writers*perWriter, snap.Len())
	assert.Equal(t, writers*perWriter, snap.VisibleCount())

	seen := make(map[string]struct{}, snap.Len())
	for _, item := range snap.Items {
		_, dup := seen[item.ID]
		require.False(t, dup, "duplicate id %s", item.ID)
		seen[item.ID] = struct{}{}
	}
	// 1 add + 1 toggle per item
	assert.Equal(t, uint64(2*writers*perWriter), snap.Version)
}
