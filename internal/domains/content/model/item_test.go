package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItem_UnmarshalLegacyImageFields(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "imageUrl",
			raw:  `{"id":"1","content":"x","imageUrl":"/a.jpg"}`,
			want: "/a.jpg",
		},
		{
			name: "imgurl",
			raw:  `{"id":"1","content":"x","imgurl":"/b.jpg"}`,
			want: "/b.jpg",
		},
		{
			name: "img",
			raw:  `{"id":"1","content":"x","img":"/c.jpg"}`,
			want: "/c.jpg",
		},
		{
			name: "imageUrl wins over legacy",
			raw:  `{"id":"1","content":"x","imageUrl":"/a.jpg","img":"/c.jpg"}`,
			want: "/a.jpg",
		},
		{
			name: "blank imageUrl falls through",
			raw:  `{"id":"1","content":"x","imageUrl":" ","imgurl":"/b.jpg"}`,
			want: "/b.jpg",
		},
		{
			name: "none",
			raw:  `{"id":"1","content":"x"}`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var item Item
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &item))
			assert.Equal(t, tt.want, item.ImageURL)
			assert.Equal(t, "1", item.ID)
		})
	}
}

func TestItem_MarshalUsesCanonicalImageField(t *testing.T) {
	data, err := json.Marshal(Item{ID: "1", Content: "x", ImageURL: "/a.jpg"})
	require.NoError(t, err)

	assert.Contains(t, string(data), `"imageUrl":"/a.jpg"`)
	assert.NotContains(t, string(data), "imgurl")
}

func TestItem_DisplayNameAndSummary(t *testing.T) {
	assert.Equal(t, "Nom", Item{Name: "Nom", Title: "Titre"}.DisplayName())
	assert.Equal(t, "Titre", Item{Title: "Titre"}.DisplayName())
	assert.Equal(t, "Court", Item{Description: "Court", Content: "Long"}.Summary())
	assert.Equal(t, "Long", Item{Content: "Long"}.Summary())

	// only an empty name falls back; whitespace is still a name
	assert.Equal(t, "  ", Item{Name: "  ", Title: "Titre"}.DisplayName())
	assert.Equal(t, " ", Item{Description: " ", Content: "Long"}.Summary())
}

func TestPatch_ApplyTo(t *testing.T) {
	name := "Nouveau"
	visible := false
	item := Item{ID: "1", Name: "Ancien", Content: "x", Visible: true}

	got := Patch{Name: &name, Visible: &visible}.ApplyTo(item)

	assert.Equal(t, "Nouveau", got.Name)
	assert.Equal(t, "x", got.Content)
	assert.False(t, got.Visible)
	assert.Equal(t, "Ancien", item.Name)
}

func TestPatch_IsEmpty(t *testing.T) {
	assert.True(t, Patch{}.IsEmpty())
	title := ""
	assert.False(t, Patch{Title: &title}.IsEmpty())
}
