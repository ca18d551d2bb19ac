package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		raw     string
		want    Category
		wantErr bool
	}{
		{raw: "events", want: CategoryEvents},
		{raw: "evenements", want: CategoryEvents},
		{raw: " Prestations ", want: CategoryServices},
		{raw: "mise-en-avant", want: CategoryFeatured},
		{raw: "featured", want: CategoryFeatured},
		{raw: "recettes", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseCategory(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownCategory)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategories_AllValidWithMetadata(t *testing.T) {
	cats := Categories()
	assert.Len(t, cats, 6)
	for _, c := range cats {
		assert.True(t, c.Valid())
		assert.NotEmpty(t, c.Slug())
		assert.NotEmpty(t, c.Title())
	}
}
