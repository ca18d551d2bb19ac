package model

import (
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validationMessages(t *testing.T, err error) map[string]string {
	t.Helper()
	var errs validation.Errors
	require.ErrorAs(t, err, &errs)
	out := make(map[string]string, len(errs))
	for field, e := range errs {
		out[field] = e.Error()
	}
	return out
}

func TestCreateItemRequest_Validate(t *testing.T) {
	t.Run("valid with title only", func(t *testing.T) {
		req := CreateItemRequest{Title: "Atelier", Content: "Samedi"}
		assert.NoError(t, req.Validate())
	})

	t.Run("content and label missing", func(t *testing.T) {
		req := CreateItemRequest{Content: "   "}
		msgs := validationMessages(t, req.Validate())
		assert.Equal(t, "Le contenu est requis", msgs["content"])
		assert.Equal(t, "Le nom ou le titre est requis", msgs["name"])
	})

	t.Run("label too long", func(t *testing.T) {
		req := CreateItemRequest{Name: strings.Repeat("é", 201), Content: "x"}
		msgs := validationMessages(t, req.Validate())
		assert.Equal(t, "Le nom ne doit pas dépasser 200 caractères", msgs["name"])
	})

	t.Run("description too long", func(t *testing.T) {
		req := CreateItemRequest{Name: "A", Content: "x", Description: strings.Repeat("a", 501)}
		msgs := validationMessages(t, req.Validate())
		assert.Contains(t, msgs, "description")
	})
}

func TestCreateItemRequest_ToDraft(t *testing.T) {
	hidden := false

	draft := CreateItemRequest{Name: "  Coupe ", Content: "x", Img: "/legacy.jpg"}.ToDraft()
	assert.Equal(t, "Coupe", draft.Name)
	assert.Equal(t, "/legacy.jpg", draft.ImageURL)
	assert.True(t, draft.Visible)

	draft = CreateItemRequest{Name: "A", Content: "x", Visible: &hidden}.ToDraft()
	assert.False(t, draft.Visible)
}

func TestUpdateItemRequest_ToPatch(t *testing.T) {
	empty := ""
	legacy := "/old.jpg"
	name := "  Nom "

	p := UpdateItemRequest{Name: &name, ImageURL: &empty, ImgURL: &legacy}.ToPatch()
	require.NotNil(t, p.Name)
	assert.Equal(t, "Nom", *p.Name)
	require.NotNil(t, p.ImageURL)
	assert.Equal(t, "/old.jpg", *p.ImageURL)
	assert.Nil(t, p.Content)

	// clearing the image explicitly
	p = UpdateItemRequest{ImageURL: &empty}.ToPatch()
	require.NotNil(t, p.ImageURL)
	assert.Equal(t, "", *p.ImageURL)

	assert.True(t, UpdateItemRequest{}.ToPatch().IsEmpty())
}

func TestValidateItem_MergedState(t *testing.T) {
	assert.NoError(t, ValidateItem(Item{Name: "A", Content: "x"}))
	assert.Error(t, ValidateItem(Item{Content: "x"}))
	assert.Error(t, ValidateItem(Item{Title: "A"}))
}

func TestListItemsQuery(t *testing.T) {
	q := ListItemsQuery{Search: "conf", Visibility: "visible-only"}
	require.NoError(t, q.Validate())
	filter, err := q.ToFilter()
	require.NoError(t, err)
	assert.Equal(t, ListFilter{Search: "conf", Visibility: VisibilityVisible}, filter)

	for _, raw := range []string{"Visible", " HIDDEN-ONLY ", "All"} {
		q := ListItemsQuery{Visibility: raw}
		require.NoError(t, q.Validate(), raw)
		_, err := q.ToFilter()
		require.NoError(t, err, raw)
	}

	bad := ListItemsQuery{Visibility: "archived"}
	msgs := validationMessages(t, bad.Validate())
	assert.Equal(t, "Le filtre doit être all, visible ou hidden", msgs["Visibility"])
}
