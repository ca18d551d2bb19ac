package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	maxLabelLength       = 200
	maxDescriptionLength = 500
)

// -------------------------------------------------------------------
// ENTRY FORM REQUESTS
// -------------------------------------------------------------------

// CreateItemRequest is the entry form payload for a new item.
// "imgurl" and "img" are accepted for feeds that still use the old spellings.
type CreateItemRequest struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	ImgURL      string `json:"imgurl"`
	Img         string `json:"img"`
	Visible     *bool  `json:"visible"`
}

// Validate enforces the entry form rules before anything reaches the store
func (r CreateItemRequest) Validate() error {
	return ValidateItemFields(r.Name, r.Title, r.Content, r.Description)
}

// ToDraft converts the request; items are visible unless told otherwise.
func (r CreateItemRequest) ToDraft() Draft {
	visible := true
	if r.Visible != nil {
		visible = *r.Visible
	}
	return Draft{
		Name:        strings.TrimSpace(r.Name),
		Title:       strings.TrimSpace(r.Title),
		Content:     r.Content,
		Description: strings.TrimSpace(r.Description),
		ImageURL:    FirstNonEmpty(r.ImageURL, r.ImgURL, r.Img),
		Visible:     visible,
	}
}

// UpdateItemRequest carries partial overrides for an existing item.
type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	ImgURL      *string `json:"imgurl"`
	Img         *string `json:"img"`
	Visible     *bool   `json:"visible"`
}

// ToPatch converts the request into a store patch
func (r UpdateItemRequest) ToPatch() Patch {
	p := Patch{
		Name:        trimmed(r.Name),
		Title:       trimmed(r.Title),
		Content:     r.Content,
		Description: trimmed(r.Description),
		Visible:     r.Visible,
	}
	for _, candidate := range []*string{r.ImageURL, r.ImgURL, r.Img} {
		if candidate != nil {
			p.ImageURL = candidate
			if strings.TrimSpace(*candidate) != "" {
				break
			}
		}
	}
	return p
}

// ValidateItem applies the entry form rules to a fully merged item, so a
// patch cannot blank the content or remove both labels.
func ValidateItem(item Item) error {
	return ValidateItemFields(item.Name, item.Title, item.Content, item.Description)
}

// ValidateItemFields checks that content is present, that at least one of
// name/title is present, and the length limits.
func ValidateItemFields(name, title, content, description string) error {
	labelMissing := strings.TrimSpace(name) == "" && strings.TrimSpace(title) == ""

	return validation.Errors{
		"content": validation.Validate(strings.TrimSpace(content),
			validation.Required.Error("Le contenu est requis"),
		),
		"name": validation.Validate(strings.TrimSpace(name),
			validation.When(labelMissing, validation.Required.Error("Le nom ou le titre est requis")),
			validation.RuneLength(0, maxLabelLength).Error("Le nom ne doit pas dépasser 200 caractères"),
		),
		"title": validation.Validate(strings.TrimSpace(title),
			validation.RuneLength(0, maxLabelLength).Error("Le titre ne doit pas dépasser 200 caractères"),
		),
		"description": validation.Validate(description,
			validation.RuneLength(0, maxDescriptionLength).Error("La description ne doit pas dépasser 500 caractères"),
		),
	}.Filter()
}

// -------------------------------------------------------------------
// LISTING QUERY
// -------------------------------------------------------------------

// ListItemsQuery is bound from the listing query string.
type ListItemsQuery struct {
	Search     string `form:"search"`
	Visibility string `form:"visibility"`
}

func (q ListItemsQuery) Validate() error {
	// same normalisation as ParseVisibility
	q.Visibility = strings.ToLower(strings.TrimSpace(q.Visibility))
	return validation.ValidateStruct(&q,
		validation.Field(&q.Visibility,
			validation.In("", "all", "visible", "hidden", "visible-only", "hidden-only").
				Error("Le filtre doit être all, visible ou hidden"),
		),
		validation.Field(&q.Search, validation.RuneLength(0, 200)),
	)
}

// ToFilter converts a validated query into a ListFilter
func (q ListItemsQuery) ToFilter() (ListFilter, error) {
	visibility, err := ParseVisibility(q.Visibility)
	if err != nil {
		return ListFilter{}, err
	}
	return ListFilter{Search: q.Search, Visibility: visibility}, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
