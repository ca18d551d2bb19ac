package model

import (
	"encoding/json"
	"strings"
	"time"
)

// Item is one record of a content collection (service, product, event, ...).
//
// Name and Title are both optional display labels; collections historically
// use one or the other. ID and CreatedAt never change once assigned.
type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name,omitempty"`
	Title       string    `json:"title,omitempty"`
	Content     string    `json:"content"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Visible     bool      `json:"visible"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// UnmarshalJSON accepts the legacy image spellings "imgurl" and "img"
// next to "imageUrl"; the first non-empty one wins.
func (i *Item) UnmarshalJSON(data []byte) error {
	type plain Item
	var aux struct {
		plain
		ImgURL string `json:"imgurl"`
		Img    string `json:"img"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*i = Item(aux.plain)
	i.ImageURL = FirstNonEmpty(aux.plain.ImageURL, aux.ImgURL, aux.Img)
	return nil
}

// DisplayName returns the name, falling back to the title when the name is empty.
func (i Item) DisplayName() string {
	return orElse(i.Name, i.Title)
}

// Summary returns the short description, falling back to the content body.
func (i Item) Summary() string {
	return orElse(i.Description, i.Content)
}

func orElse(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

// Draft is an item that has not been stored yet: no ID, no timestamps.
type Draft struct {
	Name        string
	Title       string
	Content     string
	Description string
	ImageURL    string
	Visible     bool
}

// Patch carries partial field overrides; nil fields are left untouched.
type Patch struct {
	Name        *string
	Title       *string
	Content     *string
	Description *string
	ImageURL    *string
	Visible     *bool
}

// IsEmpty reports whether the patch overrides nothing.
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Title == nil && p.Content == nil &&
		p.Description == nil && p.ImageURL == nil && p.Visible == nil
}

// ApplyTo returns a copy of item with the patch merged in.
// Identity and timestamps are not touched here; the store owns them.
func (p Patch) ApplyTo(item Item) Item {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Title != nil {
		item.Title = *p.Title
	}
	if p.Content != nil {
		item.Content = *p.Content
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.ImageURL != nil {
		item.ImageURL = *p.ImageURL
	}
	if p.Visible != nil {
		item.Visible = *p.Visible
	}
	return item
}

// FirstNonEmpty returns the first value that is not blank.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
