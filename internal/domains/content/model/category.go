package model

import "strings"

// Category identifies one of the six managed content collections.
type Category string

const (
	CategoryServices   Category = "services"
	CategoryProducts   Category = "products"
	CategoryEvents     Category = "events"
	CategoryPromotions Category = "promotions"
	CategoryArticles   Category = "articles"
	CategoryFeatured   Category = "featured"
)

type categoryInfo struct {
	slug  string
	title string
}

var categories = map[Category]categoryInfo{
	CategoryServices:   {slug: "prestations", title: "Prestations"},
	CategoryProducts:   {slug: "produits", title: "Produits"},
	CategoryEvents:     {slug: "evenements", title: "Événements"},
	CategoryPromotions: {slug: "promotions", title: "Promotions"},
	CategoryArticles:   {slug: "articles", title: "Articles"},
	CategoryFeatured:   {slug: "mise-en-avant", title: "Mise en avant"},
}

// Categories returns every category in dashboard display order.
func Categories() []Category {
	return []Category{
		CategoryServices,
		CategoryProducts,
		CategoryEvents,
		CategoryPromotions,
		CategoryArticles,
		CategoryFeatured,
	}
}

func (c Category) Valid() bool {
	_, ok := categories[c]
	return ok
}

// Slug is the French path segment used by the admin screens.
func (c Category) Slug() string {
	return categories[c].slug
}

// Title is the section heading.
func (c Category) Title() string {
	return categories[c].title
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory accepts either the category key ("events") or its slug ("evenements").
func ParseCategory(raw string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if c := Category(key); c.Valid() {
		return c, nil
	}
	for c, info := range categories {
		if info.slug == key {
			return c, nil
		}
	}
	return "", ErrUnknownCategory
}
