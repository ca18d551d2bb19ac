package seed

import (
	"context"
	"time"

	"vitrine-backend/internal/domains/content/model"
)

const day = 24 * time.Hour

// StaticProvider serves the built-in demo catalogue.
// Timestamps are relative to the clock so the demo always looks recent.
type StaticProvider struct {
	now func() time.Time
}

func NewStaticProvider() *StaticProvider {
	return &StaticProvider{now: time.Now}
}

// NewStaticProviderAt pins the reference time
func NewStaticProviderAt(now time.Time) *StaticProvider {
	return &StaticProvider{now: func() time.Time { return now }}
}

func (p *StaticProvider) Load(_ context.Context) (map[model.Category][]model.Item, error) {
	return Fixtures(p.now()), nil
}

type fixture struct {
	category    model.Category
	id          string
	name        string
	title       string
	content     string
	description string
	imageURL    string
	visible     bool
	createdDays int
	updatedDays int
}

var fixtures = []fixture{
	{
		category:    model.CategoryServices,
		id:          "1",
		name:        "Consultation stratégique",
		content:     "Accompagnement personnalisé pour définir votre stratégie d'entreprise et optimiser vos processus",
		description: "Conseil en stratégie d'entreprise",
		imageURL:    "https://images.pexels.com/photos/3184291/pexels-photo-3184291.jpeg?auto=compress&cs=tinysrgb&w=400",
		visible:     true,
		createdDays: 7,
		updatedDays: 2,
	},
	{
		category:    model.CategoryServices,
		id:          "2",
		name:        "Formation équipe",
		content:     "Sessions de formation adaptées aux besoins de vos équipes pour améliorer leurs compétences",
		description: "Formation professionnelle sur mesure",
		imageURL:    "https://images.pexels.com/photos/3184465/pexels-photo-3184465.jpeg?auto=compress&cs=tinysrgb&w=400",
		visible:     true,
		createdDays: 5,
		updatedDays: 1,
	},
	{
		category:    model.CategoryProducts,
		id:          "3",
		name:        "Logiciel de gestion",
		content:     "Solution complète pour la gestion de votre entreprise avec modules CRM, comptabilité et RH",
		description: "Logiciel tout-en-un pour entreprises",
		imageURL:    "https://images.pexels.com/photos/574071/pexels-photo-574071.jpeg?auto=compress&cs=tinysrgb&w=400",
		visible:     true,
		createdDays: 10,
		updatedDays: 3,
	},
	{
		category:    model.CategoryProducts,
		id:          "4",
		name:        "Application mobile",
		content:     "Application mobile native pour iOS et Android permettant à vos clients d'accéder à vos services",
		description: "App mobile pour vos clients",
		imageURL:    "https://images.pexels.com/photos/607812/pexels-photo-607812.jpeg?auto=compress&cs=tinysrgb&w=400",
		visible:     false,
		createdDays: 8,
		updatedDays: 4,
	},
	{
		category:    model.CategoryEvents,
		id:          "5",
		title:       "Conférence annuelle 2024",
		content:     "Notre grande conférence annuelle sur l'innovation et les nouvelles technologies",
		description: "Événement majeur de l'année",
		imageURL:    "https://images.pexels.com/photos/2774556/pexels-photo-2774556.jpeg?auto=compress&cs=tinysrgb&w=400",
		visible:     true,
		createdDays: 15,
		updatedDays: 5,
	},
	{
		category:    model.CategoryEvents,
		id:          "6",
		title:       "Workshop créatif",
		content:     "Atelier de créativité et d'innovation collaborative pour stimuler l'esprit d'équipe",
		description: "Atelier team building",
		imageURL:    "https://images.pexels.com/photos/1181533/pexels-photo-1181533.jpeg?auto=compress&cs=tinysrgb&w=400",
		visible:     true,
		createdDays: 12,
		updatedDays: 6,
	},
	{
		category:    model.CategoryPromotions,
		id:          "7",
		name:        "Offre spéciale été",
		content:     "Profitez de notre offre exceptionnelle avec 30% de réduction sur tous nos services premium",
		description: "Réduction de 30% sur tous nos services",
		imageURL:    "https://images.pexels.com/photos/1292294/pexels-photo-1292294.jpeg?auto=compress&cs=tinysrgb&w=400",
		visible:     true,
		createdDays: 3,
		updatedDays: 1,
	},
	{
		category:    model.CategoryArticles,
		id:          "8",
		title:       "Les tendances 2024",
		content:     "Découvrez les principales tendances technologiques et business qui marqueront cette année",
		description: "Article sur les tendances de l'année",
		imageURL:    "https://images.pexels.com/photos/590016/pexels-photo-590016.jpeg?auto=compress&cs=tinysrgb&w=400",
		visible:     true,
		createdDays: 20,
		updatedDays: 7,
	},
	{
		category:    model.CategoryArticles,
		id:          "9",
		title:       "Guide du débutant",
		content:     "Tout ce qu'il faut savoir pour bien commencer dans le monde du digital et de l'entrepreneuriat",
		description: "Guide complet pour débutants",
		imageURL:    "https://images.pexels.com/photos/261662/pexels-photo-261662.jpeg?auto=compress&cs=tinysrgb&w=400",
		visible:     true,
		createdDays: 18,
		updatedDays: 8,
	},
	{
		category:    model.CategoryFeatured,
		id:          "10",
		name:        "Produit vedette",
		content:     "Notre solution la plus populaire cette semaine, plébiscitée par nos clients",
		description: "Le produit le plus populaire",
		imageURL:    "https://images.pexels.com/photos/3184339/pexels-photo-3184339.jpeg?auto=compress&cs=tinysrgb&w=400",
		visible:     true,
		createdDays: 1,
		updatedDays: 1,
	},
}

// Fixtures returns the demo catalogue with timestamps relative to now.
// Every category is present, even when it has no items.
func Fixtures(now time.Time) map[model.Category][]model.Item {
	out := make(map[model.Category][]model.Item, len(model.Categories()))
	for _, category := range model.Categories() {
		out[category] = []model.Item{}
	}

	for _, f := range fixtures {
		out[f.category] = append(out[f.category], model.Item{
			ID:          f.id,
			Name:        f.name,
			Title:       f.title,
			Content:     f.content,
			Description: f.description,
			ImageURL:    f.imageURL,
			Visible:     f.visible,
			CreatedAt:   now.Add(-time.Duration(f.createdDays) * day),
			UpdatedAt:   now.Add(-time.Duration(f.updatedDays) * day),
		})
	}
	return out
}
