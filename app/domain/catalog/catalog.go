package catalog

import (
	"strings"

	"github.com/murayeeto/HornetHelper/app/utils/functional"
)

// Category is a fixed resource category. IDs are stable across calls and
// releases; the lookup key is the lowercased hyphenated name.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type CategorySummary struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type HomeContent struct {
	Title    string   `json:"title"`
	Message  string   `json:"message"`
	Features []string `json:"features"`
}

var categories = []Category{
	{ID: 1, Name: "Tutoring", Description: "Find peer tutors and drop-in tutoring hours for your courses."},
	{ID: 2, Name: "Study Groups", Description: "Join or start a study group with students in your major."},
	{ID: 3, Name: "Career Resources", Description: "Resume reviews, internships, and career fair schedules."},
	{ID: 4, Name: "Campus Life", Description: "Clubs, events, and everything happening on campus."},
}

type CatalogService struct {
	bySlug map[string]Category
}

func NewCatalogService() *CatalogService {
	return &CatalogService{
		bySlug: functional.ConvertToMap(categories, func(c Category) string {
			return Slug(c.Name)
		}),
	}
}

func (s *CatalogService) Categories() []CategorySummary {
	return functional.Map(categories, func(c Category) CategorySummary {
		return CategorySummary{ID: c.ID, Name: c.Name}
	})
}

func (s *CatalogService) FindByName(name string) (Category, bool) {
	category, ok := s.bySlug[Slug(name)]
	return category, ok
}

func (s *CatalogService) Home() HomeContent {
	return HomeContent{
		Title:   "Welcome to HornetHelper",
		Message: "Your one-stop platform for academic success.",
		Features: []string{
			"AI-powered study assistance",
			"Personalized video recommendations",
			"Campus resource categories",
		},
	}
}

func Slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}
