// Package catalog serves the static browse data of the site: cities for the
// autocomplete widget, route cards, and pre-generated tours. Everything lives
// in process memory; an optional YAML file can override the built-in data.
package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// City is an entry of the destination list shown on the home page.
type City struct {
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Image       string  `json:"image" yaml:"image"`
	Price       string  `json:"price" yaml:"price"`
	Rating      float64 `json:"rating" yaml:"rating"`
	Duration    string  `json:"duration" yaml:"duration"`
}

// RouteCard is a featured route shown on the landing page.
type RouteCard struct {
	ID          string `json:"id" yaml:"id"`
	From        string `json:"from" yaml:"from"`
	To          string `json:"to" yaml:"to"`
	Description string `json:"description" yaml:"description"`
	Image       string `json:"image" yaml:"image"`
	Duration    string `json:"duration" yaml:"duration"`
}

// PreGeneratedTour is a finished itinerary served without calling the model.
type PreGeneratedTour struct {
	ID      string `json:"id" yaml:"id"`
	From    string `json:"from" yaml:"from"`
	To      string `json:"to" yaml:"to"`
	Content string `json:"content" yaml:"content"`
}

// Search carries the optional filters of the tour search form.
type Search struct {
	From     string `json:"from" form:"from"`
	To       string `json:"to" form:"to"`
	DateFrom string `json:"dateFrom" form:"dateFrom"`
	DateTo   string `json:"dateTo" form:"dateTo"`
	Guests   int    `json:"guests" form:"guests"`
}

// Store is a read-only in-memory catalog. It is safe for concurrent use
// because its data never changes after construction.
type Store struct {
	cities     []City
	routeCards []RouteCard
	tours      map[string]PreGeneratedTour
}

type fileData struct {
	Cities     []City             `yaml:"cities"`
	RouteCards []RouteCard        `yaml:"routeCards"`
	Tours      []PreGeneratedTour `yaml:"tours"`
}

// New returns a store with the built-in catalog data.
func New() *Store {
	return newStore(defaultCities, defaultRouteCards, defaultTours)
}

// Load returns a store from the YAML file at path, or the built-in data when
// path is empty.
func Load(path string) (*Store, error) {
	if path == "" {
		return New(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	var fd fileData
	if err := yaml.Unmarshal(data, &fd); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	return newStore(fd.Cities, fd.RouteCards, fd.Tours), nil
}

func newStore(cities []City, cards []RouteCard, tours []PreGeneratedTour) *Store {
	byID := make(map[string]PreGeneratedTour, len(tours))
	for _, t := range tours {
		byID[t.ID] = t
	}
	return &Store{cities: cities, routeCards: cards, tours: byID}
}

// Cities returns the full destination list.
func (s *Store) Cities() []City {
	return s.cities
}

// RouteCards returns the featured routes.
func (s *Store) RouteCards() []RouteCard {
	return s.routeCards
}

// TourByID looks up a pre-generated tour.
func (s *Store) TourByID(id string) (PreGeneratedTour, bool) {
	t, ok := s.tours[id]
	return t, ok
}

// SearchTours filters the destination list by the "to" field. The other
// search parameters do not narrow the static catalog.
func (s *Store) SearchTours(q Search) []City {
	if q.To == "" {
		return s.cities
	}
	needle := strings.ToLower(q.To)
	matched := make([]City, 0)
	for _, c := range s.cities {
		if strings.Contains(strings.ToLower(c.Name), needle) {
			matched = append(matched, c)
		}
	}
	return matched
}
