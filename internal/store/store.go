// Package store holds the menu, cart and filter state of a single ordering
// session and derives the views a UI binds to.
//
// A Store is not safe for concurrent use. Callers that share one across
// goroutines must serialize access (see the session package).
package store

import (
	"math"
	"strings"

	"github.com/Lixing-Zhang/kart-challenge/menucart/internal/models"
	"github.com/shopspring/decimal"
)

// Store holds the catalog, the cart and the search/category filter
type Store struct {
	catalog          []models.MenuItem
	cart             []models.CartItem
	searchQuery      string
	selectedCategory string

	listeners map[int]func(Change)
	nextID    int
}

// New creates a store seeded with the given catalog.
// The catalog is copied and never changes afterwards.
func New(catalog []models.MenuItem) *Store {
	items := make([]models.MenuItem, len(catalog))
	for i, item := range catalog {
		items[i] = item.Clone()
	}

	return &Store{
		catalog:          items,
		cart:             make([]models.CartItem, 0),
		selectedCategory: models.CategoryAll,
		listeners:        make(map[int]func(Change)),
	}
}

// Catalog returns a copy of the seeded menu items in catalog order
func (s *Store) Catalog() []models.MenuItem {
	items := make([]models.MenuItem, len(s.catalog))
	for i, item := range s.catalog {
		items[i] = item.Clone()
	}
	return items
}

// Cart returns a copy of the cart entries in insertion order
func (s *Store) Cart() []models.CartItem {
	items := make([]models.CartItem, len(s.cart))
	for i, item := range s.cart {
		items[i] = item.Clone()
	}
	return items
}

// SearchQuery returns the current free-text search query
func (s *Store) SearchQuery() string {
	return s.searchQuery
}

// SelectedCategory returns the category filter, "All" by default
func (s *Store) SelectedCategory() string {
	return s.selectedCategory
}

// SetSearchQuery assigns the free-text search query
func (s *Store) SetSearchQuery(query string) {
	if s.searchQuery == query {
		return
	}
	s.searchQuery = query
	s.notify(Change{Kind: KindFilter, Action: ActionSetSearchQuery})
}

// SetSelectedCategory assigns the category filter. Any string is accepted;
// a value that names no catalog category simply filters everything out.
func (s *Store) SetSelectedCategory(category string) {
	if s.selectedCategory == category {
		return
	}
	s.selectedCategory = category
	s.notify(Change{Kind: KindFilter, Action: ActionSetCategory})
}

// Categories returns "All" followed by the distinct catalog categories
// in first-seen order
func (s *Store) Categories() []string {
	seen := make(map[models.Category]bool, len(s.catalog))
	categories := []string{models.CategoryAll}

	for _, item := range s.catalog {
		if seen[item.Category] {
			continue
		}
		seen[item.Category] = true
		categories = append(categories, string(item.Category))
	}

	return categories
}

// FilteredMenu returns the available catalog items matching the search
// query and the selected category, preserving catalog order
func (s *Store) FilteredMenu() []models.MenuItem {
	query := strings.ToLower(s.searchQuery)
	filtered := make([]models.MenuItem, 0, len(s.catalog))

	for _, item := range s.catalog {
		if !item.Available {
			continue
		}
		if s.selectedCategory != models.CategoryAll && string(item.Category) != s.selectedCategory {
			continue
		}
		if !strings.Contains(strings.ToLower(item.Name), query) &&
			!strings.Contains(strings.ToLower(item.Description), query) {
			continue
		}
		filtered = append(filtered, item.Clone())
	}

	return filtered
}

// CartTotal returns the sum of price × quantity over the cart
func (s *Store) CartTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.cart {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	return total
}

// CartCount returns the total number of units in the cart, saturating at
// math.MaxInt
func (s *Store) CartCount() int {
	count := 0
	for _, item := range s.cart {
		count = addQuantity(count, item.Quantity)
	}
	return count
}

// addQuantity returns a+b clamped to math.MaxInt. a is never negative.
func addQuantity(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

// Snapshot captures the current state and every derived view
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		SearchQuery:      s.searchQuery,
		SelectedCategory: s.selectedCategory,
		Categories:       s.Categories(),
		FilteredMenu:     s.FilteredMenu(),
		Cart:             s.Cart(),
		CartTotal:        s.CartTotal(),
		CartCount:        s.CartCount(),
	}
}

func (s *Store) indexOf(itemID int64) int {
	for i := range s.cart {
		if s.cart[i].ID == itemID {
			return i
		}
	}
	return -1
}
