package repository

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/Lixing-Zhang/kart-challenge/menucart/internal/models"
	"gopkg.in/yaml.v3"
)

var (
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrDuplicateID      = errors.New("duplicate menu item id")
)

// MenuRepository defines the interface for catalog data access
type MenuRepository interface {
	GetAll(ctx context.Context) ([]models.MenuItem, error)
	GetByID(ctx context.Context, id int64) (*models.MenuItem, error)
}

// InMemoryMenuRepository implements MenuRepository over a fixed catalog.
// Items are kept in seed order; the catalog never changes after creation.
type InMemoryMenuRepository struct {
	items []models.MenuItem
	index map[int64]int
}

// NewInMemoryMenuRepository creates a repository seeded with the default catalog
func NewInMemoryMenuRepository() *InMemoryMenuRepository {
	repo, err := newRepository(DefaultCatalog())
	if err != nil {
		// the compiled-in catalog is covered by tests
		panic(err)
	}
	return repo
}

// NewInMemoryMenuRepositoryFromFile seeds the repository from a YAML file
// holding a list of menu items
func NewInMemoryMenuRepositoryFromFile(path string) (*InMemoryMenuRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var items []models.MenuItem
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	return newRepository(items)
}

func newRepository(items []models.MenuItem) (*InMemoryMenuRepository, error) {
	index := make(map[int64]int, len(items))
	for i, item := range items {
		if _, exists := index[item.ID]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, item.ID)
		}
		if err := validateItem(item); err != nil {
			return nil, fmt.Errorf("invalid menu item %d: %w", item.ID, err)
		}
		index[item.ID] = i
	}

	return &InMemoryMenuRepository{
		items: items,
		index: index,
	}, nil
}

func validateItem(item models.MenuItem) error {
	if item.Name == "" {
		return fmt.Errorf("name is required")
	}
	if item.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	if item.PrepTime < 0 {
		return fmt.Errorf("prep time must not be negative")
	}
	if item.Calories != nil && *item.Calories < 0 {
		return fmt.Errorf("calories must not be negative")
	}
	switch item.Category {
	case models.CategoryChinese, models.CategoryWestern, models.CategoryBeverage, models.CategoryDessert:
	default:
		return fmt.Errorf("unknown category %q", item.Category)
	}
	return nil
}

// GetAll returns all menu items in catalog order
func (r *InMemoryMenuRepository) GetAll(ctx context.Context) ([]models.MenuItem, error) {
	items := make([]models.MenuItem, len(r.items))
	for i, item := range r.items {
		items[i] = item.Clone()
	}
	return items, nil
}

// GetByID returns a menu item by its ID
func (r *InMemoryMenuRepository) GetByID(ctx context.Context, id int64) (*models.MenuItem, error) {
	i, exists := r.index[id]
	if !exists {
		return nil, ErrMenuItemNotFound
	}
	item := r.items[i].Clone()
	return &item, nil
}
