package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Lixing-Zhang/kart-challenge/menucart/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryMenuRepository_GetAll(t *testing.T) {
	repo := NewInMemoryMenuRepository()

	items, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 7)

	for i, item := range items {
		assert.Equal(t, int64(i+1), item.ID, "catalog order must be preserved")
	}
}

func TestInMemoryMenuRepository_GetByID(t *testing.T) {
	repo := NewInMemoryMenuRepository()

	item, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Tiramisu", item.Name)
	assert.Equal(t, models.CategoryDessert, item.Category)
	require.NotNil(t, item.Calories)
	assert.Equal(t, 280, *item.Calories)

	_, err = repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrMenuItemNotFound)
}

func TestInMemoryMenuRepository_ReturnsCopies(t *testing.T) {
	repo := NewInMemoryMenuRepository()

	items, _ := repo.GetAll(context.Background())
	items[0].Price = 0
	*items[6].Calories = 1

	item, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 38.0, item.Price)

	item, err = repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 280, *item.Calories)

	*item.Calories = 2
	items, _ = repo.GetAll(context.Background())
	assert.Equal(t, 280, *items[6].Calories)
}

func TestNewInMemoryMenuRepositoryFromFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(dir, "menu.yaml")
		content := `
- id: 10
  name: Dumplings
  description: Pork and cabbage
  price: 22.5
  category: Chinese
  available: true
  popular: true
  calories: 300
  prepTime: 12
- id: 11
  name: Lemon Tea
  description: Iced
  price: 12
  category: Beverage
  available: false
  prepTime: 3
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		repo, err := NewInMemoryMenuRepositoryFromFile(path)
		require.NoError(t, err)

		items, err := repo.GetAll(context.Background())
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Dumplings", items[0].Name)
		assert.Equal(t, 22.5, items[0].Price)
		assert.Equal(t, 300, *items[0].Calories)
		assert.Nil(t, items[1].Calories)
		assert.False(t, items[1].Available)
	})

	t.Run("duplicate id", func(t *testing.T) {
		path := filepath.Join(dir, "dup.yaml")
		content := "- {id: 1, name: A, price: 1, category: Chinese}\n- {id: 1, name: B, price: 2, category: Dessert}\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		_, err := NewInMemoryMenuRepositoryFromFile(path)
		assert.ErrorIs(t, err, ErrDuplicateID)
	})

	t.Run("invalid item", func(t *testing.T) {
		tests := map[string]string{
			"negative price":   "- {id: 1, name: A, price: -1, category: Chinese}\n",
			"unknown category": "- {id: 1, name: A, price: 1, category: Seafood}\n",
			"missing name":     "- {id: 1, price: 1, category: Chinese}\n",
		}
		for name, content := range tests {
			t.Run(name, func(t *testing.T) {
				path := filepath.Join(dir, "invalid.yaml")
				require.NoError(t, os.WriteFile(path, []byte(content), 0644))

				_, err := NewInMemoryMenuRepositoryFromFile(path)
				assert.Error(t, err)
			})
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewInMemoryMenuRepositoryFromFile(filepath.Join(dir, "nope.yaml"))
		assert.Error(t, err)
	})
}
