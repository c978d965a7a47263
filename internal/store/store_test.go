package store

import (
	"math"
	"testing"

	"github.com/Lixing-Zhang/kart-challenge/menucart/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []models.MenuItem {
	return []models.MenuItem{
		{ID: 1, Name: "Kung Pao Chicken", Description: "Diced chicken with roasted peanuts", Price: 38, Category: models.CategoryChinese, Available: true, Popular: true},
		{ID: 2, Name: "Steak Set", Description: "Grilled Australian steak with vegetables", Price: 128, Category: models.CategoryWestern, Available: true},
		{ID: 3, Name: "Orange Juice", Description: "Freshly squeezed", Price: 18, Category: models.CategoryBeverage, Available: true},
		{ID: 4, Name: "Hot Pot", Description: "Spicy and numbing stir-fry", Price: 68, Category: models.CategoryChinese, Available: false},
		{ID: 5, Name: "Tiramisu", Description: "Classic Italian dessert with coffee", Price: 32.5, Category: models.CategoryDessert, Available: true, Calories: models.IntPtr(280)},
		{ID: 6, Name: "Pasta", Description: "Tomato sauce and fresh basil", Price: 48, Category: models.CategoryWestern, Available: true},
	}
}

func itemByID(t *testing.T, s *Store, id int64) models.MenuItem {
	t.Helper()
	for _, item := range s.Catalog() {
		if item.ID == id {
			return item
		}
	}
	t.Fatalf("item %d not in catalog", id)
	return models.MenuItem{}
}

func menuIDs(items []models.MenuItem) []int64 {
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}

func TestNew_Defaults(t *testing.T) {
	s := New(testCatalog())

	assert.Equal(t, "", s.SearchQuery())
	assert.Equal(t, models.CategoryAll, s.SelectedCategory())
	assert.Empty(t, s.Cart())
	assert.Len(t, s.Catalog(), 6)
	assert.True(t, s.CartTotal().IsZero())
	assert.Equal(t, 0, s.CartCount())
}

func TestCatalog_ReturnsCopy(t *testing.T) {
	s := New(testCatalog())

	items := s.Catalog()
	items[0].Name = "changed"
	*items[4].Calories = 1

	assert.Equal(t, "Kung Pao Chicken", s.Catalog()[0].Name)
	assert.Equal(t, 280, *s.Catalog()[4].Calories)
	assert.Equal(t, 280, *s.FilteredMenu()[3].Calories)
}

func TestNew_CopiesCatalog(t *testing.T) {
	catalog := testCatalog()
	s := New(catalog)

	*catalog[4].Calories = 1

	assert.Equal(t, 280, *itemByID(t, s, 5).Calories)
}

func TestCart_ReturnsCopy(t *testing.T) {
	s := New(testCatalog())
	s.AddToCart(itemByID(t, s, 5), WithQuantity(2))

	cart := s.Cart()
	cart[0].Quantity = 99
	*cart[0].Calories = 1

	assert.Equal(t, 2, s.Cart()[0].Quantity)
	assert.Equal(t, 280, *s.Cart()[0].Calories)
	assert.Equal(t, 280, *itemByID(t, s, 5).Calories)
}

func TestAddToCart_DoesNotAliasCaller(t *testing.T) {
	s := New(testCatalog())
	item := itemByID(t, s, 5)

	s.AddToCart(item)
	*item.Calories = 1

	assert.Equal(t, 280, *s.Cart()[0].Calories)
}

func TestCategories(t *testing.T) {
	s := New(testCatalog())

	assert.Equal(t, []string{"All", "Chinese", "Western", "Beverage", "Dessert"}, s.Categories())
}

func TestCategories_EmptyCatalog(t *testing.T) {
	s := New(nil)

	assert.Equal(t, []string{"All"}, s.Categories())
}

func TestFilteredMenu(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		category string
		want     []int64
	}{
		{name: "defaults exclude unavailable", category: models.CategoryAll, want: []int64{1, 2, 3, 5, 6}},
		{name: "category only", category: "Western", want: []int64{2, 6}},
		{name: "unavailable excluded within category", category: "Chinese", want: []int64{1}},
		{name: "search matches name case-insensitively", query: "PASTA", category: models.CategoryAll, want: []int64{6}},
		{name: "search matches description", query: "coffee", category: models.CategoryAll, want: []int64{5}},
		{name: "search and category combined", query: "s", category: "Western", want: []int64{2, 6}},
		{name: "search matching only unavailable item", query: "numbing", category: models.CategoryAll, want: []int64{}},
		{name: "unknown category", category: "Seafood", want: []int64{}},
		{name: "no match", query: "sushi", category: models.CategoryAll, want: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(testCatalog())
			s.SetSearchQuery(tt.query)
			s.SetSelectedCategory(tt.category)

			assert.Equal(t, tt.want, menuIDs(s.FilteredMenu()))
		})
	}
}

func TestFilteredMenu_NeverIncludesUnavailable(t *testing.T) {
	s := New(testCatalog())

	for _, category := range append(s.Categories(), "Seafood") {
		for _, query := range []string{"", "hot", "pot", "a", "spicy"} {
			s.SetSelectedCategory(category)
			s.SetSearchQuery(query)
			for _, item := range s.FilteredMenu() {
				assert.True(t, item.Available, "category=%q query=%q returned unavailable item %d", category, query, item.ID)
			}
		}
	}
}

func TestAddToCart_NewEntry(t *testing.T) {
	s := New(testCatalog())

	s.AddToCart(itemByID(t, s, 1))

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, int64(1), cart[0].ID)
	assert.Equal(t, 1, cart[0].Quantity)
	assert.Equal(t, "", cart[0].SpecialInstructions)
}

func TestAddToCart_MergesAndKeepsInstructions(t *testing.T) {
	s := New(testCatalog())
	item := itemByID(t, s, 1)

	s.AddToCart(item, WithQuantity(2), WithInstructions("no peanuts"))
	s.AddToCart(item, WithQuantity(3))

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 5, cart[0].Quantity)
	assert.Equal(t, "no peanuts", cart[0].SpecialInstructions)
}

func TestAddToCart_OverwritesInstructionsWhenGiven(t *testing.T) {
	s := New(testCatalog())
	item := itemByID(t, s, 1)

	s.AddToCart(item, WithInstructions("no peanuts"))
	s.AddToCart(item, WithInstructions("extra spicy"))

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].Quantity)
	assert.Equal(t, "extra spicy", cart[0].SpecialInstructions)
}

func TestAddToCart_NonPositiveQuantity(t *testing.T) {
	s := New(testCatalog())
	item := itemByID(t, s, 2)

	s.AddToCart(item, WithQuantity(0))
	s.AddToCart(item, WithQuantity(-2))
	assert.Empty(t, s.Cart())

	s.AddToCart(item, WithQuantity(2))
	s.AddToCart(item, WithQuantity(-2))
	assert.Empty(t, s.Cart())
}

func TestAddToCart_SaturatesQuantity(t *testing.T) {
	s := New(testCatalog())
	item := itemByID(t, s, 1)

	s.AddToCart(item, WithQuantity(math.MaxInt))
	s.AddToCart(item, WithQuantity(5))

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, math.MaxInt, cart[0].Quantity)

	s.AddToCart(item, WithQuantity(-1))
	assert.Equal(t, math.MaxInt-1, s.Cart()[0].Quantity)
}

func TestCartCount_Saturates(t *testing.T) {
	s := New(testCatalog())
	s.AddToCart(itemByID(t, s, 1), WithQuantity(math.MaxInt))
	s.AddToCart(itemByID(t, s, 2), WithQuantity(math.MaxInt))

	assert.Equal(t, math.MaxInt, s.CartCount())
	assert.True(t, s.CartTotal().IsPositive())
}

func TestRemoveFromCart(t *testing.T) {
	s := New(testCatalog())
	s.AddToCart(itemByID(t, s, 1))
	s.AddToCart(itemByID(t, s, 3), WithQuantity(2))

	s.RemoveFromCart(1)

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, int64(3), cart[0].ID)
}

func TestRemoveFromCart_AbsentIsNoop(t *testing.T) {
	s := New(testCatalog())
	s.AddToCart(itemByID(t, s, 1), WithQuantity(2), WithInstructions("mild"))
	before := s.Cart()

	s.RemoveFromCart(999)

	assert.Equal(t, before, s.Cart())
}

func TestUpdateCartItemQuantity(t *testing.T) {
	s := New(testCatalog())
	s.AddToCart(itemByID(t, s, 1), WithQuantity(2))
	s.AddToCart(itemByID(t, s, 3), WithQuantity(4))

	s.UpdateCartItemQuantity(1, 7)
	assert.Equal(t, 7, s.Cart()[0].Quantity)
	assert.Equal(t, 11, s.CartCount())

	s.UpdateCartItemQuantity(3, 0)
	assert.Equal(t, 7, s.CartCount())
	require.Len(t, s.Cart(), 1)

	s.UpdateCartItemQuantity(1, -1)
	assert.Empty(t, s.Cart())
}

func TestUpdateCartItemQuantity_AbsentIsNoop(t *testing.T) {
	s := New(testCatalog())
	s.AddToCart(itemByID(t, s, 1))

	s.UpdateCartItemQuantity(42, 3)
	s.UpdateCartItemQuantity(42, 0)

	require.Len(t, s.Cart(), 1)
	assert.Equal(t, 1, s.CartCount())
}

func TestUpdateCartItemInstructions(t *testing.T) {
	s := New(testCatalog())
	s.AddToCart(itemByID(t, s, 1), WithInstructions("no peanuts"))

	s.UpdateCartItemInstructions(1, "")
	assert.Equal(t, "", s.Cart()[0].SpecialInstructions)

	s.UpdateCartItemInstructions(1, "extra rice")
	assert.Equal(t, "extra rice", s.Cart()[0].SpecialInstructions)

	s.UpdateCartItemInstructions(99, "ignored")
	require.Len(t, s.Cart(), 1)
}

func TestCartTotalAndCount(t *testing.T) {
	s := New(testCatalog())

	s.AddToCart(itemByID(t, s, 1), WithQuantity(2)) // 76
	s.AddToCart(itemByID(t, s, 5), WithQuantity(3)) // 97.5
	s.AddToCart(itemByID(t, s, 3))                  // 18
	s.UpdateCartItemQuantity(3, 4)                  // 72

	assert.True(t, decimal.RequireFromString("245.5").Equal(s.CartTotal()), "got %s", s.CartTotal())
	assert.Equal(t, 9, s.CartCount())

	want := decimal.Zero
	count := 0
	for _, item := range s.Cart() {
		want = want.Add(decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity))))
		count += item.Quantity
	}
	assert.True(t, want.Equal(s.CartTotal()))
	assert.Equal(t, count, s.CartCount())
}

func TestCartTotal_NoFloatDrift(t *testing.T) {
	s := New([]models.MenuItem{{ID: 1, Name: "Tea", Price: 0.1, Available: true}})

	s.AddToCart(s.Catalog()[0], WithQuantity(3))

	assert.Equal(t, "0.3", s.CartTotal().String())
}

func TestClearCart(t *testing.T) {
	s := New(testCatalog())
	s.AddToCart(itemByID(t, s, 1), WithQuantity(2))
	s.AddToCart(itemByID(t, s, 2))

	s.ClearCart()

	assert.Empty(t, s.Cart())
	assert.True(t, s.CartTotal().IsZero())
	assert.Equal(t, 0, s.CartCount())
}

func TestSnapshot(t *testing.T) {
	s := New(testCatalog())
	s.SetSelectedCategory("Beverage")
	s.AddToCart(itemByID(t, s, 3), WithQuantity(2))

	snap := s.Snapshot()

	assert.Equal(t, "Beverage", snap.SelectedCategory)
	assert.Equal(t, []int64{3}, menuIDs(snap.FilteredMenu))
	assert.Equal(t, 2, snap.CartCount)
	assert.True(t, decimal.NewFromInt(36).Equal(snap.CartTotal))
	assert.Len(t, snap.Cart, 1)
	assert.Equal(t, s.Categories(), snap.Categories)
}
