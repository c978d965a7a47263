package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubscribe_ReceivesChanges(t *testing.T) {
	s := New(testCatalog())

	var changes []Change
	s.Subscribe(func(c Change) { changes = append(changes, c) })

	s.AddToCart(itemByID(t, s, 1), WithQuantity(2))
	s.UpdateCartItemQuantity(1, 3)
	s.UpdateCartItemInstructions(1, "mild")
	s.SetSearchQuery("chicken")
	s.SetSelectedCategory("Chinese")
	s.RemoveFromCart(1)
	s.AddToCart(itemByID(t, s, 2))
	s.ClearCart()

	assert.Equal(t, []Change{
		{Kind: KindCart, Action: ActionAdd, ItemID: 1},
		{Kind: KindCart, Action: ActionUpdateQuantity, ItemID: 1},
		{Kind: KindCart, Action: ActionUpdateInstructions, ItemID: 1},
		{Kind: KindFilter, Action: ActionSetSearchQuery},
		{Kind: KindFilter, Action: ActionSetCategory},
		{Kind: KindCart, Action: ActionRemove, ItemID: 1},
		{Kind: KindCart, Action: ActionAdd, ItemID: 2},
		{Kind: KindCart, Action: ActionClear},
	}, changes)
}

func TestSubscribe_NoopsDoNotNotify(t *testing.T) {
	s := New(testCatalog())
	s.AddToCart(itemByID(t, s, 1), WithQuantity(2))

	calls := 0
	s.Subscribe(func(Change) { calls++ })

	s.RemoveFromCart(404)
	s.UpdateCartItemQuantity(404, 2)
	s.UpdateCartItemQuantity(1, 2)
	s.UpdateCartItemInstructions(404, "x")
	s.SetSearchQuery("")
	s.SetSelectedCategory("All")
	s.AddToCart(itemByID(t, s, 3), WithQuantity(0))

	assert.Equal(t, 0, calls)

	s.ClearCart()
	s.ClearCart()
	assert.Equal(t, 1, calls)
}

func TestSubscribe_Unsubscribe(t *testing.T) {
	s := New(testCatalog())

	calls := 0
	unsubscribe := s.Subscribe(func(Change) { calls++ })

	s.AddToCart(itemByID(t, s, 1))
	unsubscribe()
	s.AddToCart(itemByID(t, s, 1))

	assert.Equal(t, 1, calls)
}
