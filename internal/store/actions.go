package store

import (
	"github.com/Lixing-Zhang/kart-challenge/menucart/internal/models"
)

// AddOption customizes an AddToCart call
type AddOption func(*addOptions)

type addOptions struct {
	quantity     int
	instructions string
}

// WithQuantity sets how many units to add (default 1)
func WithQuantity(quantity int) AddOption {
	return func(o *addOptions) {
		o.quantity = quantity
	}
}

// WithInstructions attaches special instructions to the entry.
// An empty value leaves existing instructions untouched.
func WithInstructions(instructions string) AddOption {
	return func(o *addOptions) {
		o.instructions = instructions
	}
}

// AddToCart merges item into the cart. An existing entry has its quantity
// incremented and its instructions replaced only when new ones are given;
// otherwise a new entry is appended.
//
// No entry with a non-positive quantity is ever kept: a merge that drops
// the quantity to zero or below removes the entry, and a new entry with a
// non-positive quantity is not created. A merge that would exceed
// math.MaxInt saturates there.
func (s *Store) AddToCart(item models.MenuItem, opts ...AddOption) {
	o := addOptions{quantity: 1}
	for _, opt := range opts {
		opt(&o)
	}

	if i := s.indexOf(item.ID); i >= 0 {
		entry := &s.cart[i]
		if o.quantity == 0 && (o.instructions == "" || o.instructions == entry.SpecialInstructions) {
			return
		}
		entry.Quantity = addQuantity(entry.Quantity, o.quantity)
		if o.instructions != "" {
			entry.SpecialInstructions = o.instructions
		}
		if entry.Quantity <= 0 {
			s.removeAt(i)
		}
		s.notify(Change{Kind: KindCart, Action: ActionAdd, ItemID: item.ID})
		return
	}

	if o.quantity <= 0 {
		return
	}

	s.cart = append(s.cart, models.CartItem{
		MenuItem:            item.Clone(),
		Quantity:            o.quantity,
		SpecialInstructions: o.instructions,
	})
	s.notify(Change{Kind: KindCart, Action: ActionAdd, ItemID: item.ID})
}

// RemoveFromCart deletes the entry for itemID. Absent ids are ignored.
func (s *Store) RemoveFromCart(itemID int64) {
	i := s.indexOf(itemID)
	if i < 0 {
		return
	}
	s.removeAt(i)
	s.notify(Change{Kind: KindCart, Action: ActionRemove, ItemID: itemID})
}

// UpdateCartItemQuantity sets the absolute quantity of an entry; a
// quantity of zero or less removes it. Absent ids are ignored.
func (s *Store) UpdateCartItemQuantity(itemID int64, quantity int) {
	i := s.indexOf(itemID)
	if i < 0 {
		return
	}
	if quantity <= 0 {
		s.RemoveFromCart(itemID)
		return
	}
	if s.cart[i].Quantity == quantity {
		return
	}
	s.cart[i].Quantity = quantity
	s.notify(Change{Kind: KindCart, Action: ActionUpdateQuantity, ItemID: itemID})
}

// UpdateCartItemInstructions replaces the instructions of an entry.
// Unlike AddToCart, an empty value clears them. Absent ids are ignored.
func (s *Store) UpdateCartItemInstructions(itemID int64, instructions string) {
	i := s.indexOf(itemID)
	if i < 0 || s.cart[i].SpecialInstructions == instructions {
		return
	}
	s.cart[i].SpecialInstructions = instructions
	s.notify(Change{Kind: KindCart, Action: ActionUpdateInstructions, ItemID: itemID})
}

// ClearCart empties the cart
func (s *Store) ClearCart() {
	hadItems := len(s.cart) > 0
	s.cart = make([]models.CartItem, 0)
	if hadItems {
		s.notify(Change{Kind: KindCart, Action: ActionClear})
	}
}

func (s *Store) removeAt(i int) {
	s.cart = append(s.cart[:i], s.cart[i+1:]...)
}
