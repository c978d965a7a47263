package store

import (
	"github.com/Lixing-Zhang/kart-challenge/menucart/internal/models"
	"github.com/shopspring/decimal"
)

// Kind groups changes by the part of the state they touch
type Kind string

const (
	KindCart   Kind = "cart"
	KindFilter Kind = "filter"
)

// Action names the mutation that produced a change
type Action string

const (
	ActionAdd                Action = "add"
	ActionRemove             Action = "remove"
	ActionUpdateQuantity     Action = "update_quantity"
	ActionUpdateInstructions Action = "update_instructions"
	ActionClear              Action = "clear"
	ActionSetSearchQuery     Action = "set_search_query"
	ActionSetCategory        Action = "set_category"
)

// Change describes one state mutation. ItemID is zero for actions that
// are not about a single cart entry.
type Change struct {
	Kind   Kind   `json:"kind"`
	Action Action `json:"action"`
	ItemID int64  `json:"itemId,omitempty"`
}

// Snapshot is the full state of a store plus its derived views
type Snapshot struct {
	SearchQuery      string            `json:"searchQuery"`
	SelectedCategory string            `json:"selectedCategory"`
	Categories       []string          `json:"categories"`
	FilteredMenu     []models.MenuItem `json:"filteredMenu"`
	Cart             []models.CartItem `json:"cart"`
	CartTotal        decimal.Decimal   `json:"cartTotal"`
	CartCount        int               `json:"cartCount"`
}

// Subscribe registers fn to be called synchronously after every mutation
// that changed state. The returned func removes the subscription.
func (s *Store) Subscribe(fn func(Change)) (unsubscribe func()) {
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	return func() {
		delete(s.listeners, id)
	}
}

func (s *Store) notify(change Change) {
	for _, fn := range s.listeners {
		fn(change)
	}
}
