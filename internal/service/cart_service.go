package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lixing-Zhang/kart-challenge/menucart/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/menucart/internal/repository"
	"github.com/Lixing-Zhang/kart-challenge/menucart/internal/store"
)

// MaxItemQuantity caps the quantity of a single cart entry
const MaxItemQuantity = 999

var (
	ErrItemNotFound    = errors.New("menu item not found")
	ErrItemUnavailable = errors.New("menu item is not available")
	ErrInvalidQuantity = errors.New("quantity must be between 1 and 999")
)

// CartService handles cart business logic for a session
type CartService struct {
	repo     repository.MenuRepository
	sessions SessionProvider
}

// NewCartService creates a new cart service
func NewCartService(repo repository.MenuRepository, sessions SessionProvider) *CartService {
	return &CartService{
		repo:     repo,
		sessions: sessions,
	}
}

// GetCart returns the session's cart with its totals
func (s *CartService) GetCart(ctx context.Context, sessionID string) (*models.CartSummary, error) {
	return s.mutate(sessionID, func(*store.Store) error { return nil })
}

// AddItem adds a catalog item to the cart, merging with an existing entry.
// Unknown and unavailable items are rejected here, as is any quantity that
// would leave the entry outside 1..MaxItemQuantity; the store itself
// accepts anything.
func (s *CartService) AddItem(ctx context.Context, sessionID string, req models.AddCartItemRequest) (*models.CartSummary, error) {
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	if quantity <= 0 || quantity > MaxItemQuantity {
		return nil, ErrInvalidQuantity
	}

	// resolve the session first so an unknown session wins over a bad item
	if _, err := s.sessions.Get(sessionID); err != nil {
		return nil, err
	}

	item, err := s.repo.GetByID(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to look up menu item: %w", err)
	}
	if !item.Available {
		return nil, ErrItemUnavailable
	}

	return s.mutate(sessionID, func(st *store.Store) error {
		for _, entry := range st.Cart() {
			if entry.ID == item.ID && entry.Quantity > MaxItemQuantity-quantity {
				return ErrInvalidQuantity
			}
		}
		st.AddToCart(*item, store.WithQuantity(quantity), store.WithInstructions(req.SpecialInstructions))
		return nil
	})
}

// UpdateItem sets the quantity and/or instructions of a cart entry.
// A quantity of zero or less removes the entry; one above MaxItemQuantity
// is rejected. Entries not in the cart are left alone.
func (s *CartService) UpdateItem(ctx context.Context, sessionID string, itemID int64, req models.UpdateCartItemRequest) (*models.CartSummary, error) {
	if req.Quantity != nil && *req.Quantity > MaxItemQuantity {
		return nil, ErrInvalidQuantity
	}

	return s.mutate(sessionID, func(st *store.Store) error {
		if req.SpecialInstructions != nil {
			st.UpdateCartItemInstructions(itemID, *req.SpecialInstructions)
		}
		if req.Quantity != nil {
			st.UpdateCartItemQuantity(itemID, *req.Quantity)
		}
		return nil
	})
}

// RemoveItem deletes a cart entry; absent entries are ignored
func (s *CartService) RemoveItem(ctx context.Context, sessionID string, itemID int64) (*models.CartSummary, error) {
	return s.mutate(sessionID, func(st *store.Store) error {
		st.RemoveFromCart(itemID)
		return nil
	})
}

// Clear empties the cart
func (s *CartService) Clear(ctx context.Context, sessionID string) (*models.CartSummary, error) {
	return s.mutate(sessionID, func(st *store.Store) error {
		st.ClearCart()
		return nil
	})
}

// mutate applies fn to the session's store and summarizes the cart in the
// same critical section. If fn fails, no summary is taken.
func (s *CartService) mutate(sessionID string, fn func(st *store.Store) error) (*models.CartSummary, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	var summary models.CartSummary
	sess.Do(func(st *store.Store) {
		if err = fn(st); err != nil {
			return
		}
		summary = models.CartSummary{
			Items: st.Cart(),
			Total: st.CartTotal(),
			Count: st.CartCount(),
		}
	})
	if err != nil {
		return nil, err
	}
	return &summary, nil
}
