package models

import "github.com/shopspring/decimal"

// AddCartItemRequest represents an incoming add-to-cart request.
// Quantity defaults to 1 when omitted.
type AddCartItemRequest struct {
	ItemID              int64  `json:"itemId"`
	Quantity            *int   `json:"quantity,omitempty"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`
}

// UpdateCartItemRequest changes an existing cart entry. Nil fields are left
// as they are; a quantity of zero or less removes the entry and an empty
// instructions string clears them.
type UpdateCartItemRequest struct {
	Quantity            *int    `json:"quantity,omitempty"`
	SpecialInstructions *string `json:"specialInstructions,omitempty"`
}

// CartSummary is the cart plus its totals
type CartSummary struct {
	Items []CartItem      `json:"items"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// FilterRequest assigns the search query and/or selected category
type FilterRequest struct {
	Search   *string `json:"search,omitempty"`
	Category *string `json:"category,omitempty"`
}

// Filter is the current search/category filter of a session
type Filter struct {
	Search   string `json:"search"`
	Category string `json:"category"`
}
