package models

// Category is the cuisine group a menu item belongs to
type Category string

const (
	CategoryChinese  Category = "Chinese"
	CategoryWestern  Category = "Western"
	CategoryBeverage Category = "Beverage"
	CategoryDessert  Category = "Dessert"
)

// CategoryAll is the filter sentinel that matches every category
const CategoryAll = "All"

// MenuItem represents an orderable catalog entry
type MenuItem struct {
	ID          int64    `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Price       float64  `json:"price" yaml:"price"`
	Category    Category `json:"category" yaml:"category"`
	Image       string   `json:"image" yaml:"image"`
	Available   bool     `json:"available" yaml:"available"`
	Popular     bool     `json:"popular" yaml:"popular"`
	Calories    *int     `json:"calories,omitempty" yaml:"calories,omitempty"`
	PrepTime    int      `json:"prepTime" yaml:"prepTime"` // minutes
}

// CartItem is a menu item annotated with the requested quantity
type CartItem struct {
	MenuItem
	Quantity            int    `json:"quantity"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`
}

// Clone returns a copy of m that shares no pointers with it
func (m MenuItem) Clone() MenuItem {
	if m.Calories != nil {
		m.Calories = IntPtr(*m.Calories)
	}
	return m
}

// Clone returns a copy of c that shares no pointers with it
func (c CartItem) Clone() CartItem {
	c.MenuItem = c.MenuItem.Clone()
	return c
}

// IntPtr returns a pointer to v, for optional fields such as Calories
func IntPtr(v int) *int {
	return &v
}
