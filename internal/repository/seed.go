package repository

import "github.com/Lixing-Zhang/kart-challenge/menucart/internal/models"

// DefaultCatalog returns the compiled-in menu
func DefaultCatalog() []models.MenuItem {
	return []models.MenuItem{
		{
			ID:          1,
			Name:        "Kung Pao Chicken",
			Description: "Classic Sichuan dish, tender diced chicken with crunchy peanuts",
			Price:       38,
			Category:    models.CategoryChinese,
			Image:       "https://images.unsplash.com/photo-1563245372-f21724e3856d?w=400",
			Available:   true,
			Popular:     true,
			Calories:    models.IntPtr(320),
			PrepTime:    15,
		},
		{
			ID:          2,
			Name:        "Spicy Dry Pot",
			Description: "Mixed ingredients stir-fried, numbing and spicy",
			Price:       68,
			Category:    models.CategoryChinese,
			Image:       "https://images.unsplash.com/photo-1563245372-f21724e3856d?w=400",
			Available:   true,
			Popular:     true,
			Calories:    models.IntPtr(450),
			PrepTime:    20,
		},
		{
			ID:          3,
			Name:        "Steak Set",
			Description: "Imported Australian steak served with seasonal vegetables",
			Price:       128,
			Category:    models.CategoryWestern,
			Image:       "https://images.unsplash.com/photo-1432139509613-5c4255815697?w=400",
			Available:   true,
			Popular:     false,
			Calories:    models.IntPtr(520),
			PrepTime:    25,
		},
		{
			ID:          4,
			Name:        "Spaghetti",
			Description: "Traditional tomato sauce with fresh basil",
			Price:       48,
			Category:    models.CategoryWestern,
			Image:       "https://images.unsplash.com/photo-1563379926898-05f4575a45d8?w=400",
			Available:   true,
			Popular:     true,
			Calories:    models.IntPtr(380),
			PrepTime:    18,
		},
		{
			ID:          5,
			Name:        "Fresh Orange Juice",
			Description: "Squeezed from fresh oranges, rich in vitamin C",
			Price:       18,
			Category:    models.CategoryBeverage,
			Image:       "https://images.unsplash.com/photo-1621506289937-a8e4df240d0b?w=400",
			Available:   true,
			Popular:     false,
			Calories:    models.IntPtr(120),
			PrepTime:    5,
		},
		{
			ID:          6,
			Name:        "Matcha Latte",
			Description: "Japanese matcha powder with rich milk",
			Price:       28,
			Category:    models.CategoryBeverage,
			Image:       "https://images.unsplash.com/photo-1514432324607-a09d9b4aefdd?w=400",
			Available:   true,
			Popular:     true,
			Calories:    models.IntPtr(180),
			PrepTime:    8,
		},
		{
			ID:          7,
			Name:        "Tiramisu",
			Description: "Classic Italian dessert with a rich coffee aroma",
			Price:       32,
			Category:    models.CategoryDessert,
			Image:       "https://images.unsplash.com/photo-1571877227200-a0d98ea607e9?w=400",
			Available:   true,
			Popular:     true,
			Calories:    models.IntPtr(280),
			PrepTime:    10,
		},
	}
}
