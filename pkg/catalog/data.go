package catalog

// Demo dataset used when the storefront runs without a backend catalogue,
// e.g. browsing offline before the API is up.

// DefaultCategories returns the built-in category list.
func DefaultCategories() []Category {
	return []Category{
		{Slug: "electronics", Name: "Electronics", Count: 25},
		{Slug: "clothing", Name: "Clothing", Count: 18},
		{Slug: "home", Name: "Home & Garden", Count: 32},
		{Slug: "sports", Name: "Sports & Outdoors", Count: 15},
		{Slug: "books", Name: "Books", Count: 12},
	}
}

// DefaultProducts returns the built-in product list.
func DefaultProducts() []Product {
	return []Product{
		{
			ID:          1,
			Name:        "Premium Wireless Headphones",
			Description: "High-quality wireless headphones with noise cancellation",
			Price:       199.99,
			Category:    "Electronics",
			Rating:      4.8,
			Stock:       15,
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400&h=300&fit=crop",
		},
		{
			ID:          2,
			Name:        "Organic Cotton T-Shirt",
			Description: "Comfortable organic cotton t-shirt",
			Price:       29.99,
			Category:    "Clothing",
			Rating:      4.5,
			Stock:       8,
			Image:       "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400&h=300&fit=crop",
		},
		{
			ID:          3,
			Name:        "Smart Home Security Camera",
			Description: "AI-powered security camera with mobile alerts",
			Price:       149.99,
			Category:    "Electronics",
			Rating:      4.7,
			Stock:       12,
			Image:       "https://images.unsplash.com/photo-1558618047-3c8c76ca7d13?w=400&h=300&fit=crop",
		},
		{
			ID:          4,
			Name:        "Yoga Mat Premium",
			Description: "Non-slip premium yoga mat for professionals",
			Price:       59.99,
			Category:    "Sports & Outdoors",
			Rating:      4.6,
			Stock:       20,
			Image:       "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=400&h=300&fit=crop",
		},
		{
			ID:          5,
			Name:        "Ceramic Plant Pot Set",
			Description: "Beautiful ceramic plant pot set for indoor plants",
			Price:       39.99,
			Category:    "Home & Garden",
			Rating:      4.4,
			Stock:       25,
			Image:       "https://images.unsplash.com/photo-1485955900006-10f4d324d411?w=400&h=300&fit=crop",
		},
		{
			ID:          6,
			Name:        "JavaScript Programming Book",
			Description: "Comprehensive guide to modern JavaScript",
			Price:       24.99,
			Category:    "Books",
			Rating:      4.9,
			Stock:       30,
			Image:       "https://images.unsplash.com/photo-1544716278-ca5e3f4abd8c?w=400&h=300&fit=crop",
		},
		{
			ID:          7,
			Name:        "Laptop Backpack",
			Description: "Durable laptop backpack with multiple compartments",
			Price:       79.99,
			Category:    "Electronics",
			Rating:      4.3,
			Stock:       18,
			Image:       "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=400&h=300&fit=crop",
		},
		{
			ID:          8,
			Name:        "Running Shoes",
			Description: "Professional running shoes with advanced cushioning",
			Price:       129.99,
			Category:    "Sports & Outdoors",
			Rating:      4.7,
			Stock:       0,
			Image:       "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=400&h=300&fit=crop",
		},
	}
}
