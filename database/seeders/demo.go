package seeders

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/vendora/app/models"
	"github.com/shashiranjanraj/vendora/app/services"
	"github.com/shashiranjanraj/vendora/pkg/auth"
	"github.com/shashiranjanraj/vendora/pkg/cart"
)

func init() {
	Register("users", SeedUsers)
	Register("catalog", SeedCatalog)
	Register("orders", SeedOrders)
}

// SeedUsers inserts the two demo accounts. Idempotent.
func SeedUsers(db *gorm.DB) error {
	users := []struct {
		name     string
		email    string
		password string
		admin    bool
	}{
		{"John Doe", "john@example.com", "password123", false},
		{"Admin User", "admin@example.com", "admin123", true},
	}

	for _, u := range users {
		var count int64
		if err := db.Model(&models.User{}).Where("email = ?", u.email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		hash, err := auth.HashPassword(u.password)
		if err != nil {
			return err
		}
		if err := db.Create(&models.User{
			Name:     u.name,
			Email:    u.email,
			Password: hash,
			Admin:    u.admin,
		}).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedCatalog inserts the demo categories and products. Idempotent.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := []models.Category{
		{Slug: "electronics", Name: "Electronics"},
		{Slug: "clothing", Name: "Clothing"},
		{Slug: "books", Name: "Books"},
		{Slug: "home", Name: "Home & Garden"},
		{Slug: "sports", Name: "Sports"},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}

	products := []models.Product{
		{Name: "Wireless Headphones", Description: "Premium noise-cancelling wireless headphones with 30-hour battery life.", Price: 79.99, Category: "electronics", Stock: 15, Rating: 4.5},
		{Name: "Smart Watch", Description: "Fitness tracking smart watch with heart rate monitor and GPS.", Price: 199.99, Category: "electronics", Stock: 8, Rating: 4.2},
		{Name: "Cotton T-Shirt", Description: "Comfortable 100% organic cotton t-shirt, available in multiple colors.", Price: 19.99, Category: "clothing", Stock: 50, Rating: 4.0},
		{Name: "Denim Jacket", Description: "Classic denim jacket with modern fit and durable stitching.", Price: 89.99, Category: "clothing", Stock: 12, Rating: 4.7},
		{Name: "The Go Programming Language", Description: "The definitive guide to writing idiomatic, efficient Go code.", Price: 39.99, Category: "books", Stock: 25, Rating: 4.8},
		{Name: "Ceramic Plant Pot", Description: "Handcrafted ceramic pot with drainage, perfect for indoor plants.", Price: 24.99, Category: "home", Stock: 30, Rating: 4.3},
		{Name: "Yoga Mat", Description: "Non-slip exercise mat with carrying strap, 6mm thick.", Price: 29.99, Category: "sports", Stock: 20, Rating: 4.4},
		{Name: "Running Shoes", Description: "Lightweight running shoes with responsive cushioning.", Price: 119.99, Category: "sports", Stock: 0, Rating: 4.6},
	}
	return db.Create(&products).Error
}

// SeedOrders inserts two sample orders for the demo buyer so the admin
// dashboard has data. Idempotent.
func SeedOrders(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Order{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var buyer models.User
	if err := db.Where("email = ?", "john@example.com").First(&buyer).Error; err != nil {
		return err
	}

	var headphones, mat models.Product
	if err := db.Where("name = ?", "Wireless Headphones").First(&headphones).Error; err != nil {
		return err
	}
	if err := db.Where("name = ?", "Yoga Mat").First(&mat).Error; err != nil {
		return err
	}

	orders := []struct {
		status string
		items  []models.OrderItem
	}{
		{
			status: models.OrderDelivered,
			items: []models.OrderItem{
				{ProductID: headphones.ID, Name: headphones.Name, Price: headphones.Price, Quantity: 1},
			},
		},
		{
			status: models.OrderProcessing,
			items: []models.OrderItem{
				{ProductID: mat.ID, Name: mat.Name, Price: mat.Price, Quantity: 2},
			},
		},
	}

	for _, o := range orders {
		var subtotal float64
		for _, item := range o.items {
			subtotal += item.Price * float64(item.Quantity)
		}

		if err := db.Create(&models.Order{
			Number:   services.NewOrderNumber(),
			UserID:   buyer.ID,
			Status:   o.status,
			Subtotal: subtotal,
			Shipping: cart.Shipping(subtotal),
			Tax:      cart.Tax(subtotal),
			Total:    cart.Total(subtotal),
			Items:    o.items,
		}).Error; err != nil {
			return err
		}
	}
	return nil
}
