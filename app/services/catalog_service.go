package services

import (
	"context"
	"fmt"
	"path"

	"github.com/shashiranjanraj/vendora/app/models"
	"github.com/shashiranjanraj/vendora/app/repositories"
	"github.com/shashiranjanraj/vendora/pkg/storage"
)

// CatalogService serves the product catalogue. Listing endpoints return the
// complete catalogue; clients filter and paginate locally so results stay
// consistent while browsing.
type CatalogService struct {
	products *repositories.ProductRepository
}

func NewCatalogService() *CatalogService {
	return &CatalogService{products: repositories.NewProductRepository()}
}

// Products returns every product in the catalogue.
func (s *CatalogService) Products() ([]models.Product, error) {
	return s.products.All()
}

// Product returns one product by ID.
func (s *CatalogService) Product(id uint) (models.Product, error) {
	return s.products.FindByID(id)
}

// CategoryCount pairs a category with how many products it holds.
type CategoryCount struct {
	models.Category
	Count int `json:"count"`
}

// Categories returns all categories with their live product counts.
func (s *CatalogService) Categories() ([]CategoryCount, error) {
	categories, err := s.products.Categories()
	if err != nil {
		return nil, err
	}

	products, err := s.products.All()
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(categories))
	for _, p := range products {
		counts[p.Category]++
	}

	out := make([]CategoryCount, len(categories))
	for i, c := range categories {
		out[i] = CategoryCount{Category: c, Count: counts[c.Slug]}
	}
	return out, nil
}

// UploadImage stores a product image on the configured disk and records its
// public URL on the product.
func (s *CatalogService) UploadImage(ctx context.Context, productID uint, filename string, data []byte) (string, error) {
	product, err := s.products.FindByID(productID)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("products/%d%s", productID, path.Ext(filename))
	if err := storage.Put(ctx, key, data); err != nil {
		return "", err
	}

	product.Image = storage.URL(key)
	if err := s.products.Update(&product); err != nil {
		return "", err
	}
	return product.Image, nil
}
