package repositories

import (
	"time"

	"github.com/shashiranjanraj/vendora/app/models"
	"github.com/shashiranjanraj/vendora/pkg/metrics"
	"github.com/shashiranjanraj/vendora/pkg/orm"
)

const catalogCacheTTL = 5 * time.Minute

// ProductRepository handles database operations for Product and Category.
type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// All returns the full catalogue, read through the cache. Filtering and
// pagination happen in memory on top of this list.
func (r *ProductRepository) All() ([]models.Product, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var products []models.Product
	err := orm.DB().Model(&models.Product{}).Order("id asc").
		Cached("catalog:products", catalogCacheTTL, &products)
	return products, err
}

// FindByID looks up a product by primary key.
func (r *ProductRepository) FindByID(id uint) (models.Product, error) {
	var product models.Product
	err := orm.DB().Model(&models.Product{}).Where("id = ?", id).First(&product)
	return product, err
}

// Categories returns all categories, read through the cache.
func (r *ProductRepository) Categories() ([]models.Category, error) {
	var categories []models.Category
	err := orm.DB().Model(&models.Category{}).Order("id asc").
		Cached("catalog:categories", catalogCacheTTL, &categories)
	return categories, err
}

// Create persists a new product and invalidates the catalogue cache.
func (r *ProductRepository) Create(product *models.Product) error {
	defer metrics.ObserveDBQuery("insert", time.Now())

	if err := orm.DB().Create(product); err != nil {
		return err
	}
	return r.invalidate()
}

// Update persists product changes and invalidates the catalogue cache.
func (r *ProductRepository) Update(product *models.Product) error {
	defer metrics.ObserveDBQuery("update", time.Now())

	if err := orm.DB().Save(product); err != nil {
		return err
	}
	return r.invalidate()
}

func (r *ProductRepository) invalidate() error {
	return orm.Forget("catalog:products", "catalog:categories")
}
