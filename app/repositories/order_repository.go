package repositories

import (
	"time"

	"github.com/shashiranjanraj/vendora/app/models"
	"github.com/shashiranjanraj/vendora/pkg/metrics"
	"github.com/shashiranjanraj/vendora/pkg/orm"
)

// OrderRepository handles database operations for Order.
type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Create persists a new order with its items.
func (r *OrderRepository) Create(order *models.Order) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return orm.DB().Create(order)
}

// FindByNumber looks up an order (with items) by its public number.
func (r *OrderRepository) FindByNumber(number string) (models.Order, error) {
	var order models.Order
	err := orm.DB().Model(&models.Order{}).Preload("Items").
		Where("number = ?", number).First(&order)
	return order, err
}

// ForUser returns a user's orders, newest first.
func (r *OrderRepository) ForUser(userID uint) ([]models.Order, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var orders []models.Order
	err := orm.DB().Model(&models.Order{}).Preload("Items").
		Where("user_id = ?", userID).Order("created_at desc").Get(&orders)
	return orders, err
}

// All returns a page of all orders, newest first, with the buyer preloaded.
func (r *OrderRepository) All(page, size int) ([]models.Order, orm.Pagination, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var orders []models.Order
	p, err := orm.DB().Model(&models.Order{}).Preload("User").Preload("Items").
		Order("created_at desc").Page(page, size, &orders)
	return orders, p, err
}

// Update persists order changes.
func (r *OrderRepository) Update(order *models.Order) error {
	defer metrics.ObserveDBQuery("update", time.Now())
	return orm.DB().Save(order)
}

// Stats aggregates order counts, revenue and per-status totals for the
// admin dashboard.
func (r *OrderRepository) Stats() (total int64, revenue float64, byStatus map[string]int64, err error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	total, err = orm.DB().Model(&models.Order{}).Count()
	if err != nil {
		return 0, 0, nil, err
	}

	if err = orm.DB().Model(&models.Order{}).SumColumn("total", &revenue); err != nil {
		return 0, 0, nil, err
	}

	type row struct {
		Status string
		N      int64
	}
	var rows []row
	if err = orm.DB().Model(&models.Order{}).
		Select("status, count(*) as n").GroupByColumn("status").Get(&rows); err != nil {
		return 0, 0, nil, err
	}

	byStatus = make(map[string]int64, len(rows))
	for _, r := range rows {
		byStatus[r.Status] = r.N
	}
	return total, revenue, byStatus, nil
}
