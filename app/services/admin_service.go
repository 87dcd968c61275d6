package services

import (
	"github.com/shashiranjanraj/vendora/app/models"
	"github.com/shashiranjanraj/vendora/app/repositories"
	"github.com/shashiranjanraj/vendora/pkg/orm"
	"github.com/shashiranjanraj/vendora/pkg/ws"
)

// Dashboard is the admin landing-page summary.
type Dashboard struct {
	TotalUsers     int64            `json:"total_users"`
	TotalOrders    int64            `json:"total_orders"`
	TotalRevenue   float64          `json:"total_revenue"`
	OrdersByStatus map[string]int64 `json:"orders_by_status"`
}

var validStatuses = map[string]bool{
	models.OrderPending:    true,
	models.OrderProcessing: true,
	models.OrderShipped:    true,
	models.OrderDelivered:  true,
	models.OrderCancelled:  true,
}

// AdminService backs the admin dashboard and order management screens.
type AdminService struct {
	users  *repositories.UserRepository
	orders *repositories.OrderRepository
	feed   *ws.Feed // nil disables live events
}

func NewAdminService(feed *ws.Feed) *AdminService {
	return &AdminService{
		users:  repositories.NewUserRepository(),
		orders: repositories.NewOrderRepository(),
		feed:   feed,
	}
}

// Dashboard aggregates user and order stats.
func (s *AdminService) Dashboard() (Dashboard, error) {
	users, err := s.users.Count()
	if err != nil {
		return Dashboard{}, err
	}

	total, revenue, byStatus, err := s.orders.Stats()
	if err != nil {
		return Dashboard{}, err
	}

	return Dashboard{
		TotalUsers:     users,
		TotalOrders:    total,
		TotalRevenue:   revenue,
		OrdersByStatus: byStatus,
	}, nil
}

// Orders returns a page of all orders across the store.
func (s *AdminService) Orders(page, size int) ([]models.Order, orm.Pagination, error) {
	return s.orders.All(page, size)
}

// UpdateStatus moves an order to a new status and announces the change.
func (s *AdminService) UpdateStatus(number, status string) (models.Order, error) {
	if !validStatuses[status] {
		return models.Order{}, ErrUnknownStatus
	}

	order, err := s.orders.FindByNumber(number)
	if err != nil {
		return models.Order{}, err
	}

	order.Status = status
	if err := s.orders.Update(&order); err != nil {
		return models.Order{}, err
	}

	if s.feed != nil {
		s.feed.Publish("order.status_changed", order)
	}
	return order, nil
}
