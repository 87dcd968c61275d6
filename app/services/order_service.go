package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/shashiranjanraj/vendora/app/models"
	"github.com/shashiranjanraj/vendora/app/repositories"
	"github.com/shashiranjanraj/vendora/pkg/cart"
	"github.com/shashiranjanraj/vendora/pkg/metrics"
	"github.com/shashiranjanraj/vendora/pkg/ws"
)

var (
	ErrEmptyOrder    = errors.New("order has no items")
	ErrOutOfStock    = errors.New("product is out of stock")
	ErrNotYourOrder  = errors.New("order belongs to a different user")
	ErrUnknownStatus = errors.New("unknown order status")
)

// CheckoutItem is one requested line at checkout time.
type CheckoutItem struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity"   validate:"required,min=1"`
}

// OrderService places orders and walks them through the status pipeline.
type OrderService struct {
	orders   *repositories.OrderRepository
	products *repositories.ProductRepository
	feed     *ws.Feed // nil disables live events
}

func NewOrderService(feed *ws.Feed) *OrderService {
	return &OrderService{
		orders:   repositories.NewOrderRepository(),
		products: repositories.NewProductRepository(),
		feed:     feed,
	}
}

// Place prices the requested items server-side, decrements stock and
// persists the order. Prices always come from the catalogue, never from
// the client.
func (s *OrderService) Place(userID uint, items []CheckoutItem) (models.Order, error) {
	if len(items) == 0 {
		return models.Order{}, ErrEmptyOrder
	}

	order := models.Order{
		Number: NewOrderNumber(),
		UserID: userID,
		Status: models.OrderPending,
	}

	var subtotal float64
	for _, item := range items {
		if item.Quantity < 1 {
			continue
		}

		product, err := s.products.FindByID(item.ProductID)
		if err != nil {
			metrics.OrdersPlaced.WithLabelValues("failed").Inc()
			return models.Order{}, err
		}
		if product.Stock < item.Quantity {
			metrics.OrdersPlaced.WithLabelValues("failed").Inc()
			return models.Order{}, fmt.Errorf("%w: %s", ErrOutOfStock, product.Name)
		}

		order.Items = append(order.Items, models.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  item.Quantity,
		})
		subtotal += product.Price * float64(item.Quantity)

		product.Stock -= item.Quantity
		if err := s.products.Update(&product); err != nil {
			metrics.OrdersPlaced.WithLabelValues("failed").Inc()
			return models.Order{}, err
		}
	}

	if len(order.Items) == 0 {
		return models.Order{}, ErrEmptyOrder
	}

	order.Subtotal = subtotal
	order.Shipping = cart.Shipping(subtotal)
	order.Tax = cart.Tax(subtotal)
	order.Total = cart.Total(subtotal)

	if err := s.orders.Create(&order); err != nil {
		metrics.OrdersPlaced.WithLabelValues("failed").Inc()
		return models.Order{}, err
	}

	metrics.OrdersPlaced.WithLabelValues("success").Inc()
	if s.feed != nil {
		s.feed.Publish("order.created", order)
	}
	return order, nil
}

// ForUser returns the authenticated user's order history, newest first.
func (s *OrderService) ForUser(userID uint) ([]models.Order, error) {
	return s.orders.ForUser(userID)
}

// Find returns one order by number, restricted to its owner.
func (s *OrderService) Find(userID uint, number string) (models.Order, error) {
	order, err := s.orders.FindByNumber(number)
	if err != nil {
		return models.Order{}, err
	}
	if order.UserID != userID {
		return models.Order{}, ErrNotYourOrder
	}
	return order, nil
}

// NewOrderNumber returns a short uppercase order reference like "3F2A9C01".
func NewOrderNumber() string {
	id := uuid.New()
	return strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))[:8]
}
