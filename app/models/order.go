package models

import "gorm.io/gorm"

// Order statuses form a simple pipeline; cancelled is terminal from any
// non-delivered state.
const (
	OrderPending    = "pending"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)

// Order is a placed order with its priced line items.
type Order struct {
	gorm.Model
	Number   string      `gorm:"uniqueIndex;size:20;not null" json:"number"`
	UserID   uint        `gorm:"not null;index"               json:"user_id"`
	User     User        `gorm:"foreignKey:UserID"            json:"-"`
	Status   string      `gorm:"size:50;not null;default:pending" json:"status"`
	Subtotal float64     `gorm:"not null"                     json:"subtotal"`
	Shipping float64     `gorm:"not null"                     json:"shipping"`
	Tax      float64     `gorm:"not null"                     json:"tax"`
	Total    float64     `gorm:"not null"                     json:"total"`
	Items    []OrderItem `gorm:"foreignKey:OrderID"           json:"items"`
}

// OrderItem is one product line on an order. Name and Price are copied at
// purchase time so later catalogue edits do not rewrite history.
type OrderItem struct {
	gorm.Model
	OrderID   uint    `gorm:"not null;index" json:"-"`
	ProductID uint    `gorm:"not null"       json:"product_id"`
	Name      string  `gorm:"size:255"       json:"name"`
	Price     float64 `gorm:"not null"       json:"price"`
	Quantity  int     `gorm:"not null"       json:"quantity"`
}
