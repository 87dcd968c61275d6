package cart

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Order is an ephemeral snapshot of a cart taken when checkout completes.
// It exists only for the confirmation view and is never persisted.
type Order struct {
	Number   string    `json:"number"`
	Lines    []Line    `json:"lines"`
	Subtotal float64   `json:"subtotal"`
	Shipping float64   `json:"shipping"`
	Tax      float64   `json:"tax"`
	Total    float64   `json:"total"`
	PlacedAt time.Time `json:"placed_at"`
}

// Checkout snapshots the cart into an Order with a fresh display number and
// clears the cart. Returns the zero Order and false when the cart is empty.
func (c *Cart) Checkout() (Order, bool) {
	if c.IsEmpty() {
		return Order{}, false
	}

	sub := c.Subtotal()
	order := Order{
		Number:   newOrderNumber(),
		Lines:    c.Lines(),
		Subtotal: sub,
		Shipping: Shipping(sub),
		Tax:      Tax(sub),
		Total:    sub + Shipping(sub) + Tax(sub),
		PlacedAt: time.Now(),
	}

	c.Clear()
	return order, true
}

// newOrderNumber produces a short human-readable display identifier,
// e.g. "3F9A1C04". Uniqueness at display scale comes from the uuid source.
func newOrderNumber() string {
	id := uuid.NewString()
	return strings.ToUpper(strings.ReplaceAll(id, "-", "")[:8])
}
