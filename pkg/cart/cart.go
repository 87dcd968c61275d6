// Package cart implements the in-memory shopping cart: an ordered list of
// product/quantity lines with derived count, subtotal, shipping, tax and
// total. Invalid inputs are silently ignored rather than returned as errors —
// the UI layer is expected to disable the offending controls.
package cart

import (
	"sync"

	"github.com/shashiranjanraj/vendora/pkg/catalog"
	"github.com/shashiranjanraj/vendora/pkg/collection"
)

// Pricing constants applied at checkout.
const (
	FreeShippingThreshold = 50.0
	FlatShippingRate      = 9.99
	TaxRate               = 0.08
)

// Line is one product/quantity pairing in the cart. The product is a
// snapshot taken when the line was created.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Subtotal is the line's price contribution.
func (l Line) Subtotal() float64 {
	return l.Product.Price * float64(l.Quantity)
}

// Cart is an ordered collection of lines, at most one per product ID.
// A Cart is owned by a single session; the mutex guards against the odd
// concurrent reader (e.g. a badge rendering while a handler mutates).
type Cart struct {
	mu    sync.Mutex
	lines []Line
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add puts qty units of product into the cart. If a line for the product
// already exists its quantity is incremented in place, otherwise a new line
// is appended. qty < 1 is ignored. No stock cap is enforced here; the
// product view disables adding past stock.
func (c *Cart) Add(product catalog.Product, qty int) {
	if qty < 1 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Product.ID == product.ID {
			c.lines[i].Quantity += qty
			return
		}
	}
	c.lines = append(c.lines, Line{Product: product, Quantity: qty})
}

// UpdateQuantity sets the quantity of the line for productID.
// Quantities below 1 and unknown products are ignored; a line is only ever
// removed by an explicit Remove.
func (c *Cart) UpdateQuantity(productID, qty int) {
	if qty < 1 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines[i].Quantity = qty
			return
		}
	}
}

// Remove deletes the line for productID if present.
func (c *Cart) Remove(productID int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = collection.Reject(c.lines, func(l Line) bool {
		return l.Product.ID == productID
	})
}

// Clear empties the cart. Called when an order completes.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Lines returns a copy of the cart's lines in insertion order.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}

// Count is the total number of units across all lines.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Subtotal sums price × quantity over all lines.
func (c *Cart) Subtotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return collection.Sum(c.lines, Line.Subtotal)
}

// Shipping is free above the threshold, otherwise the flat rate.
func Shipping(subtotal float64) float64 {
	if subtotal > FreeShippingThreshold {
		return 0
	}
	return FlatShippingRate
}

// Tax applies the flat tax rate to subtotal.
func Tax(subtotal float64) float64 {
	return subtotal * TaxRate
}

// Total is subtotal plus shipping plus tax.
func Total(subtotal float64) float64 {
	return subtotal + Shipping(subtotal) + Tax(subtotal)
}

// Total is the order total for the cart's current contents.
func (c *Cart) Total() float64 {
	return Total(c.Subtotal())
}
