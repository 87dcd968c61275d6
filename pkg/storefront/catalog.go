package storefront

import (
	"context"
	"fmt"

	"github.com/shashiranjanraj/vendora/pkg/cart"
	"github.com/shashiranjanraj/vendora/pkg/catalog"
	vhttp "github.com/shashiranjanraj/vendora/pkg/http"
)

// Products fetches the full catalogue. The result feeds a catalog.View for
// filtering and paging on the client side.
func (s *Session) Products(ctx context.Context) ([]catalog.Product, error) {
	return fetch[[]catalog.Product](s, ctx, "/products")
}

// Categories fetches the category list with live product counts.
func (s *Session) Categories(ctx context.Context) ([]catalog.Category, error) {
	return fetch[[]catalog.Category](s, ctx, "/categories")
}

// PlacedOrder is the acknowledgement returned by Checkout. Amounts are the
// server's; they may differ from the local cart if prices changed mid-session.
type PlacedOrder struct {
	Number   string  `json:"number"`
	Status   string  `json:"status"`
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Checkout submits the cart's lines as an order and clears the cart once the
// backend accepts it. The cart is left untouched on failure so the user can
// retry.
func (s *Session) Checkout(ctx context.Context, c *cart.Cart) (PlacedOrder, error) {
	type item struct {
		ProductID int `json:"product_id"`
		Quantity  int `json:"quantity"`
	}

	lines := c.Lines()
	items := make([]item, len(lines))
	for i, line := range lines {
		items[i] = item{ProductID: line.Product.ID, Quantity: line.Quantity}
	}

	resp, err := s.api.Do(vhttp.Post(s.api.BaseURL() + "/orders").
		WithContext(ctx).
		Body(map[string]any{"items": items}))
	if err != nil {
		return PlacedOrder{}, fmt.Errorf("storefront: checkout: %w", err)
	}
	if err := envelopeError(resp, "checkout"); err != nil {
		return PlacedOrder{}, err
	}

	var out struct {
		Data PlacedOrder `json:"data"`
	}
	if err := resp.JSON(&out); err != nil {
		return PlacedOrder{}, fmt.Errorf("storefront: checkout: %w", err)
	}

	c.Clear()
	return out.Data, nil
}
