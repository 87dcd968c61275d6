package storefront

import (
	"context"
	"fmt"
	"time"

	vhttp "github.com/shashiranjanraj/vendora/pkg/http"
)

// Profile is the account detail returned by the profile endpoint.
type Profile struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderItem is one line of a past order.
type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// OrderSummary is one entry in the user's order history.
type OrderSummary struct {
	Number    string      `json:"number"`
	Status    string      `json:"status"`
	Total     float64     `json:"total"`
	CreatedAt time.Time   `json:"created_at"`
	Items     []OrderItem `json:"items"`
}

// AdminOrder is one row of the admin order listing.
type AdminOrder struct {
	Number    string    `json:"number"`
	User      string    `json:"user"`
	Status    string    `json:"status"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}

// Dashboard aggregates the numbers the admin landing screen shows.
type Dashboard struct {
	TotalUsers     int64            `json:"total_users"`
	TotalOrders    int64            `json:"total_orders"`
	TotalRevenue   float64          `json:"total_revenue"`
	OrdersByStatus map[string]int64 `json:"orders_by_status"`
}

// Profile fetches the signed-in user's account details.
func (s *Session) Profile(ctx context.Context) (Profile, error) {
	return fetch[Profile](s, ctx, "/user/profile")
}

// Orders fetches the signed-in user's order history.
func (s *Session) Orders(ctx context.Context) ([]OrderSummary, error) {
	return fetch[[]OrderSummary](s, ctx, "/user/orders")
}

// ChangePassword swaps the account password. Validation failures come back
// as field-level messages inside the returned error.
func (s *Session) ChangePassword(ctx context.Context, current, next string) error {
	resp, err := s.api.Do(vhttp.Post(s.api.BaseURL() + "/user/change-password").
		WithContext(ctx).
		Body(map[string]string{"current_password": current, "new_password": next}))
	if err != nil {
		return fmt.Errorf("storefront: change password: %w", err)
	}
	return envelopeError(resp, "change password")
}

// Dashboard fetches the admin dashboard aggregates.
func (s *Session) Dashboard(ctx context.Context) (Dashboard, error) {
	return fetch[Dashboard](s, ctx, "/admin/dashboard")
}

// AdminOrders fetches one page of the store-wide order listing.
func (s *Session) AdminOrders(ctx context.Context) ([]AdminOrder, error) {
	page, err := fetch[struct {
		Items []AdminOrder `json:"items"`
	}](s, ctx, "/admin/orders")
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// UpdateOrderStatus moves the order with the given display number to status.
func (s *Session) UpdateOrderStatus(ctx context.Context, number, status string) error {
	resp, err := s.api.Do(vhttp.Put(s.api.BaseURL() + "/admin/orders/" + number + "/status").
		WithContext(ctx).
		Body(map[string]string{"status": status}))
	if err != nil {
		return fmt.Errorf("storefront: update order status: %w", err)
	}
	return envelopeError(resp, "update order status")
}

// fetch GETs path through the refresh-aware API and unwraps the data
// envelope into T.
func fetch[T any](s *Session, ctx context.Context, path string) (T, error) {
	var zero T

	resp, err := s.api.Do(vhttp.Get(s.api.BaseURL() + path).WithContext(ctx))
	if err != nil {
		return zero, fmt.Errorf("storefront: fetch %s: %w", path, err)
	}
	if err := envelopeError(resp, path); err != nil {
		return zero, err
	}

	var out struct {
		Data T `json:"data"`
	}
	if err := resp.JSON(&out); err != nil {
		return zero, fmt.Errorf("storefront: fetch %s: %w", path, err)
	}
	return out.Data, nil
}

// envelopeError converts a non-2xx envelope into an error carrying the
// server's message when one was sent.
func envelopeError(resp *vhttp.Response, what string) error {
	if resp.OK() {
		return nil
	}

	var out struct {
		Message string `json:"message"`
	}
	if err := resp.JSON(&out); err == nil && out.Message != "" {
		return fmt.Errorf("storefront: %s: %s (status %d)", what, out.Message, resp.StatusCode)
	}
	return fmt.Errorf("storefront: %s: unexpected status %d", what, resp.StatusCode)
}
