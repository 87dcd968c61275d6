package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/vendora/pkg/router"
)

func ping(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestRoutingAndParams(t *testing.T) {
	r := router.New()
	r.Get("/products", "products.index", ping("all"))
	r.Get("/products/{id}", "products.show", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("product " + chi.URLParam(req, "id")))
	})

	if rec := get(t, r.Handler(), "/products"); rec.Body.String() != "all" {
		t.Errorf("unexpected body %q", rec.Body.String())
	}
	if rec := get(t, r.Handler(), "/products/42"); rec.Body.String() != "product 42" {
		t.Errorf("unexpected body %q", rec.Body.String())
	}
	if rec := get(t, r.Handler(), "/missing"); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestGroupPrefixAndMiddleware(t *testing.T) {
	var order []string
	tag := func(label string) router.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				order = append(order, label)
				next.ServeHTTP(w, req)
			})
		}
	}

	r := router.New()
	api := r.Group("/api", tag("group"))
	api.Get("/orders", "orders.index", ping("orders"), tag("route"))

	nested := api.Group("/admin", tag("admin"))
	nested.Get("/stats", "admin.stats", ping("stats"))

	rec := get(t, r.Handler(), "/api/orders")
	if rec.Body.String() != "orders" {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
	if len(order) != 2 || order[0] != "group" || order[1] != "route" {
		t.Errorf("middleware ran in order %v", order)
	}

	order = nil
	if rec := get(t, r.Handler(), "/api/admin/stats"); rec.Body.String() != "stats" {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
	if len(order) != 2 || order[0] != "group" || order[1] != "admin" {
		t.Errorf("nested group middleware ran in order %v", order)
	}
}

func TestNamedRoutes(t *testing.T) {
	r := router.New()
	r.Get("/orders/{number}", "orders.show", ping("x"))

	path, ok := r.Path("orders.show")
	if !ok || path != "/orders/{number}" {
		t.Errorf("Path returned %q, %v", path, ok)
	}

	url, err := r.URL("orders.show", map[string]string{"number": "A1B2C3D4"})
	if err != nil || url != "/orders/A1B2C3D4" {
		t.Errorf("URL returned %q, %v", url, err)
	}

	if _, err := r.URL("orders.show", nil); err == nil {
		t.Error("expected an error when parameters are missing")
	}
	if _, err := r.URL("nope", nil); err == nil {
		t.Error("expected an error for an unknown name")
	}
}

func TestRoutesListingSorted(t *testing.T) {
	r := router.New()
	r.Post("/b", "b.create", ping("x"))
	r.Get("/b", "b.index", ping("x"))
	r.Get("/a", "a.index", ping("x"))

	routes := r.Routes()
	if len(routes) != 3 {
		t.Fatalf("expected 3 routes, got %d", len(routes))
	}
	want := []router.Route{
		{Method: http.MethodGet, Path: "/a", Name: "a.index"},
		{Method: http.MethodGet, Path: "/b", Name: "b.index"},
		{Method: http.MethodPost, Path: "/b", Name: "b.create"},
	}
	for i, route := range routes {
		if route != want[i] {
			t.Errorf("route %d = %+v, want %+v", i, route, want[i])
		}
	}
}
