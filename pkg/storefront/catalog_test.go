package storefront_test

import (
	"context"
	"testing"

	"github.com/shashiranjanraj/vendora/pkg/cart"
	"github.com/shashiranjanraj/vendora/pkg/catalog"
	"github.com/shashiranjanraj/vendora/pkg/storefront"
	"github.com/shashiranjanraj/vendora/pkg/testkit"
	"github.com/shashiranjanraj/vendora/pkg/tokenstore"
)

func TestProductsFeedTheCatalogView(t *testing.T) {
	mock(t, testkit.Stub{Method: "GET", URL: "/products", Status: 200, Body: `{"status":200,"data":[
		{"id":1,"name":"Wireless Headphones","price":89.99,"category":"electronics","stock":10},
		{"id":2,"name":"Cotton T-Shirt","price":19.99,"category":"clothing","stock":50},
		{"id":3,"name":"Desk Lamp","price":34.99,"category":"electronics","stock":20}
	]}`})

	s := storefront.NewSession(base, tokenstore.NewMemory())

	products, err := s.Products(context.Background())
	if err != nil {
		t.Fatalf("products: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(products))
	}

	view := catalog.NewView(products, []catalog.Category{
		{Slug: "electronics", Name: "Electronics"},
		{Slug: "clothing", Name: "Clothing"},
	})
	view.SetCategory("electronics")
	if got := len(view.Filtered()); got != 2 {
		t.Errorf("expected 2 electronics products, got %d", got)
	}
}

func TestCategories(t *testing.T) {
	mock(t, testkit.Stub{Method: "GET", URL: "/categories", Status: 200, Body: `{"status":200,"data":[
		{"slug":"electronics","name":"Electronics","count":2},
		{"slug":"clothing","name":"Clothing","count":1}
	]}`})

	s := storefront.NewSession(base, tokenstore.NewMemory())

	categories, err := s.Categories(context.Background())
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if len(categories) != 2 || categories[0].Slug != "electronics" || categories[0].Count != 2 {
		t.Errorf("unexpected categories: %+v", categories)
	}
}

func TestCheckoutClearsCartOnSuccess(t *testing.T) {
	mt := mock(t, testkit.Stub{Method: "POST", URL: "/orders", Status: 201,
		Body: `{"status":201,"data":{"number":"3F2A9C01","status":"pending","subtotal":129.97,"shipping":0,"tax":10.40,"total":140.37}}`})

	tokens := tokenstore.NewMemory()
	tokens.SetTokens("a1", "r1")
	s := storefront.NewSession(base, tokens)

	c := cart.New()
	c.Add(catalog.Product{ID: 1, Name: "Wireless Headphones", Price: 89.99, Stock: 10}, 1)
	c.Add(catalog.Product{ID: 2, Name: "Cotton T-Shirt", Price: 19.99, Stock: 50}, 2)

	order, err := s.Checkout(context.Background(), c)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if order.Number != "3F2A9C01" || order.Status != "pending" {
		t.Errorf("unexpected order: %+v", order)
	}
	if !c.IsEmpty() {
		t.Error("expected the cart to be cleared after checkout")
	}
	if got := mt.Calls("POST", "/orders"); got != 1 {
		t.Errorf("expected 1 checkout call, got %d", got)
	}
}

func TestCheckoutKeepsCartOnFailure(t *testing.T) {
	mock(t, testkit.Stub{Method: "POST", URL: "/orders", Status: 409,
		Body: `{"status":409,"message":"product is out of stock: Running Shoes"}`})

	tokens := tokenstore.NewMemory()
	tokens.SetTokens("a1", "r1")
	s := storefront.NewSession(base, tokens)

	c := cart.New()
	c.Add(catalog.Product{ID: 5, Name: "Running Shoes", Price: 79.99, Stock: 1}, 1)

	if _, err := s.Checkout(context.Background(), c); err == nil {
		t.Fatal("expected checkout to fail")
	}
	if c.IsEmpty() {
		t.Error("expected the cart to survive a failed checkout")
	}
}
