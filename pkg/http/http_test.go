package http_test

import (
	"testing"

	"github.com/shashiranjanraj/vendora/pkg/http"
	"github.com/shashiranjanraj/vendora/pkg/testkit"
)

func TestResponseJSONAndText(t *testing.T) {
	mock(t, testkit.Stub{Method: "GET", URL: "/products", Status: 200, Body: `{"data":[{"id":1}]}`})

	resp, err := http.Get(base + "/products").Send()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var out struct {
		Data []struct {
			ID int `json:"id"`
		} `json:"data"`
	}
	if err := resp.JSON(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Data) != 1 || out.Data[0].ID != 1 {
		t.Errorf("unexpected payload: %+v", out)
	}
	if resp.Text() == "" {
		t.Error("expected non-empty body text")
	}
}

func TestThrowOnErrorStatus(t *testing.T) {
	mock(t, testkit.Stub{Method: "GET", URL: "/missing", Status: 404, Body: `{"status":404}`})

	resp, err := http.Get(base + "/missing").Send()
	if err != nil {
		t.Fatalf("a 404 is a successful send, got error: %v", err)
	}
	if resp.OK() {
		t.Error("expected OK() to be false for 404")
	}
	if resp.Throw() == nil {
		t.Error("expected Throw() to return an error for 404")
	}
}

func TestUnstubbedRequestFails(t *testing.T) {
	mock(t) // no stubs declared

	if _, err := http.Get(base + "/anything").Send(); err == nil {
		t.Error("expected an error for undeclared traffic")
	}
}
