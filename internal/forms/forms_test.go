package forms

import (
	"sync"
	"testing"

	"lazapee/internal/api"
)

func sellerFixture(zip *int) api.Seller {
	return api.Seller{
		SellerID:  3,
		StoreName: "Acme Goods",
		Status:    "active",
		ZipCode:   zip,
	}
}

func TestParsePriceNormalizesCommaSeparator(t *testing.T) {
	price, ok := ParsePrice("10,50")
	if !ok || price != 10.5 {
		t.Fatalf("expected 10.5, got %v ok=%v", price, ok)
	}
	if _, ok := ParsePrice("abc"); ok {
		t.Fatal("expected non-numeric price to be rejected")
	}
	if _, ok := ParsePrice("0"); ok {
		t.Fatal("expected zero price to be rejected")
	}
	if _, ok := ParsePrice("-5"); ok {
		t.Fatal("expected negative price to be rejected")
	}
	if _, ok := ParsePrice(""); ok {
		t.Fatal("expected empty price to be rejected")
	}
}

func TestParseProductRequiredFields(t *testing.T) {
	_, fieldErrors := ParseProduct(ProductForm{Name: "", Brand: "Acme", Price: "10"})
	if fieldErrors == nil {
		t.Fatal("expected validation errors")
	}
	if fieldErrors["name"] != "name is required" {
		t.Fatalf("unexpected name message: %q", fieldErrors["name"])
	}

	_, fieldErrors = ParseProduct(ProductForm{Name: "Widget", Brand: "  ", Price: "10"})
	if fieldErrors["brand"] != "brand is required" {
		t.Fatalf("unexpected brand message: %q", fieldErrors["brand"])
	}

	_, fieldErrors = ParseProduct(ProductForm{Name: "Widget", Brand: "Acme", Price: "free"})
	if fieldErrors["price"] != "price must be a positive number" {
		t.Fatalf("unexpected price message: %q", fieldErrors["price"])
	}
}

func TestParseProductBuildsPayload(t *testing.T) {
	payload, fieldErrors := ParseProduct(ProductForm{
		Name:        " Widget ",
		Brand:       "Acme",
		Price:       "29,99",
		Description: "A widget",
		Weight:      "1,5",
		Width:       "",
	})
	if fieldErrors != nil {
		t.Fatalf("unexpected errors: %v", fieldErrors)
	}
	if payload.Name != "Widget" || payload.Brand != "Acme" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if payload.Price != 29.99 {
		t.Fatalf("expected price 29.99, got %v", payload.Price)
	}
	if payload.CategoryID != 1 {
		t.Fatalf("expected default category 1, got %d", payload.CategoryID)
	}
	if payload.Weight == nil || *payload.Weight != 1.5 {
		t.Fatalf("expected weight 1.5, got %v", payload.Weight)
	}
	if payload.Width != nil {
		t.Fatal("empty dimension must stay absent")
	}
}

func TestParseProductRejectsBadDimension(t *testing.T) {
	_, fieldErrors := ParseProduct(ProductForm{Name: "Widget", Brand: "Acme", Price: "10", Height: "tall"})
	if fieldErrors["height"] != "height must be a number" {
		t.Fatalf("unexpected height message: %q", fieldErrors["height"])
	}
}

func TestParseSellerZipCodeTextMapping(t *testing.T) {
	payload, fieldErrors := ParseSeller(SellerForm{StoreName: "Acme Goods", ZipCode: " 1000 "})
	if fieldErrors != nil {
		t.Fatalf("unexpected errors: %v", fieldErrors)
	}
	if payload.ZipCode == nil || *payload.ZipCode != 1000 {
		t.Fatalf("expected zip 1000, got %v", payload.ZipCode)
	}

	payload, fieldErrors = ParseSeller(SellerForm{StoreName: "Acme Goods", ZipCode: ""})
	if fieldErrors != nil {
		t.Fatalf("unexpected errors: %v", fieldErrors)
	}
	if payload.ZipCode != nil {
		t.Fatal("empty zip must map to absent, not zero")
	}

	_, fieldErrors = ParseSeller(SellerForm{StoreName: "Acme Goods", ZipCode: "12ab"})
	if fieldErrors["zipCode"] != "zipCode must be a number" {
		t.Fatalf("unexpected zip message: %q", fieldErrors["zipCode"])
	}
}

func TestParseSellerRequiresStoreName(t *testing.T) {
	_, fieldErrors := ParseSeller(SellerForm{StoreName: "  "})
	if fieldErrors["storeName"] != "storeName is required" {
		t.Fatalf("unexpected message: %q", fieldErrors["storeName"])
	}
}

func TestSellerFormFromRendersZipAsText(t *testing.T) {
	zip := 1000
	form := SellerFormFrom(sellerFixture(&zip))
	if form.ZipCode != "1000" {
		t.Fatalf("expected zip text, got %q", form.ZipCode)
	}

	form = SellerFormFrom(sellerFixture(nil))
	if form.ZipCode != "" {
		t.Fatalf("expected empty zip text, got %q", form.ZipCode)
	}
}

func TestGuardAllowsOneInFlightPerKey(t *testing.T) {
	guard := NewGuard()

	if !guard.Acquire("login") {
		t.Fatal("first acquire should succeed")
	}
	if guard.Acquire("login") {
		t.Fatal("second acquire for the same key should fail")
	}
	if !guard.Acquire("signup") {
		t.Fatal("other keys are independent")
	}

	guard.Release("login")
	if !guard.Acquire("login") {
		t.Fatal("acquire after release should succeed")
	}
}

func TestGuardUnderConcurrency(t *testing.T) {
	guard := NewGuard()
	var wg sync.WaitGroup
	var mu sync.Mutex
	acquired := 0

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if guard.Acquire("product-create") {
				mu.Lock()
				acquired++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if acquired != 1 {
		t.Fatalf("expected exactly one winner, got %d", acquired)
	}
}
