package enums_test

import (
	"testing"

	"github.com/openmarket-kr/openmarket-backend/pkg/enums"
)

func TestParseCountry(t *testing.T) {
	country, err := enums.ParseCountry("HONG_KONG")
	if err != nil {
		t.Fatalf("ParseCountry returned error: %v", err)
	}
	if country != enums.CountryHongKong {
		t.Fatalf("unexpected country %q", country)
	}

	if _, err := enums.ParseCountry("korea"); err == nil {
		t.Fatal("expected lowercase value to be rejected")
	}
	if _, err := enums.ParseCountry(""); err == nil {
		t.Fatal("expected empty value to be rejected")
	}
}

func TestParseCategory(t *testing.T) {
	category, err := enums.ParseCategory("ELECTRONICS")
	if err != nil {
		t.Fatalf("ParseCategory returned error: %v", err)
	}
	if category != enums.CategoryElectronics {
		t.Fatalf("unexpected category %q", category)
	}

	if _, err := enums.ParseCategory("TOYS"); err == nil {
		t.Fatal("expected unknown category to be rejected")
	}
}

func TestParseProductOrder(t *testing.T) {
	order, err := enums.ParseProductOrder("DEADLINE")
	if err != nil {
		t.Fatalf("ParseProductOrder returned error: %v", err)
	}
	if order != enums.ProductOrderDeadline {
		t.Fatalf("unexpected order %q", order)
	}

	if !enums.ProductOrderNew.IsValid() {
		t.Fatal("expected NEW to be valid")
	}
	if enums.ProductOrder("OLD").IsValid() {
		t.Fatal("expected OLD to be invalid")
	}
}
