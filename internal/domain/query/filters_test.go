package query

import (
	"math"
	"testing"
)

func fptr(f float64) *float64 { return &f }

func TestPriceRange_Defaults(t *testing.T) {
	pr := NewPriceRange(nil, nil)
	if pr.Min() != 0 {
		t.Errorf("Min = %v, want 0", pr.Min())
	}
	if !math.IsInf(pr.Max(), 1) {
		t.Errorf("Max = %v, want +Inf", pr.Max())
	}
	if !pr.Contains(1e9) {
		t.Error("open range should contain any price")
	}
}

func TestPriceRange_InclusiveBounds(t *testing.T) {
	pr := NewPriceRange(fptr(10), fptr(20))
	for _, p := range []float64{10, 15, 20} {
		if !pr.Contains(p) {
			t.Errorf("Contains(%v) = false, want true", p)
		}
	}
	for _, p := range []float64{9.99, 20.01} {
		if pr.Contains(p) {
			t.Errorf("Contains(%v) = true, want false", p)
		}
	}
}

func TestPriceRange_InvertedIsEmpty(t *testing.T) {
	pr := NewPriceRange(fptr(20), fptr(10))
	for _, p := range []float64{5, 10, 15, 20, 25} {
		if pr.Contains(p) {
			t.Errorf("inverted range must contain nothing, got %v", p)
		}
	}
}

func TestFilters_EmptySetsUnconstrained(t *testing.T) {
	f := NewFilters(nil, nil, nil, nil, nil, nil)
	if !f.BrandAllowed("Anything") || !f.CategoryAllowed("Anything") || !f.PriceAllowed(999) {
		t.Fatal("empty filters must allow everything")
	}
}

func TestFilters_ExactBrandMatch(t *testing.T) {
	f := NewFilters([]string{"Nike", "Adidas"}, nil, nil, nil, nil, nil)
	if !f.BrandAllowed("Nike") {
		t.Error("listed brand should pass")
	}
	if f.BrandAllowed("nike") {
		t.Error("matching is case-sensitive")
	}
	if f.BrandAllowed("Puma") {
		t.Error("unlisted brand should fail")
	}
}

func TestFilters_PriceDelegation(t *testing.T) {
	pr := NewPriceRange(fptr(10), fptr(20))
	f := NewFilters(nil, nil, nil, nil, nil, &pr)
	if f.PriceAllowed(25) {
		t.Error("price outside range should fail")
	}
	if !f.PriceAllowed(15) {
		t.Error("price inside range should pass")
	}
}
