package query

import "math"

// PriceRange is an inclusive price constraint. Nil boundaries default to
// 0 (min) and unbounded (max). A min greater than max is not validated here:
// it observably excludes everything, which is the documented outcome.
type PriceRange struct {
	min *float64
	max *float64
}

// NewPriceRange creates a price range. Nil means an absent boundary.
func NewPriceRange(min, max *float64) PriceRange {
	return PriceRange{min: min, max: max}
}

// Min returns the effective lower bound (0 when absent).
func (r PriceRange) Min() float64 {
	if r.min == nil {
		return 0
	}
	return *r.min
}

// Max returns the effective upper bound (+Inf when absent).
func (r PriceRange) Max() float64 {
	if r.max == nil {
		return math.Inf(1)
	}
	return *r.max
}

// Contains reports whether the price lies within [Min, Max].
func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min() && price <= r.Max()
}

// Filters are caller-supplied result constraints. Absent fields mean
// unconstrained. Constraint filtering applies brands, categories, and the
// price range strictly; colors, sizes, and rating are carried for API
// completeness but not enforced by the matcher.
type Filters struct {
	brands     []string
	categories []string
	colors     []string
	sizes      []string
	minRating  *float64
	priceRange *PriceRange
}

// NewFilters creates a filter set. Empty slices and nil pointers mean
// unconstrained dimensions.
func NewFilters(
	brands, categories, colors, sizes []string,
	minRating *float64, priceRange *PriceRange,
) Filters {
	return Filters{
		brands:     brands,
		categories: categories,
		colors:     colors,
		sizes:      sizes,
		minRating:  minRating,
		priceRange: priceRange,
	}
}

// Brands returns the allowed brand set.
func (f Filters) Brands() []string { return f.brands }

// Categories returns the allowed category set.
func (f Filters) Categories() []string { return f.categories }

// Colors returns the requested color set (not enforced).
func (f Filters) Colors() []string { return f.colors }

// Sizes returns the requested size set (not enforced).
func (f Filters) Sizes() []string { return f.sizes }

// MinRating returns the requested minimum rating, if any (not enforced).
func (f Filters) MinRating() (float64, bool) {
	if f.minRating == nil {
		return 0, false
	}
	return *f.minRating, true
}

// PriceRange returns the price constraint, if any.
func (f Filters) PriceRange() (PriceRange, bool) {
	if f.priceRange == nil {
		return PriceRange{}, false
	}
	return *f.priceRange, true
}

// BrandAllowed reports whether the brand passes the brand constraint.
// Matching is exact, matching the caller-facing filter contract.
func (f Filters) BrandAllowed(brand string) bool {
	if len(f.brands) == 0 {
		return true
	}
	return containsExact(f.brands, brand)
}

// CategoryAllowed reports whether the category passes the category constraint.
func (f Filters) CategoryAllowed(category string) bool {
	if len(f.categories) == 0 {
		return true
	}
	return containsExact(f.categories, category)
}

// PriceAllowed reports whether the price passes the price constraint.
func (f Filters) PriceAllowed(price float64) bool {
	if f.priceRange == nil {
		return true
	}
	return f.priceRange.Contains(price)
}

func containsExact(s []string, v string) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}
