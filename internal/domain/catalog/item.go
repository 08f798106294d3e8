package catalog

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MerchKind is the catalog-declared merchandising treatment of an item.
type MerchKind string

const (
	// MerchNone means the item carries no merchandising.
	MerchNone MerchKind = ""
	// MerchBoost marks an item promoted within organic results.
	MerchBoost MerchKind = "boost"
	// MerchPin marks an item pinned by a merchandising campaign.
	MerchPin MerchKind = "pin"
)

// Item is a catalog entry (immutable value object).
// Personalized and merchandised flags here are the catalog-declared defaults;
// per-search resolution happens in the search use case.
type Item struct {
	id           int
	name         string
	brand        string
	category     string
	price        float64
	currency     string
	image        string
	rating       float64
	reviewCount  int
	personalized bool
	merchandised bool
	merchKind    MerchKind
	attributes   map[string]any
}

// New validates and creates an Item.
// Price must be non-negative, rating within [0, 5], review count non-negative.
func New(
	id int, name, brand, category string,
	price float64, currency, image string,
	rating float64, reviewCount int,
	personalized, merchandised bool, merchKind MerchKind,
	attributes map[string]any,
) (Item, error) {
	if id <= 0 {
		return Item{}, fmt.Errorf("item id must be positive, got %d", id)
	}
	if name == "" {
		return Item{}, fmt.Errorf("item %d: name is required", id)
	}
	if brand == "" {
		return Item{}, fmt.Errorf("item %d: brand is required", id)
	}
	if category == "" {
		return Item{}, fmt.Errorf("item %d: category is required", id)
	}
	if price < 0 {
		return Item{}, fmt.Errorf("item %d: price must be non-negative, got %g", id, price)
	}
	if rating < 0 || rating > 5 {
		return Item{}, fmt.Errorf("item %d: rating must be within [0, 5], got %g", id, rating)
	}
	if reviewCount < 0 {
		return Item{}, fmt.Errorf("item %d: review count must be non-negative, got %d", id, reviewCount)
	}
	switch merchKind {
	case MerchNone, MerchBoost, MerchPin:
	default:
		return Item{}, fmt.Errorf("item %d: unknown merchandising kind %q", id, merchKind)
	}
	if merchKind != MerchNone && !merchandised {
		return Item{}, fmt.Errorf("item %d: merchandising kind %q requires the merchandised flag", id, merchKind)
	}

	return Item{
		id: id, name: name, brand: brand, category: category,
		price: price, currency: currency, image: image,
		rating: rating, reviewCount: reviewCount,
		personalized: personalized, merchandised: merchandised, merchKind: merchKind,
		attributes: cloneAttrs(attributes),
	}, nil
}

// Reconstruct creates an Item without validation (catalog hydration).
func Reconstruct(
	id int, name, brand, category string,
	price float64, currency, image string,
	rating float64, reviewCount int,
	personalized, merchandised bool, merchKind MerchKind,
	attributes map[string]any,
) Item {
	return Item{
		id: id, name: name, brand: brand, category: category,
		price: price, currency: currency, image: image,
		rating: rating, reviewCount: reviewCount,
		personalized: personalized, merchandised: merchandised, merchKind: merchKind,
		attributes: attributes,
	}
}

// ID returns the item identifier.
func (i Item) ID() int { return i.id }

// Name returns the display name.
func (i Item) Name() string { return i.name }

// Brand returns the brand name.
func (i Item) Brand() string { return i.brand }

// Category returns the category name.
func (i Item) Category() string { return i.category }

// Price returns the numeric price.
func (i Item) Price() float64 { return i.price }

// Currency returns the price currency code.
func (i Item) Currency() string { return i.currency }

// Image returns the image reference.
func (i Item) Image() string { return i.image }

// Rating returns the average rating (0-5).
func (i Item) Rating() float64 { return i.rating }

// ReviewCount returns the number of reviews.
func (i Item) ReviewCount() int { return i.reviewCount }

// Personalized returns the catalog-declared personalization flag.
func (i Item) Personalized() bool { return i.personalized }

// Merchandised returns the catalog-declared merchandising flag.
func (i Item) Merchandised() bool { return i.merchandised }

// MerchandisingKind returns the merchandising treatment, MerchNone if absent.
func (i Item) MerchandisingKind() MerchKind { return i.merchKind }

// Attributes returns the open attribute mapping (color, sizes, material, ...).
func (i Item) Attributes() map[string]any { return i.attributes }

// SearchText returns the lower-cased text blob used for lexical matching:
// name, brand, and category joined with single spaces.
func (i Item) SearchText() string {
	return strings.ToLower(i.name + " " + i.brand + " " + i.category)
}

// AttributesBlob returns the lower-cased serialized attribute set.
// Color extraction matches against this blob as a whole, so a color token
// appearing in any attribute value (or key) counts.
func (i Item) AttributesBlob() string {
	if len(i.attributes) == 0 {
		return "{}"
	}
	data, err := json.Marshal(i.attributes)
	if err != nil {
		return "{}"
	}
	return strings.ToLower(string(data))
}

func cloneAttrs(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	c := make(map[string]any, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
