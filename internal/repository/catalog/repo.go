// Package catalog loads the embedded item catalog. The catalog is fixed data
// compiled into the binary and immutable for the process lifetime.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/yash171102/shopquery/internal/domain"
	domcat "github.com/yash171102/shopquery/internal/domain/catalog"
)

//go:embed catalog.json
var rawCatalog []byte

// Repository holds the catalog items loaded at process start.
type Repository struct {
	items []domcat.Item
}

// New parses and validates the embedded catalog.
func New() (*Repository, error) {
	var dtos []itemDTO
	if err := json.Unmarshal(rawCatalog, &dtos); err != nil {
		return nil, fmt.Errorf("%w: parse embedded catalog: %w", domain.ErrCatalogInvalid, err)
	}
	if len(dtos) == 0 {
		return nil, fmt.Errorf("%w: embedded catalog is empty", domain.ErrCatalogInvalid)
	}

	items := make([]domcat.Item, 0, len(dtos))
	seen := make(map[int]struct{}, len(dtos))
	for _, d := range dtos {
		if _, dup := seen[d.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate item id %d", domain.ErrCatalogInvalid, d.ID)
		}
		seen[d.ID] = struct{}{}

		item, err := domcat.New(
			d.ID, d.Name, d.Brand, d.Category,
			d.Price, d.Currency, d.Image,
			d.Rating, d.ReviewCount,
			d.Personalized, d.Merchandised, domcat.MerchKind(d.MerchandisingKind),
			d.Attributes,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrCatalogInvalid, err)
		}
		items = append(items, item)
	}

	return &Repository{items: items}, nil
}

// Items returns the catalog in declaration order. The returned slice is a
// copy; items themselves are immutable value objects.
func (r *Repository) Items() []domcat.Item {
	out := make([]domcat.Item, len(r.items))
	copy(out, r.items)
	return out
}

// Len returns the number of catalog items.
func (r *Repository) Len() int { return len(r.items) }
