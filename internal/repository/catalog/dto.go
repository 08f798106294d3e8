package catalog

// itemDTO is the embedded catalog JSON shape.
type itemDTO struct {
	ID                int            `json:"id"`
	Name              string         `json:"name"`
	Brand             string         `json:"brand"`
	Category          string         `json:"category"`
	Price             float64        `json:"price"`
	Currency          string         `json:"currency"`
	Image             string         `json:"image"`
	Rating            float64        `json:"rating"`
	ReviewCount       int            `json:"review_count"`
	Personalized      bool           `json:"personalized"`
	Merchandised      bool           `json:"merchandised"`
	MerchandisingKind string         `json:"merchandising_kind,omitempty"`
	Attributes        map[string]any `json:"attributes"`
}
