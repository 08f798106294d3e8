package query

// Semantic is the structured intent extracted from a free-text query.
// All fields are optional; extraction is best-effort and may yield nothing.
// The category field is reserved: no extraction rule produces it, so it is
// deliberately absent from this type.
type Semantic struct {
	brand        *string
	color        *string
	priceCeiling *float64
}

// NewSemantic creates a Semantic intent. Nil pointers mean absent fields.
func NewSemantic(brand, color *string, priceCeiling *float64) Semantic {
	return Semantic{brand: brand, color: color, priceCeiling: priceCeiling}
}

// Brand returns the inferred brand token, if any.
func (s Semantic) Brand() (string, bool) {
	if s.brand == nil {
		return "", false
	}
	return *s.brand, true
}

// Color returns the inferred color token, if any.
func (s Semantic) Color() (string, bool) {
	if s.color == nil {
		return "", false
	}
	return *s.color, true
}

// PriceCeiling returns the inferred maximum price, if any.
// Only an upper bound is ever extracted.
func (s Semantic) PriceCeiling() (float64, bool) {
	if s.priceCeiling == nil {
		return 0, false
	}
	return *s.priceCeiling, true
}

// IsEmpty reports whether extraction yielded no fields.
func (s Semantic) IsEmpty() bool {
	return s.brand == nil && s.color == nil && s.priceCeiling == nil
}
