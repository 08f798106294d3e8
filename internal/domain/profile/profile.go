package profile

// Preferences holds a user's declared shopping preferences.
type Preferences struct {
	brands     []string
	categories []string
	colors     []string
	priceMin   float64
	priceMax   float64
}

// NewPreferences creates a preference set.
func NewPreferences(brands, categories, colors []string, priceMin, priceMax float64) Preferences {
	return Preferences{
		brands:     cloneStrings(brands),
		categories: cloneStrings(categories),
		colors:     cloneStrings(colors),
		priceMin:   priceMin,
		priceMax:   priceMax,
	}
}

// Brands returns the favored brands.
func (p Preferences) Brands() []string { return p.brands }

// Categories returns the favored categories.
func (p Preferences) Categories() []string { return p.categories }

// Colors returns the favored colors.
func (p Preferences) Colors() []string { return p.colors }

// PriceRange returns the preferred price range.
func (p Preferences) PriceRange() (min, max float64) { return p.priceMin, p.priceMax }

// FavorsBrand reports whether the brand is in the favored set (exact match).
func (p Preferences) FavorsBrand(brand string) bool { return contains(p.brands, brand) }

// FavorsCategory reports whether the category is in the favored set (exact match).
func (p Preferences) FavorsCategory(category string) bool { return contains(p.categories, category) }

// Profile is a caller-supplied user context (immutable value object).
// The search pipeline never mutates it; personalization applies only when
// the user is returning.
type Profile struct {
	id            int
	email         string
	firstName     string
	lastName      string
	isReturning   bool
	preferences   Preferences
	searchHistory []string
}

// New creates a Profile. The search history order is caller-defined and
// preserved as given.
func New(
	id int, email, firstName, lastName string,
	isReturning bool, prefs Preferences, searchHistory []string,
) Profile {
	return Profile{
		id:            id,
		email:         email,
		firstName:     firstName,
		lastName:      lastName,
		isReturning:   isReturning,
		preferences:   prefs,
		searchHistory: cloneStrings(searchHistory),
	}
}

// ID returns the user identifier.
func (p *Profile) ID() int { return p.id }

// Email returns the user email.
func (p *Profile) Email() string { return p.email }

// FirstName returns the user first name.
func (p *Profile) FirstName() string { return p.firstName }

// LastName returns the user last name.
func (p *Profile) LastName() string { return p.lastName }

// IsReturning reports whether personalization applies to this user.
func (p *Profile) IsReturning() bool { return p.isReturning }

// Preferences returns the declared preference set.
func (p *Profile) Preferences() Preferences { return p.preferences }

// SearchHistory returns past query strings in caller-defined order.
func (p *Profile) SearchHistory() []string { return p.searchHistory }

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	c := make([]string, len(s))
	copy(c, s)
	return c
}

func contains(s []string, v string) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}
