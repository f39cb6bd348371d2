package menu

// Category groups dishes into the menu tabs. It is disjoint from dietary tags.
type Category string

const (
	CategoryMeat       Category = "meat"
	CategoryVegetarian Category = "vegetarian"
)

// DietaryTag marks a dish as suitable for a diet.
type DietaryTag string

const (
	DietaryVegetarian DietaryTag = "vegetarian"
	DietaryVegan      DietaryTag = "vegan"
	DietaryGlutenFree DietaryTag = "gluten-free"
)

// SpiceLevel is optional on a dish; the zero value means the dish has none.
type SpiceLevel string

const (
	SpiceMild   SpiceLevel = "mild"
	SpiceMedium SpiceLevel = "medium"
	SpiceSpicy  SpiceLevel = "spicy"
)

// PriceBracket is evaluated against the primary (first) price component.
type PriceBracket string

const (
	PriceUnder15 PriceBracket = "under-15"
	Price15To20  PriceBracket = "15-20"
	PriceOver20  PriceBracket = "over-20"
)

var (
	categories    = []Category{CategoryMeat, CategoryVegetarian}
	dietaryTags   = []DietaryTag{DietaryVegetarian, DietaryVegan, DietaryGlutenFree}
	spiceLevels   = []SpiceLevel{SpiceMild, SpiceMedium, SpiceSpicy}
	priceBrackets = []PriceBracket{PriceUnder15, Price15To20, PriceOver20}
)

// Dish is an immutable catalog entry.
//
// Name and Description carry both languages in one string ("Dutch / English").
// Price is either a single amount ("€20") or a dual amount ("€40 / €70").
type Dish struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       string       `json:"price"`
	Category    Category     `json:"category"`
	Dietary     []DietaryTag `json:"dietary"`
	SpiceLevel  SpiceLevel   `json:"spice_level,omitempty"`
	Featured    bool         `json:"featured"`
}

// HasSpiceLevel reports whether the dish declares a spice level at all.
func (d Dish) HasSpiceLevel() bool {
	return d.SpiceLevel != ""
}

// Criteria is the active filter state held by the menu page.
// An empty group matches every dish for that dimension.
type Criteria struct {
	SearchText string         `json:"search_text"`
	Dietary    []DietaryTag   `json:"dietary"`
	SpiceLevel []SpiceLevel   `json:"spice_level"`
	PriceRange []PriceBracket `json:"price_range"`
}

// IsEmpty reports whether no criteria group is active.
func (c Criteria) IsEmpty() bool {
	return c.SearchText == "" &&
		len(c.Dietary) == 0 &&
		len(c.SpiceLevel) == 0 &&
		len(c.PriceRange) == 0
}

// Options lists every selectable filter value, in display order.
type Options struct {
	Categories []Category     `json:"categories"`
	Dietary    []DietaryTag   `json:"dietary"`
	SpiceLevel []SpiceLevel   `json:"spice_level"`
	PriceRange []PriceBracket `json:"price_range"`
}

func AllOptions() Options {
	return Options{
		Categories: append([]Category(nil), categories...),
		Dietary:    append([]DietaryTag(nil), dietaryTags...),
		SpiceLevel: append([]SpiceLevel(nil), spiceLevels...),
		PriceRange: append([]PriceBracket(nil), priceBrackets...),
	}
}

// SearchResult is what the menu endpoint returns.
type SearchResult struct {
	Dishes []Dish `json:"dishes"`
	Count  int    `json:"count"`
	Total  int    `json:"total"`
}
