package menu

import (
	"errors"
	"reflect"
	"testing"

	"github.com/jaswdr/faker"
)

func kitfo() Dish {
	return Dish{
		ID:          "kitfo",
		Name:        "Kitfo",
		Description: "Injera met rundvlees tartaar / Injera with beef tartare",
		Price:       "€20",
		Category:    CategoryMeat,
		Dietary:     []DietaryTag{},
		SpiceLevel:  SpiceSpicy,
		Featured:    true,
	}
}

func sampleCatalog() []Dish {
	return []Dish{
		kitfo(),
		{
			ID:          "savanna-speciaal",
			Name:        "Savanna Speciaal",
			Description: "Derho, Kulua, Zigni (meat) and Ades (vega)",
			Price:       "€40 / €70",
			Category:    CategoryMeat,
			SpiceLevel:  SpiceMedium,
		},
		{
			ID:          "alicha",
			Name:        "Alicha",
			Description: "Injera with stewed potato, carrot and white cabbage",
			Price:       "€17",
			Category:    CategoryVegetarian,
			Dietary:     []DietaryTag{DietaryVegetarian, DietaryVegan},
			SpiceLevel:  SpiceMild,
		},
		{
			ID:          "injera",
			Name:        "Extra Injera",
			Description: "Teff flatbread",
			Price:       "€1",
			Category:    CategoryVegetarian,
			Dietary:     []DietaryTag{DietaryVegan},
		},
	}
}

func ids(dishes []Dish) []string {
	out := make([]string, 0, len(dishes))
	for _, d := range dishes {
		out = append(out, d.ID)
	}
	return out
}

// randomCatalog builds a catalog with unique ids and a mix of attributes.
func randomCatalog(fake faker.Faker, n int) []Dish {
	prices := []string{"€9", "€15", "€17,50", "€20", "€21", "€40 / €70", "n/a"}
	spices := []string{"", "mild", "medium", "spicy"}

	catalog := make([]Dish, 0, n)
	for i := 0; i < n; i++ {
		var dietary []DietaryTag
		for _, tag := range dietaryTags {
			if fake.Bool() {
				dietary = append(dietary, tag)
			}
		}
		category := CategoryMeat
		if fake.Bool() {
			category = CategoryVegetarian
		}
		catalog = append(catalog, Dish{
			ID:          fake.UUID().V4(),
			Name:        fake.Lorem().Word(),
			Description: fake.Lorem().Sentence(8),
			Price:       fake.RandomStringElement(prices),
			Category:    category,
			Dietary:     dietary,
			SpiceLevel:  SpiceLevel(fake.RandomStringElement(spices)),
			Featured:    fake.Bool(),
		})
	}
	return catalog
}

func randomCriteria(fake faker.Faker) Criteria {
	var c Criteria
	if fake.Bool() {
		c.SearchText = fake.Lorem().Word()[:1]
	}
	for _, tag := range dietaryTags {
		if fake.IntBetween(0, 3) == 0 {
			c.Dietary = append(c.Dietary, tag)
		}
	}
	for _, level := range spiceLevels {
		if fake.IntBetween(0, 3) == 0 {
			c.SpiceLevel = append(c.SpiceLevel, level)
		}
	}
	for _, bracket := range priceBrackets {
		if fake.IntBetween(0, 3) == 0 {
			c.PriceRange = append(c.PriceRange, bracket)
		}
	}
	return c
}

func TestFilter_EmptyCriteriaReturnsCatalogInOrder(t *testing.T) {
	fake := faker.New()

	for i := 0; i < 20; i++ {
		catalog := randomCatalog(fake, fake.IntBetween(0, 30))

		got := Filter(catalog, Criteria{})

		if len(catalog) == 0 {
			if len(got) != 0 {
				t.Fatalf("expected empty result, got %d dishes", len(got))
			}
			continue
		}
		if !reflect.DeepEqual(got, catalog) {
			t.Fatalf("expected catalog unchanged, got %v", ids(got))
		}
	}
}

func TestFilter_EmptyCatalog(t *testing.T) {
	got := Filter(nil, Criteria{SpiceLevel: []SpiceLevel{SpiceSpicy}})
	if len(got) != 0 {
		t.Fatalf("expected no dishes, got %d", len(got))
	}
}

func TestFilter_IsIdempotent(t *testing.T) {
	fake := faker.New()

	for i := 0; i < 50; i++ {
		catalog := randomCatalog(fake, 25)
		c := randomCriteria(fake)

		once := Filter(catalog, c)
		twice := Filter(once, c)

		if !reflect.DeepEqual(ids(once), ids(twice)) {
			t.Fatalf("criteria %+v: first pass %v, second pass %v", c, ids(once), ids(twice))
		}
	}
}

func TestFilter_PreservesRelativeOrder(t *testing.T) {
	fake := faker.New()
	catalog := randomCatalog(fake, 40)

	position := make(map[string]int, len(catalog))
	for i, d := range catalog {
		position[d.ID] = i
	}

	for i := 0; i < 30; i++ {
		got := Filter(catalog, randomCriteria(fake))
		for j := 1; j < len(got); j++ {
			if position[got[j-1].ID] >= position[got[j].ID] {
				t.Fatalf("result out of catalog order: %v", ids(got))
			}
		}
	}
}

func TestFilter_MissingSpiceLevelFailsClosed(t *testing.T) {
	fake := faker.New()
	catalog := randomCatalog(fake, 40)

	got := Filter(catalog, Criteria{SpiceLevel: []SpiceLevel{SpiceMild, SpiceMedium, SpiceSpicy}})

	for _, d := range got {
		if !d.HasSpiceLevel() {
			t.Fatalf("dish %s has no spice level but passed the spice filter", d.ID)
		}
	}
}

func TestFilter_DoesNotMutateInputs(t *testing.T) {
	catalog := sampleCatalog()
	before := sampleCatalog()
	c := Criteria{
		SearchText: "INJERA",
		Dietary:    []DietaryTag{DietaryVegan},
		PriceRange: []PriceBracket{PriceUnder15, Price15To20},
	}

	Filter(catalog, c)

	if !reflect.DeepEqual(catalog, before) {
		t.Fatalf("catalog was modified by Filter")
	}
	if c.SearchText != "INJERA" || len(c.Dietary) != 1 || len(c.PriceRange) != 2 {
		t.Fatalf("criteria were modified by Filter: %+v", c)
	}
}

func TestFilter_Examples(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{
			name: "kitfo spicy within inclusive 15-20",
			criteria: Criteria{
				Dietary:    []DietaryTag{},
				SpiceLevel: []SpiceLevel{SpiceSpicy},
				PriceRange: []PriceBracket{Price15To20},
			},
			want: []string{"kitfo"},
		},
		{
			name:     "kitfo excluded from under-15",
			criteria: Criteria{PriceRange: []PriceBracket{PriceUnder15}},
			want:     []string{"injera"},
		},
		{
			name:     "dual price uses the first amount",
			criteria: Criteria{PriceRange: []PriceBracket{PriceOver20}},
			want:     []string{"savanna-speciaal"},
		},
		{
			name:     "price brackets combine with OR",
			criteria: Criteria{PriceRange: []PriceBracket{PriceUnder15, PriceOver20}},
			want:     []string{"savanna-speciaal", "injera"},
		},
		{
			name:     "search is case insensitive on name",
			criteria: Criteria{SearchText: "KIT"},
			want:     []string{"kitfo"},
		},
		{
			name:     "search matches description",
			criteria: Criteria{SearchText: "cabbage"},
			want:     []string{"alicha"},
		},
		{
			name:     "dietary matches any selected tag",
			criteria: Criteria{Dietary: []DietaryTag{DietaryVegetarian, DietaryGlutenFree}},
			want:     []string{"alicha"},
		},
		{
			name: "groups combine with AND",
			criteria: Criteria{
				SearchText: "injera",
				Dietary:    []DietaryTag{DietaryVegan},
				SpiceLevel: []SpiceLevel{SpiceMild},
			},
			want: []string{"alicha"},
		},
		{
			name:     "dish without spice level excluded by spice filter",
			criteria: Criteria{Dietary: []DietaryTag{DietaryVegan}, SpiceLevel: []SpiceLevel{SpiceMild, SpiceMedium, SpiceSpicy}},
			want:     []string{"alicha"},
		},
		{
			name:     "no match",
			criteria: Criteria{SearchText: "pizza"},
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(sampleCatalog(), tt.criteria))
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

type recordingReporter struct {
	dishes []string
	errs   []error
}

func (r *recordingReporter) ReportPriceError(d Dish, err error) {
	r.dishes = append(r.dishes, d.ID)
	r.errs = append(r.errs, err)
}

func TestFilterReported_MalformedPriceMatchesNoBracket(t *testing.T) {
	catalog := append(sampleCatalog(), Dish{
		ID:         "market-price",
		Name:       "Catch of the day",
		Price:      "market price",
		Category:   CategoryMeat,
		SpiceLevel: SpiceMild,
	})
	reporter := &recordingReporter{}

	got := FilterReported(catalog, Criteria{PriceRange: []PriceBracket{PriceUnder15, Price15To20, PriceOver20}}, reporter)

	for _, d := range got {
		if d.ID == "market-price" {
			t.Fatalf("dish with malformed price matched a price bracket")
		}
	}
	if len(got) != 4 {
		t.Fatalf("expected the 4 well-formed dishes, got %v", ids(got))
	}
	if !reflect.DeepEqual(reporter.dishes, []string{"market-price"}) {
		t.Fatalf("expected one report for market-price, got %v", reporter.dishes)
	}
	if !errors.Is(reporter.errs[0], ErrMalformedPrice) {
		t.Fatalf("expected ErrMalformedPrice, got %v", reporter.errs[0])
	}
}

func TestFilterReported_NoPriceFilterNoReport(t *testing.T) {
	catalog := []Dish{{ID: "x", Name: "X", Price: "??", Category: CategoryMeat}}
	reporter := &recordingReporter{}

	got := FilterReported(catalog, Criteria{}, reporter)

	if len(got) != 1 {
		t.Fatalf("expected dish to pass without a price filter")
	}
	if len(reporter.dishes) != 0 {
		t.Fatalf("expected no reports, got %v", reporter.dishes)
	}
}

func TestByCategory(t *testing.T) {
	catalog := sampleCatalog()

	if got := ids(ByCategory(catalog, CategoryVegetarian)); !reflect.DeepEqual(got, []string{"alicha", "injera"}) {
		t.Fatalf("unexpected vegetarian tab: %v", got)
	}
	if got := ByCategory(catalog, "all"); len(got) != len(catalog) {
		t.Fatalf("expected all dishes for the all tab, got %d", len(got))
	}
	if got := ByCategory(catalog, ""); len(got) != len(catalog) {
		t.Fatalf("expected all dishes for an empty tab, got %d", len(got))
	}
}
