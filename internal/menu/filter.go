package menu

import (
	"slices"
	"strings"
)

// ParseReporter receives dishes whose price could not be read while a
// price filter was active. Reporting never changes the filter result.
type ParseReporter interface {
	ReportPriceError(d Dish, err error)
}

// Filter returns the dishes that satisfy every active criteria group,
// in catalog order. Inputs are not modified.
func Filter(catalog []Dish, c Criteria) []Dish {
	return FilterReported(catalog, c, nil)
}

// FilterReported is Filter with malformed prices sent to reporter.
// A dish with a malformed price matches no price bracket.
func FilterReported(catalog []Dish, c Criteria, reporter ParseReporter) []Dish {
	search := strings.ToLower(c.SearchText)

	result := make([]Dish, 0, len(catalog))
	for _, d := range catalog {
		if !matchesSearch(d, search) {
			continue
		}
		if !matchesDietary(d, c.Dietary) {
			continue
		}
		if !matchesSpiceLevel(d, c.SpiceLevel) {
			continue
		}
		if !matchesPrice(d, c.PriceRange, reporter) {
			continue
		}
		result = append(result, d)
	}
	return result
}

// ByCategory is the tab partition applied around Filter by its callers.
// An empty category or "all" keeps every dish.
func ByCategory(catalog []Dish, category Category) []Dish {
	if category == "" || category == "all" {
		return slices.Clone(catalog)
	}

	result := make([]Dish, 0, len(catalog))
	for _, d := range catalog {
		if d.Category == category {
			result = append(result, d)
		}
	}
	return result
}

func matchesSearch(d Dish, lowered string) bool {
	if lowered == "" {
		return true
	}
	return strings.Contains(strings.ToLower(d.Name), lowered) ||
		strings.Contains(strings.ToLower(d.Description), lowered)
}

func matchesDietary(d Dish, selected []DietaryTag) bool {
	if len(selected) == 0 {
		return true
	}
	for _, tag := range selected {
		if slices.Contains(d.Dietary, tag) {
			return true
		}
	}
	return false
}

// A dish without a spice level never matches a non-empty spice filter.
func matchesSpiceLevel(d Dish, selected []SpiceLevel) bool {
	if len(selected) == 0 {
		return true
	}
	if !d.HasSpiceLevel() {
		return false
	}
	return slices.Contains(selected, d.SpiceLevel)
}

func matchesPrice(d Dish, selected []PriceBracket, reporter ParseReporter) bool {
	if len(selected) == 0 {
		return true
	}

	value, err := PrimaryPrice(d.Price)
	if err != nil {
		if reporter != nil {
			reporter.ReportPriceError(d, err)
		}
		return false
	}

	for _, bracket := range selected {
		if bracket.Contains(value) {
			return true
		}
	}
	return false
}
