package menu

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// CriteriaError names a query parameter carrying an unknown option.
type CriteriaError struct {
	Field string
	Value string
}

func (e *CriteriaError) Error() string {
	return fmt.Sprintf("unknown %s option %q", e.Field, e.Value)
}

// Query is a parsed menu request: the tab plus the filter criteria.
type Query struct {
	Category Category
	Criteria Criteria
}

// ParseQuery reads q, dietary, spice, price and category from query values.
// Multi-valued groups accept repeated keys and comma separated lists.
func ParseQuery(values url.Values) (Query, error) {
	var q Query
	q.Criteria.SearchText = values.Get("q")

	category := strings.ToLower(strings.TrimSpace(values.Get("category")))
	if category != "" && category != "all" {
		if !slices.Contains(categories, Category(category)) {
			return Query{}, &CriteriaError{Field: "category", Value: category}
		}
		q.Category = Category(category)
	}

	dietary, err := parseGroup(values, "dietary", dietaryTags)
	if err != nil {
		return Query{}, err
	}
	spice, err := parseGroup(values, "spice", spiceLevels)
	if err != nil {
		return Query{}, err
	}
	price, err := parseGroup(values, "price", priceBrackets)
	if err != nil {
		return Query{}, err
	}

	q.Criteria.Dietary = dietary
	q.Criteria.SpiceLevel = spice
	q.Criteria.PriceRange = price
	return q, nil
}

func parseGroup[T ~string](values url.Values, key string, allowed []T) ([]T, error) {
	var selected []T
	for _, raw := range values[key] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.ToLower(strings.TrimSpace(part))
			if part == "" {
				continue
			}
			option := T(part)
			if !slices.Contains(allowed, option) {
				return nil, &CriteriaError{Field: key, Value: part}
			}
			if !slices.Contains(selected, option) {
				selected = append(selected, option)
			}
		}
	}
	return selected, nil
}
