package menu

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrDuplicateDishID = errors.New("duplicate dish id")
	ErrInvalidDish     = errors.New("invalid dish")
)

// ValidateCatalog checks the catalog invariants before it is served:
// unique ids, known enum values, and dual prices with at most two parts.
// Price text that does not parse is left to the filter, which excludes
// the dish from price brackets and reports it.
func ValidateCatalog(catalog []Dish) error {
	seen := make(map[string]bool, len(catalog))

	for i, d := range catalog {
		if d.ID == "" {
			return fmt.Errorf("%w: dish %d has no id", ErrInvalidDish, i)
		}
		if seen[d.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateDishID, d.ID)
		}
		seen[d.ID] = true

		if err := validateDish(d); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidDish, d.ID, err)
		}
	}

	return nil
}

func validateDish(d Dish) error {
	if d.Name == "" {
		return errors.New("name missing")
	}

	if !slices.Contains(categories, d.Category) {
		return fmt.Errorf("unknown category %q", d.Category)
	}

	for _, tag := range d.Dietary {
		if !slices.Contains(dietaryTags, tag) {
			return fmt.Errorf("unknown dietary tag %q", tag)
		}
	}

	if d.HasSpiceLevel() && !slices.Contains(spiceLevels, d.SpiceLevel) {
		return fmt.Errorf("unknown spice level %q", d.SpiceLevel)
	}

	parts := splitDualPrice(d.Price)
	if len(parts) > 2 {
		return fmt.Errorf("price %q has %d components", d.Price, len(parts))
	}

	return nil
}
