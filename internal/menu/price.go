package menu

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrMalformedPrice = errors.New("malformed price")

// PrimaryPrice reads the first amount of a menu price.
// "€40 / €70" yields 40; "€17,50" yields 17.5.
func PrimaryPrice(price string) (float64, error) {
	primary, _, _ := strings.Cut(price, "/")
	primary = strings.TrimSpace(primary)
	primary = strings.TrimPrefix(primary, "EUR")
	primary = strings.TrimLeft(primary, "€$£ ")
	primary = strings.TrimSpace(primary)
	primary = strings.Replace(primary, ",", ".", 1)

	if primary == "" {
		return 0, fmt.Errorf("%w: %q", ErrMalformedPrice, price)
	}

	value, err := strconv.ParseFloat(primary, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: %q", ErrMalformedPrice, price)
	}
	return value, nil
}

// Contains reports whether v falls inside the bracket.
// Only 15-20 is inclusive at both ends.
func (b PriceBracket) Contains(v float64) bool {
	switch b {
	case PriceUnder15:
		return v < 15
	case Price15To20:
		return v >= 15 && v <= 20
	case PriceOver20:
		return v > 20
	}
	return false
}

// splitDualPrice returns the price components separated by "/".
func splitDualPrice(price string) []string {
	parts := strings.Split(price, "/")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
