package menu

import (
	"context"
	"errors"
)

var ErrDishNotFound = errors.New("dish not found")

// Repository is a read-only catalog source.
// ListDishes returns the catalog in display order.
type Repository interface {
	ListDishes(ctx context.Context) ([]Dish, error)
}
