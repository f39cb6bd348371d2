package menu

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
)

//go:embed data/dishes.json
var seedCatalog []byte

// StaticRepository serves a catalog fixed at construction time.
type StaticRepository struct {
	dishes []Dish
}

// NewStaticRepository loads the embedded Savanna menu.
func NewStaticRepository() (*StaticRepository, error) {
	var dishes []Dish
	if err := json.Unmarshal(seedCatalog, &dishes); err != nil {
		return nil, fmt.Errorf("decode embedded catalog: %w", err)
	}
	return NewStaticRepositoryFrom(dishes)
}

// NewStaticRepositoryFrom serves the given dishes after validating them.
func NewStaticRepositoryFrom(dishes []Dish) (*StaticRepository, error) {
	if err := ValidateCatalog(dishes); err != nil {
		return nil, err
	}
	return &StaticRepository{dishes: slices.Clone(dishes)}, nil
}

func (r *StaticRepository) ListDishes(ctx context.Context) ([]Dish, error) {
	return slices.Clone(r.dishes), nil
}
