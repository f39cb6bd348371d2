package menu

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// LIST DISHES (READ-ONLY, DISPLAY ORDER)
// --------------------------------------------------
func (r *PostgresRepository) ListDishes(ctx context.Context) ([]Dish, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			id,
			name,
			description,
			price,
			category,
			dietary,
			spice_level,
			featured
		FROM dishes
		ORDER BY position ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dishes []Dish

	for rows.Next() {
		var (
			d       Dish
			dietary []string
			spice   *string
		)
		if err := rows.Scan(
			&d.ID,
			&d.Name,
			&d.Description,
			&d.Price,
			&d.Category,
			&dietary,
			&spice,
			&d.Featured,
		); err != nil {
			return nil, err
		}

		d.Dietary = make([]DietaryTag, 0, len(dietary))
		for _, tag := range dietary {
			d.Dietary = append(d.Dietary, DietaryTag(tag))
		}
		if spice != nil {
			d.SpiceLevel = SpiceLevel(*spice)
		}

		dishes = append(dishes, d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := ValidateCatalog(dishes); err != nil {
		return nil, err
	}

	return dishes, nil
}

// --------------------------------------------------
// SEED (ONLY WHEN THE TABLE IS EMPTY)
// --------------------------------------------------
func (r *PostgresRepository) SeedIfEmpty(ctx context.Context, dishes []Dish) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM dishes`).Scan(&count); err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	if err := ValidateCatalog(dishes); err != nil {
		return 0, err
	}

	copied, err := r.db.CopyFrom(
		ctx,
		pgx.Identifier{"dishes"},
		[]string{
			"id", "position", "name", "description", "price",
			"category", "dietary", "spice_level", "featured",
		},
		pgx.CopyFromSlice(len(dishes), func(i int) ([]any, error) {
			d := dishes[i]

			dietary := make([]string, 0, len(d.Dietary))
			for _, tag := range d.Dietary {
				dietary = append(dietary, string(tag))
			}

			var spice *string
			if d.HasSpiceLevel() {
				s := string(d.SpiceLevel)
				spice = &s
			}

			return []any{
				d.ID,
				i,
				d.Name,
				d.Description,
				d.Price,
				string(d.Category),
				dietary,
				spice,
				d.Featured,
			}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("seed dishes: %w", err)
	}

	return copied, nil
}
