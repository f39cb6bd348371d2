package menu

import (
	"context"

	"github.com/rs/zerolog"
)

type Service struct {
	repo     Repository
	reporter ParseReporter
}

func NewService(repo Repository, reporter ParseReporter) *Service {
	return &Service{repo: repo, reporter: reporter}
}

// --------------------------------------------------
// Search: tab partition first, then the filter engine
// --------------------------------------------------
func (s *Service) Search(ctx context.Context, q Query) (*SearchResult, error) {
	catalog, err := s.repo.ListDishes(ctx)
	if err != nil {
		return nil, err
	}

	tab := ByCategory(catalog, q.Category)
	dishes := FilterReported(tab, q.Criteria, s.reporter)

	return &SearchResult{
		Dishes: dishes,
		Count:  len(dishes),
		Total:  len(tab),
	}, nil
}

// --------------------------------------------------
// Featured dishes for the home page
// --------------------------------------------------
func (s *Service) Featured(ctx context.Context) ([]Dish, error) {
	catalog, err := s.repo.ListDishes(ctx)
	if err != nil {
		return nil, err
	}

	featured := make([]Dish, 0)
	for _, d := range catalog {
		if d.Featured {
			featured = append(featured, d)
		}
	}
	return featured, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Dish, error) {
	catalog, err := s.repo.ListDishes(ctx)
	if err != nil {
		return nil, err
	}

	for _, d := range catalog {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, ErrDishNotFound
}

// LogReporter writes price parse failures to the operator log.
type LogReporter struct {
	log zerolog.Logger
}

func NewLogReporter(log zerolog.Logger) *LogReporter {
	return &LogReporter{log: log}
}

func (r *LogReporter) ReportPriceError(d Dish, err error) {
	r.log.Warn().
		Err(err).
		Str("dish_id", d.ID).
		Str("price", d.Price).
		Msg("dish excluded from price filter")
}
