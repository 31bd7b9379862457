package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/ecolog/carbon-tracker/internal/cache"
	"github.com/ecolog/carbon-tracker/internal/domain"
)

// ReportService fronts the database-side reporting routines. The aggregation
// itself happens inside the database; this service only validates arguments,
// caches results and fixes a display order where the routine leaves the rows
// unordered.
type ReportService struct {
	reports domain.ReportRepository
	cache   *cache.Store
}

// NewReportService creates a new ReportService.
func NewReportService(reports domain.ReportRepository, store *cache.Store) *ReportService {
	return &ReportService{reports: reports, cache: store}
}

// MonthlyByCategory returns per-category emission totals for one month,
// highest first. An empty result means no data, not an error.
func (s *ReportService) MonthlyByCategory(ctx context.Context, userID int64, year, month int) ([]domain.CategoryEmission, error) {
	if err := validateMonth(userID, year, month); err != nil {
		return nil, err
	}

	key := cache.Key("reports.monthly", userID, year, month)
	if v, ok := s.cache.Get(key); ok {
		return v.([]domain.CategoryEmission), nil
	}

	rows, err := s.reports.MonthlyEmissionsByCategory(ctx, userID, year, month)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(rows, func(a, b domain.CategoryEmission) int {
		return cmp.Compare(b.TotalEmission, a.TotalEmission)
	})
	s.cache.Set(key, rows)
	return rows, nil
}

// Ranking returns per-activity emission totals for an inclusive date range,
// highest first. The routine's output order is unspecified, so the order is
// imposed here.
func (s *ReportService) Ranking(ctx context.Context, userID int64, startDate, endDate string) ([]domain.ActivityEmission, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: a user must be selected", domain.ErrValidation)
	}
	for _, date := range []string{startDate, endDate} {
		if _, err := time.Parse(dateLayout, date); err != nil {
			return nil, fmt.Errorf("%w: date %q must be YYYY-MM-DD", domain.ErrValidation, date)
		}
	}

	key := cache.Key("reports.ranking", userID, startDate, endDate)
	if v, ok := s.cache.Get(key); ok {
		return v.([]domain.ActivityEmission), nil
	}

	rows, err := s.reports.ActivityRanking(ctx, userID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(rows, func(a, b domain.ActivityEmission) int {
		return cmp.Compare(b.TotalEmission, a.TotalEmission)
	})
	s.cache.Set(key, rows)
	return rows, nil
}

// GoalStatus reports whether the user met their carbon goal in the given
// month. The answer can be unknown when the database function yields no row.
func (s *ReportService) GoalStatus(ctx context.Context, userID int64, year, month int) (domain.GoalStatus, error) {
	if err := validateMonth(userID, year, month); err != nil {
		return domain.GoalUnknown, err
	}

	key := cache.Key("reports.goal", userID, year, month)
	if v, ok := s.cache.Get(key); ok {
		return v.(domain.GoalStatus), nil
	}

	status, err := s.reports.UserMetGoal(ctx, userID, year, month)
	if err != nil {
		return domain.GoalUnknown, err
	}
	s.cache.Set(key, status)
	return status, nil
}

func validateMonth(userID int64, year, month int) error {
	if userID <= 0 {
		return fmt.Errorf("%w: a user must be selected", domain.ErrValidation)
	}
	if year < 2000 || year > 2100 {
		return fmt.Errorf("%w: year %d is out of range", domain.ErrValidation, year)
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month %d is out of range", domain.ErrValidation, month)
	}
	return nil
}
