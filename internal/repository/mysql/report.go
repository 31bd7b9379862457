package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ecolog/carbon-tracker/internal/domain"
)

// ReportRepository invokes the reporting routines that live inside the
// database schema. Routine names and positional argument order are part of
// the external contract and must not change.
type ReportRepository struct {
	db *sql.DB
}

// NewReportRepository creates a MySQL-backed ReportRepository.
func NewReportRepository(db *DB) *ReportRepository {
	return &ReportRepository{db: db.SqlDB}
}

func (r *ReportRepository) MonthlyEmissionsByCategory(ctx context.Context, userID int64, year, month int) ([]domain.CategoryEmission, error) {
	rows, err := r.db.QueryContext(ctx,
		"CALL GetMonthlyEmissionsByCategory(?, ?, ?)", userID, year, month)
	if err != nil {
		return nil, routineError("GetMonthlyEmissionsByCategory", err)
	}
	defer rows.Close()

	var result []domain.CategoryEmission
	for rows.Next() {
		var ce domain.CategoryEmission
		if err := rows.Scan(&ce.CategoryName, &ce.TotalEmission); err != nil {
			return nil, fmt.Errorf("scan category emission: %w", err)
		}
		result = append(result, ce)
	}
	return result, rows.Err()
}

func (r *ReportRepository) ActivityRanking(ctx context.Context, userID int64, startDate, endDate string) ([]domain.ActivityEmission, error) {
	rows, err := r.db.QueryContext(ctx,
		"CALL GetActivityRankingByEmission(?, ?, ?)", userID, startDate, endDate)
	if err != nil {
		return nil, routineError("GetActivityRankingByEmission", err)
	}
	defer rows.Close()

	var result []domain.ActivityEmission
	for rows.Next() {
		var ae domain.ActivityEmission
		if err := rows.Scan(&ae.ActivityName, &ae.CategoryName, &ae.TotalEmission); err != nil {
			return nil, fmt.Errorf("scan activity emission: %w", err)
		}
		result = append(result, ae)
	}
	return result, rows.Err()
}

// UserMetGoal evaluates the goal check function. A missing row or a NULL
// result means the answer is unknown, which is a distinct outcome rather
// than an error.
func (r *ReportRepository) UserMetGoal(ctx context.Context, userID int64, year, month int) (domain.GoalStatus, error) {
	var met sql.NullBool
	err := r.db.QueryRowContext(ctx,
		"SELECT CheckIfUserMetGoal(?, ?, ?)", userID, year, month).Scan(&met)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.GoalUnknown, nil
		}
		return domain.GoalUnknown, routineError("CheckIfUserMetGoal", err)
	}
	if !met.Valid {
		return domain.GoalUnknown, nil
	}
	if met.Bool {
		return domain.GoalMet, nil
	}
	return domain.GoalNotMet, nil
}

func routineError(name string, err error) error {
	if isRoutineMissing(err) {
		return fmt.Errorf("%w: %s is not deployed: %v", domain.ErrRoutine, name, err)
	}
	return fmt.Errorf("%w: %s: %v", domain.ErrRoutine, name, err)
}
