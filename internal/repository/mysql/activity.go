package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ecolog/carbon-tracker/internal/domain"
)

// ActivityRepository implements domain.ActivityRepository over MySQL.
type ActivityRepository struct {
	db *sql.DB
}

// NewActivityRepository creates a MySQL-backed ActivityRepository.
func NewActivityRepository(db *DB) *ActivityRepository {
	return &ActivityRepository{db: db.SqlDB}
}

func (r *ActivityRepository) List(ctx context.Context) ([]domain.Activity, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT A.ActivityID, A.Name, A.UnitOfMeasure, C.CategoryName, EF.EmissionValue
		 FROM Activities A
		 JOIN Categories C ON A.CategoryID = C.CategoryID
		 LEFT JOIN EmissionFactors EF ON EF.ActivityID = A.ActivityID
		 ORDER BY A.ActivityID`)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		var a domain.Activity
		if err := rows.Scan(&a.ID, &a.Name, &a.UnitOfMeasure, &a.CategoryName, &a.EmissionFactor); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}
