package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ecolog/carbon-tracker/internal/domain"
)

// LocationRepository implements domain.LocationRepository over MySQL.
type LocationRepository struct {
	db *sql.DB
}

// NewLocationRepository creates a MySQL-backed LocationRepository.
func NewLocationRepository(db *DB) *LocationRepository {
	return &LocationRepository{db: db.SqlDB}
}

func (r *LocationRepository) List(ctx context.Context) ([]domain.Location, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT LocationID, City, Country FROM Locations ORDER BY City`)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	var locations []domain.Location
	for rows.Next() {
		var l domain.Location
		if err := rows.Scan(&l.ID, &l.City, &l.Country); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}
