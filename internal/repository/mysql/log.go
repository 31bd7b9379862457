package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ecolog/carbon-tracker/internal/domain"
)

// LogRepository implements domain.LogRepository over MySQL.
type LogRepository struct {
	db *sql.DB
}

// NewLogRepository creates a MySQL-backed LogRepository.
func NewLogRepository(db *DB) *LogRepository {
	return &LogRepository{db: db.SqlDB}
}

func (r *LogRepository) List(ctx context.Context, filter domain.LogFilter) ([]domain.LogEntry, error) {
	query := `SELECT AL.LogID, U.Name, A.Name, AL.Date, AL.Quantity, AL.CalculatedEmission, L.City, L.Country
		 FROM ActivityLogs AL
		 JOIN Users U ON U.UserID = AL.UserID
		 JOIN Activities A ON A.ActivityID = AL.ActivityID
		 LEFT JOIN Locations L ON L.LocationID = AL.LocationID
		 WHERE 1=1`
	var args []any
	if filter.UserID != nil {
		query += " AND AL.UserID = ?"
		args = append(args, *filter.UserID)
	}
	if filter.From != nil {
		query += " AND AL.Date >= ?"
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		query += " AND AL.Date <= ?"
		args = append(args, *filter.To)
	}
	query += " ORDER BY AL.Date DESC, AL.LogID DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}
	defer rows.Close()

	var entries []domain.LogEntry
	for rows.Next() {
		var e domain.LogEntry
		if err := rows.Scan(&e.ID, &e.UserName, &e.ActivityName, &e.Date, &e.Quantity,
			&e.CalculatedEmission, &e.City, &e.Country); err != nil {
			return nil, fmt.Errorf("scan log: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Create inserts a log row. CalculatedEmission is deliberately not part of
// the column list: the schema computes it on insert from the activity's
// emission factor.
func (r *LogRepository) Create(ctx context.Context, log domain.NewLog) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO ActivityLogs (UserID, ActivityID, LocationID, Date, Quantity)
		 VALUES (?, ?, ?, ?, ?)`,
		log.UserID, log.ActivityID, log.LocationID, log.Date, log.Quantity,
	)
	if err != nil {
		if isBadReference(err) {
			return 0, fmt.Errorf("%w: referenced user, activity or location does not exist: %v", domain.ErrWrite, err)
		}
		return 0, fmt.Errorf("%w: insert log: %v", domain.ErrWrite, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// Delete removes a log by id and returns the number of rows removed. A zero
// count means the id did not exist; that is not an error.
func (r *LogRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM ActivityLogs WHERE LogID = ?", id)
	if err != nil {
		return 0, fmt.Errorf("%w: delete log: %v", domain.ErrWrite, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return deleted, nil
}
