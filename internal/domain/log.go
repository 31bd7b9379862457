package domain

import "context"

// LogEntry is an activity log row joined with its user name, activity name
// and location. City and Country are nil when the log has no location.
type LogEntry struct {
	ID                 int64
	UserName           string
	ActivityName       string
	Date               string // YYYY-MM-DD
	Quantity           float64
	CalculatedEmission *float64
	City               *string
	Country            *string
}

// NewLog carries the fields accepted when inserting a log. The emission value
// is intentionally absent: the database computes it on insert from the
// activity's emission factor.
type NewLog struct {
	UserID     int64
	ActivityID int64
	LocationID *int64
	Date       string
	Quantity   float64
}

// LogFilter narrows a log listing. Nil fields add no constraint; the date
// bounds are inclusive.
type LogFilter struct {
	UserID *int64
	From   *string
	To     *string
}

// LogRepository defines persistence operations for activity logs. Logs are
// inserted and deleted, never updated in place.
type LogRepository interface {
	List(ctx context.Context, filter LogFilter) ([]LogEntry, error)
	Create(ctx context.Context, log NewLog) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
