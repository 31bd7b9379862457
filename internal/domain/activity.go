package domain

import "context"

// Activity is a loggable activity joined with its category name and, when one
// is defined, its emission factor.
type Activity struct {
	ID             int64
	Name           string
	UnitOfMeasure  string
	CategoryName   string
	EmissionFactor *float64
}

// ActivityRepository defines read access to the activity catalog. Activities
// are seeded and maintained outside this application.
type ActivityRepository interface {
	List(ctx context.Context) ([]Activity, error)
}
