package domain

import "context"

// Location is an optional place an activity log can be attached to.
type Location struct {
	ID      int64
	City    string
	Country string
}

// LocationRepository defines read access to the location catalog.
type LocationRepository interface {
	List(ctx context.Context) ([]Location, error)
}
