package domain

import "context"

// CategoryEmission is one row of the monthly aggregation routine.
type CategoryEmission struct {
	CategoryName  string
	TotalEmission float64
}

// ActivityEmission is one row of the activity ranking routine.
type ActivityEmission struct {
	ActivityName  string
	CategoryName  string
	TotalEmission float64
}

// GoalStatus is the tri-state outcome of the goal check function. The
// database may yield no row at all; that is informational, not an error.
type GoalStatus int

const (
	GoalUnknown GoalStatus = iota
	GoalMet
	GoalNotMet
)

func (s GoalStatus) String() string {
	switch s {
	case GoalMet:
		return "met"
	case GoalNotMet:
		return "not_met"
	default:
		return "unknown"
	}
}

// ReportRepository invokes the reporting routines owned by the database
// schema. The aggregation logic lives entirely on the database side; this
// interface only preserves the call contracts.
type ReportRepository interface {
	MonthlyEmissionsByCategory(ctx context.Context, userID int64, year, month int) ([]CategoryEmission, error)
	ActivityRanking(ctx context.Context, userID int64, startDate, endDate string) ([]ActivityEmission, error)
	UserMetGoal(ctx context.Context, userID int64, year, month int) (GoalStatus, error)
}
