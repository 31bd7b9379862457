package service

import (
	"slices"
	"strings"

	"github.com/ecolog/carbon-tracker/internal/domain"
)

// Summary holds the dashboard headline numbers for a filtered log set.
type Summary struct {
	TotalEmission    float64
	Entries          int
	UniqueActivities int
	Daily            []DailyEmission
}

// DailyEmission is one point of the emission-over-time series.
type DailyEmission struct {
	Date          string
	TotalEmission float64
}

// Summarize computes the dashboard KPIs in memory from an already-fetched
// log set. Logs whose emission has not been computed yet contribute zero.
func Summarize(entries []domain.LogEntry) Summary {
	byDay := make(map[string]float64)
	activities := make(map[string]struct{})

	var total float64
	for _, e := range entries {
		var emission float64
		if e.CalculatedEmission != nil {
			emission = *e.CalculatedEmission
		}
		total += emission
		byDay[e.Date] += emission
		activities[e.ActivityName] = struct{}{}
	}

	daily := make([]DailyEmission, 0, len(byDay))
	for date, emission := range byDay {
		daily = append(daily, DailyEmission{Date: date, TotalEmission: emission})
	}
	slices.SortFunc(daily, func(a, b DailyEmission) int {
		return strings.Compare(a.Date, b.Date)
	})

	return Summary{
		TotalEmission:    total,
		Entries:          len(entries),
		UniqueActivities: len(activities),
		Daily:            daily,
	}
}
