package service_test

import (
	"context"

	"github.com/ecolog/carbon-tracker/internal/domain"
)

// Counting fakes for the repository interfaces. The SQL behind them is
// covered by the repository tests; these exist to observe how often the
// services reach the database and to inject failures.

type fakeUserRepo struct {
	listCalls int
	users     []domain.User
	created   []domain.NewUser
	createErr error
	nextID    int64
}

func (f *fakeUserRepo) List(ctx context.Context) ([]domain.User, error) {
	f.listCalls++
	return f.users, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, user domain.NewUser) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = append(f.created, user)
	f.nextID++
	return f.nextID, nil
}

type fakeActivityRepo struct {
	listCalls  int
	activities []domain.Activity
}

func (f *fakeActivityRepo) List(ctx context.Context) ([]domain.Activity, error) {
	f.listCalls++
	return f.activities, nil
}

type fakeLocationRepo struct {
	listCalls int
	locations []domain.Location
}

func (f *fakeLocationRepo) List(ctx context.Context) ([]domain.Location, error) {
	f.listCalls++
	return f.locations, nil
}

type fakeLogRepo struct {
	listCalls   int
	entries     []domain.LogEntry
	created     []domain.NewLog
	createErr   error
	nextID      int64
	deleteCount int64
	deleteErr   error
}

func (f *fakeLogRepo) List(ctx context.Context, filter domain.LogFilter) ([]domain.LogEntry, error) {
	f.listCalls++
	return f.entries, nil
}

func (f *fakeLogRepo) Create(ctx context.Context, log domain.NewLog) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = append(f.created, log)
	f.nextID++
	return f.nextID, nil
}

func (f *fakeLogRepo) Delete(ctx context.Context, id int64) (int64, error) {
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	return f.deleteCount, nil
}

type fakeReportRepo struct {
	monthlyCalls int
	monthly      []domain.CategoryEmission
	rankingCalls int
	ranking      []domain.ActivityEmission
	goalCalls    int
	goal         domain.GoalStatus
	err          error
}

func (f *fakeReportRepo) MonthlyEmissionsByCategory(ctx context.Context, userID int64, year, month int) ([]domain.CategoryEmission, error) {
	f.monthlyCalls++
	return f.monthly, f.err
}

func (f *fakeReportRepo) ActivityRanking(ctx context.Context, userID int64, startDate, endDate string) ([]domain.ActivityEmission, error) {
	f.rankingCalls++
	return f.ranking, f.err
}

func (f *fakeReportRepo) UserMetGoal(ctx context.Context, userID int64, year, month int) (domain.GoalStatus, error) {
	f.goalCalls++
	return f.goal, f.err
}
