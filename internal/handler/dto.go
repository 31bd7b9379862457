package handler

import (
	"github.com/ecolog/carbon-tracker/internal/domain"
	"github.com/ecolog/carbon-tracker/internal/service"
)

// UserDTO is the JSON representation of a user. The password hash never
// leaves the server.
type UserDTO struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	CarbonGoal       *float64 `json:"carbonGoal"`
	RegistrationDate string   `json:"registrationDate"`
}

func toUserDTO(u domain.User) UserDTO {
	return UserDTO{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		CarbonGoal:       u.CarbonGoal,
		RegistrationDate: u.RegistrationDate,
	}
}

func toUserDTOs(users []domain.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i, u := range users {
		dtos[i] = toUserDTO(u)
	}
	return dtos
}

// ActivityDTO is the JSON representation of one catalog activity.
type ActivityDTO struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	UnitOfMeasure  string   `json:"unitOfMeasure"`
	CategoryName   string   `json:"categoryName"`
	EmissionFactor *float64 `json:"emissionFactor"`
}

func toActivityDTOs(activities []domain.Activity) []ActivityDTO {
	dtos := make([]ActivityDTO, len(activities))
	for i, a := range activities {
		dtos[i] = ActivityDTO{
			ID:             a.ID,
			Name:           a.Name,
			UnitOfMeasure:  a.UnitOfMeasure,
			CategoryName:   a.CategoryName,
			EmissionFactor: a.EmissionFactor,
		}
	}
	return dtos
}

// LocationDTO is the JSON representation of a location.
type LocationDTO struct {
	ID      int64  `json:"id"`
	City    string `json:"city"`
	Country string `json:"country"`
}

func toLocationDTOs(locations []domain.Location) []LocationDTO {
	dtos := make([]LocationDTO, len(locations))
	for i, l := range locations {
		dtos[i] = LocationDTO{ID: l.ID, City: l.City, Country: l.Country}
	}
	return dtos
}

// LogDTO is the JSON representation of one activity log row as displayed,
// with names already joined in.
type LogDTO struct {
	ID                 int64    `json:"id"`
	UserName           string   `json:"userName"`
	ActivityName       string   `json:"activityName"`
	Date               string   `json:"date"`
	Quantity           float64  `json:"quantity"`
	CalculatedEmission *float64 `json:"calculatedEmission"`
	City               *string  `json:"city"`
	Country            *string  `json:"country"`
}

func toLogDTO(e domain.LogEntry) LogDTO {
	return LogDTO{
		ID:                 e.ID,
		UserName:           e.UserName,
		ActivityName:       e.ActivityName,
		Date:               e.Date,
		Quantity:           e.Quantity,
		CalculatedEmission: e.CalculatedEmission,
		City:               e.City,
		Country:            e.Country,
	}
}

func toLogDTOs(entries []domain.LogEntry) []LogDTO {
	dtos := make([]LogDTO, len(entries))
	for i, e := range entries {
		dtos[i] = toLogDTO(e)
	}
	return dtos
}

// LogPageDTO is one page of the filtered log list plus its paging state.
type LogPageDTO struct {
	Logs       []LogDTO `json:"logs"`
	Page       int      `json:"page"`
	PageSize   int      `json:"pageSize"`
	TotalPages int      `json:"totalPages"`
	TotalRows  int      `json:"totalRows"`
}

// CategoryEmissionDTO is one row of the monthly per-category report.
type CategoryEmissionDTO struct {
	CategoryName  string  `json:"categoryName"`
	TotalEmission float64 `json:"totalEmission"`
}

func toCategoryEmissionDTOs(rows []domain.CategoryEmission) []CategoryEmissionDTO {
	dtos := make([]CategoryEmissionDTO, len(rows))
	for i, r := range rows {
		dtos[i] = CategoryEmissionDTO{CategoryName: r.CategoryName, TotalEmission: r.TotalEmission}
	}
	return dtos
}

// ActivityEmissionDTO is one row of the activity emission ranking.
type ActivityEmissionDTO struct {
	ActivityName  string  `json:"activityName"`
	CategoryName  string  `json:"categoryName"`
	TotalEmission float64 `json:"totalEmission"`
}

func toActivityEmissionDTOs(rows []domain.ActivityEmission) []ActivityEmissionDTO {
	dtos := make([]ActivityEmissionDTO, len(rows))
	for i, r := range rows {
		dtos[i] = ActivityEmissionDTO{
			ActivityName:  r.ActivityName,
			CategoryName:  r.CategoryName,
			TotalEmission: r.TotalEmission,
		}
	}
	return dtos
}

// ImportFailureDTO is one rejected CSV row.
type ImportFailureDTO struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// ImportReportDTO is the JSON outcome of one CSV import batch.
type ImportReportDTO struct {
	BatchID  string             `json:"batchId"`
	Inserted int                `json:"inserted"`
	Failures []ImportFailureDTO `json:"failures"`
}

func toImportReportDTO(r *service.ImportReport) ImportReportDTO {
	failures := make([]ImportFailureDTO, len(r.Failures))
	for i, f := range r.Failures {
		failures[i] = ImportFailureDTO{Line: f.Line, Reason: f.Reason}
	}
	return ImportReportDTO{BatchID: r.BatchID, Inserted: r.Inserted, Failures: failures}
}

// DailyEmissionDTO is one point of the dashboard emission series.
type DailyEmissionDTO struct {
	Date          string  `json:"date"`
	TotalEmission float64 `json:"totalEmission"`
}

// SummaryDTO holds the dashboard headline numbers.
type SummaryDTO struct {
	TotalEmission    float64            `json:"totalEmission"`
	Entries          int                `json:"entries"`
	UniqueActivities int                `json:"uniqueActivities"`
	Daily            []DailyEmissionDTO `json:"daily"`
}

func toSummaryDTO(s service.Summary) SummaryDTO {
	daily := make([]DailyEmissionDTO, len(s.Daily))
	for i, d := range s.Daily {
		daily[i] = DailyEmissionDTO{Date: d.Date, TotalEmission: d.TotalEmission}
	}
	return SummaryDTO{
		TotalEmission:    s.TotalEmission,
		Entries:          s.Entries,
		UniqueActivities: s.UniqueActivities,
		Daily:            daily,
	}
}
