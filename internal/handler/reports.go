package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/ecolog/carbon-tracker/internal/domain"
	"github.com/ecolog/carbon-tracker/internal/service"
)

// ReportHandler serves the database-side reports.
type ReportHandler struct {
	reports *service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// HandleMonthly returns per-category emission totals for one month.
func (h *ReportHandler) HandleMonthly(w http.ResponseWriter, r *http.Request) {
	userID, year, month, err := parseMonthParams(r)
	if err != nil {
		respondError(w, "parse monthly report params", err)
		return
	}

	rows, err := h.reports.MonthlyByCategory(r.Context(), userID, year, month)
	if err != nil {
		respondError(w, "monthly report", err)
		return
	}

	writeJSON(w, http.StatusOK, toCategoryEmissionDTOs(rows))
}

// HandleRanking returns per-activity emission totals for a date range,
// highest first.
func (h *ReportHandler) HandleRanking(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	userID, err := requiredID(q.Get("user"))
	if err != nil {
		respondError(w, "parse ranking params", err)
		return
	}

	rows, err := h.reports.Ranking(r.Context(), userID, q.Get("from"), q.Get("to"))
	if err != nil {
		respondError(w, "ranking report", err)
		return
	}

	writeJSON(w, http.StatusOK, toActivityEmissionDTOs(rows))
}

// HandleGoal reports whether the user met their carbon goal in the given
// month. The status is "met", "not_met" or "unknown".
func (h *ReportHandler) HandleGoal(w http.ResponseWriter, r *http.Request) {
	userID, year, month, err := parseMonthParams(r)
	if err != nil {
		respondError(w, "parse goal params", err)
		return
	}

	status, err := h.reports.GoalStatus(r.Context(), userID, year, month)
	if err != nil {
		respondError(w, "goal report", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": status.String()})
}

func parseMonthParams(r *http.Request) (userID int64, year, month int, err error) {
	q := r.URL.Query()
	userID, err = requiredID(q.Get("user"))
	if err != nil {
		return 0, 0, 0, err
	}
	year, err = strconv.Atoi(q.Get("year"))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: year must be numeric", domain.ErrValidation)
	}
	month, err = strconv.Atoi(q.Get("month"))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: month must be numeric", domain.ErrValidation)
	}
	return userID, year, month, nil
}

func requiredID(raw string) (int64, error) {
	if raw == "" {
		return 0, fmt.Errorf("%w: the user parameter is required", domain.ErrValidation)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: user id must be numeric", domain.ErrValidation)
	}
	return id, nil
}
