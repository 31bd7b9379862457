package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/ecolog/carbon-tracker/internal/domain"
	"github.com/ecolog/carbon-tracker/internal/service"
)

const maxPageSize = 200

// LogHandler handles the activity log list and its mutations.
type LogHandler struct {
	logs *service.LogService
}

// NewLogHandler creates a new LogHandler.
func NewLogHandler(logs *service.LogService) *LogHandler {
	return &LogHandler{logs: logs}
}

// HandleList returns one page of the filtered log list. Filtering happens in
// the database; ordering and paging happen here on the fetched set.
func (h *LogHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	filter, err := parseLogFilter(r)
	if err != nil {
		respondError(w, "parse log filter", err)
		return
	}
	column, ascending := parseSort(r)
	page, pageSize, err := parsePaging(r)
	if err != nil {
		respondError(w, "parse paging", err)
		return
	}

	entries, err := h.logs.List(r.Context(), filter)
	if err != nil {
		respondError(w, "list logs", err)
		return
	}

	sorted := service.SortLogs(entries, column, ascending)
	rows, effectivePage, totalPages := service.Paginate(sorted, page, pageSize)

	writeJSON(w, http.StatusOK, LogPageDTO{
		Logs:       toLogDTOs(rows),
		Page:       effectivePage,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalRows:  len(entries),
	})
}

// HandleAdd inserts one log row from a JSON body.
func (h *LogHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID     int64   `json:"userId"`
		ActivityID int64   `json:"activityId"`
		LocationID *int64  `json:"locationId"`
		Date       string  `json:"date"`
		Quantity   float64 `json:"quantity"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}

	id, err := h.logs.Add(r.Context(), domain.NewLog{
		UserID:     req.UserID,
		ActivityID: req.ActivityID,
		LocationID: req.LocationID,
		Date:       req.Date,
		Quantity:   req.Quantity,
	})
	if err != nil {
		respondError(w, "add log", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

// HandleDelete removes one log by id. Deleting an id that does not exist
// reports zero deleted rows, not an error.
func (h *LogHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "log id must be numeric")
		return
	}

	deleted, err := h.logs.Delete(r.Context(), id)
	if err != nil {
		respondError(w, "delete log", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
}

// parseLogFilter reads the user, from and to query parameters. Omitted
// parameters leave their filter field nil, which excludes nothing.
func parseLogFilter(r *http.Request) (domain.LogFilter, error) {
	var filter domain.LogFilter
	q := r.URL.Query()

	if v := q.Get("user"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return filter, fmt.Errorf("%w: user id must be numeric", domain.ErrValidation)
		}
		filter.UserID = &id
	}
	if v := q.Get("from"); v != "" {
		filter.From = &v
	}
	if v := q.Get("to"); v != "" {
		filter.To = &v
	}
	return filter, nil
}

// parseSort reads the sort column and direction. Unknown columns fall back
// to date; the default direction is descending.
func parseSort(r *http.Request) (column string, ascending bool) {
	q := r.URL.Query()
	column = q.Get("sort")
	if column == "" {
		column = "date"
	}
	return column, q.Get("dir") == "asc"
}

func parsePaging(r *http.Request) (page, pageSize int, err error) {
	page, pageSize = 1, service.DefaultPageSize
	q := r.URL.Query()

	if v := q.Get("page"); v != "" {
		page, err = strconv.Atoi(v)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: page must be numeric", domain.ErrValidation)
		}
	}
	if v := q.Get("pageSize"); v != "" {
		pageSize, err = strconv.Atoi(v)
		if err != nil || pageSize < 1 || pageSize > maxPageSize {
			return 0, 0, fmt.Errorf("%w: pageSize must be between 1 and %d", domain.ErrValidation, maxPageSize)
		}
	}
	return page, pageSize, nil
}
