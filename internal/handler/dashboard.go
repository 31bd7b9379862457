package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/ecolog/carbon-tracker/internal/service"
)

const streamRefreshInterval = 5 * time.Second

// DashboardHandler serves the dashboard KPIs, both as a one-shot JSON
// snapshot and as a live SSE stream.
type DashboardHandler struct {
	logs *service.LogService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(logs *service.LogService) *DashboardHandler {
	return &DashboardHandler{logs: logs}
}

// HandleSummary returns the headline numbers for the filtered log set. When
// no range is given it covers the current month so far.
func (h *DashboardHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.summarize(r)
	if err != nil {
		respondError(w, "dashboard summary", err)
		return
	}
	writeJSON(w, http.StatusOK, toSummaryDTO(summary))
}

// HandleStream pushes the dashboard summary as datastar signal patches and
// keeps refreshing it until the client disconnects. A write after a log
// mutation lands within one refresh interval.
func (h *DashboardHandler) HandleStream(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	push := func() error {
		summary, err := h.summarize(r)
		if err != nil {
			return err
		}
		return sse.MarshalAndPatchSignals(toSummaryDTO(summary))
	}

	if err := push(); err != nil {
		slog.Error("dashboard stream", "error", err)
		return
	}

	ticker := time.NewTicker(streamRefreshInterval)
	defer ticker.Stop()
	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			if err := push(); err != nil {
				slog.Error("dashboard stream", "error", err)
				return
			}
		}
	}
}

func (h *DashboardHandler) summarize(r *http.Request) (service.Summary, error) {
	filter, err := parseLogFilter(r)
	if err != nil {
		return service.Summary{}, err
	}
	if filter.From == nil && filter.To == nil {
		now := time.Now()
		from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format("2006-01-02")
		to := now.Format("2006-01-02")
		filter.From, filter.To = &from, &to
	}

	entries, err := h.logs.List(r.Context(), filter)
	if err != nil {
		return service.Summary{}, err
	}
	return service.Summarize(entries), nil
}
