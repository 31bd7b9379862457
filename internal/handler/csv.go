package handler

import (
	"encoding/csv"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ecolog/carbon-tracker/internal/domain"
	"github.com/ecolog/carbon-tracker/internal/service"
)

const maxImportSize = 10 << 20 // 10 MiB

var exportHeader = []string{"LogID", "UserName", "ActivityName", "Date", "Quantity", "CalculatedEmission", "City", "Country"}

// TransferHandler handles CSV bulk import and filtered export of the
// activity log.
type TransferHandler struct {
	logs     *service.LogService
	importer *service.Importer
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(logs *service.LogService, importer *service.Importer) *TransferHandler {
	return &TransferHandler{logs: logs, importer: importer}
}

// HandleImport runs a best-effort batch import from an uploaded CSV file.
// The batch outcome lists every rejected row; a partially failed batch is
// still a 200.
func (h *TransferHandler) HandleImport(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		writeError(w, http.StatusBadRequest, "malformed multipart form")
		return
	}

	userID, err := requiredID(r.FormValue("user"))
	if err != nil {
		respondError(w, "parse import params", err)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "a CSV file upload named \"file\" is required")
		return
	}
	defer file.Close()

	report, err := h.importer.Import(r.Context(), userID, file)
	if err != nil {
		respondError(w, "import logs", err)
		return
	}

	slog.Info("csv import finished",
		"batch", report.BatchID,
		"user", userID,
		"inserted", report.Inserted,
		"failed", len(report.Failures),
	)
	writeJSON(w, http.StatusOK, toImportReportDTO(report))
}

// HandleExport streams the filtered log list as a CSV attachment, in the
// same order the list view would show it.
func (h *TransferHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	filter, err := parseLogFilter(r)
	if err != nil {
		respondError(w, "parse export filter", err)
		return
	}
	column, ascending := parseSort(r)

	entries, err := h.logs.List(r.Context(), filter)
	if err != nil {
		respondError(w, "export logs", err)
		return
	}
	sorted := service.SortLogs(entries, column, ascending)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="logs_filtered.csv"`)

	cw := csv.NewWriter(w)
	cw.Write(exportHeader)
	for _, e := range sorted {
		cw.Write(exportRow(e))
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		slog.Error("write csv export", "error", err)
	}
}

// HandleTemplate serves the import template so downloaded and re-uploaded
// files share the exact header names.
func (h *TransferHandler) HandleTemplate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="log_import_template.csv"`)

	cw := csv.NewWriter(w)
	cw.Write([]string{"ActivityID", "Date", "Quantity", "LocationID"})
	cw.Write([]string{"1", "2024-01-15", "2.5", "1"})
	cw.Flush()
	if err := cw.Error(); err != nil {
		slog.Error("write csv template", "error", err)
	}
}

func exportRow(e domain.LogEntry) []string {
	emission := ""
	if e.CalculatedEmission != nil {
		emission = strconv.FormatFloat(*e.CalculatedEmission, 'f', -1, 64)
	}
	city, country := "", ""
	if e.City != nil {
		city = *e.City
	}
	if e.Country != nil {
		country = *e.Country
	}
	return []string{
		strconv.FormatInt(e.ID, 10),
		e.UserName,
		e.ActivityName,
		e.Date,
		strconv.FormatFloat(e.Quantity, 'f', -1, 64),
		emission,
		city,
		country,
	}
}
