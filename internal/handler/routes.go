package handler

import (
	"net/http"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, catalog *CatalogHandler, logs *LogHandler, reports *ReportHandler, dashboard *DashboardHandler, transfer *TransferHandler) {
	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("GET /api/users", catalog.HandleListUsers)
	mux.HandleFunc("POST /api/users", catalog.HandleCreateUser)
	mux.HandleFunc("GET /api/activities", catalog.HandleListActivities)
	mux.HandleFunc("GET /api/locations", catalog.HandleListLocations)

	mux.HandleFunc("GET /api/logs", logs.HandleList)
	mux.HandleFunc("POST /api/logs", logs.HandleAdd)
	mux.HandleFunc("DELETE /api/logs/{id}", logs.HandleDelete)

	mux.HandleFunc("GET /api/reports/monthly", reports.HandleMonthly)
	mux.HandleFunc("GET /api/reports/ranking", reports.HandleRanking)
	mux.HandleFunc("GET /api/reports/goal", reports.HandleGoal)

	mux.HandleFunc("GET /api/dashboard", dashboard.HandleSummary)
	mux.HandleFunc("GET /dashboard/stream", dashboard.HandleStream)

	mux.HandleFunc("POST /api/logs/import", transfer.HandleImport)
	mux.HandleFunc("GET /api/logs/export", transfer.HandleExport)
	mux.HandleFunc("GET /api/logs/import/template", transfer.HandleTemplate)
}
