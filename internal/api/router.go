package api

import (
	"driver-training-service/internal/api/handlers"
	"driver-training-service/internal/report"
	"net/http"

	"go.uber.org/zap"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(st handlers.Store, reports *report.Generator, logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	drivers := &handlers.DriverHandler{Store: st}
	entries := &handlers.EntryHandler{Store: st}
	weeks := &handlers.WeekHandler{Store: st}
	progress := &handlers.ProgressHandler{Store: st, Percentage: reports.Percentage}
	rep := &handlers.ReportHandler{Store: st, Reports: reports}

	mux.HandleFunc("/health", handlers.Health)

	mux.HandleFunc("/drivers", drivers.Collection)
	mux.HandleFunc("/drivers/{id}", drivers.Item)
	mux.HandleFunc("/drivers/{id}/progress", progress.Get)
	mux.HandleFunc("/drivers/{id}/entries", entries.DriverEntries)
	mux.HandleFunc("/drivers/{id}/entries/import", entries.Import)
	mux.HandleFunc("/drivers/{id}/weeks", weeks.Weeks)
	mux.HandleFunc("/drivers/{id}/reports/{kind}", rep.Render)
	mux.HandleFunc("/drivers/{id}/reports/training/mailto", rep.TrainingMailto)

	mux.HandleFunc("/entries/{id}", entries.Item)

	return requestID(loggingMiddleware(logger, mux))
}
