package handlers

import (
	"driver-training-service/internal/api/dto"
	"driver-training-service/internal/platform/obs"
	"driver-training-service/internal/report"
	"mime"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

const (
	ReportWeekly   = "weekly"
	ReportTraining = "training"
	ReportHistory  = "history"
)

// ReportHandler renders PDF reports and mail drafts for a driver.
type ReportHandler struct {
	Store   Store
	Reports *report.Generator
}

// Render handles GET /drivers/{id}/reports/{kind}.
func (h *ReportHandler) Render(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}

	d, ok := driverFor(w, r, h.Store)
	if !ok {
		return
	}
	entries := h.Store.RosterEntriesForDriver(d.ID)
	progress, _ := h.Store.DriverProgress(d.ID)

	var (
		doc *report.Document
		err error
	)
	switch kind := r.PathValue("kind"); kind {
	case ReportWeekly:
		weekEnding := r.URL.Query().Get("week_ending")
		if weekEnding == "" {
			writeError(w, r, http.StatusBadRequest, "week_ending is required")
			return
		}
		doc, err = h.Reports.WeeklyRoster(d, entries, weekEnding)
	case ReportTraining:
		doc, err = h.Reports.TrainingReport(d, progress, entries)
	case ReportHistory:
		doc, err = h.Reports.DriverHistory(d, progress, entries)
	default:
		writeError(w, r, http.StatusNotFound, "unknown report "+strconv.Quote(kind))
		return
	}
	if err != nil {
		writeStoreError(w, r, "render report", err)
		return
	}

	body := doc.Bytes()
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": doc.Filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		zap.L().Warn("write report failed",
			zap.String("req_id", obs.RequestID(r.Context())),
			zap.String("filename", doc.Filename),
			zap.Error(err),
		)
	}
}

// TrainingMailto handles GET /drivers/{id}/reports/training/mailto.
func (h *ReportHandler) TrainingMailto(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}

	d, ok := driverFor(w, r, h.Store)
	if !ok {
		return
	}
	writeJSON(w, r, http.StatusOK, dto.MailtoResponse{Mailto: report.TrainingReportMailto(d)})
}
