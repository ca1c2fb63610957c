package handlers

import (
	"driver-training-service/internal/api/dto"
	"driver-training-service/internal/report"
	"driver-training-service/internal/services"
	"net/http"
)

// WeekHandler serves the weekly roster builder and the index of recorded weeks.
type WeekHandler struct {
	Store Store
}

// Weeks handles /drivers/{id}/weeks.
func (h *WeekHandler) Weeks(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.build(w, r)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

func (h *WeekHandler) list(w http.ResponseWriter, r *http.Request) {
	d, ok := driverFor(w, r, h.Store)
	if !ok {
		return
	}

	weeks := report.AvailableWeeks(h.Store.RosterEntriesForDriver(d.ID))

	res := dto.ListWeeksResponse{Weeks: make([]dto.WeekSummaryResponse, 0, len(weeks))}
	for _, wk := range weeks {
		res.Weeks = append(res.Weeks, dto.WeekSummaryResponse{
			WeekEnding: wk.WeekEnding,
			WeekStart:  wk.WeekStart,
			WeekEnd:    wk.WeekEnd,
			EntryCount: wk.EntryCount,
			TotalHours: wk.TotalHours,
		})
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *WeekHandler) build(w http.ResponseWriter, r *http.Request) {
	d, ok := driverFor(w, r, h.Store)
	if !ok {
		return
	}

	var req dto.WeekRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	entries, err := services.BuildWeek(req.Input(d.ID))
	if err != nil {
		writeStoreError(w, r, "build week", err)
		return
	}

	added, err := h.Store.ImportRosterEntries(r.Context(), entries)
	if err != nil {
		writeStoreError(w, r, "build week", err)
		return
	}
	writeJSON(w, r, http.StatusCreated, dto.NewListEntriesResponse(added))
}
