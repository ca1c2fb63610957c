package handlers

import (
	"driver-training-service/internal/api/dto"
	"driver-training-service/internal/domain"
	"driver-training-service/internal/report"
	"driver-training-service/internal/services"
	"fmt"
	"net/http"
	"sort"
)

// EntryHandler serves roster entries, both nested under a driver and by ID.
type EntryHandler struct {
	Store Store
}

// DriverEntries handles /drivers/{id}/entries.
// GET accepts an optional week_ending query to restrict the listing to one week.
func (h *EntryHandler) DriverEntries(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listForDriver(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

func (h *EntryHandler) listForDriver(w http.ResponseWriter, r *http.Request) {
	d, ok := driverFor(w, r, h.Store)
	if !ok {
		return
	}

	entries := h.Store.RosterEntriesForDriver(d.ID)
	if weekEnding := r.URL.Query().Get("week_ending"); weekEnding != "" {
		var err error
		entries, err = report.EntriesForWeek(entries, weekEnding)
		if err != nil {
			writeStoreError(w, r, "list roster entries", err)
			return
		}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })

	writeJSON(w, r, http.StatusOK, dto.NewListEntriesResponse(entries))
}

func (h *EntryHandler) create(w http.ResponseWriter, r *http.Request) {
	d, ok := driverFor(w, r, h.Store)
	if !ok {
		return
	}

	var req dto.CreateEntryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	entry, err := services.BuildRosterEntry(req.Input(d.ID))
	if err != nil {
		writeStoreError(w, r, "add roster entry", err)
		return
	}

	entry, err = h.Store.AddRosterEntry(r.Context(), entry)
	if err != nil {
		writeStoreError(w, r, "add roster entry", err)
		return
	}
	writeJSON(w, r, http.StatusCreated, dto.NewEntryResponse(entry))
}

// Import handles POST /drivers/{id}/entries/import. The batch is validated in
// full before anything is stored.
func (h *EntryHandler) Import(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	d, ok := driverFor(w, r, h.Store)
	if !ok {
		return
	}

	var req dto.ImportEntriesRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	batch := make([]domain.RosterEntry, 0, len(req.Entries))
	for i, e := range req.Entries {
		entry, err := services.BuildRosterEntry(e.Input(d.ID))
		if err != nil {
			writeStoreError(w, r, "import roster entries", fmt.Errorf("entries[%d]: %w", i, err))
			return
		}
		batch = append(batch, entry)
	}

	added, err := h.Store.ImportRosterEntries(r.Context(), batch)
	if err != nil {
		writeStoreError(w, r, "import roster entries", err)
		return
	}
	writeJSON(w, r, http.StatusCreated, dto.NewListEntriesResponse(added))
}

// Item handles /entries/{id}.
func (h *EntryHandler) Item(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	switch r.Method {
	case http.MethodGet:
		e, ok := h.Store.RosterEntry(id)
		if !ok {
			writeError(w, r, http.StatusNotFound, "roster entry not found")
			return
		}
		writeJSON(w, r, http.StatusOK, dto.NewEntryResponse(e))
	case http.MethodPatch:
		var req dto.UpdateEntryRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		upd, err := services.BuildRosterEntryUpdate(req.Patch())
		if err != nil {
			writeStoreError(w, r, "update roster entry", err)
			return
		}
		e, err := h.Store.UpdateRosterEntry(r.Context(), id, upd)
		if err != nil {
			writeStoreError(w, r, "update roster entry", err)
			return
		}
		writeJSON(w, r, http.StatusOK, dto.NewEntryResponse(e))
	case http.MethodDelete:
		if err := h.Store.DeleteRosterEntry(r.Context(), id); err != nil {
			writeStoreError(w, r, "delete roster entry", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPatch, http.MethodDelete)
	}
}
