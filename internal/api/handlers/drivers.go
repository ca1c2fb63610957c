package handlers

import (
	"driver-training-service/internal/api/dto"
	"driver-training-service/internal/services"
	"net/http"
)

// DriverHandler serves the driver collection and individual drivers.
type DriverHandler struct {
	Store Store
}

// Collection handles /drivers.
func (h *DriverHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

// Item handles /drivers/{id}.
func (h *DriverHandler) Item(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		d, ok := driverFor(w, r, h.Store)
		if !ok {
			return
		}
		writeJSON(w, r, http.StatusOK, dto.NewDriverResponse(d))
	case http.MethodPatch:
		h.update(w, r)
	case http.MethodDelete:
		if err := h.Store.DeleteDriver(r.Context(), r.PathValue("id")); err != nil {
			writeStoreError(w, r, "delete driver", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPatch, http.MethodDelete)
	}
}

func (h *DriverHandler) list(w http.ResponseWriter, r *http.Request) {
	drivers := h.Store.Drivers()

	res := dto.ListDriversResponse{Drivers: make([]dto.DriverResponse, 0, len(drivers))}
	for _, d := range drivers {
		res.Drivers = append(res.Drivers, dto.NewDriverResponse(d))
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *DriverHandler) create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDriverRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	d, err := services.BuildDriver(req.Input())
	if err != nil {
		writeStoreError(w, r, "add driver", err)
		return
	}

	d, err = h.Store.AddDriver(r.Context(), d)
	if err != nil {
		writeStoreError(w, r, "add driver", err)
		return
	}
	writeJSON(w, r, http.StatusCreated, dto.NewDriverResponse(d))
}

func (h *DriverHandler) update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateDriverRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	upd, err := services.BuildDriverUpdate(req.Patch())
	if err != nil {
		writeStoreError(w, r, "update driver", err)
		return
	}

	d, err := h.Store.UpdateDriver(r.Context(), r.PathValue("id"), upd)
	if err != nil {
		writeStoreError(w, r, "update driver", err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.NewDriverResponse(d))
}
