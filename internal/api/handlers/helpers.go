package handlers

import (
	"context"
	"driver-training-service/internal/domain"
	"driver-training-service/internal/platform/obs"
	"driver-training-service/internal/services"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Store is the subset of the driver store the handlers need.
type Store interface {
	AddDriver(ctx context.Context, d domain.Driver) (domain.Driver, error)
	UpdateDriver(ctx context.Context, id string, upd domain.DriverUpdate) (domain.Driver, error)
	DeleteDriver(ctx context.Context, id string) error
	Driver(id string) (domain.Driver, bool)
	Drivers() []domain.Driver

	AddRosterEntry(ctx context.Context, e domain.RosterEntry) (domain.RosterEntry, error)
	ImportRosterEntries(ctx context.Context, batch []domain.RosterEntry) ([]domain.RosterEntry, error)
	UpdateRosterEntry(ctx context.Context, id string, upd domain.RosterEntryUpdate) (domain.RosterEntry, error)
	DeleteRosterEntry(ctx context.Context, id string) error
	RosterEntry(id string) (domain.RosterEntry, bool)
	RosterEntriesForDriver(driverID string) []domain.RosterEntry

	DriverProgress(driverID string) (domain.TrainingProgress, bool)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("encode failed",
			zap.String("req_id", obs.RequestID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
}

// writeStoreError maps domain errors onto status codes. Anything unrecognised is
// logged and reported as a 500 without detail.
func writeStoreError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, services.ErrInvalidClock):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "not found")
	default:
		zap.L().Error(op+" failed",
			zap.String("req_id", obs.RequestID(r.Context())),
			zap.Error(err),
		)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON reads exactly one JSON object into v, rejecting unknown fields.
// It writes the 400 response itself and reports whether decoding succeeded.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}
	return true
}

// driverFor resolves the {id} path value to an existing driver, writing a 404 otherwise.
func driverFor(w http.ResponseWriter, r *http.Request, st Store) (domain.Driver, bool) {
	d, ok := st.Driver(r.PathValue("id"))
	if !ok {
		writeError(w, r, http.StatusNotFound, "driver not found")
	}
	return d, ok
}
