package handlers

import (
	"driver-training-service/internal/api/dto"
	"driver-training-service/internal/domain"
	"driver-training-service/internal/services"
	"net/http"
)

// ProgressHandler reports a driver's recomputed training progress.
type ProgressHandler struct {
	Store      Store
	Percentage func(domain.TrainingProgress, domain.TrainingPhase) float64
}

// Get handles GET /drivers/{id}/progress.
func (h *ProgressHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}

	d, ok := driverFor(w, r, h.Store)
	if !ok {
		return
	}
	progress, ok := h.Store.DriverProgress(d.ID)
	if !ok {
		writeError(w, r, http.StatusNotFound, "driver not found")
		return
	}

	pct := h.Percentage
	if pct == nil {
		pct = services.ProgressPercentage
	}

	writeJSON(w, r, http.StatusOK, dto.ProgressResponse{
		DriverID:     d.ID,
		CurrentPhase: string(d.CurrentPhase),
		Progress:     dto.NewTrainingProgressResponse(progress),
		Percentage:   pct(progress, d.CurrentPhase),
		NextPhase:    string(services.NextPhase(d.CurrentPhase)),
		CanAdvance:   services.CanAdvanceToNextPhase(d, progress),
		Requirements: dto.NewRequirementsResponse(d.CurrentPhase),
	})
}
