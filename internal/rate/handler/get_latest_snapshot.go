package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type SnapshotResponse struct {
	ID        string             `json:"id" example:"77b5d9f5-0569-47e3-aee2-f659d59fbd97"`
	Base      string             `json:"base" example:"USD"`
	Rates     map[string]float64 `json:"rates"`
	FetchedAt time.Time          `json:"fetched_at" example:"2025-01-02T15:04:05Z"`
}

// GetLatestSnapshot godoc
// @Summary Get the newest persisted rate snapshot for a base currency
// @Tags Snapshots
// @Produce json
// @Param base path string true "Base currency code" example(USD)
// @Success 200 {object} SnapshotResponse
// @Failure 404 {object} errorResponse
// @Router /snapshots/{base}/latest [get]
func (h *Handler) GetLatestSnapshot(w http.ResponseWriter, r *http.Request) {
	base := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "base")))

	if err := h.validator.ValidateCode(base); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	snap, err := h.service.LatestSnapshot(r.Context(), base)
	if err != nil {
		handleServiceError(w, err, "GetLatestSnapshot", logrus.Fields{"base": base})
		return
	}

	writeJSON(w, http.StatusOK, SnapshotResponse{
		ID:        snap.ID.String(),
		Base:      snap.Base,
		Rates:     snap.Rates,
		FetchedAt: snap.FetchedAt,
	})
}
