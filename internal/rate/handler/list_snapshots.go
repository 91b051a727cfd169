package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

const (
	defaultSnapshotLimit = 20
	maxSnapshotLimit     = 100
)

type ListSnapshotsResponse struct {
	Base      string             `json:"base" example:"USD"`
	Snapshots []SnapshotResponse `json:"snapshots"`
}

// ListSnapshots godoc
// @Summary List recent persisted rate snapshots for a base currency
// @Tags Snapshots
// @Produce json
// @Param base path string true "Base currency code" example(USD)
// @Param limit query int false "Maximum number of snapshots" default(20) maximum(100)
// @Success 200 {object} ListSnapshotsResponse
// @Failure 400 {object} errorResponse
// @Router /snapshots/{base} [get]
func (h *Handler) ListSnapshots(w http.ResponseWriter, r *http.Request) {
	base := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "base")))

	if err := h.validator.ValidateCode(base); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	limit := defaultSnapshotLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(parsed, maxSnapshotLimit)
	}

	snaps, err := h.service.ListSnapshots(r.Context(), base, limit)
	if err != nil {
		handleServiceError(w, err, "ListSnapshots", logrus.Fields{"base": base})
		return
	}

	res := ListSnapshotsResponse{
		Base:      base,
		Snapshots: make([]SnapshotResponse, 0, len(snaps)),
	}
	for _, snap := range snaps {
		res.Snapshots = append(res.Snapshots, SnapshotResponse{
			ID:        snap.ID.String(),
			Base:      snap.Base,
			Rates:     snap.Rates,
			FetchedAt: snap.FetchedAt,
		})
	}
	writeJSON(w, http.StatusOK, res)
}
