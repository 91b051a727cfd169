package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type GetTableResponse struct {
	Base      string             `json:"base" example:"EUR"`
	Rates     map[string]float64 `json:"rates"`
	FetchedAt time.Time          `json:"fetched_at" example:"2025-01-02T15:04:05Z"`
}

// GetTable godoc
// @Summary Get the full rate table for a base currency
// @Description Rates of one unit of the base currency in every supported currency, served from cache while fresh
// @Tags Rates
// @Produce json
// @Param base path string true "Base currency code" example(EUR)
// @Success 200 {object} GetTableResponse
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Failure 503 {object} errorResponse
// @Router /rates/{base} [get]
func (h *Handler) GetTable(w http.ResponseWriter, r *http.Request) {
	base := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "base")))

	if err := h.validator.ValidateCode(base); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	table, err := h.service.GetTable(r.Context(), base)
	if err != nil {
		handleServiceError(w, err, "GetTable", logrus.Fields{"base": base})
		return
	}

	writeJSON(w, http.StatusOK, GetTableResponse{
		Base:      table.Base,
		Rates:     table.Rates,
		FetchedAt: table.FetchedAt,
	})
}
