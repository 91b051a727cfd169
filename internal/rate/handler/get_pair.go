package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type GetPairResponse struct {
	Base      string    `json:"base" example:"USD"`
	Quote     string    `json:"quote" example:"EUR"`
	Value     float64   `json:"value" example:"0.9231"`
	FetchedAt time.Time `json:"fetched_at" example:"2025-01-02T15:04:05Z"`
}

// GetPair godoc
// @Summary Get a single exchange rate
// @Description Price of one unit of the base currency in the quote currency
// @Tags Rates
// @Produce json
// @Param base path string true "Base currency code" example(USD)
// @Param quote path string true "Quote currency code" example(EUR)
// @Success 200 {object} GetPairResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /rates/{base}/{quote} [get]
func (h *Handler) GetPair(w http.ResponseWriter, r *http.Request) {
	base := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "base")))
	quote := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "quote")))

	if err := h.validator.ValidatePair(base, quote); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	pair, err := h.service.GetPair(r.Context(), base, quote)
	if err != nil {
		handleServiceError(w, err, "GetPair", logrus.Fields{"base": base, "quote": quote})
		return
	}

	writeJSON(w, http.StatusOK, GetPairResponse{
		Base:      pair.Base,
		Quote:     pair.Quote,
		Value:     pair.Value,
		FetchedAt: pair.FetchedAt,
	})
}
