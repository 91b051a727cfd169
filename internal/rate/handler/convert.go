package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type ConvertResponse struct {
	From      string    `json:"from" example:"EUR"`
	To        string    `json:"to" example:"USD"`
	Amount    float64   `json:"amount" example:"100"`
	Result    float64   `json:"result" example:"108"`
	FetchedAt time.Time `json:"fetched_at" example:"2025-01-02T15:04:05Z"`
}

// Convert godoc
// @Summary Convert an amount between two currencies
// @Description Converts via the rate table of the source currency; identical from and to return the amount unchanged
// @Tags Rates
// @Produce json
// @Param from query string true "Source currency code" example(EUR)
// @Param to query string true "Target currency code" example(USD)
// @Param amount query number true "Amount to convert, must be positive" example(100)
// @Success 200 {object} ConvertResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /convert [get]
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	from := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("from")))
	to := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("to")))

	if err := h.validator.ValidateCode(from); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validator.ValidateCode(to); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	amount, err := strconv.ParseFloat(r.URL.Query().Get("amount"), 64)
	if err != nil || amount <= 0 {
		writeError(w, http.StatusBadRequest, "amount must be a positive number")
		return
	}

	conv, err := h.service.Convert(r.Context(), from, to, amount)
	if err != nil {
		handleServiceError(w, err, "Convert", logrus.Fields{"from": from, "to": to})
		return
	}

	writeJSON(w, http.StatusOK, ConvertResponse{
		From:      conv.From,
		To:        conv.To,
		Amount:    conv.Amount,
		Result:    conv.Result,
		FetchedAt: conv.FetchedAt,
	})
}
