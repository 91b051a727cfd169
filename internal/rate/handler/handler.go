package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"fxproxy/internal/domain"
	"fxproxy/internal/rate"
)

type Validator interface {
	ValidateCode(code string) error
	ValidatePair(base, quote string) error
	SupportedCodes() []string
}

type Service interface {
	GetTable(ctx context.Context, base string) (*domain.RateTable, error)
	GetPair(ctx context.Context, base, quote string) (rate.PairView, error)
	Convert(ctx context.Context, from, to string, amount float64) (rate.ConversionView, error)
	LatestSnapshot(ctx context.Context, base string) (*domain.RateSnapshot, error)
	ListSnapshots(ctx context.Context, base string, limit int) ([]domain.RateSnapshot, error)
}

type Handler struct {
	validator Validator
	service   Service
}

func NewRateHandler(validator Validator, service Service) *Handler {
	return &Handler{validator: validator, service: service}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error: errorMsg,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// handleServiceError maps domain sentinels onto HTTP statuses. Upstream
// trouble is the upstream's fault (502/503), unknown codes are the caller's
// (400/404), anything else gets logged and hidden behind a 500.
func handleServiceError(w http.ResponseWriter, err error, handlerName string, fields logrus.Fields) {
	switch {
	case errors.Is(err, domain.ErrInvalidCurrency):
		writeError(w, http.StatusBadRequest, "invalid currency code")
	case errors.Is(err, domain.ErrUnknownCurrency):
		writeError(w, http.StatusNotFound, "currency not present in rate table")
	case errors.Is(err, domain.ErrSnapshotNotFound):
		writeError(w, http.StatusNotFound, "snapshot not found")
	case errors.Is(err, domain.ErrParse):
		writeError(w, http.StatusBadGateway, "rates provider returned a malformed response")
	case errors.Is(err, domain.ErrNetwork):
		writeError(w, http.StatusServiceUnavailable, "rates provider is unreachable")
	default:
		msg := "ups, something went wrong this time"
		logrus.WithError(err).WithFields(fields).WithField("handler", handlerName).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
	}
}
