package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// RateTable holds one fetched set of exchange rates. Every value is the price
// of one unit of Base expressed in the keyed currency, so Rates[Base] is
// always exactly 1. A table is built once per fetch and treated as read-only;
// the next fetch replaces it wholesale.
type RateTable struct {
	Base      string             `json:"base"`
	Rates     map[string]float64 `json:"rates"`
	FetchedAt time.Time          `json:"fetched_at"`
}

// Upstreams report the base rate as a float, allow for representation noise.
const baseRateTolerance = 1e-9

func NewRateTable(base string, rates map[string]float64, fetchedAt time.Time) (*RateTable, error) {
	if len(rates) == 0 {
		return nil, fmt.Errorf("%w: empty rates mapping for %q", ErrParse, base)
	}

	cloned := make(map[string]float64, len(rates)+1)
	for code, value := range rates {
		if value <= 0 || math.IsNaN(value) || math.IsInf(value, 0) {
			return nil, fmt.Errorf("%w: rate %q=%v is not a positive number", ErrParse, code, value)
		}
		cloned[code] = value
	}

	if v, ok := cloned[base]; ok && math.Abs(v-1) > baseRateTolerance {
		return nil, fmt.Errorf("%w: base %q maps to %v, want 1", ErrParse, base, v)
	}
	cloned[base] = 1.0

	return &RateTable{Base: base, Rates: cloned, FetchedAt: fetchedAt}, nil
}

// Rate returns the rate for code and whether the table carries it.
func (t *RateTable) Rate(code string) (float64, bool) {
	v, ok := t.Rates[code]
	return v, ok
}

func (t *RateTable) Age(now time.Time) time.Duration {
	return now.Sub(t.FetchedAt)
}

// NormalizeCode trims and uppercases a currency code and rejects anything
// that is not three ASCII letters.
func NormalizeCode(code string) (string, error) {
	c := strings.ToUpper(strings.TrimSpace(code))
	if len(c) != 3 {
		return "", fmt.Errorf("%w: %q", ErrInvalidCurrency, code)
	}
	for i := 0; i < len(c); i++ {
		if c[i] < 'A' || c[i] > 'Z' {
			return "", fmt.Errorf("%w: %q", ErrInvalidCurrency, code)
		}
	}
	return c, nil
}
