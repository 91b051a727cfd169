package rate

import (
	"fmt"

	"fxproxy/internal/domain"
)

// Convert expresses amount in its target currency using a table of rates
// against a common base: amount / rates[from] * rates[to]. A same-currency
// conversion returns the amount untouched without looking at the table.
func Convert(amount float64, from, to string, table *domain.RateTable) (float64, error) {
	if from == to {
		return amount, nil
	}

	fromRate, ok := table.Rate(from)
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrUnknownCurrency, from)
	}
	toRate, ok := table.Rate(to)
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrUnknownCurrency, to)
	}

	return amount / fromRate * toRate, nil
}
