// Package finmath holds small pure financial helpers: return-on-investment
// arithmetic and Fibonacci utilities used for retracement levels.
package finmath

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrNonPositiveInitial = errors.New("initial value must be positive")
	ErrNonPositiveYears   = errors.New("years must be positive")
	ErrNegativeIndex      = errors.New("index must not be negative")
	ErrIndexOverflow      = errors.New("index too large for uint64")
	ErrInvertedRange      = errors.New("high must not be below low")
)

// ROI returns the simple return on investment as a percentage.
func ROI(initial, final float64) (float64, error) {
	if initial <= 0 {
		return 0, fmt.Errorf("%w: %v", ErrNonPositiveInitial, initial)
	}
	return (final - initial) / initial * 100, nil
}

// AnnualizedROI returns the compound annual growth rate as a percentage.
func AnnualizedROI(initial, final, years float64) (float64, error) {
	if initial <= 0 {
		return 0, fmt.Errorf("%w: %v", ErrNonPositiveInitial, initial)
	}
	if years <= 0 {
		return 0, fmt.Errorf("%w: %v", ErrNonPositiveYears, years)
	}
	return (math.Pow(final/initial, 1/years) - 1) * 100, nil
}

// Fibonacci(93) is the largest value that fits in a uint64.
const maxFibonacciIndex = 93

func Fibonacci(n int) (uint64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeIndex, n)
	}
	if n > maxFibonacciIndex {
		return 0, fmt.Errorf("%w: %d", ErrIndexOverflow, n)
	}

	var a, b uint64 = 0, 1
	for i := 0; i < n; i++ {
		a, b = b, a+b
	}
	return a, nil
}

// Level is one Fibonacci retracement level of a price range.
type Level struct {
	Ratio float64 `json:"ratio"`
	Price float64 `json:"price"`
}

var retracementRatios = []float64{0.236, 0.382, 0.5, 0.618, 0.786}

// Retracements returns the standard retracement levels between low and high,
// measured down from the high.
func Retracements(low, high float64) ([]Level, error) {
	if high < low {
		return nil, fmt.Errorf("%w: low=%v high=%v", ErrInvertedRange, low, high)
	}

	span := high - low
	levels := make([]Level, 0, len(retracementRatios))
	for _, ratio := range retracementRatios {
		levels = append(levels, Level{Ratio: ratio, Price: high - span*ratio})
	}
	return levels, nil
}
