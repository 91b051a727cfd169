package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewRateTable_InsertsBaseRate(t *testing.T) {
	table, err := NewRateTable("EUR", map[string]float64{"USD": 1.08, "GBP": 0.85}, time.Now())
	require.NoError(t, err)
	require.Equal(t, 1.0, table.Rates["EUR"])
	require.Equal(t, 1.08, table.Rates["USD"])
	require.Equal(t, 0.85, table.Rates["GBP"])
}

func TestNewRateTable_AcceptsBaseRateOfOne(t *testing.T) {
	table, err := NewRateTable("USD", map[string]float64{"USD": 1.0, "EUR": 0.92}, time.Now())
	require.NoError(t, err)
	require.Equal(t, 1.0, table.Rates["USD"])
}

func TestNewRateTable_RejectsWrongBaseRate(t *testing.T) {
	_, err := NewRateTable("USD", map[string]float64{"USD": 1.5, "EUR": 0.92}, time.Now())
	require.ErrorIs(t, err, ErrParse)
}

func TestNewRateTable_RejectsEmptyRates(t *testing.T) {
	_, err := NewRateTable("USD", nil, time.Now())
	require.ErrorIs(t, err, ErrParse)

	_, err = NewRateTable("USD", map[string]float64{}, time.Now())
	require.ErrorIs(t, err, ErrParse)
}

func TestNewRateTable_RejectsNonPositiveRates(t *testing.T) {
	for name, value := range map[string]float64{
		"zero":     0,
		"negative": -0.5,
		"nan":      math.NaN(),
		"inf":      math.Inf(1),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NewRateTable("USD", map[string]float64{"EUR": value}, time.Now())
			require.ErrorIs(t, err, ErrParse)
		})
	}
}

func TestNewRateTable_ClonesInput(t *testing.T) {
	input := map[string]float64{"EUR": 0.92}
	table, err := NewRateTable("USD", input, time.Now())
	require.NoError(t, err)

	input["EUR"] = 99
	require.Equal(t, 0.92, table.Rates["EUR"])
}

func TestRateTable_Age(t *testing.T) {
	fetchedAt := time.Now()
	table, err := NewRateTable("USD", map[string]float64{"EUR": 0.92}, fetchedAt)
	require.NoError(t, err)
	require.Equal(t, 30*time.Second, table.Age(fetchedAt.Add(30*time.Second)))
}

func TestNormalizeCode(t *testing.T) {
	got, err := NormalizeCode("  usd ")
	require.NoError(t, err)
	require.Equal(t, "USD", got)

	got, err = NormalizeCode("EUR")
	require.NoError(t, err)
	require.Equal(t, "EUR", got)
}

func TestNormalizeCode_Invalid(t *testing.T) {
	for _, code := range []string{"", "US", "USDT", "???", "U1D", "us d"} {
		_, err := NormalizeCode(code)
		require.ErrorIs(t, err, ErrInvalidCurrency, "code=%q", code)
	}
}
