package rate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCurrencyValidator_ValidateCode(t *testing.T) {
	validator := NewValidator(map[string]struct{}{"USD": {}, "EUR": {}})

	require.NoError(t, validator.ValidateCode("USD"))
	require.Equal(t, ErrCodeRequired, validator.ValidateCode(""))
	require.Equal(t, ErrCodeUnsupported, validator.ValidateCode("ABC"))
}

func TestCurrencyValidator_ValidatePair_Errors(t *testing.T) {
	validator := NewValidator(map[string]struct{}{"USD": {}, "EUR": {}})

	require.Equal(t, ErrCodeRequired, validator.ValidatePair("", "EUR"))
	require.Equal(t, ErrCodeRequired, validator.ValidatePair("USD", ""))
	require.Equal(t, ErrSameCodes, validator.ValidatePair("USD", "USD"))
	require.Equal(t, ErrCodeUnsupported, validator.ValidatePair("ABC", "EUR"))
	require.Equal(t, ErrCodeUnsupported, validator.ValidatePair("USD", "ZZZ"))
}

func TestCurrencyValidator_ValidatePair_Success(t *testing.T) {
	validator := NewValidator(map[string]struct{}{"USD": {}, "EUR": {}})
	require.NoError(t, validator.ValidatePair("USD", "EUR"))
}

func TestNewValidator_ClonesMap(t *testing.T) {
	sourceCurrencies := map[string]struct{}{"USD": {}, "EUR": {}}
	validator := NewValidator(sourceCurrencies)

	// mutate source after creation
	delete(sourceCurrencies, "USD")

	// validator should still allow USD (clone must not be affected)
	require.NoError(t, validator.ValidateCode("USD"))
}

func TestCurrencyValidator_SupportedCodes(t *testing.T) {
	validator := NewValidator(map[string]struct{}{"USD": {}, "EUR": {}, "JPY": {}})

	got := validator.SupportedCodes()

	require.Len(t, got, 3)
	require.ElementsMatch(t, []string{"USD", "EUR", "JPY"}, got)

	// ensure caller modifications do not affect validator internal state
	got[0] = "XXX"
	require.ElementsMatch(t, []string{"USD", "EUR", "JPY"}, validator.SupportedCodes())
}
