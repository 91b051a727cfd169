package rate

import (
	"errors"
	"maps"
	"slices"
)

var (
	ErrCodeRequired    = errors.New("currency code is required")
	ErrCodeUnsupported = errors.New("currency code not supported")
	ErrSameCodes       = errors.New("base and quote must be different")
)

type CurrencyValidator struct {
	supportedCodesSet map[string]struct{} // read only copy
	supportedCodesLst []string            // read only copy
}

func (v *CurrencyValidator) ValidateCode(code string) error {
	if code == "" {
		return ErrCodeRequired
	}
	if _, ok := v.supportedCodesSet[code]; !ok {
		return ErrCodeUnsupported
	}
	return nil
}

// ValidatePair is for the pair endpoint, where asking the rate of a currency
// against itself is a caller mistake. Conversion endpoints allow identical
// codes and validate each one with ValidateCode instead.
func (v *CurrencyValidator) ValidatePair(base, quote string) error {
	if err := v.ValidateCode(base); err != nil {
		return err
	}
	if err := v.ValidateCode(quote); err != nil {
		return err
	}
	if base == quote {
		return ErrSameCodes
	}
	return nil
}

func (v *CurrencyValidator) SupportedCodes() []string {
	return slices.Clone(v.supportedCodesLst)
}

func NewValidator(supportedCurrencies map[string]struct{}) *CurrencyValidator {
	codesSet := maps.Clone(supportedCurrencies)
	codesLst := slices.Collect(maps.Keys(codesSet))
	slices.Sort(codesLst)

	return &CurrencyValidator{
		supportedCodesSet: codesSet,
		supportedCodesLst: codesLst,
	}
}
