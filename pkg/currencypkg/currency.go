// Package currencypkg provides common currency related functionality for apps.
package currencypkg

import (
	"github.com/go-playground/validator/v10"
)

// Constants for all supported currencies.
const (
	AUD = "AUD"
	CAD = "CAD"
	CHF = "CHF"
	EUR = "EUR"
	GBP = "GBP"
	JPY = "JPY"
)

// SupportedCurrencies holds all the supported currencies in enumeration order.
var SupportedCurrencies = []string{
	AUD,
	CAD,
	CHF,
	EUR,
	GBP,
	JPY,
}

// IsSupportedCurrency returns true if the currncy is supported.
func IsSupportedCurrency(currency string) bool {
	for _, c := range SupportedCurrencies {
		if c == currency {
			return true
		}
	}

	return false
}

// Scale returns the number of fractional digits rates are quantized to
// for the given currency.
func Scale(currency string) int32 {
	if currency == JPY {
		return 2
	}

	return 4
}

// ValidCurrency validates whether the currency is supported.
var ValidCurrency validator.Func = func(fl validator.FieldLevel) bool {
	if c, ok := fl.Field().Interface().(string); ok {
		return IsSupportedCurrency(c)
	}
	return false
}
