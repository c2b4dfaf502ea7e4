package order

import (
	"fmt"

	"orderdesk/internal/pkg/errs"
)

// Currency is the closed set of budget currencies offered by the wizard.
// Unrecognized selections map to CurrencyUnspecified instead of erroring,
// so a stale or malformed button press degrades gracefully.
type Currency int

const (
	// CurrencyUnknown represents an invalid or undefined currency.
	CurrencyUnknown Currency = iota

	// CurrencyUnspecified is the sentinel for unrecognized selections.
	CurrencyUnspecified

	CurrencyRUB
	CurrencyBYN
	CurrencyCNY
	CurrencyEUR
	CurrencyKZT
	CurrencyUSD
)

func getCurrencyStrings() map[Currency]string {
	return map[Currency]string{
		CurrencyUnknown:     "unknown",
		CurrencyUnspecified: "unspecified",
		CurrencyRUB:         "rub",
		CurrencyBYN:         "byn",
		CurrencyCNY:         "cny",
		CurrencyEUR:         "eur",
		CurrencyKZT:         "kzt",
		CurrencyUSD:         "usd",
	}
}

func getValidCurrencyStrings() map[Currency]string {
	//nolint:exhaustive // CurrencyUnknown is intentionally excluded as it's invalid
	return map[Currency]string{
		CurrencyUnspecified: "unspecified",
		CurrencyRUB:         "rub",
		CurrencyBYN:         "byn",
		CurrencyCNY:         "cny",
		CurrencyEUR:         "eur",
		CurrencyKZT:         "kzt",
		CurrencyUSD:         "usd",
	}
}

func getCurrencyLabels() map[Currency]string {
	return map[Currency]string{
		CurrencyUnspecified: "Not specified",
		CurrencyRUB:         "Russian ruble (₽)",
		CurrencyBYN:         "Belarusian ruble (Br)",
		CurrencyCNY:         "Chinese yuan (¥)",
		CurrencyEUR:         "Euro (€)",
		CurrencyKZT:         "Tenge (₸)",
		CurrencyUSD:         "US dollar ($)",
	}
}

// ParseCurrency converts a wire/storage code into a Currency.
// Unknown codes yield CurrencyUnspecified with no error: the wizard treats an
// unrecognized currency selection as "not specified" rather than a failure.
func ParseCurrency(value string) Currency {
	for currency, str := range getValidCurrencyStrings() {
		if str == value {
			return currency
		}
	}
	return CurrencyUnspecified
}

// Validate checks if the Currency value is valid.
func (c Currency) Validate() error {
	if _, ok := getValidCurrencyStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("currency", fmt.Errorf("%d is not a valid currency", c))
	}
	return nil
}

// String returns the stable code of the currency, e.g. "usd".
func (c Currency) String() string {
	if str, ok := getCurrencyStrings()[c]; ok {
		return str
	}
	return "unknown"
}

// Label returns the display label of the currency for user-facing screens,
// e.g. "US dollar ($)".
func (c Currency) Label() string {
	if label, ok := getCurrencyLabels()[c]; ok {
		return label
	}
	return "Unknown"
}
