package ordering

import "github.com/shopspring/decimal"

// DefaultCurrency is reported when the platform omits a currency code.
const DefaultCurrency = "USD"

// Money is an amount in minor currency units (cents).
type Money struct {
	Amount   int64
	Currency string
}

// Decimal returns the amount in major units (Amount / 100).
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.Amount, -2)
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.Amount == 0
}

// CurrencyOrDefault returns the currency code, falling back to DefaultCurrency.
func (m Money) CurrencyOrDefault() string {
	if m.Currency == "" {
		return DefaultCurrency
	}
	return m.Currency
}
