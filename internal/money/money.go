// Package money converts amounts between the household's base currency and
// the single foreign currency, using a manually entered scalar rate.
package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrNonPositiveRate is returned by ToForeign when the rate cannot be
// divided by.
var ErrNonPositiveRate = errors.New("money: exchange rate must be positive")

// ToBase converts an amount to the base currency. Foreign amounts are
// multiplied by the rate; base amounts pass through unchanged. The rate is
// used exactly as entered: a zero or negative rate yields degenerate
// totals, not an error.
func ToBase(amount decimal.Decimal, foreign bool, rate decimal.Decimal) decimal.Decimal {
	if foreign {
		return amount.Mul(rate)
	}
	return amount
}

// ToForeign converts a base-currency amount to the foreign currency.
// Unlike ToBase, this direction divides by the rate and therefore rejects
// non-positive rates.
func ToForeign(amount decimal.Decimal, rate decimal.Decimal) (decimal.Decimal, error) {
	if rate.Sign() <= 0 {
		return decimal.Zero, ErrNonPositiveRate
	}
	return amount.Div(rate), nil
}
