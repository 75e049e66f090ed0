// Package types provides common type aliases and monetary arithmetic.
package types

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary or cost value with full precision.
// Uses decimal.Decimal to avoid floating-point drift across multi-level rollups.
type Money = decimal.Decimal

// NullMoney is a Money value that may be absent. A null cost means "unpriced",
// which is different from zero: an unpriced component makes every rollup that
// includes it unpriced as well.
type NullMoney = decimal.NullDecimal

// NewMoneyFromString creates a Money value from a string.
// This is the preferred constructor for monetary values.
func NewMoneyFromString(s string) (Money, error) {
	return decimal.NewFromString(s)
}

// MustMoney creates a Money value from a string, panics on error.
// Use only for constants and tests.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Zero returns the zero Money value.
func Zero() Money {
	return decimal.Zero
}

// SomeMoney wraps a Money value into a valid NullMoney.
func SomeMoney(m Money) NullMoney {
	return decimal.NullDecimal{Decimal: m, Valid: true}
}

// NoMoney returns the null NullMoney value.
func NoMoney() NullMoney {
	return decimal.NullDecimal{}
}

// DeriveUnitCost divides total cost by quantity, returning null when the
// denominator is zero. Division by zero never fails a write; it yields an
// unpriced value instead.
func DeriveUnitCost(cost Money, qty Money) NullMoney {
	if qty.IsZero() {
		return NoMoney()
	}
	return SomeMoney(cost.Div(qty))
}

// MulNull scales a possibly-null unit cost by a quantity.
// A null cost stays null regardless of quantity.
func MulNull(qty Money, cost NullMoney) NullMoney {
	if !cost.Valid {
		return NoMoney()
	}
	return SomeMoney(qty.Mul(cost.Decimal))
}

// AddNull adds two possibly-null amounts. Null is contagious: if either side
// is unpriced the sum is unpriced, never silently treated as zero.
func AddNull(a, b NullMoney) NullMoney {
	if !a.Valid || !b.Valid {
		return NoMoney()
	}
	return SomeMoney(a.Decimal.Add(b.Decimal))
}

// SumNull adds a series of possibly-null amounts with the same contagion rule.
// The sum of an empty series is zero.
func SumNull(vals ...NullMoney) NullMoney {
	total := decimal.Zero
	for _, v := range vals {
		if !v.Valid {
			return NoMoney()
		}
		total = total.Add(v.Decimal)
	}
	return SomeMoney(total)
}

// DivNull divides a possibly-null amount by a quantity. Null numerator or
// zero denominator yields null.
func DivNull(a NullMoney, by Money) NullMoney {
	if !a.Valid || by.IsZero() {
		return NoMoney()
	}
	return SomeMoney(a.Decimal.Div(by))
}
