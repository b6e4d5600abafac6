// Package money provides helpers for monetary amounts expressed in units of
// 10,000 yen (man-yen), the working unit of the projection engine. Ledger
// amounts round to one decimal place of a man-yen and tax figures floor to
// whole man-yen; these helpers centralize both conventions so every
// calculation stage rounds identically.
package money

import (
	"github.com/shopspring/decimal"
)

// YenPerUnit is the number of yen in one working currency unit.
var YenPerUnit = decimal.NewFromInt(10000)

// Round1 rounds to one decimal place, half away from zero.
func Round1(d decimal.Decimal) decimal.Decimal {
	return d.Round(1)
}

// FloorUnit floors to a whole man-yen. Tax deductions use this.
func FloorUnit(d decimal.Decimal) decimal.Decimal {
	return d.Floor()
}

// ToYen converts a man-yen amount to yen.
func ToYen(d decimal.Decimal) decimal.Decimal {
	return d.Mul(YenPerUnit)
}

// FromYen converts a yen amount to man-yen, rounded to one decimal place.
func FromYen(yen decimal.Decimal) decimal.Decimal {
	return yen.Div(YenPerUnit).Round(1)
}

// Clamp limits d to the inclusive range [lo, hi].
func Clamp(d, lo, hi decimal.Decimal) decimal.Decimal {
	if d.LessThan(lo) {
		return lo
	}
	if d.GreaterThan(hi) {
		return hi
	}
	return d
}

// Min returns the smaller of two amounts.
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the larger of two amounts.
func Max(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// FloorZero floors negative amounts at zero.
func FloorZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// PowInt raises base to an integer power. Negative exponents return the
// reciprocal so that escalation factors work for plan years preceding the
// base year.
func PowInt(base decimal.Decimal, n int) decimal.Decimal {
	if n == 0 {
		return decimal.NewFromInt(1)
	}
	neg := n < 0
	if neg {
		n = -n
	}
	result := decimal.NewFromInt(1)
	for i := 0; i < n; i++ {
		result = result.Mul(base)
	}
	if neg {
		return decimal.NewFromInt(1).Div(result)
	}
	return result
}

// EscalationFactor returns (1 + ratePct/100)^years.
func EscalationFactor(ratePct decimal.Decimal, years int) decimal.Decimal {
	base := decimal.NewFromInt(1).Add(ratePct.Div(decimal.NewFromInt(100)))
	return PowInt(base, years)
}
