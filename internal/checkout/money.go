package checkout

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

var (
	hundred  = decimal.NewFromInt(100)
	maxMinor = decimal.NewFromInt(math.MaxInt64)
)

// ErrAmountOutOfRange is returned when an amount does not fit in int64 minor units.
var ErrAmountOutOfRange = errors.New("amount out of range")

// MinorUnits converts a major-unit price to minor units, rounding half away from zero.
// Decimal arithmetic keeps 19.995 at 2000 where float math would give 1999.
func MinorUnits(price float64) (int64, error) {
	if math.IsInf(price, 0) || math.IsNaN(price) {
		return 0, ErrAmountOutOfRange
	}
	d := decimal.NewFromFloat(price).Mul(hundred).Round(0)
	if d.Abs().GreaterThan(maxMinor) {
		return 0, ErrAmountOutOfRange
	}
	return d.IntPart(), nil
}

// lineTotal is unitAmount × quantity, failing instead of overflowing.
func lineTotal(unitAmount, quantity int64) (decimal.Decimal, error) {
	t := decimal.NewFromInt(unitAmount).Mul(decimal.NewFromInt(quantity))
	if t.GreaterThan(maxMinor) {
		return decimal.Zero, ErrAmountOutOfRange
	}
	return t, nil
}
