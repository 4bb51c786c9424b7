package number

import (
	"github.com/shopspring/decimal"
)

func Decimal(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

// DivFloor divide and truncate toward zero at the given precision. The
// quotient is taken exactly, a result a hair below a boundary never lands
// on it.
func DivFloor(a, b decimal.Decimal, precision int32) decimal.Decimal {
	q, _ := a.Shift(precision).QuoRem(b, 0)
	return q.Shift(-precision)
}

func Ceil(d decimal.Decimal, precision int32) decimal.Decimal {
	return d.Shift(precision).Ceil().Shift(-precision)
}
