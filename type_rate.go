package timevalue

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Rate is an annual interest rate expressed as a plain percentage:
// R(7.1) means 7.1% per year.
type Rate struct {
	value decimal.Decimal
}

func R[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Rate {
	return Rate{value: newDecimal(value)}
}

// ParseRate parses a rate from its decimal percentage representation, e.g. "7.1".
func ParseRate(str string) (Rate, error) {
	d, err := decimal.NewFromString(str)
	if err != nil {
		return Rate{}, fmt.Errorf("invalid rate %q: %w", str, err)
	}
	return Rate{value: d}, nil
}

// Fraction returns the rate as a fraction of 1 (7.1% -> 0.071).
func (r Rate) Fraction() decimal.Decimal { return r.value.Div(hundred) }

func (r Rate) IsPositive() bool     { return r.value.IsPositive() }
func (r Rate) IsZero() bool         { return r.value.IsZero() }
func (r Rate) Equal(s Rate) bool    { return r.value.Equal(s.value) }
func (r Rate) Percent() Percent     { return Percent(r.value.InexactFloat64()) }
func (r Rate) String() string       { return r.value.String() + "%" }
func (r Rate) AsFloat() float64     { return r.value.InexactFloat64() }
