package timevalue

import (
	"github.com/shopspring/decimal"
)

// daysPerYear is the day-count convention used to turn actual day counts
// into fractional years.
var daysPerYear = decimal.NewFromInt(365)

// growthPrecision is the decimal precision used for the fractional
// exponentiation in the compound formula.
const growthPrecision = 16

// CompoundInterest computes the accrued value of a fixed-income holding
// from its transaction history.
//
// Each buy amount grows by the periodic compound formula
// A = P*(1+r/n)^(n*t) between its date and asOf; each sell amount grows
// identically and its grown value is subtracted, as a sale removes
// principal that would otherwise have kept compounding. Elapsed time uses
// actual day counts over a 365-day year, and transactions dated after asOf
// contribute no elapsed time.
//
// Degenerate inputs never fail: an empty ledger yields a zero result, and a
// non-positive rate yields CurrentValue equal to Principal.
func CompoundInterest(ledger *Ledger, rate Rate, asOf Date, freq CompoundingFrequency) InterestAccrualResult {
	if ledger == nil || ledger.IsEmpty() {
		return InterestAccrualResult{}
	}

	currency := ledger.Currency()
	principal := decimal.Zero
	current := decimal.Zero

	for tx := range ledger.All() {
		raw := tx.Amount.Amount()
		grown := grow(raw, rate, tx.Date, asOf, freq)
		switch tx.Kind {
		case Buy:
			principal = principal.Add(raw)
			current = current.Add(grown)
		case Sell:
			principal = principal.Sub(raw)
			current = current.Sub(grown)
		}
	}

	interest := current.Sub(principal)
	return InterestAccrualResult{
		Principal:       M(principal, currency),
		CurrentValue:    M(current, currency),
		Interest:        M(interest, currency),
		InterestPercent: percentOf(interest, principal),
	}
}

// grow returns amount compounded from its posting date to asOf.
func grow(amount decimal.Decimal, rate Rate, from, asOf Date, freq CompoundingFrequency) decimal.Decimal {
	if !rate.IsPositive() {
		return amount
	}
	days := from.DaysUntil(asOf)
	if days <= 0 {
		// never negative elapsed time: future-dated transactions are worth
		// their face amount
		return amount
	}

	n := decimal.NewFromInt(int64(freq.PeriodsPerYear()))
	t := decimal.NewFromInt(int64(days)).Div(daysPerYear)
	base := decimal.NewFromInt(1).Add(rate.Fraction().Div(n))

	factor, err := base.PowWithPrecision(n.Mul(t), growthPrecision)
	if err != nil {
		// base is strictly positive here, so this cannot trip; keep the
		// amount ungrown rather than return a misleading figure
		return amount
	}
	return amount.Mul(factor)
}
