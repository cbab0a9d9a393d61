package timevalue

import (
	"math"
)

// XIRRParams configures the XIRR root finding. The zero value selects the
// documented defaults.
type XIRRParams struct {
	// Tolerance is the convergence threshold on |f(r)|. Default 1e-6.
	Tolerance float64
	// MaxIterations caps both the Newton-Raphson and the bisection loops.
	// Default 100.
	MaxIterations int
	// BracketLow and BracketHigh bound the bisection fallback interval.
	// Defaults -0.99 and 10.
	BracketLow, BracketHigh float64
}

func (p XIRRParams) withDefaults() XIRRParams {
	if p.Tolerance == 0 {
		p.Tolerance = 1e-6
	}
	if p.MaxIterations == 0 {
		p.MaxIterations = 100
	}
	if p.BracketLow == 0 && p.BracketHigh == 0 {
		p.BracketLow, p.BracketHigh = -0.99, 10
	}
	return p
}

// initialGuess is the Newton-Raphson starting rate.
const initialGuess = 0.1

// cashFlow is one dated, signed flow expressed in years since the earliest
// flow, using a 365-day year.
type cashFlow struct {
	years  float64
	amount float64
}

// XIRR computes the money-weighted annualized rate of return of the
// transaction history, as a fraction (0.1 means 10% per year).
//
// Buys are negative outflows on their date, sells positive inflows, and one
// synthetic terminal inflow equal to currentValue is appended at asOf — the
// unrealized "what if you sold today" flow. The equation
// Σ CF_i/(1+r)^years_i = 0 is solved by Newton-Raphson with an analytic
// derivative; when that fails to converge or the derivative degenerates, a
// bisection over a verified bracketing interval takes over.
//
// The second return value is false when the rate is indeterminate: an empty
// ledger, no negative flow, or a flow set whose objective never changes
// sign. The returned rate is unclamped; any display-time capping of extreme
// values is the caller's concern.
func XIRR(ledger *Ledger, currentValue Money, asOf Date, params XIRRParams) (float64, bool) {
	flows, ok := cashFlows(ledger, currentValue, asOf)
	if !ok {
		return 0, false
	}
	return solve(flows, params.withDefaults())
}

// cashFlows builds the day-counted flow sequence. It reports false when the
// sequence cannot bracket a root: fewer than two flows, no negative flow, or
// no positive flow.
func cashFlows(ledger *Ledger, currentValue Money, asOf Date) ([]cashFlow, bool) {
	if ledger == nil || ledger.IsEmpty() {
		return nil, false
	}

	origin := ledger.Earliest()
	var flows []cashFlow
	for tx := range ledger.All() {
		amount := tx.signedAmount().InexactFloat64()
		if amount == 0 {
			continue
		}
		flows = append(flows, cashFlow{
			years:  float64(origin.DaysUntil(tx.Date)) / 365.0,
			amount: amount,
		})
	}
	if terminal := currentValue.AsFloat(); terminal != 0 {
		flows = append(flows, cashFlow{
			years:  float64(origin.DaysUntil(asOf)) / 365.0,
			amount: terminal,
		})
	}

	var hasNeg, hasPos bool
	for _, f := range flows {
		hasNeg = hasNeg || f.amount < 0
		hasPos = hasPos || f.amount > 0
	}
	return flows, len(flows) >= 2 && hasNeg && hasPos
}

// netPresentValue is the objective f(r) = Σ CF_i/(1+r)^years_i.
func netPresentValue(flows []cashFlow, rate float64) float64 {
	var npv float64
	for _, f := range flows {
		npv += f.amount / math.Pow(1+rate, f.years)
	}
	return npv
}

// npvDerivative is the analytic f'(r) = Σ -years_i*CF_i/(1+r)^(years_i+1).
func npvDerivative(flows []cashFlow, rate float64) float64 {
	var d float64
	for _, f := range flows {
		d -= f.years * f.amount / math.Pow(1+rate, f.years+1)
	}
	return d
}

func solve(flows []cashFlow, p XIRRParams) (float64, bool) {
	// derivativeFloor guards Newton-Raphson against division by a
	// numerically dead derivative.
	const derivativeFloor = 1e-12

	rate := initialGuess
	for i := 0; i < p.MaxIterations; i++ {
		npv := netPresentValue(flows, rate)
		if math.Abs(npv) < p.Tolerance {
			return rate, true
		}
		d := npvDerivative(flows, rate)
		if math.Abs(d) < derivativeFloor {
			break
		}
		next := rate - npv/d
		if math.IsNaN(next) || math.IsInf(next, 0) || next <= -1 {
			break
		}
		rate = next
	}

	return bisect(flows, p)
}

// bisect falls back to bisection over [BracketLow, BracketHigh], first
// verifying the interval actually brackets a sign change of the objective.
func bisect(flows []cashFlow, p XIRRParams) (float64, bool) {
	lo, hi := p.BracketLow, p.BracketHigh
	flo := netPresentValue(flows, lo)
	fhi := netPresentValue(flows, hi)
	if math.Abs(flo) < p.Tolerance {
		return lo, true
	}
	if math.Abs(fhi) < p.Tolerance {
		return hi, true
	}
	if flo*fhi > 0 {
		// no sign change: the rate is indeterminate rather than wrong
		return 0, false
	}

	for i := 0; i < p.MaxIterations; i++ {
		mid := (lo + hi) / 2
		fmid := netPresentValue(flows, mid)
		if math.Abs(fmid) < p.Tolerance || (hi-lo)/2 < p.Tolerance {
			return mid, true
		}
		if flo*fmid < 0 {
			hi = mid
		} else {
			lo, flo = mid, fmid
		}
	}
	return 0, false
}
