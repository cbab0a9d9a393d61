package timevalue

import (
	"time"

	"github.com/shopspring/decimal"
)

// depositCutoffDay is the last day of the month on which a deposit still
// joins that month's interest-bearing balance. A deposit posted on the 6th
// or later earns nothing for the month and is eligible from the next one.
//
// NOTE: this cutoff is modeled after the PPF minimum-balance rule as used by
// callers of this engine; it has not been confirmed against the governing
// scheme text. See docs/ppf.md.
const depositCutoffDay = 5

var twelve = decimal.NewFromInt(12)

// RecurringDeposit simulates a financial-year bounded recurring-deposit
// account (PPF style) month by month and returns its full ledger summary.
//
// Deposits are the ledger's buys, withdrawals its sells. Each month earns
// interest on the minimum balance held during the interest-eligible window
// (the 5th through month end). Interest accrues monthly but compounds
// annually: the accumulated amount is credited into the balance only when a
// financial year closes on March 31. The still-open year's accrual is
// reported separately.
//
// The walk starts at the earlier of opened and the first transaction, and
// ends at asOf; transactions dated after asOf are not posted. An empty
// ledger yields a zero summary.
func RecurringDeposit(ledger *Ledger, rate Rate, opened Date, asOf Date) RecurringDepositSummary {
	if ledger == nil || ledger.IsEmpty() {
		return RecurringDepositSummary{}
	}

	currency := ledger.Currency()
	start := ledger.Earliest()
	if !opened.IsZero() && opened.Before(start) {
		start = opened
	}

	// bucket posted transactions by month
	months := make(map[Date][]Transaction)
	for tx := range ledger.All() {
		if tx.Date.After(asOf) {
			continue
		}
		key := tx.Date.StartOfMonth()
		months[key] = append(months[key], tx)
	}

	balance := decimal.Zero
	fyAccrued := decimal.Zero
	monthlyRate := rate.Fraction().Div(twelve)

	for month := start.StartOfMonth(); !month.After(asOf); month = month.AddMonth(1) {
		var earlyIn, earlyOut, lateOut, totalIn, totalOut decimal.Decimal
		for _, tx := range months[month] {
			amount := tx.Amount.Amount()
			switch tx.Kind {
			case Buy:
				totalIn = totalIn.Add(amount)
				if tx.Date.Day() <= depositCutoffDay {
					earlyIn = earlyIn.Add(amount)
				}
			case Sell:
				totalOut = totalOut.Add(amount)
				if tx.Date.Day() <= depositCutoffDay {
					earlyOut = earlyOut.Add(amount)
				} else {
					lateOut = lateOut.Add(amount)
				}
			}
		}

		// Minimum balance over the eligible window: the balance standing on
		// the cutoff day, less anything withdrawn before month end. Deposits
		// after the cutoff cannot raise it.
		minBalance := balance.Add(earlyIn).Sub(earlyOut).Sub(lateOut)
		if rate.IsPositive() && minBalance.IsPositive() {
			fyAccrued = fyAccrued.Add(minBalance.Mul(monthlyRate))
		}

		balance = balance.Add(totalIn).Sub(totalOut)

		// Credit the year's accrual only once the financial year has fully
		// closed on March 31.
		if month.Month() == time.March && !month.EndOfMonth().After(asOf) {
			balance = balance.Add(fyAccrued)
			fyAccrued = decimal.Zero
		}
	}

	deposited := ledger.TotalBought().Amount()
	interest := balance.Sub(deposited)
	estimated := balance.Add(fyAccrued)
	estimatedInterest := estimated.Sub(deposited)

	return RecurringDepositSummary{
		TotalDeposited:           M(deposited, currency),
		CurrentValue:             M(balance, currency),
		EstimatedValue:           M(estimated, currency),
		TotalInterest:            M(interest, currency),
		InterestPercent:          percentOf(interest, deposited),
		CurrentFYAccruedInterest: M(fyAccrued, currency),
		EstimatedInterest:        M(estimatedInterest, currency),
		EstimatedInterestPercent: percentOf(estimatedInterest, deposited),
	}
}
