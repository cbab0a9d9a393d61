package timevalue

import (
	"math/rand"
	"testing"
	"time"
)

func TestRecurringDeposit_MonthlyDepositsOneFY(t *testing.T) {
	// 1,000 on the 1st of every month of FY 2023-24, at 7.1%, as of the FY
	// close. Every deposit is before the cutoff, so month k earns interest
	// on k*1000: total = 1000*(1+2+...+12) * 0.071/12 = 461.50.
	ledger := NewLedger()
	for m := 0; m < 12; m++ {
		ledger.Append(NewBuy(NewDate(2023, time.April, 1).AddMonth(m), INR(1000), ""))
	}
	asOf := NewDate(2024, time.March, 31)

	s := RecurringDeposit(ledger, R(7.1), NewDate(2023, time.April, 1), asOf)

	approx(t, "TotalDeposited", s.TotalDeposited, 12000, 1e-9)
	approx(t, "CurrentValue", s.CurrentValue, 12461.50, 1e-6)
	approx(t, "TotalInterest", s.TotalInterest, 461.50, 1e-6)
	// the FY just closed: nothing is accrued for the next one yet
	if !s.CurrentFYAccruedInterest.IsZero() {
		t.Errorf("CurrentFYAccruedInterest = %s, want zero at FY close", s.CurrentFYAccruedInterest)
	}
	if !s.EstimatedValue.Equal(s.CurrentValue) {
		t.Errorf("EstimatedValue = %s, want CurrentValue %s", s.EstimatedValue, s.CurrentValue)
	}
	if !s.InterestPercent.Equal(Percent(461.50 / 12000 * 100)) {
		t.Errorf("InterestPercent = %s", s.InterestPercent)
	}
}

func TestRecurringDeposit_OpenFYAccruesWithoutCrediting(t *testing.T) {
	// One deposit early in an FY that has not closed yet: interest shows up
	// in CurrentFYAccruedInterest and EstimatedValue, never in CurrentValue.
	ledger := NewLedger(NewBuy(NewDate(2024, time.April, 1), INR(12000), "")) // 12% -> 1% monthly
	asOf := NewDate(2024, time.June, 30)                                     // 3 accrual months, FY open

	s := RecurringDeposit(ledger, R(12), NewDate(2024, time.April, 1), asOf)

	approx(t, "CurrentValue", s.CurrentValue, 12000, 1e-9)
	approx(t, "CurrentFYAccruedInterest", s.CurrentFYAccruedInterest, 360, 1e-6) // 3 * 120
	approx(t, "EstimatedValue", s.EstimatedValue, 12360, 1e-6)
	approx(t, "EstimatedInterest", s.EstimatedInterest, 360, 1e-6)
	if !s.TotalInterest.IsZero() {
		t.Errorf("TotalInterest = %s, want zero before any credit", s.TotalInterest)
	}
}

func TestRecurringDeposit_CutoffDayBoundary(t *testing.T) {
	// Two schedules differing only in one day: a deposit on the 5th earns
	// that month's interest, on the 6th it earns none until the next month.
	rate := R(12) // 1% per month, keeps expectations exact
	asOf := NewDate(2024, time.May, 31)

	onThe5th := NewLedger(NewBuy(NewDate(2024, time.May, 5), INR(1000), "")) // within FY 2024-25
	onThe6th := NewLedger(NewBuy(NewDate(2024, time.May, 6), INR(1000), ""))

	a := RecurringDeposit(onThe5th, rate, Date{}, asOf)
	b := RecurringDeposit(onThe6th, rate, Date{}, asOf)

	approx(t, "5th accrued", a.CurrentFYAccruedInterest, 10, 1e-9)
	if !b.CurrentFYAccruedInterest.IsZero() {
		t.Errorf("6th accrued = %s, want zero for the posting month", b.CurrentFYAccruedInterest)
	}

	// from the following month the late deposit earns too
	nextMonth := NewDate(2024, time.June, 30)
	b2 := RecurringDeposit(onThe6th, rate, Date{}, nextMonth)
	approx(t, "6th accrued next month", b2.CurrentFYAccruedInterest, 10, 1e-9)
}

func TestRecurringDeposit_InterestCompoundsAnnually(t *testing.T) {
	// A single first-day deposit held over one closed FY and into the next:
	// the credited interest itself starts earning after April 1.
	ledger := NewLedger(NewBuy(NewDate(2023, time.April, 1), INR(10000), ""))
	rate := R(12)

	s := RecurringDeposit(ledger, rate, Date{}, NewDate(2024, time.April, 30))

	// FY 2023-24 credit: 12 months * 1% * 10000 = 1200.
	approx(t, "CurrentValue", s.CurrentValue, 11200, 1e-6)
	// April of FY 2024-25 accrues on the credited balance.
	approx(t, "CurrentFYAccruedInterest", s.CurrentFYAccruedInterest, 112, 1e-6)
	approx(t, "EstimatedValue", s.EstimatedValue, 11312, 1e-6)
}

func TestRecurringDeposit_WithdrawalReducesBalanceImmediately(t *testing.T) {
	ledger := NewLedger(
		NewBuy(NewDate(2024, time.April, 1), INR(10000), ""),
		NewSell(NewDate(2024, time.May, 20), INR(4000), ""), // mid-month withdrawal
	)
	rate := R(12)
	asOf := NewDate(2024, time.May, 31)

	s := RecurringDeposit(ledger, rate, Date{}, asOf)

	// April earns on 10000; May's minimum balance is 6000 because the
	// withdrawal happened during the month.
	approx(t, "CurrentFYAccruedInterest", s.CurrentFYAccruedInterest, 100+60, 1e-6)
	approx(t, "CurrentValue", s.CurrentValue, 6000, 1e-9)
	approx(t, "TotalDeposited", s.TotalDeposited, 10000, 1e-9)
}

func TestRecurringDeposit_TotalDepositedExactForAnyOrder(t *testing.T) {
	txs := []Transaction{
		NewBuy(NewDate(2023, time.April, 3), INR(1500), ""),
		NewBuy(NewDate(2023, time.June, 8), INR(2500), ""),
		NewBuy(NewDate(2023, time.September, 1), INR(500.25), ""),
		NewSell(NewDate(2023, time.December, 14), INR(200), ""),
		NewBuy(NewDate(2024, time.January, 5), INR(3000), ""),
	}
	const wantDeposited = 1500 + 2500 + 500.25 + 3000

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]Transaction, len(txs))
		copy(shuffled, txs)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		s := RecurringDeposit(NewLedger(shuffled...), R(7.1), Date{}, NewDate(2024, time.March, 31))
		approx(t, "TotalDeposited", s.TotalDeposited, wantDeposited, 1e-9)
	}
}

func TestRecurringDeposit_EmptyLedger(t *testing.T) {
	s := RecurringDeposit(NewLedger(), R(7.1), NewDate(2023, time.April, 1), Today())
	if !s.TotalDeposited.IsZero() || !s.CurrentValue.IsZero() || !s.EstimatedValue.IsZero() ||
		!s.TotalInterest.IsZero() || !s.CurrentFYAccruedInterest.IsZero() ||
		s.InterestPercent != 0 || s.EstimatedInterestPercent != 0 {
		t.Errorf("empty ledger should yield an all-zero summary, got %+v", s)
	}
}

func TestRecurringDeposit_Idempotent(t *testing.T) {
	ledger := NewLedger(
		NewBuy(NewDate(2023, time.April, 3), INR(1000), ""),
		NewBuy(NewDate(2023, time.July, 8), INR(1000), ""),
	)
	asOf := NewDate(2024, time.June, 15)

	a := RecurringDeposit(ledger, R(7.1), Date{}, asOf)
	b := RecurringDeposit(ledger, R(7.1), Date{}, asOf)

	if !a.CurrentValue.Equal(b.CurrentValue) || !a.EstimatedValue.Equal(b.EstimatedValue) ||
		!a.CurrentFYAccruedInterest.Equal(b.CurrentFYAccruedInterest) ||
		!a.TotalDeposited.Equal(b.TotalDeposited) {
		t.Errorf("two identical calls differ: %+v vs %+v", a, b)
	}
}
