package timevalue

// InterestAccrualResult is the outcome of a compound-interest accrual over a
// transaction history. Interest is always CurrentValue minus Principal, and
// InterestPercent is zero when Principal is zero.
type InterestAccrualResult struct {
	Principal       Money
	CurrentValue    Money
	Interest        Money
	InterestPercent Percent
}

// RecurringDepositSummary is the full ledger summary of a financial-year
// bounded recurring-deposit account.
//
// CurrentValue reflects only interest already credited at a financial year
// close; the still-open year's accrual is reported separately in
// CurrentFYAccruedInterest, and EstimatedValue projects the two together.
type RecurringDepositSummary struct {
	TotalDeposited           Money
	CurrentValue             Money
	EstimatedValue           Money
	TotalInterest            Money
	InterestPercent          Percent
	CurrentFYAccruedInterest Money
	EstimatedInterest        Money
	EstimatedInterestPercent Percent
}
