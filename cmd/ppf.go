package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/timevalue"
	"github.com/etnz/timevalue/renderer"
	"github.com/google/subcommands"
)

// ppfCmd holds the flags for the 'ppf' subcommand.
type ppfCmd struct {
	rate       string
	opened     string
	date       string
	ledgerFile string
}

func (*ppfCmd) Name() string     { return "ppf" }
func (*ppfCmd) Synopsis() string { return "summarize a recurring-deposit (PPF style) account" }
func (*ppfCmd) Usage() string {
	return `tvc ppf -r <rate> [-opened <date>] [-d <date>] [-l <ledger>]

  Simulates the account month by month over financial years (April 1 to
  March 31): deposits posted by the 5th earn that month's interest, accrual
  is monthly, crediting is annual. See 'tvc topic ppf'.
`
}

func (c *ppfCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.rate, "r", "", "Annual interest rate as a percentage, e.g. 7.1")
	f.StringVar(&c.opened, "opened", "", "Account opening date; defaults to the first transaction")
	f.StringVar(&c.date, "d", timevalue.Today().String(), "As-of date for the schedule")
	f.StringVar(&c.ledgerFile, "l", defaultLedgerFile, "Ledger file to report on")
}

func (c *ppfCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rate, err := timevalue.ParseRate(c.rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing rate: %v\n", err)
		return subcommands.ExitUsageError
	}
	asOf, err := timevalue.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	var opened timevalue.Date
	if c.opened != "" {
		opened, err = timevalue.ParseDate(c.opened)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing opening date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	ledger, err := decodeLedgerFile(c.ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if ledger.IsEmpty() {
		fmt.Fprintln(os.Stderr, "The ledger has no transactions yet; add some with 'tvc tx'.")
		return subcommands.ExitSuccess
	}

	summary := timevalue.RecurringDeposit(ledger, rate, opened, asOf)
	printMarkdown(renderer.RecurringMarkdown(&renderer.Recurring{
		AsOf:    asOf,
		Rate:    rate,
		Summary: summary,
	}))

	return subcommands.ExitSuccess
}
