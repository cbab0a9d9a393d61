package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/timevalue"
	"github.com/etnz/timevalue/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// xirrCmd holds the flags for the 'xirr' subcommand.
type xirrCmd struct {
	value      string
	date       string
	tolerance  float64
	iterations int
	ledgerFile string
}

func (*xirrCmd) Name() string     { return "xirr" }
func (*xirrCmd) Synopsis() string { return "money-weighted annualized return of the ledger" }
func (*xirrCmd) Usage() string {
	return `tvc xirr -v <current-value> [-d <date>] [-l <ledger>]

  Computes the XIRR of the transaction history, counting the given current
  value as a final synthetic inflow on the as-of date. Prints "—" when the
  flow set cannot determine a rate. See 'tvc topic xirr'.
`
}

func (c *xirrCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.value, "v", "", "Current market value of the holding")
	f.StringVar(&c.date, "d", timevalue.Today().String(), "As-of date of the current value")
	f.Float64Var(&c.tolerance, "tolerance", 0, "Convergence tolerance (0 selects the default)")
	f.IntVar(&c.iterations, "iterations", 0, "Iteration cap (0 selects the default)")
	f.StringVar(&c.ledgerFile, "l", defaultLedgerFile, "Ledger file to report on")
}

func (c *xirrCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	asOf, err := timevalue.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := decodeLedgerFile(c.ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	current := timevalue.M(0, ledger.Currency())
	if c.value != "" {
		amount, err := decimal.NewFromString(c.value)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing current value: %v\n", err)
			return subcommands.ExitUsageError
		}
		current = timevalue.M(amount, ledger.Currency())
	}

	rate, ok := timevalue.XIRR(ledger, current, asOf, timevalue.XIRRParams{
		Tolerance:     c.tolerance,
		MaxIterations: c.iterations,
	})

	printMarkdown(fmt.Sprintf("# XIRR on %s\n\nAnnualized return: **%s**\n", asOf, renderer.XIRRString(rate, ok)))
	return subcommands.ExitSuccess
}
