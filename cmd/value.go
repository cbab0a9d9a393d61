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

// valueCmd holds the flags for the 'value' subcommand.
type valueCmd struct {
	rate       string
	assetType  string
	frequency  string
	date       string
	ledgerFile string
}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "compute the accrued value of a fixed-income holding" }
func (*valueCmd) Usage() string {
	return `tvc value -r <rate> [-t <asset-type>] [-n <frequency>] [-d <date>] [-l <ledger>]

  Computes principal, current value and accrued interest for the ledger's
  transaction history, compounding at the given annual rate. The compounding
  frequency is resolved from the asset type unless -n overrides it.
`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.rate, "r", "", "Annual interest rate as a percentage, e.g. 7.1")
	f.StringVar(&c.assetType, "t", "", "Asset type used to resolve the compounding frequency")
	f.StringVar(&c.frequency, "n", "", "Compounding frequency override (annually, semi-annually, quarterly, monthly, daily)")
	f.StringVar(&c.date, "d", timevalue.Today().String(), "As-of date for the valuation")
	f.StringVar(&c.ledgerFile, "l", defaultLedgerFile, "Ledger file to report on")
}

func (c *valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	freq := timevalue.ResolveFrequency(c.assetType)
	if c.frequency != "" {
		freq, err = timevalue.ParseFrequency(c.frequency)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing frequency: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	ledger, err := decodeLedgerFile(c.ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	result := timevalue.CompoundInterest(ledger, rate, asOf, freq)
	printMarkdown(renderer.AccrualMarkdown(&renderer.Accrual{
		AsOf:      asOf,
		Rate:      rate,
		Frequency: freq,
		Result:    result,
	}))

	return subcommands.ExitSuccess
}
