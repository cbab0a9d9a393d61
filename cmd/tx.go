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

// txCmd holds the flags for the 'tx' subcommand.
type txCmd struct {
	kind       string
	date       string
	amount     string
	currency   string
	memo       string
	ledgerFile string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "append a buy or sell transaction to the ledger" }
func (*txCmd) Usage() string {
	return `tvc tx -k <buy|sell> -a <amount> [-on <date>] [-c <currency>] [-m <memo>] [-l <ledger>]

  Appends one transaction to the ledger file, creating the file if needed,
  and rewrites it in canonical chronological order.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "k", string(timevalue.Buy), "Transaction kind: buy or sell")
	f.StringVar(&c.date, "on", timevalue.Today().String(), "Transaction date")
	f.StringVar(&c.amount, "a", "", "Transaction amount, a non-negative magnitude")
	f.StringVar(&c.currency, "c", "INR", "Transaction currency")
	f.StringVar(&c.memo, "m", "", "Optional memo")
	f.StringVar(&c.ledgerFile, "l", defaultLedgerFile, "Ledger file to append to")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := timevalue.ParseTxKind(c.kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing kind: %v\n", err)
		return subcommands.ExitUsageError
	}
	on, err := timevalue.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}

	tx := timevalue.Transaction{
		Date:   on,
		Kind:   kind,
		Amount: timevalue.M(amount, c.currency),
		Memo:   c.memo,
	}
	if err := tx.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid transaction: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := decodeLedgerFile(c.ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	ledger.Append(tx)

	if err := encodeLedgerFile(c.ledgerFile, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Transactions(ledger))
	return subcommands.ExitSuccess
}
