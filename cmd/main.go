// Package cmd implements the subcommands of the tvc tool.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/etnz/timevalue"
	"github.com/google/subcommands"
)

// defaultLedgerFile is where commands look for the transaction history
// unless told otherwise with -l.
const defaultLedgerFile = "transactions.jsonl"

// Register registers all tvc subcommands on the commander.
func Register(c *subcommands.Commander) {
	c.Register(&txCmd{}, "ledger")
	c.Register(&fmtCmd{}, "ledger")

	c.Register(&valueCmd{}, "reports")
	c.Register(&ppfCmd{}, "reports")
	c.Register(&xirrCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// decodeLedgerFile loads the ledger from path. A missing file is not an
// error: it decodes as an empty ledger so that the first `tvc tx` can
// create it.
func decodeLedgerFile(path string) (*timevalue.Ledger, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, ledger %q does not exist, using an empty ledger instead", path)
		return timevalue.NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger %q: %w", path, err)
	}
	defer f.Close()

	ledger, err := timevalue.DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger %q: %w", path, err)
	}
	return ledger, nil
}

// encodeLedgerFile writes the ledger back to path in canonical JSONL form.
func encodeLedgerFile(path string, ledger *timevalue.Ledger) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create ledger %q: %w", path, err)
	}
	defer f.Close()

	if err := timevalue.EncodeLedger(f, ledger); err != nil {
		return fmt.Errorf("could not encode ledger %q: %w", path, err)
	}
	return f.Close()
}
