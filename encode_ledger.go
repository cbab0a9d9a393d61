package timevalue

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// txLine is a specialized struct for decoding one JSONL transaction line,
// with the amount and currency read as two separate fields.
type txLine struct {
	Kind     TxKind          `json:"kind"`
	Date     Date            `json:"date"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Memo     string          `json:"memo"`
}

// DecodeLedger decodes transactions from a stream of JSONL data, one
// transaction per line, and returns a sorted Ledger.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var row txLine
		if err := json.Unmarshal(lineBytes, &row); err != nil {
			return nil, fmt.Errorf("could not decode transaction on line %d: %w", line, err)
		}

		tx := Transaction{
			Date:   row.Date,
			Kind:   row.Kind,
			Amount: M(row.Amount, row.Currency),
			Memo:   row.Memo,
		}
		if err := tx.Validate(); err != nil {
			return nil, fmt.Errorf("invalid transaction on line %d: %w", line, err)
		}
		ledger.Append(tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read ledger stream: %w", err)
	}

	return ledger, nil
}

// EncodeLedger writes the ledger to w in canonical JSONL form: one
// transaction per line, in chronological order, with a stable key order.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	bw := bufio.NewWriter(w)
	for tx := range ledger.All() {
		b, err := json.Marshal(tx)
		if err != nil {
			return fmt.Errorf("could not encode transaction on %s: %w", tx.Date, err)
		}
		bw.Write(b)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
