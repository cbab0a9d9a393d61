package timevalue

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/shopspring/decimal"
)

// TxKind is a typed string identifying the direction of a transaction.
type TxKind string

const (
	// Buy records money going into the holding (a purchase or a deposit).
	Buy TxKind = "buy"
	// Sell records money coming out of the holding (a sale or a withdrawal).
	Sell TxKind = "sell"
)

// ParseTxKind parses a string into a TxKind.
func ParseTxKind(s string) (TxKind, error) {
	switch TxKind(s) {
	case Buy:
		return Buy, nil
	case Sell:
		return Sell, nil
	default:
		return "", fmt.Errorf("unknown transaction kind: %q", s)
	}
}

// Transaction is a dated movement of money into or out of a holding. Amount
// is a non-negative magnitude; Kind encodes the direction.
type Transaction struct {
	Date   Date
	Kind   TxKind
	Amount Money
	Memo   string
}

// NewBuy creates a buy transaction.
func NewBuy(on Date, amount Money, memo string) Transaction {
	return Transaction{Date: on, Kind: Buy, Amount: amount, Memo: memo}
}

// NewSell creates a sell transaction.
func NewSell(on Date, amount Money, memo string) Transaction {
	return Transaction{Date: on, Kind: Sell, Amount: amount, Memo: memo}
}

// Validate checks a transaction for correctness. It sets the date to today
// if it is zero.
func (t *Transaction) Validate() error {
	if t.Date.IsZero() {
		t.Date = Today()
	}
	if t.Kind != Buy && t.Kind != Sell {
		return fmt.Errorf("unknown transaction kind: %q", t.Kind)
	}
	if t.Amount.IsNegative() {
		return errors.New("transaction amount must be a non-negative magnitude")
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("kind", t.Kind)
	w.Append("date", t.Date)
	w.EmbedFrom(t.Amount)
	w.Optional("memo", t.Memo)
	return w.MarshalJSON()
}

// Ledger is the transaction history of a single holding.
//
// In a Ledger transactions are always in chronological order: the
// constructor and Append sort defensively, so callers may hand transactions
// over in any order.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates a ledger from the given transactions, sorted by date.
func NewLedger(txs ...Transaction) *Ledger {
	l := &Ledger{}
	l.Append(txs...)
	return l
}

// Append adds transactions to the ledger, keeping chronological order.
// The sort is stable so same-day transactions keep their insertion order.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
	slices.SortStableFunc(l.transactions, func(a, b Transaction) int {
		return b.Date.DaysUntil(a.Date)
	})
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// IsEmpty returns true when the ledger holds no transaction.
func (l *Ledger) IsEmpty() bool { return len(l.transactions) == 0 }

// All iterates over transactions in chronological order.
func (l *Ledger) All() iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			if !yield(tx) {
				return
			}
		}
	}
}

// Earliest returns the date of the first transaction, or the zero Date for
// an empty ledger.
func (l *Ledger) Earliest() Date {
	if l.IsEmpty() {
		return Date{}
	}
	return l.transactions[0].Date
}

// Currency returns the ledger's currency, taken from the first transaction
// carrying one. The empty currency is weak, consistent with Money.
func (l *Ledger) Currency() string {
	for _, tx := range l.transactions {
		if c := tx.Amount.Currency(); c != "" {
			return c
		}
	}
	return ""
}

// TotalBought returns the exact sum of all buy amounts.
func (l *Ledger) TotalBought() Money {
	return l.total(Buy)
}

// TotalSold returns the exact sum of all sell amounts.
func (l *Ledger) TotalSold() Money {
	return l.total(Sell)
}

func (l *Ledger) total(kind TxKind) Money {
	sum := decimal.Zero
	for _, tx := range l.transactions {
		if tx.Kind == kind {
			sum = sum.Add(tx.Amount.Amount())
		}
	}
	return M(sum, l.Currency())
}

// signedAmount returns the transaction amount as a signed decimal: buys are
// negative outflows, sells positive inflows. This is the cash-flow
// convention used by the XIRR solver.
func (t Transaction) signedAmount() decimal.Decimal {
	if t.Kind == Buy {
		return t.Amount.Amount().Neg()
	}
	return t.Amount.Amount()
}
