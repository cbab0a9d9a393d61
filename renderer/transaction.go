package renderer

import (
	"github.com/etnz/timevalue"
)

type txRow struct {
	When   timevalue.Date
	Kind   timevalue.TxKind
	Amount timevalue.Money
	Memo   string
}

type txTable struct {
	Rows []txRow
}

const transactionsTemplate = `# Transactions

| Date | Kind | Amount | Memo |
|:---|:---|---:|:---|
{{- range .Rows }}
| {{ .When }} | {{ .Kind }} | {{ .Amount }} | {{ .Memo }} |
{{- end }}
`

// Transactions renders a ledger as a markdown table, in chronological order.
func Transactions(ledger *timevalue.Ledger) string {
	var t txTable
	for tx := range ledger.All() {
		t.Rows = append(t.Rows, txRow{When: tx.Date, Kind: tx.Kind, Amount: tx.Amount, Memo: tx.Memo})
	}
	return renderTemplate("transactions", transactionsTemplate, &t)
}
