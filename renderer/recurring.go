package renderer

import (
	"github.com/etnz/timevalue"
)

// Recurring is the display model for a recurring-deposit schedule report.
type Recurring struct {
	AsOf    timevalue.Date
	Rate    timevalue.Rate
	Summary timevalue.RecurringDepositSummary
}

const recurringTemplate = `# Recurring Deposit Summary on {{ .AsOf }}

Interest accrues monthly at {{ .Rate }} and is credited at each financial
year close (March 31).

| | |
|:---|---:|
| Total Deposited | {{ .Summary.TotalDeposited }} |
| Current Value | {{ .Summary.CurrentValue }} |
| Credited Interest | {{ .Summary.TotalInterest.SignedString }} |
| Return | {{ .Summary.InterestPercent.SignedString }} |
{{- if not .Summary.CurrentFYAccruedInterest.IsZero }}
| Accrued This FY | {{ .Summary.CurrentFYAccruedInterest.SignedString }} |
| Estimated Value | {{ .Summary.EstimatedValue }} |
| Estimated Return | {{ .Summary.EstimatedInterestPercent.SignedString }} |
{{- end }}
`

// RecurringMarkdown renders a recurring-deposit summary to markdown.
func RecurringMarkdown(r *Recurring) string {
	return renderTemplate("recurring", recurringTemplate, r)
}
