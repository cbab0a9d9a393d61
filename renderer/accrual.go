package renderer

import (
	"github.com/etnz/timevalue"
)

// Accrual is the display model for a compound-interest accrual report.
type Accrual struct {
	AsOf      timevalue.Date
	Rate      timevalue.Rate
	Frequency timevalue.CompoundingFrequency
	Result    timevalue.InterestAccrualResult
}

const accrualTemplate = `# Accrued Value on {{ .AsOf }}

Compounding {{ .Frequency }} at {{ .Rate }}.

| | |
|:---|---:|
| Principal | {{ .Result.Principal }} |
| Current Value | {{ .Result.CurrentValue }} |
| Interest | {{ .Result.Interest.SignedString }} |
| Return | {{ .Result.InterestPercent.SignedString }} |
`

// AccrualMarkdown renders a compound-interest accrual report to markdown.
func AccrualMarkdown(a *Accrual) string {
	return renderTemplate("accrual", accrualTemplate, a)
}
