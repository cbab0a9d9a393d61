package renderer

import (
	"fmt"

	"github.com/etnz/timevalue"
)

// xirrDisplayCap bounds the percentage shown for extreme rates. The solver
// returns the unclamped value; very short or violent histories can produce
// annualized figures that are technically correct but meaningless to read.
const xirrDisplayCap = 1000.0

// XIRRString formats a solved XIRR rate (a fraction) for display. An
// indeterminate rate renders as "—" so callers never special-case it.
func XIRRString(rate float64, ok bool) string {
	if !ok {
		return "—"
	}
	pct := rate * 100
	switch {
	case pct > xirrDisplayCap:
		return fmt.Sprintf("> +%.0f%%", xirrDisplayCap)
	case pct < -xirrDisplayCap:
		return fmt.Sprintf("< -%.0f%%", xirrDisplayCap)
	default:
		return timevalue.Percent(pct).SignedString()
	}
}
