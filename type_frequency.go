package timevalue

import (
	"fmt"
	"strings"
)

// CompoundingFrequency is the number of times per year interest is
// calculated and added to principal.
type CompoundingFrequency int

const (
	Annually     CompoundingFrequency = 1
	SemiAnnually CompoundingFrequency = 2
	Quarterly    CompoundingFrequency = 4
	Monthly      CompoundingFrequency = 12
	Daily        CompoundingFrequency = 365
)

// PeriodsPerYear returns the frequency as a plain count of compounding
// periods in a year.
func (f CompoundingFrequency) PeriodsPerYear() int { return int(f) }

func (f CompoundingFrequency) String() string {
	switch f {
	case Annually:
		return "annually"
	case SemiAnnually:
		return "semi-annually"
	case Quarterly:
		return "quarterly"
	case Monthly:
		return "monthly"
	case Daily:
		return "daily"
	default:
		return "unknown"
	}
}

// ParseFrequency parses a string into a CompoundingFrequency.
func ParseFrequency(s string) (CompoundingFrequency, error) {
	switch strings.ToLower(s) {
	case "annually", "annual", "yearly":
		return Annually, nil
	case "semi-annually", "semiannually", "half-yearly":
		return SemiAnnually, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	case "monthly", "month":
		return Monthly, nil
	case "daily", "day":
		return Daily, nil
	default:
		return 0, fmt.Errorf("unknown compounding frequency: %q", s)
	}
}

// assetFrequencies maps an asset type to the compounding frequency its
// instrument conventionally uses. The set is closed and small, so a plain
// immutable table beats anything dynamic.
var assetFrequencies = map[string]CompoundingFrequency{
	"fixed-deposit":     Quarterly,
	"recurring-deposit": Quarterly,
	"bond":              Annually,
	"ppf":               Annually,
	"nsc":               Annually,
	"scss":              Quarterly,
	"epf":               Monthly,
	"savings":           Daily,
}

// ResolveFrequency returns the compounding frequency for an asset type.
// Unknown asset types default to annual compounding. It is a total function:
// any string yields a usable frequency.
func ResolveFrequency(assetType string) CompoundingFrequency {
	if f, ok := assetFrequencies[strings.ToLower(strings.TrimSpace(assetType))]; ok {
		return f
	}
	return Annually
}
