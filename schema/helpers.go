package schema

// Plateau status labels.
const (
	PlateauReached    = "Reached"
	PlateauNotReached = "Not reached"
)

// GetPlateauLabel returns the human-readable plateau status.
func GetPlateauLabel(plateau bool) string {
	if plateau {
		return PlateauReached
	}
	return PlateauNotReached
}

// Effort labels derived from the terminal respiratory exchange ratio.
// An RER at or above 1.10 is the conventional secondary criterion for a
// maximal effort.
const (
	EffortMaximal     = "Maximal"
	EffortNearMaximal = "Near-maximal"
	EffortSubmaximal  = "Submaximal"
)

// GetEffortLabel classifies the terminal RER value. A nil value means the
// ratio could not be computed.
func GetEffortLabel(rer *float64) string {
	if rer == nil {
		return NotAvailable
	}
	switch {
	case *rer >= 1.10:
		return EffortMaximal
	case *rer >= 1.00:
		return EffortNearMaximal
	default:
		return EffortSubmaximal
	}
}

// NotAvailable is the placeholder rendered for any undefined metric.
const NotAvailable = "N/A"

// Float returns a pointer to v. It keeps optional-metric construction terse
// in the pipeline and in tests.
func Float(v float64) *float64 {
	return &v
}
