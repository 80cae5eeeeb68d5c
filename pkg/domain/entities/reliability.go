package entities

// ReliabilityStatus classifies a part's sourcing reliability from its
// historical lateness and rejection rate.
type ReliabilityStatus int

const (
	Stable ReliabilityStatus = iota
	Watch
	HighRisk
)

// String method for ReliabilityStatus enum
func (s ReliabilityStatus) String() string {
	switch s {
	case Stable:
		return "Stable"
	case Watch:
		return "Watch"
	case HighRisk:
		return "High Risk"
	default:
		return "Unknown"
	}
}

// ReliabilityThresholds holds the lateness/rejection cutoffs for the
// reliability classification. The high-risk cutoffs are the same ones used
// to flag suppliers in the sourcing performance analysis.
type ReliabilityThresholds struct {
	WatchDaysLate         float64
	WatchRejectionRate    float64
	HighRiskDaysLate      float64
	HighRiskRejectionRate float64
}

// DefaultReliabilityThresholds returns the standard cutoffs: high risk above
// 10 days average lateness or 5% rejection, watch above 5 days or 2%.
func DefaultReliabilityThresholds() ReliabilityThresholds {
	return ReliabilityThresholds{
		WatchDaysLate:         5,
		WatchRejectionRate:    0.02,
		HighRiskDaysLate:      10,
		HighRiskRejectionRate: 0.05,
	}
}

// ClassifyReliability maps average lateness and rejection rate to a status.
// Thresholds are exclusive: exactly 10 days late is not yet high risk.
func ClassifyReliability(avgDaysLate, rejectionRate float64, t ReliabilityThresholds) ReliabilityStatus {
	if avgDaysLate > t.HighRiskDaysLate || rejectionRate > t.HighRiskRejectionRate {
		return HighRisk
	}
	if avgDaysLate > t.WatchDaysLate || rejectionRate > t.WatchRejectionRate {
		return Watch
	}
	return Stable
}
