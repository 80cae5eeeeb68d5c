package entities

import "time"

// QualityInspection represents a single inspection record for an order.
// An order may have zero or more inspection rows.
type QualityInspection struct {
	OrderID         OrderID
	InspectionDate  *time.Time
	PartsInspected  int64
	PartsRejected   int64
	RejectionReason string
}

// RejectionRate returns rejected/inspected with zero-safe division:
// an inspection covering zero parts yields a rate of zero, never a fault.
func RejectionRate(rejected, inspected int64) float64 {
	if inspected == 0 {
		return 0
	}
	return float64(rejected) / float64(inspected)
}
