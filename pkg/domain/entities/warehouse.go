package entities

import "time"

// WarehouseRow is one denormalized row of the analysis warehouse: an order
// joined with its geometry metadata and one matched quality inspection.
// Orders with multiple inspection rows fan out to multiple warehouse rows;
// orders with none get a single row with zero quality fields.
type WarehouseRow struct {
	Order

	HasGeometry     bool
	GeometryType    string
	ComplexityScore float64

	HasInspection   bool
	InspectionDate  *time.Time
	PartsInspected  int64
	PartsRejected   int64
	RejectionReason string

	// RejectionRate is parts_rejected / parts_inspected, zero when no parts
	// were inspected.
	RejectionRate float64
}
