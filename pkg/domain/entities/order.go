package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PartNumber represents a unique part identifier
type PartNumber string

// OrderID represents a unique purchase order identifier
type OrderID string

// Quantity represents an integer quantity value for discrete manufacturing units
type Quantity int64

// Order represents a historical purchase order line
type Order struct {
	OrderID            OrderID
	SupplierName       string
	SupplierNorm       string // canonical supplier key, derived at load time
	PartNumber         PartNumber
	PartDescription    string
	OrderDate          *time.Time
	PromisedDate       *time.Time
	ActualDeliveryDate *time.Time
	Quantity           Quantity
	UnitPrice          decimal.NullDecimal
	DaysLate           *int // nil when either date is missing
}

// ComputeDaysLate returns the signed day count between the promised and actual
// delivery dates. Early deliveries yield negative values. Returns nil when
// either date is unknown; such orders are excluded from lateness aggregates
// rather than coerced to zero.
func ComputeDaysLate(promised, actual *time.Time) *int {
	if promised == nil || actual == nil {
		return nil
	}
	days := int(actual.Sub(*promised).Hours() / 24)
	return &days
}

// HasKnownLateness reports whether the order carries a usable days-late value
func (o *Order) HasKnownLateness() bool {
	return o.DaysLate != nil
}
