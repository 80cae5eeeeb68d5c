package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// RFQResponse represents a supplier quote for a part description.
// RFQ responses are independent of purchase orders and join only by
// part description for benchmarking.
type RFQResponse struct {
	PartDescription string
	SupplierName    string
	SupplierNorm    string
	QuoteDate       *time.Time
	QuotedPrice     decimal.NullDecimal
}
