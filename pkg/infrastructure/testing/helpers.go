package testing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hoth-industries/controltower/pkg/domain/entities"
)

// Entity constructors for building test datasets without CSV files.
// Date strings use YYYY-MM-DD; empty strings mean missing.

// MakeOrder builds a purchase order with derived lateness. When supplierNorm
// is empty the raw supplier name is used as the canonical key.
func MakeOrder(id, supplier, supplierNorm, part, description, promised, actual string, qty int64, price string) *entities.Order {
	order := &entities.Order{
		OrderID:            entities.OrderID(id),
		SupplierName:       supplier,
		SupplierNorm:       supplierNorm,
		PartNumber:         entities.PartNumber(part),
		PartDescription:    description,
		PromisedDate:       ParseDate(promised),
		ActualDeliveryDate: ParseDate(actual),
		Quantity:           entities.Quantity(qty),
		UnitPrice:          ParsePrice(price),
	}
	if order.SupplierNorm == "" {
		order.SupplierNorm = supplier
	}
	order.DaysLate = entities.ComputeDaysLate(order.PromisedDate, order.ActualDeliveryDate)
	return order
}

// MakeInspection builds a quality inspection row
func MakeInspection(orderID string, inspected, rejected int64, reason string) *entities.QualityInspection {
	return &entities.QualityInspection{
		OrderID:         entities.OrderID(orderID),
		PartsInspected:  inspected,
		PartsRejected:   rejected,
		RejectionReason: reason,
	}
}

// MakeQuote builds an RFQ response
func MakeQuote(description, supplier, date, price string) *entities.RFQResponse {
	return &entities.RFQResponse{
		PartDescription: description,
		SupplierName:    supplier,
		SupplierNorm:    supplier,
		QuoteDate:       ParseDate(date),
		QuotedPrice:     ParsePrice(price),
	}
}

// MakeGeometry builds a geometry metadata row
func MakeGeometry(part, description, geometryType string, complexity float64) *entities.GeometryMetadata {
	return &entities.GeometryMetadata{
		PartNumber:      entities.PartNumber(part),
		PartDescription: description,
		GeometryType:    geometryType,
		ComplexityScore: complexity,
	}
}

// MakeEdge builds a similarity edge
func MakeEdge(source, similar string, score float64) *entities.SimilarityEdge {
	return &entities.SimilarityEdge{
		SourcePart:  entities.PartNumber(source),
		SimilarPart: entities.PartNumber(similar),
		Score:       score,
	}
}

// ParseDate parses YYYY-MM-DD, returning nil for empty or invalid input
func ParseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &parsed
}

// ParsePrice parses a decimal price, returning an invalid NullDecimal for
// empty or invalid input
func ParsePrice(s string) decimal.NullDecimal {
	if s == "" {
		return decimal.NullDecimal{}
	}
	parsed, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: parsed, Valid: true}
}
