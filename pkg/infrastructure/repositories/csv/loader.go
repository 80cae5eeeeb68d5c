package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hoth-industries/controltower/pkg/domain/entities"
)

// Loader handles loading control tower source tables from CSV files.
//
// Header columns are part of the file contract and validated strictly. Field
// values are parsed leniently where the analyses tolerate gaps: unparsable
// dates and prices load as missing values and the affected rows drop out of
// the corresponding aggregates downstream. A missing file is fatal.
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadOrders loads purchase orders from a CSV file
func (l *Loader) LoadOrders(filename string) ([]*entities.Order, error) {
	records, err := readTable(filename, "orders")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{
		"order_id", "supplier_name", "part_number", "part_description",
		"order_date", "promised_date", "actual_delivery_date", "quantity", "unit_price",
	}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("orders CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var orders []*entities.Order
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("orders CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		order := &entities.Order{
			OrderID:            entities.OrderID(strings.TrimSpace(record[0])),
			SupplierName:       record[1],
			PartNumber:         entities.PartNumber(strings.TrimSpace(record[2])),
			PartDescription:    strings.TrimSpace(record[3]),
			OrderDate:          parseOptionalDate(record[4]),
			PromisedDate:       parseOptionalDate(record[5]),
			ActualDeliveryDate: parseOptionalDate(record[6]),
			Quantity:           entities.Quantity(parseOptionalInt(record[7])),
			UnitPrice:          parseOptionalDecimal(record[8]),
		}
		if order.OrderID == "" {
			return nil, fmt.Errorf("orders CSV row %d: order_id cannot be empty", i+2)
		}
		order.DaysLate = entities.ComputeDaysLate(order.PromisedDate, order.ActualDeliveryDate)

		orders = append(orders, order)
	}

	return orders, nil
}

// LoadQualityInspections loads quality inspection records from a CSV file
func (l *Loader) LoadQualityInspections(filename string) ([]*entities.QualityInspection, error) {
	records, err := readTable(filename, "quality inspections")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"order_id", "inspection_date", "parts_inspected", "parts_rejected", "rejection_reason"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("quality inspections CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var inspections []*entities.QualityInspection
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("quality inspections CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		inspections = append(inspections, &entities.QualityInspection{
			OrderID:         entities.OrderID(strings.TrimSpace(record[0])),
			InspectionDate:  parseOptionalDate(record[1]),
			PartsInspected:  parseOptionalInt(record[2]),
			PartsRejected:   parseOptionalInt(record[3]),
			RejectionReason: strings.TrimSpace(record[4]),
		})
	}

	return inspections, nil
}

// LoadRFQResponses loads supplier quote responses from a CSV file
func (l *Loader) LoadRFQResponses(filename string) ([]*entities.RFQResponse, error) {
	records, err := readTable(filename, "RFQ responses")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"part_description", "supplier_name", "quote_date", "quoted_price"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("RFQ responses CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var responses []*entities.RFQResponse
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("RFQ responses CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		responses = append(responses, &entities.RFQResponse{
			PartDescription: strings.TrimSpace(record[0]),
			SupplierName:    record[1],
			QuoteDate:       parseOptionalDate(record[2]),
			QuotedPrice:     parseOptionalDecimal(record[3]),
		})
	}

	return responses, nil
}

// LoadGeometryMetadata loads part geometry metadata from a CSV file
func (l *Loader) LoadGeometryMetadata(filename string) ([]*entities.GeometryMetadata, error) {
	records, err := readTable(filename, "geometry metadata")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"part_number", "part_description", "geometry_type", "complexity_score"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("geometry metadata CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var metadata []*entities.GeometryMetadata
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("geometry metadata CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		metadata = append(metadata, &entities.GeometryMetadata{
			PartNumber:      entities.PartNumber(strings.TrimSpace(record[0])),
			PartDescription: strings.TrimSpace(record[1]),
			GeometryType:    strings.TrimSpace(record[2]),
			ComplexityScore: parseOptionalFloat(record[3]),
		})
	}

	return metadata, nil
}

// LoadSimilarityEdges loads geometric-similarity edges from a CSV file.
// Rows without a parsable similarity score carry no usable signal and are
// skipped.
func (l *Loader) LoadSimilarityEdges(filename string) ([]*entities.SimilarityEdge, error) {
	records, err := readTable(filename, "similarity")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"source_part_number", "similar_part_number", "similarity_score"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("similarity CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var edges []*entities.SimilarityEdge
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("similarity CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		score, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			continue
		}

		edges = append(edges, &entities.SimilarityEdge{
			SourcePart:  entities.PartNumber(strings.TrimSpace(record[0])),
			SimilarPart: entities.PartNumber(strings.TrimSpace(record[1])),
			Score:       score,
		})
	}

	return edges, nil
}

// Helper functions for reading and parsing CSV records

func readTable(filename, table string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s file %s: %w", table, filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s CSV: %w", table, err)
	}

	if len(records) < 1 {
		return nil, fmt.Errorf("%s CSV must have a header row", table)
	}

	return records, nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}

func parseOptionalDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &parsed
}

func parseOptionalDecimal(s string) decimal.NullDecimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}
	}
	parsed, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: parsed, Valid: true}
}

func parseOptionalInt(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	parsed, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return parsed
}

func parseOptionalFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	parsed, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return parsed
}
