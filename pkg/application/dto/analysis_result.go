package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PartOption is one selectable part in the dashboard: a distinct
// (part number, description) pair with a display label.
type PartOption struct {
	PartNumber      string `json:"part_number"`
	PartDescription string `json:"part_description"`
	Label           string `json:"label"`
}

// GlobalHealth carries the dataset-wide supply chain health metrics
type GlobalHealth struct {
	// OverallRejectionRate is total rejected over total inspected parts,
	// zero-safe.
	OverallRejectionRate float64 `json:"overall_rejection_rate"`
	// LateOrderShare is the fraction of warehouse rows more than ten days
	// late, among rows with a known lateness.
	LateOrderShare    float64 `json:"late_order_share"`
	OrderCount        int     `json:"order_count"`
	WarehouseRowCount int     `json:"warehouse_row_count"`
}

// PartSummary carries the quick metrics shown in the part header
type PartSummary struct {
	PartNumber      string              `json:"part_number"`
	PartDescription string              `json:"part_description"`
	OrderCount      int                 `json:"order_count"`
	AvgUnitPrice    decimal.NullDecimal `json:"avg_unit_price"`
	RejectionRate   float64             `json:"rejection_rate"`
	AvgDaysLate     *float64            `json:"avg_days_late"`
	Reliability     string              `json:"reliability"`
}

// SupplierPerformance aggregates one supplier's history for the selected part
type SupplierPerformance struct {
	SupplierName     string   `json:"supplier_name"`
	SupplierNorm     string   `json:"supplier_norm"`
	TotalQuantity    int64    `json:"total_quantity"`
	TotalInspected   int64    `json:"total_inspected"`
	TotalRejected    int64    `json:"total_rejected"`
	AvgRejectionRate float64  `json:"avg_rejection_rate"`
	AvgDaysLate      *float64 `json:"avg_days_late"`
	HighRisk         bool     `json:"high_risk"`
}

// SourcingPerformanceResult lists per-supplier aggregates for the selected
// part. High-risk suppliers are flagged, never excluded.
type SourcingPerformanceResult struct {
	Suppliers []SupplierPerformance `json:"suppliers"`
}

// ReasonCount is one rejection reason with its occurrence count
type ReasonCount struct {
	Reason string `json:"reason"`
	Count  int    `json:"count"`
}

// ProducibilityResult is the design-for-manufacturability advisory derived
// from the closest geometric match and its quality history.
type ProducibilityResult struct {
	HasGeometry     bool    `json:"has_geometry"`
	GeometryType    string  `json:"geometry_type,omitempty"`
	ComplexityScore float64 `json:"complexity_score,omitempty"`

	// Matched is false when the part has no similarity edges; the remaining
	// fields are then zero values.
	Matched          bool    `json:"matched"`
	MatchPartNumber  string  `json:"match_part_number,omitempty"`
	MatchDescription string  `json:"match_description,omitempty"`
	SimilarityScore  float64 `json:"similarity_score,omitempty"`

	HasQualityHistory   bool          `json:"has_quality_history"`
	TopRejectionReasons []ReasonCount `json:"top_rejection_reasons,omitempty"`
}

// QuoteBenchmarkResult compares the latest RFQ quote against the historical
// average purchase price for the part.
type QuoteBenchmarkResult struct {
	HistoricalAverage decimal.NullDecimal `json:"historical_average"`
	LatestQuote       decimal.NullDecimal `json:"latest_quote"`
	LatestQuoteDate   *time.Time          `json:"latest_quote_date,omitempty"`
	LatestSupplier    string              `json:"latest_supplier,omitempty"`
	// VariancePercent is nil when either side of the comparison is missing;
	// benchmarking is then skipped rather than defaulted.
	VariancePercent *float64 `json:"variance_percent"`
	Alert           bool     `json:"alert"`
}

// ConsolidationCandidate is a geometric twin that is strictly cheaper than
// the selected part on historical average price.
type ConsolidationCandidate struct {
	PartNumber        string          `json:"part_number"`
	SimilarityScore   float64         `json:"similarity_score"`
	CandidateAvgPrice decimal.Decimal `json:"candidate_avg_price"`
	SavingsPercent    float64         `json:"savings_percent"`
}

// ConsolidationResult lists all qualifying VA/VE consolidation opportunities
type ConsolidationResult struct {
	SelectedAvgPrice decimal.NullDecimal      `json:"selected_avg_price"`
	Candidates       []ConsolidationCandidate `json:"candidates"`
}

// PartAnalysis bundles the full analysis view for a selected part
type PartAnalysis struct {
	Summary        PartSummary               `json:"summary"`
	Sourcing       SourcingPerformanceResult `json:"sourcing"`
	Producibility  ProducibilityResult       `json:"producibility"`
	QuoteBenchmark QuoteBenchmarkResult      `json:"quote_benchmark"`
	Consolidation  ConsolidationResult       `json:"consolidation"`
}
