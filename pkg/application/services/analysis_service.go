package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hoth-industries/controltower/pkg/application/dto"
	"github.com/hoth-industries/controltower/pkg/domain/entities"
	"github.com/hoth-industries/controltower/pkg/metrics"
)

// AnalysisConfig holds the thresholds driving risk flags and alerts
type AnalysisConfig struct {
	// HighRiskDaysLate flags a supplier whose average lateness exceeds it.
	HighRiskDaysLate float64
	// HighRiskRejectionRate flags a supplier whose rejection rate exceeds it.
	HighRiskRejectionRate float64
	// WatchDaysLate and WatchRejectionRate bound the middle reliability band.
	WatchDaysLate      float64
	WatchRejectionRate float64
	// QuoteVarianceAlertPercent raises a price alert when the latest quote
	// exceeds the historical average by strictly more than this percentage.
	QuoteVarianceAlertPercent float64
	// ConsolidationSimilarityFloor is the minimum similarity score for a
	// part to count as a consolidation candidate.
	ConsolidationSimilarityFloor float64
	// TopRejectionReasons caps the producibility advisory reason list.
	TopRejectionReasons int
}

// DefaultAnalysisConfig returns the standard thresholds
func DefaultAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		HighRiskDaysLate:             10,
		HighRiskRejectionRate:        0.05,
		WatchDaysLate:                5,
		WatchRejectionRate:           0.02,
		QuoteVarianceAlertPercent:    10,
		ConsolidationSimilarityFloor: 0.95,
		TopRejectionReasons:          3,
	}
}

// AnalysisService answers the four part-level analyses over an immutable
// dataset snapshot. Every query is a stateless, idempotent function of
// (selected part, snapshot); the service holds only configuration.
type AnalysisService struct {
	config AnalysisConfig
}

// NewAnalysisService creates an analysis service with default thresholds
func NewAnalysisService() *AnalysisService {
	return NewAnalysisServiceWithConfig(DefaultAnalysisConfig())
}

// NewAnalysisServiceWithConfig creates an analysis service with custom thresholds
func NewAnalysisServiceWithConfig(config AnalysisConfig) *AnalysisService {
	return &AnalysisService{config: config}
}

// PartOptions returns the distinct (part number, description) pairs known
// from order history, sorted by description then part number.
func (s *AnalysisService) PartOptions(ds *Dataset) []dto.PartOption {
	seen := make(map[string]bool)
	var options []dto.PartOption

	for _, order := range ds.Orders {
		if order.PartNumber == "" || order.PartDescription == "" {
			continue
		}
		key := string(order.PartNumber) + "\x00" + order.PartDescription
		if seen[key] {
			continue
		}
		seen[key] = true
		options = append(options, dto.PartOption{
			PartNumber:      string(order.PartNumber),
			PartDescription: order.PartDescription,
			Label:           fmt.Sprintf("%s (%s)", order.PartDescription, order.PartNumber),
		})
	}

	sort.Slice(options, func(i, j int) bool {
		if options[i].PartDescription != options[j].PartDescription {
			return options[i].PartDescription < options[j].PartDescription
		}
		return options[i].PartNumber < options[j].PartNumber
	})

	return options
}

// GlobalHealth computes the dataset-wide health metrics shown above the
// part selection.
func (s *AnalysisService) GlobalHealth(ds *Dataset) dto.GlobalHealth {
	var inspected, rejected int64
	var lateKnown, lateOver int

	for i := range ds.Warehouse {
		row := &ds.Warehouse[i]
		inspected += row.PartsInspected
		rejected += row.PartsRejected
		if row.DaysLate != nil {
			lateKnown++
			if float64(*row.DaysLate) > s.config.HighRiskDaysLate {
				lateOver++
			}
		}
	}

	health := dto.GlobalHealth{
		OverallRejectionRate: entities.RejectionRate(rejected, inspected),
		OrderCount:           len(ds.Orders),
		WarehouseRowCount:    len(ds.Warehouse),
	}
	if lateKnown > 0 {
		health.LateOrderShare = float64(lateOver) / float64(lateKnown)
	}

	return health
}

// AnalyzePart runs the full analysis suite for the selected part. Returns an
// error only when the part has no order history at all; every thinner data
// gap comes back as an explicit no-data state inside the result.
func (s *AnalysisService) AnalyzePart(ds *Dataset, partNumber entities.PartNumber) (*dto.PartAnalysis, error) {
	rows := ds.PartRows(partNumber)
	if len(rows) == 0 {
		return nil, fmt.Errorf("part not found in order history: %s", partNumber)
	}
	description := rows[0].PartDescription

	return &dto.PartAnalysis{
		Summary:        s.PartSummary(ds, partNumber),
		Sourcing:       s.SourcingPerformance(ds, partNumber),
		Producibility:  s.Producibility(ds, partNumber),
		QuoteBenchmark: s.QuoteBenchmark(ds, partNumber, description),
		Consolidation:  s.Consolidation(ds, partNumber),
	}, nil
}

// PartSummary computes the quick header metrics for the selected part
func (s *AnalysisService) PartSummary(ds *Dataset, partNumber entities.PartNumber) dto.PartSummary {
	rows := ds.PartRows(partNumber)

	summary := dto.PartSummary{
		PartNumber: string(partNumber),
		OrderCount: len(distinctOrderIDs(rows)),
	}
	if len(rows) > 0 {
		summary.PartDescription = rows[0].PartDescription
	}

	summary.AvgUnitPrice = averageUnitPrice(rows)

	var inspected, rejected int64
	for _, row := range rows {
		inspected += row.PartsInspected
		rejected += row.PartsRejected
	}
	summary.RejectionRate = entities.RejectionRate(rejected, inspected)

	summary.AvgDaysLate = averageDaysLate(rows)

	avgLate := 0.0
	if summary.AvgDaysLate != nil {
		avgLate = *summary.AvgDaysLate
	}
	summary.Reliability = entities.ClassifyReliability(avgLate, summary.RejectionRate, entities.ReliabilityThresholds{
		WatchDaysLate:         s.config.WatchDaysLate,
		WatchRejectionRate:    s.config.WatchRejectionRate,
		HighRiskDaysLate:      s.config.HighRiskDaysLate,
		HighRiskRejectionRate: s.config.HighRiskRejectionRate,
	}).String()

	return summary
}

// SourcingPerformance groups the part's warehouse rows by canonical supplier
// and aggregates lateness and rejection per supplier. High-risk suppliers are
// flagged in place, never filtered out.
func (s *AnalysisService) SourcingPerformance(ds *Dataset, partNumber entities.PartNumber) dto.SourcingPerformanceResult {
	metrics.AnalysesServed.WithLabelValues("sourcing").Inc()

	type supplierAccumulator struct {
		name          string
		quantity      int64
		countedOrders map[entities.OrderID]bool
		inspected     int64
		rejected      int64
		lateSum       float64
		lateCount     int
	}

	accumulators := make(map[string]*supplierAccumulator)
	var order []string

	for _, row := range ds.PartRows(partNumber) {
		acc, exists := accumulators[row.SupplierNorm]
		if !exists {
			acc = &supplierAccumulator{
				name:          row.SupplierName,
				countedOrders: make(map[entities.OrderID]bool),
			}
			accumulators[row.SupplierNorm] = acc
			order = append(order, row.SupplierNorm)
		}

		// Quantity counts each order once even when inspection fan-out
		// duplicates its warehouse rows.
		if !acc.countedOrders[row.OrderID] {
			acc.countedOrders[row.OrderID] = true
			acc.quantity += int64(row.Quantity)
		}
		acc.inspected += row.PartsInspected
		acc.rejected += row.PartsRejected
		if row.DaysLate != nil {
			acc.lateSum += float64(*row.DaysLate)
			acc.lateCount++
		}
	}

	sort.Strings(order)

	result := dto.SourcingPerformanceResult{
		Suppliers: make([]dto.SupplierPerformance, 0, len(order)),
	}
	for _, norm := range order {
		acc := accumulators[norm]

		perf := dto.SupplierPerformance{
			SupplierName:     acc.name,
			SupplierNorm:     norm,
			TotalQuantity:    acc.quantity,
			TotalInspected:   acc.inspected,
			TotalRejected:    acc.rejected,
			AvgRejectionRate: entities.RejectionRate(acc.rejected, acc.inspected),
		}
		if acc.lateCount > 0 {
			avg := acc.lateSum / float64(acc.lateCount)
			perf.AvgDaysLate = &avg
		}

		avgLate := 0.0
		if perf.AvgDaysLate != nil {
			avgLate = *perf.AvgDaysLate
		}
		perf.HighRisk = avgLate > s.config.HighRiskDaysLate ||
			perf.AvgRejectionRate > s.config.HighRiskRejectionRate

		result.Suppliers = append(result.Suppliers, perf)
	}

	return result
}

// Producibility finds the part's closest geometric match and surfaces the
// match's historical rejection reasons as a design-for-manufacturability
// warning. A part without similarity edges yields an explicit no-match
// result rather than a default geometry.
func (s *AnalysisService) Producibility(ds *Dataset, partNumber entities.PartNumber) dto.ProducibilityResult {
	metrics.AnalysesServed.WithLabelValues("producibility").Inc()

	result := dto.ProducibilityResult{}

	if meta, found := ds.Geometry.FindByPartNumber(partNumber); found {
		result.HasGeometry = true
		result.GeometryType = meta.GeometryType
		result.ComplexityScore = meta.ComplexityScore
	}

	edges, err := ds.Similarity.GetEdgesFrom(partNumber)
	if err != nil || len(edges) == 0 {
		return result
	}

	top := edges[0]
	result.Matched = true
	result.MatchPartNumber = string(top.SimilarPart)
	result.SimilarityScore = top.Score
	result.MatchDescription = s.describePart(ds, top.SimilarPart)

	matchOrders, err := ds.OrderRepo.GetByPartNumber(top.SimilarPart)
	if err != nil || len(matchOrders) == 0 {
		return result
	}
	result.HasQualityHistory = true

	result.TopRejectionReasons = s.topRejectionReasons(ds, matchOrders)

	return result
}

// describePart resolves a display description for a part: geometry metadata
// first, then the most frequent description among its orders.
func (s *AnalysisService) describePart(ds *Dataset, partNumber entities.PartNumber) string {
	if meta, found := ds.Geometry.FindByPartNumber(partNumber); found && meta.PartDescription != "" {
		return meta.PartDescription
	}

	counts := make(map[string]int)
	orders, err := ds.OrderRepo.GetByPartNumber(partNumber)
	if err != nil {
		return ""
	}
	for _, order := range orders {
		if order.PartDescription != "" {
			counts[order.PartDescription]++
		}
	}

	best := ""
	bestCount := 0
	for description, count := range counts {
		if count > bestCount || (count == bestCount && description < best) {
			best = description
			bestCount = count
		}
	}
	return best
}

// topRejectionReasons counts rejection reasons across the failed inspections
// of the given orders and returns the top reasons by occurrence. Ties keep
// their first-appearance order, which makes the ranking deterministic for a
// fixed input file.
func (s *AnalysisService) topRejectionReasons(ds *Dataset, orders []*entities.Order) []dto.ReasonCount {
	counts := make(map[string]int)
	var firstSeen []string

	for _, order := range orders {
		inspections, err := ds.Quality.GetByOrderID(order.OrderID)
		if err != nil {
			continue
		}
		for _, inspection := range inspections {
			if inspection.PartsRejected <= 0 {
				continue
			}
			reason := strings.TrimSpace(inspection.RejectionReason)
			if reason == "" {
				reason = "Unspecified"
			}
			if _, exists := counts[reason]; !exists {
				firstSeen = append(firstSeen, reason)
			}
			counts[reason]++
		}
	}

	sort.SliceStable(firstSeen, func(i, j int) bool {
		return counts[firstSeen[i]] > counts[firstSeen[j]]
	})

	limit := s.config.TopRejectionReasons
	if limit > len(firstSeen) {
		limit = len(firstSeen)
	}

	reasons := make([]dto.ReasonCount, 0, limit)
	for _, reason := range firstSeen[:limit] {
		reasons = append(reasons, dto.ReasonCount{Reason: reason, Count: counts[reason]})
	}
	return reasons
}

// QuoteBenchmark compares the most recent RFQ quote for the part description
// against the part's historical average purchase price. When either side is
// missing the benchmark is skipped: no alert and no fault.
func (s *AnalysisService) QuoteBenchmark(ds *Dataset, partNumber entities.PartNumber, partDescription string) dto.QuoteBenchmarkResult {
	metrics.AnalysesServed.WithLabelValues("quote_benchmark").Inc()

	result := dto.QuoteBenchmarkResult{
		HistoricalAverage: averageUnitPrice(ds.PartRows(partNumber)),
	}

	quotes, err := ds.RFQ.GetByDescription(partDescription)
	if err == nil {
		var latest *entities.RFQResponse
		for _, quote := range quotes {
			if quote.QuoteDate == nil {
				continue
			}
			// A later input row wins on equal dates, matching a stable
			// sort by quote date.
			if latest == nil || !quote.QuoteDate.Before(*latest.QuoteDate) {
				latest = quote
			}
		}
		if latest != nil {
			result.LatestQuote = latest.QuotedPrice
			result.LatestQuoteDate = latest.QuoteDate
			result.LatestSupplier = latest.SupplierName
		}
	}

	if !result.HistoricalAverage.Valid || !result.LatestQuote.Valid ||
		result.HistoricalAverage.Decimal.IsZero() {
		return result
	}

	historical := result.HistoricalAverage.Decimal
	latest := result.LatestQuote.Decimal

	variance, _ := latest.Sub(historical).
		Div(historical).
		Mul(decimal.NewFromInt(100)).
		Float64()
	result.VariancePercent = &variance

	alertRatio := decimal.NewFromInt(1).
		Add(decimal.NewFromFloat(s.config.QuoteVarianceAlertPercent).Div(decimal.NewFromInt(100)))
	result.Alert = latest.GreaterThan(historical.Mul(alertRatio))

	return result
}

// Consolidation surfaces every geometric twin (similarity at or above the
// configured floor) whose historical average price is strictly below the
// selected part's. All qualifying candidates are returned, best match first.
func (s *AnalysisService) Consolidation(ds *Dataset, partNumber entities.PartNumber) dto.ConsolidationResult {
	metrics.AnalysesServed.WithLabelValues("consolidation").Inc()

	result := dto.ConsolidationResult{
		SelectedAvgPrice: averageUnitPrice(ds.PartRows(partNumber)),
	}
	if !result.SelectedAvgPrice.Valid || result.SelectedAvgPrice.Decimal.IsZero() {
		return result
	}
	selected := result.SelectedAvgPrice.Decimal

	edges, err := ds.Similarity.GetEdgesFrom(partNumber)
	if err != nil {
		return result
	}

	seen := make(map[entities.PartNumber]bool)
	for _, edge := range edges {
		if edge.Score < s.config.ConsolidationSimilarityFloor {
			continue
		}
		if edge.SimilarPart == partNumber || seen[edge.SimilarPart] {
			continue
		}
		seen[edge.SimilarPart] = true

		candidateAvg := averageUnitPrice(ds.PartRows(edge.SimilarPart))
		if !candidateAvg.Valid || !candidateAvg.Decimal.LessThan(selected) {
			continue
		}

		savings, _ := selected.Sub(candidateAvg.Decimal).
			Div(selected).
			Mul(decimal.NewFromInt(100)).
			Float64()

		result.Candidates = append(result.Candidates, dto.ConsolidationCandidate{
			PartNumber:        string(edge.SimilarPart),
			SimilarityScore:   edge.Score,
			CandidateAvgPrice: candidateAvg.Decimal,
			SavingsPercent:    savings,
		})
	}

	return result
}

// Aggregation helpers shared by the analyses

func averageUnitPrice(rows []*entities.WarehouseRow) decimal.NullDecimal {
	sum := decimal.Zero
	count := 0
	for _, row := range rows {
		if row.UnitPrice.Valid {
			sum = sum.Add(row.UnitPrice.Decimal)
			count++
		}
	}
	if count == 0 {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{
		Decimal: sum.Div(decimal.NewFromInt(int64(count))),
		Valid:   true,
	}
}

func averageDaysLate(rows []*entities.WarehouseRow) *float64 {
	sum := 0.0
	count := 0
	for _, row := range rows {
		if row.DaysLate != nil {
			sum += float64(*row.DaysLate)
			count++
		}
	}
	if count == 0 {
		return nil
	}
	avg := sum / float64(count)
	return &avg
}

func distinctOrderIDs(rows []*entities.WarehouseRow) map[entities.OrderID]bool {
	ids := make(map[entities.OrderID]bool, len(rows))
	for _, row := range rows {
		ids[row.OrderID] = true
	}
	return ids
}
