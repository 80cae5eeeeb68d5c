package main

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hoth-industries/controltower/pkg/application/services"
	"github.com/hoth-industries/controltower/pkg/domain/entities"
	domainservices "github.com/hoth-industries/controltower/pkg/domain/services"
)

func main() {
	// Build a small dataset in memory, the way a caller embedding the
	// library without CSV files would.
	orders, quality, rfq, geometry, similarity := setupHeatExchangerData()

	dataset, err := services.NewDatasetFromEntities(orders, quality, rfq, geometry, similarity)
	if err != nil {
		fmt.Printf("❌ Dataset assembly failed: %v\n", err)
		return
	}

	analysisService := services.NewAnalysisService()

	fmt.Println("🚀 Running supplier risk analysis for HX-5512...")
	fmt.Println()

	health := analysisService.GlobalHealth(dataset)
	fmt.Println("📊 Supply Chain Health:")
	fmt.Printf("  Orders: %d\n", health.OrderCount)
	fmt.Printf("  Overall Rejection Rate: %.1f%%\n", health.OverallRejectionRate*100)
	fmt.Printf("  Late Order Share: %.1f%%\n", health.LateOrderShare*100)
	fmt.Println()

	analysis, err := analysisService.AnalyzePart(dataset, "HX-5512")
	if err != nil {
		fmt.Printf("❌ Analysis failed: %v\n", err)
		return
	}

	fmt.Println("🏭 Sourcing Performance:")
	for _, supplier := range analysis.Sourcing.Suppliers {
		status := "OK"
		if supplier.HighRisk {
			status = "HIGH RISK"
		}
		late := "n/a"
		if supplier.AvgDaysLate != nil {
			late = fmt.Sprintf("%.1f days late", *supplier.AvgDaysLate)
		}
		fmt.Printf("  %s: %d units, %s, %.1f%% rejected [%s]\n",
			supplier.SupplierNorm, supplier.TotalQuantity, late,
			supplier.AvgRejectionRate*100, status)
	}
	fmt.Println()

	if analysis.Producibility.Matched {
		fmt.Println("🛠️  Producibility Advisor:")
		fmt.Printf("  Closest match: %s (similarity %.2f)\n",
			analysis.Producibility.MatchPartNumber, analysis.Producibility.SimilarityScore)
		for _, reason := range analysis.Producibility.TopRejectionReasons {
			fmt.Printf("  ⚠️  Watch for: %s (%d occurrences)\n", reason.Reason, reason.Count)
		}
		fmt.Println()
	}

	if analysis.QuoteBenchmark.VariancePercent != nil {
		fmt.Println("💰 Quote Benchmarking:")
		fmt.Printf("  Historical avg: %s | Latest quote: %s (%.1f%% variance)\n",
			analysis.QuoteBenchmark.HistoricalAverage.Decimal.StringFixed(2),
			analysis.QuoteBenchmark.LatestQuote.Decimal.StringFixed(2),
			*analysis.QuoteBenchmark.VariancePercent)
		if analysis.QuoteBenchmark.Alert {
			fmt.Println("  🚨 Latest quote is out of line with purchase history")
		}
		fmt.Println()
	}

	if len(analysis.Consolidation.Candidates) > 0 {
		fmt.Println("🔩 VA/VE Consolidation:")
		for _, candidate := range analysis.Consolidation.Candidates {
			fmt.Printf("  %s at %s avg price would save %.1f%%\n",
				candidate.PartNumber,
				candidate.CandidateAvgPrice.StringFixed(2),
				candidate.SavingsPercent)
		}
		fmt.Println()
	}

	fmt.Println("✅ Analysis complete!")
}

func setupHeatExchangerData() (
	[]*entities.Order,
	[]*entities.QualityInspection,
	[]*entities.RFQResponse,
	[]*entities.GeometryMetadata,
	[]*entities.SimilarityEdge,
) {
	normalizer := domainservices.NewSupplierNormalizer(domainservices.DefaultSuffixTokens())

	date := func(s string) *time.Time {
		parsed, _ := time.Parse("2006-01-02", s)
		return &parsed
	}
	price := func(s string) decimal.NullDecimal {
		parsed, _ := decimal.NewFromString(s)
		return decimal.NullDecimal{Decimal: parsed, Valid: true}
	}
	order := func(id, supplier, part, description, promised, actual string, qty int64, unitPrice string) *entities.Order {
		o := &entities.Order{
			OrderID:            entities.OrderID(id),
			SupplierName:       supplier,
			SupplierNorm:       normalizer.Normalize(supplier),
			PartNumber:         entities.PartNumber(part),
			PartDescription:    description,
			PromisedDate:       date(promised),
			ActualDeliveryDate: date(actual),
			Quantity:           entities.Quantity(qty),
			UnitPrice:          price(unitPrice),
		}
		o.DaysLate = entities.ComputeDaysLate(o.PromisedDate, o.ActualDeliveryDate)
		return o
	}

	orders := []*entities.Order{
		order("PO-1001", "Acme Inc.", "HX-5512", "Heat Exchanger Core", "2024-01-10", "2024-01-25", 50, "118.00"),
		order("PO-1002", "Acme, Inc.", "HX-5512", "Heat Exchanger Core", "2024-03-05", "2024-03-18", 40, "121.00"),
		order("PO-1003", "Kessel Metals LLC", "HX-5512", "Heat Exchanger Core", "2024-04-01", "2024-04-01", 60, "125.00"),
		order("PO-1004", "Kessel Metals", "HX-5515", "Heat Exchanger Shell", "2024-02-12", "2024-02-12", 30, "96.00"),
		order("PO-1005", "Orbital Fab Co", "HX-5515", "Heat Exchanger Shell", "2024-05-20", "2024-05-22", 20, "99.00"),
	}

	quality := []*entities.QualityInspection{
		{OrderID: "PO-1001", PartsInspected: 50, PartsRejected: 4, RejectionReason: "Brazing voids"},
		{OrderID: "PO-1002", PartsInspected: 40, PartsRejected: 0},
		{OrderID: "PO-1003", PartsInspected: 60, PartsRejected: 1, RejectionReason: "Surface finish"},
		{OrderID: "PO-1004", PartsInspected: 30, PartsRejected: 2, RejectionReason: "Brazing voids"},
	}

	rfq := []*entities.RFQResponse{
		{
			PartDescription: "Heat Exchanger Core",
			SupplierName:    "Orbital Fab Co",
			SupplierNorm:    normalizer.Normalize("Orbital Fab Co"),
			QuoteDate:       date("2024-06-15"),
			QuotedPrice:     price("139.00"),
		},
	}

	geometry := []*entities.GeometryMetadata{
		{PartNumber: "HX-5512", PartDescription: "Heat Exchanger Core", GeometryType: "BRAZED_PLATE", ComplexityScore: 7.5},
		{PartNumber: "HX-5515", PartDescription: "Heat Exchanger Shell", GeometryType: "SHELL_TUBE", ComplexityScore: 6.0},
	}

	similarity := []*entities.SimilarityEdge{
		{SourcePart: "HX-5512", SimilarPart: "HX-5515", Score: 0.96},
		{SourcePart: "HX-5515", SimilarPart: "HX-5512", Score: 0.96},
	}

	return orders, quality, rfq, geometry, similarity
}
