package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hoth-industries/controltower/pkg/application/dto"
)

// Config holds configuration for output generation
type Config struct {
	Format     string
	OutputDir  string
	Verbose    bool
	LoadTime   time.Duration
	InputFiles map[string]string
}

// Generate creates output in the specified format
func Generate(analysis *dto.PartAnalysis, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(analysis, config)
	case "json":
		return generateJSONOutput(analysis, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput creates human-readable text output
func generateTextOutput(analysis *dto.PartAnalysis, config Config) error {
	summary := analysis.Summary

	fmt.Printf("📊 Part Analysis: %s\n", summary.PartNumber)
	fmt.Printf("======================\n\n")

	fmt.Printf("Description: %s\n", summary.PartDescription)
	fmt.Printf("Orders: %d\n", summary.OrderCount)
	fmt.Printf("Avg Unit Price: %s\n", formatPrice(summary.AvgUnitPrice))
	fmt.Printf("Rejection Rate: %s\n", formatPercent(summary.RejectionRate))
	fmt.Printf("Avg Days Late: %s\n", formatDays(summary.AvgDaysLate))
	fmt.Printf("Reliability: %s\n", summary.Reliability)
	if config.LoadTime > 0 {
		fmt.Printf("Load Time: %v\n", config.LoadTime)
	}
	fmt.Println()

	if len(analysis.Sourcing.Suppliers) > 0 {
		fmt.Printf("🏭 Sourcing Performance:\n")
		fmt.Printf("%-25s %-10s %-12s %-14s %-10s\n",
			"Supplier", "Qty", "Avg Late", "Reject Rate", "Status")
		fmt.Printf("%-25s %-10s %-12s %-14s %-10s\n",
			"-------------------------", "----------", "------------", "--------------", "----------")

		for _, supplier := range analysis.Sourcing.Suppliers {
			status := "OK"
			if supplier.HighRisk {
				status = "HIGH RISK"
			}
			fmt.Printf("%-25s %-10d %-12s %-14s %-10s\n",
				supplier.SupplierNorm,
				supplier.TotalQuantity,
				formatDays(supplier.AvgDaysLate),
				formatPercent(supplier.AvgRejectionRate),
				status)
		}
		fmt.Println()
	}

	fmt.Printf("🛠️  Producibility Advisor:\n")
	if analysis.Producibility.HasGeometry {
		fmt.Printf("Geometry: %s (complexity %.1f)\n",
			analysis.Producibility.GeometryType, analysis.Producibility.ComplexityScore)
	}
	if !analysis.Producibility.Matched {
		fmt.Printf("No similar parts found.\n\n")
	} else {
		fmt.Printf("Closest match: %s (%s), similarity %.2f\n",
			analysis.Producibility.MatchPartNumber,
			analysis.Producibility.MatchDescription,
			analysis.Producibility.SimilarityScore)
		if !analysis.Producibility.HasQualityHistory {
			fmt.Printf("Match has no order history to learn from.\n")
		} else if len(analysis.Producibility.TopRejectionReasons) > 0 {
			fmt.Printf("Historical failure modes on the match:\n")
			for _, reason := range analysis.Producibility.TopRejectionReasons {
				fmt.Printf("  - %s (%d)\n", reason.Reason, reason.Count)
			}
		} else {
			fmt.Printf("No rejected inspections on the match.\n")
		}
		fmt.Println()
	}

	fmt.Printf("💰 Quote Benchmarking:\n")
	fmt.Printf("Historical Avg: %s\n", formatPrice(analysis.QuoteBenchmark.HistoricalAverage))
	fmt.Printf("Latest Quote: %s", formatPrice(analysis.QuoteBenchmark.LatestQuote))
	if analysis.QuoteBenchmark.LatestSupplier != "" {
		fmt.Printf(" from %s", analysis.QuoteBenchmark.LatestSupplier)
	}
	fmt.Println()
	if analysis.QuoteBenchmark.VariancePercent != nil {
		fmt.Printf("Variance: %.1f%%\n", *analysis.QuoteBenchmark.VariancePercent)
	}
	if analysis.QuoteBenchmark.Alert {
		fmt.Printf("⚠️  ALERT: latest quote exceeds historical average threshold\n")
	}
	fmt.Println()

	if len(analysis.Consolidation.Candidates) > 0 {
		fmt.Printf("🔩 VA/VE Consolidation Candidates:\n")
		fmt.Printf("%-15s %-12s %-12s %-10s\n",
			"Part Number", "Similarity", "Avg Price", "Savings")
		fmt.Printf("%-15s %-12s %-12s %-10s\n",
			"---------------", "------------", "------------", "----------")

		for _, candidate := range analysis.Consolidation.Candidates {
			fmt.Printf("%-15s %-12.2f %-12s %-10s\n",
				candidate.PartNumber,
				candidate.SimilarityScore,
				candidate.CandidateAvgPrice.StringFixed(2),
				fmt.Sprintf("%.1f%%", candidate.SavingsPercent))
		}
		fmt.Println()
	} else {
		fmt.Printf("🔩 No VA/VE consolidation candidates found.\n\n")
	}

	if config.OutputDir != "" {
		if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		filename := filepath.Join(config.OutputDir,
			fmt.Sprintf("analysis_%s.json", summary.PartNumber))
		jsonData, err := json.MarshalIndent(analysis, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write results file: %w", err)
		}
		if config.Verbose {
			fmt.Printf("💾 Results saved to: %s\n", filename)
		}
	}

	return nil
}

// generateJSONOutput creates JSON output
func generateJSONOutput(analysis *dto.PartAnalysis, config Config) error {
	jsonData, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if config.OutputDir == "" {
		fmt.Println(string(jsonData))
	} else {
		if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		filename := filepath.Join(config.OutputDir,
			fmt.Sprintf("analysis_%s.json", analysis.Summary.PartNumber))
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write JSON file: %w", err)
		}

		if config.Verbose {
			fmt.Printf("💾 JSON results saved to: %s\n", filename)
		}
	}

	return nil
}

func formatPrice(price decimal.NullDecimal) string {
	if !price.Valid {
		return "n/a"
	}
	return price.Decimal.StringFixed(2)
}

func formatDays(days *float64) string {
	if days == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.1f", *days)
}

func formatPercent(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate*100)
}
