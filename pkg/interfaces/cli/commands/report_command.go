package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/hoth-industries/controltower/pkg/application/services"
	"github.com/hoth-industries/controltower/pkg/domain/entities"
	domainservices "github.com/hoth-industries/controltower/pkg/domain/services"
	"github.com/hoth-industries/controltower/pkg/interfaces/cli/output"
)

// Config holds configuration for the report command
type Config struct {
	DataDir        string
	OrdersFile     string
	QualityFile    string
	RFQFile        string
	GeometryFile   string
	SimilarityFile string
	Part           string
	Format         string
	OutputDir      string
	Verbose        bool
	SuffixTokens   []string
	Analysis       services.AnalysisConfig
}

// ReportCommand runs the full analysis suite for one part and renders it
type ReportCommand struct {
	config Config
	logger *zap.Logger
}

// NewReportCommand creates a new report command with the given configuration
func NewReportCommand(config Config, logger *zap.Logger) *ReportCommand {
	if config.Format == "" {
		config.Format = "text"
	}
	if len(config.SuffixTokens) == 0 {
		config.SuffixTokens = domainservices.DefaultSuffixTokens()
	}
	if config.Analysis == (services.AnalysisConfig{}) {
		config.Analysis = services.DefaultAnalysisConfig()
	}
	return &ReportCommand{
		config: config,
		logger: logger,
	}
}

// Execute runs the report command
func (c *ReportCommand) Execute(ctx context.Context) error {
	if err := c.validateInputs(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	files, err := c.resolveInputFiles()
	if err != nil {
		return fmt.Errorf("failed to resolve input files: %w", err)
	}

	if c.config.Verbose {
		c.printHeader(files)
		fmt.Println("📂 Loading data from CSV files...")
	}

	normalizer := domainservices.NewSupplierNormalizer(c.config.SuffixTokens)
	datasetService := services.NewDatasetService(normalizer, c.logger)

	startTime := time.Now()
	dataset, err := datasetService.Load(services.DatasetFiles{
		Orders:     files["Orders"],
		Quality:    files["Quality"],
		RFQ:        files["RFQ"],
		Geometry:   files["Geometry"],
		Similarity: files["Similarity"],
	})
	if err != nil {
		return fmt.Errorf("error loading dataset: %w", err)
	}
	loadTime := time.Since(startTime)

	if c.config.Verbose {
		fmt.Printf("✅ Data loaded successfully:\n")
		fmt.Printf("  Orders: %d\n", len(dataset.Orders))
		fmt.Printf("  Warehouse Rows: %d\n", len(dataset.Warehouse))
		fmt.Printf("  Load Time: %v\n", loadTime)
		fmt.Println()
	}

	analysisService := services.NewAnalysisServiceWithConfig(c.config.Analysis)

	if c.config.Part == "" {
		return c.listParts(analysisService, dataset)
	}

	if c.config.Verbose {
		fmt.Printf("🔄 Analyzing part %s...\n\n", c.config.Part)
	}

	analysis, err := analysisService.AnalyzePart(dataset, entities.PartNumber(c.config.Part))
	if err != nil {
		return fmt.Errorf("error analyzing part: %w", err)
	}

	outputConfig := output.Config{
		Format:     c.config.Format,
		OutputDir:  c.config.OutputDir,
		Verbose:    c.config.Verbose,
		LoadTime:   loadTime,
		InputFiles: files,
	}
	if err := output.Generate(analysis, outputConfig); err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}

	if c.config.Verbose {
		fmt.Println("🏁 Part analysis complete!")
	}

	return nil
}

// listParts prints the selectable parts when no part number was given
func (c *ReportCommand) listParts(analysisService *services.AnalysisService, dataset *services.Dataset) error {
	options := analysisService.PartOptions(dataset)
	if len(options) == 0 {
		fmt.Println("No parts found in order history.")
		return nil
	}

	fmt.Printf("Available parts (%d):\n", len(options))
	for _, option := range options {
		fmt.Printf("  %s\n", option.Label)
	}
	fmt.Println("\nRe-run with --part <part_number> to analyze one.")
	return nil
}

// validateInputs validates the command configuration
func (c *ReportCommand) validateInputs() error {
	if c.config.DataDir == "" &&
		(c.config.OrdersFile == "" || c.config.QualityFile == "" ||
			c.config.RFQFile == "" || c.config.GeometryFile == "" ||
			c.config.SimilarityFile == "") {
		return fmt.Errorf("must specify either --data directory or all five CSV files")
	}
	if c.config.Format != "text" && c.config.Format != "json" {
		return fmt.Errorf("unsupported format: %s", c.config.Format)
	}
	return nil
}

// resolveInputFiles determines the actual file paths to use
func (c *ReportCommand) resolveInputFiles() (map[string]string, error) {
	var ordersPath, qualityPath, rfqPath, geometryPath, similarityPath string

	if c.config.DataDir != "" {
		ordersPath = filepath.Join(c.config.DataDir, "supplier_orders.csv")
		qualityPath = filepath.Join(c.config.DataDir, "quality_inspections.csv")
		rfqPath = filepath.Join(c.config.DataDir, "rfq_responses.csv")
		geometryPath = filepath.Join(c.config.DataDir, "geometry_metadata.csv")
		similarityPath = filepath.Join(c.config.DataDir, "geometry_similarity.csv")
	} else {
		ordersPath = c.config.OrdersFile
		qualityPath = c.config.QualityFile
		rfqPath = c.config.RFQFile
		geometryPath = c.config.GeometryFile
		similarityPath = c.config.SimilarityFile
	}

	files := map[string]string{
		"Orders":     ordersPath,
		"Quality":    qualityPath,
		"RFQ":        rfqPath,
		"Geometry":   geometryPath,
		"Similarity": similarityPath,
	}

	for name, path := range files {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("%s file not found: %s", name, path)
		}
	}

	return files, nil
}

// printHeader prints the command header information
func (c *ReportCommand) printHeader(files map[string]string) {
	fmt.Printf("🚀 Supplier Risk Control Tower\n")
	fmt.Printf("Input files:\n")
	fmt.Printf("  Orders: %s\n", files["Orders"])
	fmt.Printf("  Quality: %s\n", files["Quality"])
	fmt.Printf("  RFQ: %s\n", files["RFQ"])
	fmt.Printf("  Geometry: %s\n", files["Geometry"])
	fmt.Printf("  Similarity: %s\n", files["Similarity"])
	fmt.Printf("Output format: %s\n", c.config.Format)
	if c.config.OutputDir != "" {
		fmt.Printf("Output directory: %s\n", c.config.OutputDir)
	}
	fmt.Println()
}
