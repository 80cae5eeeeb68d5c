package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hoth-industries/controltower/pkg/config"
	"github.com/hoth-industries/controltower/pkg/interfaces/cli/commands"
	"github.com/hoth-industries/controltower/pkg/logging"
)

// version is injected at build time via -ldflags "-X main.version=..."
var version = "dev"

var (
	configPath string

	dataDir        string
	ordersFile     string
	qualityFile    string
	rfqFile        string
	geometryFile   string
	similarityFile string
	part           string
	listParts      bool
	format         string
	outputDir      string
	verbose        bool
	suffixTokens   string
)

var rootCmd = &cobra.Command{
	Use:   "controltower",
	Short: "Supplier risk control tower for sourcing and quality analytics",
	Long: `Controltower joins purchase orders, quality inspections, RFQ quotes, and
part geometry data into one supplier-risk view. It answers four questions per
part: who delivers it reliably, what tends to go wrong making parts like it,
whether the latest quote is out of line, and which near-identical parts could
be consolidated for savings.`,
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Analyze one part and print the full report",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.MustNew(logLevel(), "console")
		defer func() { _ = logger.Sync() }()

		if listParts {
			part = ""
		}
		cfg := commands.Config{
			DataDir:        dataDir,
			OrdersFile:     ordersFile,
			QualityFile:    qualityFile,
			RFQFile:        rfqFile,
			GeometryFile:   geometryFile,
			SimilarityFile: similarityFile,
			Part:           part,
			Format:         format,
			OutputDir:      outputDir,
			Verbose:        verbose,
			SuffixTokens:   parseTokens(suffixTokens),
		}
		return commands.NewReportCommand(cfg, logger).Execute(cmd.Context())
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard and analytics API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath, version)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		logger := logging.MustNew(cfg.LogLevel, cfg.LogFormat)
		defer func() { _ = logger.Sync() }()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return commands.NewServeCommand(cfg, logger).Execute(ctx)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "Path to YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	reportCmd.Flags().StringVar(&dataDir, "data", "", "Directory containing the five source CSV files")
	reportCmd.Flags().StringVar(&ordersFile, "orders", "", "Path to supplier orders CSV file")
	reportCmd.Flags().StringVar(&qualityFile, "quality", "", "Path to quality inspections CSV file")
	reportCmd.Flags().StringVar(&rfqFile, "rfq", "", "Path to RFQ responses CSV file")
	reportCmd.Flags().StringVar(&geometryFile, "geometry", "", "Path to geometry metadata CSV file")
	reportCmd.Flags().StringVar(&similarityFile, "similarity", "", "Path to geometry similarity CSV file")
	reportCmd.Flags().StringVarP(&part, "part", "p", "", "Part number to analyze (omit to list available parts)")
	reportCmd.Flags().BoolVar(&listParts, "list-parts", false, "List available parts and exit")
	reportCmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text or json")
	reportCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory for results (optional)")
	reportCmd.Flags().StringVar(&suffixTokens, "suffix-tokens", "", "Comma-separated corporate suffix tokens to strip from supplier names")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.Version = version
}

func logLevel() string {
	if verbose {
		return "debug"
	}
	return "info"
}

func parseTokens(value string) []string {
	if value == "" {
		return nil
	}
	var tokens []string
	for _, token := range strings.Split(value, ",") {
		token = strings.TrimSpace(token)
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

func main() {
	ctx := context.Background()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
