package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hoth-industries/controltower/pkg/application/services"
	"github.com/hoth-industries/controltower/pkg/config"
	domainservices "github.com/hoth-industries/controltower/pkg/domain/services"
	"github.com/hoth-industries/controltower/pkg/interfaces/web"
)

// ServeCommand loads the dataset and serves the dashboard over HTTP
type ServeCommand struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewServeCommand creates a new serve command with the given configuration
func NewServeCommand(cfg *config.Config, logger *zap.Logger) *ServeCommand {
	return &ServeCommand{
		cfg:    cfg,
		logger: logger,
	}
}

// Execute loads the dataset once at startup and serves it until the context
// is cancelled. Data changes require a restart; the snapshot is immutable.
func (c *ServeCommand) Execute(ctx context.Context) error {
	normalizer := domainservices.NewSupplierNormalizer(c.cfg.Normalizer.SuffixTokens)
	datasetService := services.NewDatasetService(normalizer, c.logger)

	dataset, err := datasetService.Load(services.DatasetFiles{
		Orders:     c.cfg.Data.DataFile(c.cfg.Data.Orders),
		Quality:    c.cfg.Data.DataFile(c.cfg.Data.Quality),
		RFQ:        c.cfg.Data.DataFile(c.cfg.Data.RFQ),
		Geometry:   c.cfg.Data.DataFile(c.cfg.Data.Geometry),
		Similarity: c.cfg.Data.DataFile(c.cfg.Data.Similarity),
	})
	if err != nil {
		return fmt.Errorf("error loading dataset: %w", err)
	}

	analysisService := services.NewAnalysisServiceWithConfig(services.AnalysisConfig{
		HighRiskDaysLate:             c.cfg.Analysis.HighRiskDaysLate,
		HighRiskRejectionRate:        c.cfg.Analysis.HighRiskRejectionRate,
		WatchDaysLate:                c.cfg.Analysis.WatchDaysLate,
		WatchRejectionRate:           c.cfg.Analysis.WatchRejectionRate,
		QuoteVarianceAlertPercent:    c.cfg.Analysis.QuoteVarianceAlertPercent,
		ConsolidationSimilarityFloor: c.cfg.Analysis.ConsolidationSimilarityFloor,
		TopRejectionReasons:          c.cfg.Analysis.TopRejectionReasons,
	})

	server, err := web.NewServer(c.cfg, dataset, analysisService, c.logger)
	if err != nil {
		return fmt.Errorf("error building server: %w", err)
	}

	return server.Start(ctx)
}
