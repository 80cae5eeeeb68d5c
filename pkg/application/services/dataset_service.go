package services

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hoth-industries/controltower/pkg/domain/entities"
	"github.com/hoth-industries/controltower/pkg/domain/repositories"
	domainservices "github.com/hoth-industries/controltower/pkg/domain/services"
	"github.com/hoth-industries/controltower/pkg/infrastructure/repositories/csv"
	"github.com/hoth-industries/controltower/pkg/infrastructure/repositories/memory"
	"github.com/hoth-industries/controltower/pkg/metrics"
)

// DatasetFiles names the five source CSV files
type DatasetFiles struct {
	Orders     string
	Quality    string
	RFQ        string
	Geometry   string
	Similarity string
}

// Dataset is an immutable snapshot of the loaded source tables, the derived
// warehouse, and the keyed repositories the analyses read from. It is rebuilt
// from the CSVs on every load; nothing is ever written back.
type Dataset struct {
	Orders    []*entities.Order
	Warehouse []entities.WarehouseRow

	OrderRepo  repositories.OrderRepository
	Quality    repositories.QualityRepository
	Geometry   repositories.GeometryRepository
	Similarity repositories.SimilarityRepository
	RFQ        repositories.RFQRepository

	partRows map[entities.PartNumber][]*entities.WarehouseRow
}

// PartRows returns the warehouse rows for a part in warehouse order.
// Unknown parts yield an empty slice.
func (d *Dataset) PartRows(partNumber entities.PartNumber) []*entities.WarehouseRow {
	return d.partRows[partNumber]
}

// DatasetService loads the source CSVs and assembles the analysis snapshot
type DatasetService struct {
	loader     *csv.Loader
	normalizer *domainservices.SupplierNormalizer
	validator  *domainservices.DatasetValidator
	warehouse  *WarehouseService
	logger     *zap.Logger
}

// NewDatasetService creates a dataset service using the given supplier
// normalizer. The logger may not be nil; pass zap.NewNop() to discard.
func NewDatasetService(normalizer *domainservices.SupplierNormalizer, logger *zap.Logger) *DatasetService {
	return &DatasetService{
		loader:     csv.NewLoader(),
		normalizer: normalizer,
		validator:  domainservices.NewDatasetValidator(),
		warehouse:  NewWarehouseService(),
		logger:     logger,
	}
}

// Load reads the five source tables, derives supplier keys and lateness,
// builds the repositories and the warehouse, and returns the snapshot.
// A missing or unreadable file is the only fatal condition.
func (s *DatasetService) Load(files DatasetFiles) (*Dataset, error) {
	start := time.Now()

	orders, err := s.loader.LoadOrders(files.Orders)
	if err != nil {
		return nil, fmt.Errorf("error loading orders: %w", err)
	}

	quality, err := s.loader.LoadQualityInspections(files.Quality)
	if err != nil {
		return nil, fmt.Errorf("error loading quality inspections: %w", err)
	}

	rfq, err := s.loader.LoadRFQResponses(files.RFQ)
	if err != nil {
		return nil, fmt.Errorf("error loading RFQ responses: %w", err)
	}

	geometry, err := s.loader.LoadGeometryMetadata(files.Geometry)
	if err != nil {
		return nil, fmt.Errorf("error loading geometry metadata: %w", err)
	}

	similarity, err := s.loader.LoadSimilarityEdges(files.Similarity)
	if err != nil {
		return nil, fmt.Errorf("error loading similarity edges: %w", err)
	}

	for _, order := range orders {
		order.SupplierNorm = s.normalizer.Normalize(order.SupplierName)
	}
	for _, response := range rfq {
		response.SupplierNorm = s.normalizer.Normalize(response.SupplierName)
	}

	validation := s.validator.ValidateConsistency(orders, quality, similarity, geometry)
	for _, warning := range validation.Warnings {
		metrics.DatasetWarnings.Inc()
		s.logger.Warn("dataset consistency warning", zap.String("warning", warning))
	}

	orderRepo := memory.NewOrderRepository(len(orders))
	if err := orderRepo.LoadOrders(orders); err != nil {
		return nil, fmt.Errorf("failed to load orders into repository: %w", err)
	}

	qualityRepo := memory.NewQualityRepository(len(quality))
	if err := qualityRepo.LoadInspections(quality); err != nil {
		return nil, fmt.Errorf("failed to load inspections into repository: %w", err)
	}

	geometryRepo := memory.NewGeometryRepository(len(geometry))
	if err := geometryRepo.LoadMetadata(geometry); err != nil {
		return nil, fmt.Errorf("failed to load geometry metadata into repository: %w", err)
	}

	similarityRepo := memory.NewSimilarityRepository(len(similarity))
	if err := similarityRepo.LoadEdges(similarity); err != nil {
		return nil, fmt.Errorf("failed to load similarity edges into repository: %w", err)
	}

	rfqRepo := memory.NewRFQRepository(len(rfq))
	if err := rfqRepo.LoadResponses(rfq); err != nil {
		return nil, fmt.Errorf("failed to load RFQ responses into repository: %w", err)
	}

	warehouse, err := s.warehouse.Build(orders, geometryRepo, qualityRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to build warehouse: %w", err)
	}

	dataset := &Dataset{
		Orders:     orders,
		Warehouse:  warehouse,
		OrderRepo:  orderRepo,
		Quality:    qualityRepo,
		Geometry:   geometryRepo,
		Similarity: similarityRepo,
		RFQ:        rfqRepo,
	}
	dataset.indexPartRows()

	metrics.RowsLoaded.WithLabelValues("orders").Add(float64(len(orders)))
	metrics.RowsLoaded.WithLabelValues("quality").Add(float64(len(quality)))
	metrics.RowsLoaded.WithLabelValues("rfq").Add(float64(len(rfq)))
	metrics.RowsLoaded.WithLabelValues("geometry").Add(float64(len(geometry)))
	metrics.RowsLoaded.WithLabelValues("similarity").Add(float64(len(similarity)))
	metrics.WarehouseBuildDuration.Observe(time.Since(start).Seconds())

	s.logger.Info("dataset loaded",
		zap.Int("orders", len(orders)),
		zap.Int("quality_rows", len(quality)),
		zap.Int("rfq_rows", len(rfq)),
		zap.Int("geometry_rows", len(geometry)),
		zap.Int("similarity_edges", len(similarity)),
		zap.Int("warehouse_rows", len(warehouse)),
		zap.Int("warnings", len(validation.Warnings)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return dataset, nil
}

// NewDatasetFromEntities assembles a snapshot from already-constructed
// entities. Used by tests and by callers embedding the library without CSV
// input.
func NewDatasetFromEntities(
	orders []*entities.Order,
	quality []*entities.QualityInspection,
	rfq []*entities.RFQResponse,
	geometry []*entities.GeometryMetadata,
	similarity []*entities.SimilarityEdge,
) (*Dataset, error) {
	orderRepo := memory.NewOrderRepository(len(orders))
	if err := orderRepo.LoadOrders(orders); err != nil {
		return nil, err
	}
	qualityRepo := memory.NewQualityRepository(len(quality))
	if err := qualityRepo.LoadInspections(quality); err != nil {
		return nil, err
	}
	geometryRepo := memory.NewGeometryRepository(len(geometry))
	if err := geometryRepo.LoadMetadata(geometry); err != nil {
		return nil, err
	}
	similarityRepo := memory.NewSimilarityRepository(len(similarity))
	if err := similarityRepo.LoadEdges(similarity); err != nil {
		return nil, err
	}
	rfqRepo := memory.NewRFQRepository(len(rfq))
	if err := rfqRepo.LoadResponses(rfq); err != nil {
		return nil, err
	}

	warehouse, err := NewWarehouseService().Build(orders, geometryRepo, qualityRepo)
	if err != nil {
		return nil, err
	}

	dataset := &Dataset{
		Orders:     orders,
		Warehouse:  warehouse,
		OrderRepo:  orderRepo,
		Quality:    qualityRepo,
		Geometry:   geometryRepo,
		Similarity: similarityRepo,
		RFQ:        rfqRepo,
	}
	dataset.indexPartRows()
	return dataset, nil
}

func (d *Dataset) indexPartRows() {
	d.partRows = make(map[entities.PartNumber][]*entities.WarehouseRow)
	for i := range d.Warehouse {
		row := &d.Warehouse[i]
		d.partRows[row.PartNumber] = append(d.partRows[row.PartNumber], row)
	}
}
