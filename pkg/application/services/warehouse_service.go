package services

import (
	"fmt"

	"github.com/hoth-industries/controltower/pkg/domain/entities"
	"github.com/hoth-industries/controltower/pkg/domain/repositories"
)

// WarehouseService builds the denormalized analysis warehouse from the source
// tables. The build is a pure transform: orders are left-joined to geometry
// metadata on (part number, description) and then to quality inspections on
// order id, fanning out over multiple inspection rows.
type WarehouseService struct{}

// NewWarehouseService creates a new warehouse service
func NewWarehouseService() *WarehouseService {
	return &WarehouseService{}
}

// Build produces one warehouse row per (order, matched inspection) pair.
// Every order appears at least once: orders without inspections get a single
// row with zero quality fields, and orders without geometry metadata keep
// empty geometry fields. The output row count is therefore always >= the
// order count.
func (s *WarehouseService) Build(
	orders []*entities.Order,
	geometryRepo repositories.GeometryRepository,
	qualityRepo repositories.QualityRepository,
) ([]entities.WarehouseRow, error) {
	rows := make([]entities.WarehouseRow, 0, len(orders))

	for _, order := range orders {
		base := entities.WarehouseRow{Order: *order}

		if meta, found := geometryRepo.FindByPartAndDescription(order.PartNumber, order.PartDescription); found {
			base.HasGeometry = true
			base.GeometryType = meta.GeometryType
			base.ComplexityScore = meta.ComplexityScore
		}

		inspections, err := qualityRepo.GetByOrderID(order.OrderID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up inspections for order %s: %w", order.OrderID, err)
		}

		if len(inspections) == 0 {
			rows = append(rows, base)
			continue
		}

		for _, inspection := range inspections {
			row := base
			row.HasInspection = true
			row.InspectionDate = inspection.InspectionDate
			row.PartsInspected = inspection.PartsInspected
			row.PartsRejected = inspection.PartsRejected
			row.RejectionReason = inspection.RejectionReason
			row.RejectionRate = entities.RejectionRate(inspection.PartsRejected, inspection.PartsInspected)
			rows = append(rows, row)
		}
	}

	return rows, nil
}
