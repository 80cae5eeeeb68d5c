package services

import (
	"fmt"

	"github.com/hoth-industries/controltower/pkg/domain/entities"
)

// DatasetValidator performs non-fatal referential checks across the loaded
// source tables. Findings are reported as warnings; a run is never aborted
// over them.
type DatasetValidator struct{}

// NewDatasetValidator creates a new dataset validator
func NewDatasetValidator() *DatasetValidator {
	return &DatasetValidator{}
}

// ValidationResult contains the results of dataset consistency validation
type ValidationResult struct {
	DuplicateOrderIDs      []entities.OrderID
	OrphanedQualityRows    int
	UnknownSimilarityParts []entities.PartNumber
	Warnings               []string
}

// ValidateConsistency checks referential integrity between the source tables:
// quality rows must reference a known order, and similarity sources should be
// known either from orders or geometry metadata.
func (v *DatasetValidator) ValidateConsistency(
	orders []*entities.Order,
	quality []*entities.QualityInspection,
	similarity []*entities.SimilarityEdge,
	geometry []*entities.GeometryMetadata,
) *ValidationResult {
	result := &ValidationResult{}

	orderIDs := make(map[entities.OrderID]int, len(orders))
	knownParts := make(map[entities.PartNumber]bool, len(orders)+len(geometry))
	for _, order := range orders {
		orderIDs[order.OrderID]++
		knownParts[order.PartNumber] = true
	}
	for _, meta := range geometry {
		knownParts[meta.PartNumber] = true
	}

	for id, count := range orderIDs {
		if count > 1 {
			result.DuplicateOrderIDs = append(result.DuplicateOrderIDs, id)
		}
	}
	if len(result.DuplicateOrderIDs) > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("found %d duplicate order ids", len(result.DuplicateOrderIDs)))
	}

	for _, inspection := range quality {
		if _, exists := orderIDs[inspection.OrderID]; !exists {
			result.OrphanedQualityRows++
		}
	}
	if result.OrphanedQualityRows > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%d quality rows reference unknown orders", result.OrphanedQualityRows))
	}

	seenUnknown := make(map[entities.PartNumber]bool)
	for _, edge := range similarity {
		if !knownParts[edge.SourcePart] && !seenUnknown[edge.SourcePart] {
			seenUnknown[edge.SourcePart] = true
			result.UnknownSimilarityParts = append(result.UnknownSimilarityParts, edge.SourcePart)
		}
	}
	if len(result.UnknownSimilarityParts) > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%d similarity sources match no order or geometry record", len(result.UnknownSimilarityParts)))
	}

	return result
}
