package services

import (
	"testing"

	"github.com/hoth-industries/controltower/pkg/domain/entities"
)

func TestDatasetValidator_CleanDataset(t *testing.T) {
	validator := NewDatasetValidator()

	orders := []*entities.Order{
		{OrderID: "PO-1", PartNumber: "HX-5512"},
		{OrderID: "PO-2", PartNumber: "HX-5515"},
	}
	quality := []*entities.QualityInspection{
		{OrderID: "PO-1", PartsInspected: 10},
	}
	similarity := []*entities.SimilarityEdge{
		{SourcePart: "HX-5512", SimilarPart: "HX-5515", Score: 0.97},
	}

	result := validator.ValidateConsistency(orders, quality, similarity, nil)
	if len(result.Warnings) != 0 {
		t.Errorf("Expected no warnings for consistent dataset, got %v", result.Warnings)
	}
}

func TestDatasetValidator_FindsInconsistencies(t *testing.T) {
	validator := NewDatasetValidator()

	orders := []*entities.Order{
		{OrderID: "PO-1", PartNumber: "HX-5512"},
		{OrderID: "PO-1", PartNumber: "HX-5512"},
	}
	quality := []*entities.QualityInspection{
		{OrderID: "PO-404", PartsInspected: 5},
		{OrderID: "PO-1", PartsInspected: 5},
	}
	similarity := []*entities.SimilarityEdge{
		{SourcePart: "GHOST-1", SimilarPart: "HX-5512", Score: 0.96},
		{SourcePart: "GHOST-1", SimilarPart: "HX-5515", Score: 0.95},
		{SourcePart: "FINS-7715", SimilarPart: "HX-5512", Score: 0.9},
	}
	geometry := []*entities.GeometryMetadata{
		{PartNumber: "FINS-7715", GeometryType: "FIN"},
	}

	result := validator.ValidateConsistency(orders, quality, similarity, geometry)

	if len(result.DuplicateOrderIDs) != 1 || result.DuplicateOrderIDs[0] != "PO-1" {
		t.Errorf("Expected duplicate order id PO-1, got %v", result.DuplicateOrderIDs)
	}
	if result.OrphanedQualityRows != 1 {
		t.Errorf("Expected 1 orphaned quality row, got %d", result.OrphanedQualityRows)
	}
	if len(result.UnknownSimilarityParts) != 1 || result.UnknownSimilarityParts[0] != "GHOST-1" {
		t.Errorf("Expected one unknown similarity source GHOST-1, got %v", result.UnknownSimilarityParts)
	}
	if len(result.Warnings) != 3 {
		t.Errorf("Expected 3 warnings, got %d: %v", len(result.Warnings), result.Warnings)
	}
}
