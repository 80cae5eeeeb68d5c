package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoth-industries/controltower/pkg/domain/entities"
	"github.com/hoth-industries/controltower/pkg/infrastructure/repositories/memory"
	infratesting "github.com/hoth-industries/controltower/pkg/infrastructure/testing"
)

func TestWarehouseService_Build(t *testing.T) {
	orders := []*entities.Order{
		infratesting.MakeOrder("PO-1", "Acme", "ACME", "HX-5512", "Heat Exchanger Core", "2024-01-10", "2024-01-15", 50, "120.50"),
		infratesting.MakeOrder("PO-2", "Kessel", "KESSEL", "FINS-7715", "Cooling Fin Array", "2024-02-01", "2024-02-01", 40, "45.00"),
		infratesting.MakeOrder("PO-3", "Orbital", "ORBITAL", "HX-5515", "Heat Exchanger Shell", "2024-03-01", "", 10, "310.00"),
	}

	geometryRepo := memory.NewGeometryRepository(2)
	require.NoError(t, geometryRepo.LoadMetadata([]*entities.GeometryMetadata{
		infratesting.MakeGeometry("HX-5512", "Heat Exchanger Core", "BRAZED_PLATE", 7.5),
		// Description mismatch: must not join to PO-3.
		infratesting.MakeGeometry("HX-5515", "Different Description", "SHELL_TUBE", 6.0),
	}))

	qualityRepo := memory.NewQualityRepository(3)
	require.NoError(t, qualityRepo.LoadInspections([]*entities.QualityInspection{
		infratesting.MakeInspection("PO-1", 50, 3, "Surface finish out of spec"),
		infratesting.MakeInspection("PO-1", 20, 0, ""),
		infratesting.MakeInspection("PO-3", 0, 0, ""),
	}))

	rows, err := NewWarehouseService().Build(orders, geometryRepo, qualityRepo)
	require.NoError(t, err)

	// PO-1 fans out to two rows; total row count is >= order count.
	require.Len(t, rows, 4)
	assert.GreaterOrEqual(t, len(rows), len(orders))

	// Every order appears at least once.
	seen := make(map[entities.OrderID]int)
	for _, row := range rows {
		seen[row.OrderID]++
	}
	assert.Equal(t, 2, seen["PO-1"])
	assert.Equal(t, 1, seen["PO-2"])
	assert.Equal(t, 1, seen["PO-3"])

	// Geometry joined on (part number, description).
	assert.True(t, rows[0].HasGeometry)
	assert.Equal(t, "BRAZED_PLATE", rows[0].GeometryType)
	assert.False(t, rows[2].HasGeometry, "PO-2 has no geometry metadata")
	assert.False(t, rows[3].HasGeometry, "PO-3 description mismatch must not join")

	// Fan-out rows keep the order fields and carry their own quality fields.
	assert.Equal(t, 0.06, rows[0].RejectionRate)
	assert.Equal(t, "Surface finish out of spec", rows[0].RejectionReason)
	assert.True(t, rows[1].HasInspection)
	assert.Equal(t, float64(0), rows[1].RejectionRate)

	// Order without inspections keeps zero quality fields.
	assert.False(t, rows[2].HasInspection)
	assert.Equal(t, int64(0), rows[2].PartsInspected)

	// Zero parts inspected is zero-safe, never NaN.
	assert.True(t, rows[3].HasInspection)
	assert.Equal(t, float64(0), rows[3].RejectionRate)
}

func TestWarehouseService_Build_EmptyOrders(t *testing.T) {
	rows, err := NewWarehouseService().Build(nil, memory.NewGeometryRepository(0), memory.NewQualityRepository(0))
	require.NoError(t, err)
	assert.Empty(t, rows)
}
