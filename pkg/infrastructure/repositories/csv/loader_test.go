package csv

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadOrders(t *testing.T) {
	loader := NewLoader()

	orders, err := loader.LoadOrders(filepath.Join("testdata", "orders.csv"))
	require.NoError(t, err)
	require.Len(t, orders, 5)

	first := orders[0]
	assert.Equal(t, "PO-1001", string(first.OrderID))
	assert.Equal(t, "Acme Inc", first.SupplierName)
	assert.Equal(t, "HX-5512", string(first.PartNumber))
	assert.Equal(t, int64(50), int64(first.Quantity))
	require.True(t, first.UnitPrice.Valid)
	assert.Equal(t, "120.5", first.UnitPrice.Decimal.String())
	require.NotNil(t, first.DaysLate)
	assert.Equal(t, 5, *first.DaysLate)

	// PO-1002 delivered two days early.
	require.NotNil(t, orders[1].DaysLate)
	assert.Equal(t, -2, *orders[1].DaysLate)

	// PO-1003 has no delivery date, PO-1004 an unparsable promised date:
	// both load with unknown lateness instead of failing.
	assert.Nil(t, orders[2].DaysLate)
	assert.Nil(t, orders[3].PromisedDate)
	assert.Nil(t, orders[3].DaysLate)

	// PO-1005 has no unit price.
	assert.False(t, orders[4].UnitPrice.Valid)
}

func TestLoader_LoadOrders_HeaderMismatch(t *testing.T) {
	loader := NewLoader()

	_, err := loader.LoadOrders(filepath.Join("testdata", "bad_header.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "header mismatch")
}

func TestLoader_LoadOrders_MissingFile(t *testing.T) {
	loader := NewLoader()

	_, err := loader.LoadOrders(filepath.Join("testdata", "no_such_file.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open")
}

func TestLoader_LoadQualityInspections(t *testing.T) {
	loader := NewLoader()

	inspections, err := loader.LoadQualityInspections(filepath.Join("testdata", "quality_inspections.csv"))
	require.NoError(t, err)
	require.Len(t, inspections, 4)

	assert.Equal(t, "PO-1001", string(inspections[0].OrderID))
	assert.Equal(t, int64(50), inspections[0].PartsInspected)
	assert.Equal(t, int64(3), inspections[0].PartsRejected)
	assert.Equal(t, "Surface finish out of spec", inspections[0].RejectionReason)

	// Second inspection row for the same order.
	assert.Equal(t, "PO-1001", string(inspections[1].OrderID))
	assert.Empty(t, inspections[1].RejectionReason)

	// Zero-part inspection loads without fuss.
	assert.Equal(t, int64(0), inspections[3].PartsInspected)
}

func TestLoader_LoadRFQResponses(t *testing.T) {
	loader := NewLoader()

	responses, err := loader.LoadRFQResponses(filepath.Join("testdata", "rfq_responses.csv"))
	require.NoError(t, err)
	require.Len(t, responses, 3)

	assert.Equal(t, "Heat Exchanger Core", responses[0].PartDescription)
	require.True(t, responses[0].QuotedPrice.Valid)
	assert.Equal(t, "111", responses[0].QuotedPrice.Decimal.String())
	require.NotNil(t, responses[0].QuoteDate)
}

func TestLoader_LoadGeometryMetadata(t *testing.T) {
	loader := NewLoader()

	metadata, err := loader.LoadGeometryMetadata(filepath.Join("testdata", "geometry_metadata.csv"))
	require.NoError(t, err)
	require.Len(t, metadata, 3)

	assert.Equal(t, "HX-5512", string(metadata[0].PartNumber))
	assert.Equal(t, "BRAZED_PLATE", metadata[0].GeometryType)
	assert.Equal(t, 7.5, metadata[0].ComplexityScore)
}

func TestLoader_LoadSimilarityEdges(t *testing.T) {
	loader := NewLoader()

	edges, err := loader.LoadSimilarityEdges(filepath.Join("testdata", "geometry_similarity.csv"))
	require.NoError(t, err)

	// The row with an unparsable score is skipped, not faulted.
	require.Len(t, edges, 3)
	assert.Equal(t, "HX-5512", string(edges[0].SourcePart))
	assert.Equal(t, "HX-5515", string(edges[0].SimilarPart))
	assert.Equal(t, 0.97, edges[0].Score)
}
