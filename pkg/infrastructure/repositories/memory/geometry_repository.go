package memory

import (
	"github.com/hoth-industries/controltower/pkg/domain/entities"
	"github.com/hoth-industries/controltower/pkg/domain/repositories"
)

type partDescriptionKey struct {
	partNumber  entities.PartNumber
	description string
}

// GeometryRepository provides in-memory geometry metadata storage
type GeometryRepository struct {
	metadata  []entities.GeometryMetadata
	byPart    map[entities.PartNumber]int
	byPartKey map[partDescriptionKey]int
}

// NewGeometryRepository creates a new in-memory geometry repository
func NewGeometryRepository(expectedParts int) *GeometryRepository {
	return &GeometryRepository{
		metadata:  make([]entities.GeometryMetadata, 0, expectedParts),
		byPart:    make(map[entities.PartNumber]int, expectedParts),
		byPartKey: make(map[partDescriptionKey]int, expectedParts),
	}
}

// Verify interface compliance
var _ repositories.GeometryRepository = (*GeometryRepository)(nil)

// LoadMetadata loads geometry metadata into the repository
func (r *GeometryRepository) LoadMetadata(metadata []*entities.GeometryMetadata) error {
	for _, meta := range metadata {
		r.AddMetadata(*meta)
	}
	return nil
}

// AddMetadata adds a geometry record to the repository. The table carries one
// row per part; a later duplicate wins.
func (r *GeometryRepository) AddMetadata(meta entities.GeometryMetadata) {
	r.byPart[meta.PartNumber] = len(r.metadata)
	r.byPartKey[partDescriptionKey{meta.PartNumber, meta.PartDescription}] = len(r.metadata)
	r.metadata = append(r.metadata, meta)
}

// FindByPartNumber returns the geometry record for a part, if known
func (r *GeometryRepository) FindByPartNumber(partNumber entities.PartNumber) (*entities.GeometryMetadata, bool) {
	index, exists := r.byPart[partNumber]
	if !exists {
		return nil, false
	}
	return &r.metadata[index], true
}

// FindByPartAndDescription returns the geometry record matching both the part
// number and description, the join key of the warehouse build.
func (r *GeometryRepository) FindByPartAndDescription(partNumber entities.PartNumber, description string) (*entities.GeometryMetadata, bool) {
	index, exists := r.byPartKey[partDescriptionKey{partNumber, description}]
	if !exists {
		return nil, false
	}
	return &r.metadata[index], true
}

// GetAllMetadata returns all geometry records
func (r *GeometryRepository) GetAllMetadata() ([]*entities.GeometryMetadata, error) {
	metadata := make([]*entities.GeometryMetadata, 0, len(r.metadata))
	for i := range r.metadata {
		metadata = append(metadata, &r.metadata[i])
	}
	return metadata, nil
}
