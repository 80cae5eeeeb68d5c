package repositories

import "github.com/hoth-industries/controltower/pkg/domain/entities"

// GeometryRepository provides access to part geometry metadata.
// Find methods report absence through the boolean since a missing record is
// ordinary left-join data, not a failure.
type GeometryRepository interface {
	FindByPartNumber(partNumber entities.PartNumber) (*entities.GeometryMetadata, bool)
	FindByPartAndDescription(partNumber entities.PartNumber, description string) (*entities.GeometryMetadata, bool)
	GetAllMetadata() ([]*entities.GeometryMetadata, error)
	LoadMetadata(metadata []*entities.GeometryMetadata) error
}
