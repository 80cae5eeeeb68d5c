package memory

import (
	"github.com/hoth-industries/controltower/pkg/domain/entities"
	"github.com/hoth-industries/controltower/pkg/domain/repositories"
)

// QualityRepository provides in-memory quality inspection storage
type QualityRepository struct {
	inspections []entities.QualityInspection
	byOrder     map[entities.OrderID][]int
}

// NewQualityRepository creates a new in-memory quality repository
func NewQualityRepository(expectedInspections int) *QualityRepository {
	return &QualityRepository{
		inspections: make([]entities.QualityInspection, 0, expectedInspections),
		byOrder:     make(map[entities.OrderID][]int),
	}
}

// Verify interface compliance
var _ repositories.QualityRepository = (*QualityRepository)(nil)

// LoadInspections loads inspection records into the repository
func (r *QualityRepository) LoadInspections(inspections []*entities.QualityInspection) error {
	for _, inspection := range inspections {
		r.AddInspection(*inspection)
	}
	return nil
}

// AddInspection adds an inspection record to the repository
func (r *QualityRepository) AddInspection(inspection entities.QualityInspection) {
	r.byOrder[inspection.OrderID] = append(r.byOrder[inspection.OrderID], len(r.inspections))
	r.inspections = append(r.inspections, inspection)
}

// GetByOrderID returns all inspection rows for an order in input order.
// Orders without inspections yield an empty slice.
func (r *QualityRepository) GetByOrderID(orderID entities.OrderID) ([]*entities.QualityInspection, error) {
	indexes := r.byOrder[orderID]
	inspections := make([]*entities.QualityInspection, 0, len(indexes))
	for _, i := range indexes {
		inspections = append(inspections, &r.inspections[i])
	}
	return inspections, nil
}

// GetAllInspections returns all inspection rows in input order
func (r *QualityRepository) GetAllInspections() ([]*entities.QualityInspection, error) {
	inspections := make([]*entities.QualityInspection, 0, len(r.inspections))
	for i := range r.inspections {
		inspections = append(inspections, &r.inspections[i])
	}
	return inspections, nil
}
