package repositories

import "github.com/hoth-industries/controltower/pkg/domain/entities"

// QualityRepository provides access to quality inspection records.
// An order may have zero or more inspection rows.
type QualityRepository interface {
	GetByOrderID(orderID entities.OrderID) ([]*entities.QualityInspection, error)
	GetAllInspections() ([]*entities.QualityInspection, error)
	LoadInspections(inspections []*entities.QualityInspection) error
}
