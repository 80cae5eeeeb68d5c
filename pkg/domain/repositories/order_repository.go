package repositories

import "github.com/hoth-industries/controltower/pkg/domain/entities"

// OrderRepository provides access to purchase order history
type OrderRepository interface {
	GetByPartNumber(partNumber entities.PartNumber) ([]*entities.Order, error)
	GetAllOrders() ([]*entities.Order, error)
	LoadOrders(orders []*entities.Order) error
}
