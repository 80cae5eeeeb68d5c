package memory

import (
	"github.com/hoth-industries/controltower/pkg/domain/entities"
	"github.com/hoth-industries/controltower/pkg/domain/repositories"
)

// OrderRepository provides in-memory purchase order storage
type OrderRepository struct {
	orders []entities.Order
	byPart map[entities.PartNumber][]int
}

// NewOrderRepository creates a new in-memory order repository
func NewOrderRepository(expectedOrders int) *OrderRepository {
	return &OrderRepository{
		orders: make([]entities.Order, 0, expectedOrders),
		byPart: make(map[entities.PartNumber][]int),
	}
}

// Verify interface compliance
var _ repositories.OrderRepository = (*OrderRepository)(nil)

// LoadOrders loads orders into the repository
func (r *OrderRepository) LoadOrders(orders []*entities.Order) error {
	for _, order := range orders {
		r.AddOrder(*order)
	}
	return nil
}

// AddOrder adds an order to the repository
func (r *OrderRepository) AddOrder(order entities.Order) {
	r.byPart[order.PartNumber] = append(r.byPart[order.PartNumber], len(r.orders))
	r.orders = append(r.orders, order)
}

// GetByPartNumber returns all orders for a part in input order
func (r *OrderRepository) GetByPartNumber(partNumber entities.PartNumber) ([]*entities.Order, error) {
	indexes := r.byPart[partNumber]
	orders := make([]*entities.Order, 0, len(indexes))
	for _, i := range indexes {
		orders = append(orders, &r.orders[i])
	}
	return orders, nil
}

// GetAllOrders returns all orders in input order
func (r *OrderRepository) GetAllOrders() ([]*entities.Order, error) {
	orders := make([]*entities.Order, 0, len(r.orders))
	for i := range r.orders {
		orders = append(orders, &r.orders[i])
	}
	return orders, nil
}
