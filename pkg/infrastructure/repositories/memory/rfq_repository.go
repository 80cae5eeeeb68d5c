package memory

import (
	"strings"

	"github.com/hoth-industries/controltower/pkg/domain/entities"
	"github.com/hoth-industries/controltower/pkg/domain/repositories"
)

// RFQRepository provides in-memory storage of supplier quote responses
type RFQRepository struct {
	responses     []entities.RFQResponse
	byDescription map[string][]int
}

// NewRFQRepository creates a new in-memory RFQ repository
func NewRFQRepository(expectedResponses int) *RFQRepository {
	return &RFQRepository{
		responses:     make([]entities.RFQResponse, 0, expectedResponses),
		byDescription: make(map[string][]int),
	}
}

// Verify interface compliance
var _ repositories.RFQRepository = (*RFQRepository)(nil)

// LoadResponses loads RFQ responses into the repository
func (r *RFQRepository) LoadResponses(responses []*entities.RFQResponse) error {
	for _, response := range responses {
		r.AddResponse(*response)
	}
	return nil
}

// AddResponse adds an RFQ response to the repository
func (r *RFQRepository) AddResponse(response entities.RFQResponse) {
	key := strings.ToLower(response.PartDescription)
	r.byDescription[key] = append(r.byDescription[key], len(r.responses))
	r.responses = append(r.responses, response)
}

// GetByDescription returns quotes for a part description, matched
// case-insensitively, in input order
func (r *RFQRepository) GetByDescription(partDescription string) ([]*entities.RFQResponse, error) {
	indexes := r.byDescription[strings.ToLower(partDescription)]
	responses := make([]*entities.RFQResponse, 0, len(indexes))
	for _, i := range indexes {
		responses = append(responses, &r.responses[i])
	}
	return responses, nil
}

// GetAllResponses returns all RFQ responses in input order
func (r *RFQRepository) GetAllResponses() ([]*entities.RFQResponse, error) {
	responses := make([]*entities.RFQResponse, 0, len(r.responses))
	for i := range r.responses {
		responses = append(responses, &r.responses[i])
	}
	return responses, nil
}
