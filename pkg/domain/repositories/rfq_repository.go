package repositories

import "github.com/hoth-industries/controltower/pkg/domain/entities"

// RFQRepository provides access to supplier quote responses
type RFQRepository interface {
	// GetByDescription matches part descriptions case-insensitively.
	GetByDescription(partDescription string) ([]*entities.RFQResponse, error)
	GetAllResponses() ([]*entities.RFQResponse, error)
	LoadResponses(responses []*entities.RFQResponse) error
}
