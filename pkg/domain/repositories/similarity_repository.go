package repositories

import "github.com/hoth-industries/controltower/pkg/domain/entities"

// SimilarityRepository provides access to directed geometric-similarity edges
type SimilarityRepository interface {
	// GetEdgesFrom returns the edges whose source is the given part, ordered
	// by descending score with ties broken by ascending similar part number.
	GetEdgesFrom(partNumber entities.PartNumber) ([]*entities.SimilarityEdge, error)
	GetAllEdges() ([]*entities.SimilarityEdge, error)
	LoadEdges(edges []*entities.SimilarityEdge) error
}
