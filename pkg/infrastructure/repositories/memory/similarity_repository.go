package memory

import (
	"sort"

	"github.com/hoth-industries/controltower/pkg/domain/entities"
	"github.com/hoth-industries/controltower/pkg/domain/repositories"
)

// SimilarityRepository provides in-memory storage of similarity edges
type SimilarityRepository struct {
	edges    []entities.SimilarityEdge
	bySource map[entities.PartNumber][]int
}

// NewSimilarityRepository creates a new in-memory similarity repository
func NewSimilarityRepository(expectedEdges int) *SimilarityRepository {
	return &SimilarityRepository{
		edges:    make([]entities.SimilarityEdge, 0, expectedEdges),
		bySource: make(map[entities.PartNumber][]int),
	}
}

// Verify interface compliance
var _ repositories.SimilarityRepository = (*SimilarityRepository)(nil)

// LoadEdges loads similarity edges into the repository
func (r *SimilarityRepository) LoadEdges(edges []*entities.SimilarityEdge) error {
	for _, edge := range edges {
		r.AddEdge(*edge)
	}

	// Keep per-source edges ordered by descending score, ascending similar
	// part number on ties. This is the documented deterministic tie-break
	// for "highest similarity" lookups.
	for source, indexes := range r.bySource {
		sort.SliceStable(indexes, func(a, b int) bool {
			ea, eb := r.edges[indexes[a]], r.edges[indexes[b]]
			if ea.Score != eb.Score {
				return ea.Score > eb.Score
			}
			return ea.SimilarPart < eb.SimilarPart
		})
		r.bySource[source] = indexes
	}

	return nil
}

// AddEdge adds a similarity edge to the repository
func (r *SimilarityRepository) AddEdge(edge entities.SimilarityEdge) {
	r.bySource[edge.SourcePart] = append(r.bySource[edge.SourcePart], len(r.edges))
	r.edges = append(r.edges, edge)
}

// GetEdgesFrom returns edges originating at the given part, best match first
func (r *SimilarityRepository) GetEdgesFrom(partNumber entities.PartNumber) ([]*entities.SimilarityEdge, error) {
	indexes := r.bySource[partNumber]
	edges := make([]*entities.SimilarityEdge, 0, len(indexes))
	for _, i := range indexes {
		edges = append(edges, &r.edges[i])
	}
	return edges, nil
}

// GetAllEdges returns all similarity edges in input order
func (r *SimilarityRepository) GetAllEdges() ([]*entities.SimilarityEdge, error) {
	edges := make([]*entities.SimilarityEdge, 0, len(r.edges))
	for i := range r.edges {
		edges = append(edges, &r.edges[i])
	}
	return edges, nil
}
