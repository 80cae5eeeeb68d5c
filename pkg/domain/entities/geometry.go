package entities

// GeometryMetadata describes the geometric profile of a known part.
// One row per part.
type GeometryMetadata struct {
	PartNumber      PartNumber
	PartDescription string
	GeometryType    string
	ComplexityScore float64
}

// SimilarityEdge is a directed geometric-similarity relation between two
// parts with a score in [0, 1]. The data may or may not contain the
// symmetric edge.
type SimilarityEdge struct {
	SourcePart  PartNumber
	SimilarPart PartNumber
	Score       float64
}
