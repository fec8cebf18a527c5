// Package spatial provides a static KD-tree spatial index over system
// positions, supporting k-nearest and radius queries, persistence to a
// versioned binary format, and freshness verification against the
// dataset the index claims to describe.
package spatial

// SpatialIndex is an immutable nearest-neighbour index over a fixed set
// of points, built once and queried many times.
type SpatialIndex struct {
	root     *kdNode
	metadata *DatasetMetadata
	count    int
}

// Build constructs an index with no embedded metadata (v1 persistence).
func Build(points []Point) *SpatialIndex {
	cp := append([]Point(nil), points...)
	return &SpatialIndex{root: buildKDTree(cp, 0), count: len(cp)}
}

// BuildWithMetadata constructs an index carrying dataset provenance, so
// a persisted copy can later be checked for freshness.
func BuildWithMetadata(points []Point, meta DatasetMetadata) *SpatialIndex {
	idx := Build(points)
	idx.metadata = &meta
	return idx
}

// Len returns the number of points in the index.
func (idx *SpatialIndex) Len() int {
	return idx.count
}

// Metadata returns the index's embedded dataset metadata, or nil for a
// v1 index built without it.
func (idx *SpatialIndex) Metadata() *DatasetMetadata {
	return idx.metadata
}

// Nearest returns the k closest points to (x, y, z), sorted by ascending
// distance with ties broken by ascending id.
func (idx *SpatialIndex) Nearest(x, y, z float64, k int) []Hit {
	return kNearest(idx.root, x, y, z, k)
}

// WithinRadius returns every point within r of (x, y, z), sorted
// ascending by distance then id.
func (idx *SpatialIndex) WithinRadius(x, y, z, r float64) []Hit {
	return withinRadius(idx.root, x, y, z, r)
}
