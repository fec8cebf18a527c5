package spatial

import "github.com/frontierlabs/evefrontier/internal/starmap"

// PointsFromStarmap projects every system in sm into the Point shape the
// index is built over.
func PointsFromStarmap(sm *starmap.Starmap) []Point {
	systems := sm.Systems()
	points := make([]Point, 0, len(systems))
	for _, sys := range systems {
		points = append(points, Point{ID: sys.ID, X: sys.X, Y: sys.Y, Z: sys.Z})
	}
	return points
}

// BuildFromStarmap builds an index directly from a loaded Starmap, with
// no embedded metadata (v1 persistence semantics).
func BuildFromStarmap(sm *starmap.Starmap) *SpatialIndex {
	return Build(PointsFromStarmap(sm))
}

// BuildFromStarmapWithMetadata builds an index directly from a loaded
// Starmap, embedding dataset provenance metadata (v2 persistence).
func BuildFromStarmapWithMetadata(sm *starmap.Starmap, meta DatasetMetadata) *SpatialIndex {
	return BuildWithMetadata(PointsFromStarmap(sm), meta)
}
