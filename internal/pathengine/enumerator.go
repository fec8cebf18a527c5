package pathengine

import (
	"github.com/frontierlabs/evefrontier/internal/graph"
	"github.com/frontierlabs/evefrontier/internal/spatial"
)

// GateOnlyEnumerator offers only gate edges, each weighted 1. Used by BFS
// and by Dijkstra/A* runs that mirror BFS hop counting.
type GateOnlyEnumerator struct {
	Graph *graph.Graph
}

func (e *GateOnlyEnumerator) Edges(from int64) []Edge {
	neighbours := e.Graph.Neighbours(from)
	edges := make([]Edge, 0, len(neighbours))
	for _, to := range neighbours {
		edges = append(edges, Edge{From: from, To: to, Weight: 1, IsGate: true})
	}
	return edges
}

// PositionLookup resolves a system id to its Cartesian position, in
// metres, within the shared dataset frame.
type PositionLookup interface {
	Position(id int64) (x, y, z float64, ok bool)
}

// metresPerLightYear mirrors starmap's constant; kept local so this
// package does not need to import starmap just for a unit conversion.
const metresPerLightYear = 9.4607304725808e15

// HybridEnumerator offers gate edges from Graph plus, when a spatial
// index and max jump radius are configured, free-space edges to every
// system within max_jump light-years. AvoidGates suppresses gate edges;
// omitting Spatial falls back to gate edges only (callers wanting the
// quadratic all-systems scan build a synthetic Spatial index over every
// system instead, per spec).
type HybridEnumerator struct {
	Graph      *graph.Graph
	Positions  PositionLookup
	Spatial    *spatial.SpatialIndex
	MaxJumpLY  float64
	HasMaxJump bool
	AvoidGates bool
}

func (e *HybridEnumerator) Edges(from int64) []Edge {
	var edges []Edge

	if !e.AvoidGates && e.Graph != nil {
		for _, to := range e.Graph.Neighbours(from) {
			edges = append(edges, Edge{From: from, To: to, Weight: 1, IsGate: true})
		}
	}

	if e.Spatial != nil && e.HasMaxJump && e.Positions != nil {
		x, y, z, ok := e.Positions.Position(from)
		if ok {
			radiusMetres := e.MaxJumpLY * metresPerLightYear
			for _, hit := range e.Spatial.WithinRadius(x, y, z, radiusMetres) {
				if hit.ID == from {
					continue
				}
				distanceLY := hit.Distance / metresPerLightYear
				edges = append(edges, Edge{From: from, To: hit.ID, Weight: distanceLY, IsGate: false, DistanceLY: distanceLY})
			}
		}
	}

	return edges
}
