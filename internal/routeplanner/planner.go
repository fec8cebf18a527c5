// Package routeplanner resolves a RouteRequest against a loaded Starmap
// into a RoutePlan: it validates constraint consistency, resolves names
// to ids, assembles the edge-admission predicate, dispatches to the
// requested pathfinding algorithm, and classifies each hop as a gate
// transition or a free-space jump.
package routeplanner

import (
	"github.com/frontierlabs/evefrontier/internal/graph"
	"github.com/frontierlabs/evefrontier/internal/pathengine"
	"github.com/frontierlabs/evefrontier/internal/spatial"
	"github.com/frontierlabs/evefrontier/internal/starmap"
)

// RoutePlanner ties together the immutable, process-lifetime data
// structures (Starmap, Graph, optional SpatialIndex) that every request
// is planned against.
type RoutePlanner struct {
	starmap *starmap.Starmap
	graph   *graph.Graph
	spatial *spatial.SpatialIndex
}

// New builds a RoutePlanner over sm. spatialIndex may be nil: hybrid
// free-space jump requests then build a spatial index fresh from every
// system in sm (see buildEnumerator).
func New(sm *starmap.Starmap, spatialIndex *spatial.SpatialIndex) *RoutePlanner {
	return &RoutePlanner{
		starmap: sm,
		graph:   graph.FromAdjacencySource(sm),
		spatial: spatialIndex,
	}
}

// PlanRoute resolves request against the planner's starmap and produces
// a RoutePlan, or an error per spec §4.7's four-step contract.
func (p *RoutePlanner) PlanRoute(request RouteRequest) (*RoutePlan, error) {
	startID, ok := p.starmap.SystemIDByName(request.StartName)
	if !ok {
		return nil, NewUnknownSystemError(request.StartName)
	}
	goalID, ok := p.starmap.SystemIDByName(request.GoalName)
	if !ok {
		return nil, NewUnknownSystemError(request.GoalName)
	}

	if err := request.Constraints.ValidateConsistency(); err != nil {
		return nil, err
	}

	enumerator := p.buildEnumerator(request.Constraints)
	admission := p.buildAdmission(request.Constraints)

	var result *pathengine.SearchResult
	var err error

	switch request.Algorithm {
	case AlgorithmBFS:
		result, err = pathengine.BFS(enumerator, admission, startID, goalID)
	case AlgorithmDijkstra:
		result, err = pathengine.Dijkstra(enumerator, admission, startID, goalID)
	case AlgorithmAStar:
		heuristic := p.euclideanHeuristic(goalID)
		result, err = pathengine.AStar(enumerator, admission, startID, goalID, heuristic)
	default:
		return nil, NewUnsupportedOptionError("unknown algorithm")
	}

	if err != nil {
		return nil, NewRouteNotFoundError(startID, goalID)
	}
	if len(result.Path) == 0 {
		return nil, NewRouteNotFoundError(startID, goalID)
	}

	gates, jumps := classifyHops(p.graph, result.Path)

	return &RoutePlan{
		Algorithm: request.Algorithm,
		Start:     startID,
		Goal:      goalID,
		Steps:     result.Path,
		Gates:     gates,
		Jumps:     jumps,
	}, nil
}

func (p *RoutePlanner) buildEnumerator(constraints RouteConstraints) pathengine.NeighbourSource {
	if !constraints.HasMaxJump && constraints.Ship == nil && !constraints.AvoidGates {
		return &pathengine.GateOnlyEnumerator{Graph: p.graph}
	}

	index := p.spatial
	if index == nil && constraints.HasMaxJump {
		index = spatial.BuildFromStarmap(p.starmap)
	}

	return &pathengine.HybridEnumerator{
		Graph:      p.graph,
		Positions:  p.starmap,
		Spatial:    index,
		MaxJumpLY:  constraints.MaxJumpLY,
		HasMaxJump: constraints.HasMaxJump,
		AvoidGates: constraints.AvoidGates,
	}
}

func (p *RoutePlanner) buildAdmission(constraints RouteConstraints) *pathengine.EdgeAdmission {
	config := pathengine.AdmissionConfig{
		HasMaxJump:         constraints.HasMaxJump,
		MaxJumpLY:          constraints.MaxJumpLY,
		AvoidCriticalState: constraints.AvoidCriticalState,
		Ship:               constraints.Ship,
		Loadout:            constraints.Loadout,
		HeatConfig:         constraints.HeatConfig,
		FuelConfig:         constraints.FuelConfig,
	}
	if constraints.Loadout != nil {
		config.InitialFuel = constraints.Loadout.FuelUnits
	}
	return pathengine.NewEdgeAdmission(config)
}

func (p *RoutePlanner) euclideanHeuristic(goalID int64) pathengine.Heuristic {
	goal, ok := p.starmap.System(goalID)
	if !ok {
		return func(int64) float64 { return 0 }
	}
	return func(id int64) float64 {
		sys, ok := p.starmap.System(id)
		if !ok {
			return 0
		}
		return sys.LightYearsTo(goal)
	}
}
