package pathengine

import (
	"math"
	"testing"

	"github.com/frontierlabs/evefrontier/internal/graph"
	"github.com/frontierlabs/evefrontier/internal/spatial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDijkstra_MirrorsBFSWithUnitWeights(t *testing.T) {
	enumerator := &GateOnlyEnumerator{Graph: linearGraph()}
	result, err := Dijkstra(enumerator, AlwaysAdmit(), 1, 5)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, result.Path)
	assert.Equal(t, 4.0, result.TotalCost)
}

func TestDijkstra_PrefersShortcutWhenWeighted(t *testing.T) {
	g := graph.New(map[int64][]int64{
		1: {2, 3},
		2: {1, 4},
		3: {1, 4},
		4: {2, 3},
	})
	enumerator := &weightedEnumerator{graph: g, weights: map[[2]int64]float64{
		{1, 2}: 10, {2, 1}: 10,
		{2, 4}: 10, {4, 2}: 10,
		{1, 3}: 1, {3, 1}: 1,
		{3, 4}: 1, {4, 3}: 1,
	}}

	result, err := Dijkstra(enumerator, AlwaysAdmit(), 1, 4)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3, 4}, result.Path)
	assert.InDelta(t, 2.0, result.TotalCost, 1e-9)
}

// weightedEnumerator is a synthetic NeighbourSource for exercising
// weighted search without routing through a real spatial index.
type weightedEnumerator struct {
	graph   *graph.Graph
	weights map[[2]int64]float64
}

func (e *weightedEnumerator) Edges(from int64) []Edge {
	var edges []Edge
	for _, to := range e.graph.Neighbours(from) {
		edges = append(edges, Edge{From: from, To: to, Weight: e.weights[[2]int64{from, to}], IsGate: false, DistanceLY: e.weights[[2]int64{from, to}]})
	}
	return edges
}

func TestDijkstra_ReturnsRouteNotFound(t *testing.T) {
	g := graph.New(map[int64][]int64{1: {2}, 2: {1}, 99: {}})
	enumerator := &GateOnlyEnumerator{Graph: g}
	_, err := Dijkstra(enumerator, AlwaysAdmit(), 1, 99)
	require.Error(t, err)
	var notFound *RouteNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestHybridEnumerator_OffersGateAndFreeSpaceEdges(t *testing.T) {
	g := graph.New(map[int64][]int64{1: {2}, 2: {1}})
	sm := fakePositions{
		1: {0, 0, 0},
		2: {0, 0, 0},
		3: {1 * metresPerLightYear, 0, 0},
	}
	idx := spatial.Build([]spatial.Point{
		{ID: 1, X: 0, Y: 0, Z: 0},
		{ID: 2, X: 0, Y: 0, Z: 0},
		{ID: 3, X: 1 * metresPerLightYear, Y: 0, Z: 0},
	})

	enumerator := &HybridEnumerator{
		Graph:      g,
		Positions:  sm,
		Spatial:    idx,
		MaxJumpLY:  2,
		HasMaxJump: true,
	}

	edges := enumerator.Edges(1)
	var sawGate, sawFreeSpace bool
	for _, e := range edges {
		if e.IsGate && e.To == 2 {
			sawGate = true
		}
		if !e.IsGate && e.To == 3 {
			sawFreeSpace = true
			assert.InDelta(t, 1.0, e.DistanceLY, 1e-6)
		}
	}
	assert.True(t, sawGate)
	assert.True(t, sawFreeSpace)
}

func TestHybridEnumerator_AvoidGatesSuppressesGateEdges(t *testing.T) {
	g := graph.New(map[int64][]int64{1: {2}, 2: {1}})
	enumerator := &HybridEnumerator{Graph: g, AvoidGates: true}
	edges := enumerator.Edges(1)
	for _, e := range edges {
		assert.False(t, e.IsGate)
	}
}

type fakePositions map[int64][3]float64

func (f fakePositions) Position(id int64) (float64, float64, float64, bool) {
	p, ok := f[id]
	if !ok {
		return 0, 0, 0, false
	}
	return p[0], p[1], p[2], true
}

func TestAStar_FindsOptimalPathWithHeuristic(t *testing.T) {
	g := graph.New(map[int64][]int64{
		1: {2, 3},
		2: {1, 4},
		3: {1, 4},
		4: {2, 3},
	})
	enumerator := &weightedEnumerator{graph: g, weights: map[[2]int64]float64{
		{1, 2}: 10, {2, 1}: 10,
		{2, 4}: 10, {4, 2}: 10,
		{1, 3}: 1, {3, 1}: 1,
		{3, 4}: 1, {4, 3}: 1,
	}}

	heuristic := func(id int64) float64 {
		if id == 4 {
			return 0
		}
		return 1
	}

	result, err := AStar(enumerator, AlwaysAdmit(), 1, 4, heuristic)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3, 4}, result.Path)
	assert.InDelta(t, 2.0, result.TotalCost, 1e-9)
}

func TestAStar_ZeroHeuristicMatchesDijkstra(t *testing.T) {
	enumerator := &GateOnlyEnumerator{Graph: linearGraph()}
	zero := func(int64) float64 { return 0 }
	result, err := AStar(enumerator, AlwaysAdmit(), 1, 5, zero)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, result.Path)
}

func TestEdgeAdmission_RejectsBeyondMaxJump(t *testing.T) {
	admission := NewEdgeAdmission(AdmissionConfig{HasMaxJump: true, MaxJumpLY: 5})
	edge := Edge{IsGate: false, DistanceLY: 10}
	admitted, _ := admission.Admit(edge, FrontierState{})
	assert.False(t, admitted)
}

func TestEdgeAdmission_AllowsGateEdgesRegardlessOfMaxJump(t *testing.T) {
	admission := NewEdgeAdmission(AdmissionConfig{HasMaxJump: true, MaxJumpLY: 1})
	edge := Edge{IsGate: true, DistanceLY: 0}
	admitted, _ := admission.Admit(edge, FrontierState{})
	assert.True(t, admitted)
}

func TestEdgeAdmission_TracksFuelAndRejectsWhenExceeded(t *testing.T) {
	fuelConfig := mustFuelConfig(t)
	admission := NewEdgeAdmission(AdmissionConfig{
		Ship:        fuelConfig.ship,
		Loadout:     fuelConfig.loadout,
		FuelConfig:  fuelConfig.config,
		InitialFuel: 1,
	})

	edge := Edge{IsGate: false, DistanceLY: 100}
	admitted, _ := admission.Admit(edge, FrontierState{MassKG: fuelConfig.loadout.TotalMassKG()})
	assert.False(t, admitted)
}

func TestEdgeAdmission_NoShipStateMeansNoFuelCheck(t *testing.T) {
	admission := AlwaysAdmit()
	edge := Edge{IsGate: false, DistanceLY: math.MaxFloat64 / 1e10}
	admitted, _ := admission.Admit(edge, FrontierState{})
	assert.True(t, admitted)
}
