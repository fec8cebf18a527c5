package pathengine

import (
	"testing"

	"github.com/frontierlabs/evefrontier/internal/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// linearGraph builds the plain chain 1-2-3-4-5 with no shortcut, so the
// only path from 1 to 5 visits every node.
func linearGraph() *graph.Graph {
	return graph.New(map[int64][]int64{
		1: {2},
		2: {1, 3},
		3: {2, 4},
		4: {3, 5},
		5: {4},
	})
}

func TestBFS_FindsShortestHopPath(t *testing.T) {
	enumerator := &GateOnlyEnumerator{Graph: linearGraph()}
	result, err := BFS(enumerator, AlwaysAdmit(), 1, 5)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, result.Path)
	assert.Equal(t, 4.0, result.TotalCost)
}

func TestBFS_StartEqualsGoal(t *testing.T) {
	enumerator := &GateOnlyEnumerator{Graph: linearGraph()}
	result, err := BFS(enumerator, AlwaysAdmit(), 3, 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, result.Path)
}

func TestBFS_ReturnsRouteNotFoundForDisconnectedGoal(t *testing.T) {
	g := graph.New(map[int64][]int64{1: {2}, 2: {1}, 99: {}})
	enumerator := &GateOnlyEnumerator{Graph: g}
	_, err := BFS(enumerator, AlwaysAdmit(), 1, 99)
	require.Error(t, err)
	var notFound *RouteNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, int64(1), notFound.Start)
	assert.Equal(t, int64(99), notFound.Goal)
}

func TestBFS_TieBreaksByAscendingNeighbourID(t *testing.T) {
	g := graph.New(map[int64][]int64{
		1: {3, 2},
		2: {4},
		3: {4},
		4: {},
	})
	enumerator := &GateOnlyEnumerator{Graph: g}
	result, err := BFS(enumerator, AlwaysAdmit(), 1, 4)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 4}, result.Path)
}
