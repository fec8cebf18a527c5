package routeplanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chainStarmap(t *testing.T) *testStarmap {
	t.Helper()
	return newTestStarmap(t, []testSystem{
		{id: 1, name: "Alpha", x: 0, y: 0, z: 0},
		{id: 2, name: "Beta", x: 1e16, y: 0, z: 0},
		{id: 3, name: "Gamma", x: 2e16, y: 0, z: 0},
	}, [][2]int64{{1, 2}, {2, 3}})
}

func TestPlanRoute_BFSFindsPathByName(t *testing.T) {
	sm := chainStarmap(t)
	planner := New(sm.Starmap, nil)

	plan, err := planner.PlanRoute(RouteRequest{StartName: "alpha", GoalName: "GAMMA", Algorithm: AlgorithmBFS})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, plan.Steps)
	assert.Equal(t, uint(2), plan.Gates)
	assert.Equal(t, uint(0), plan.Jumps)
}

func TestPlanRoute_UnknownSystemName(t *testing.T) {
	sm := chainStarmap(t)
	planner := New(sm.Starmap, nil)

	_, err := planner.PlanRoute(RouteRequest{StartName: "nowhere", GoalName: "Gamma", Algorithm: AlgorithmBFS})
	require.Error(t, err)
	var unknown *UnknownSystemError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "nowhere", unknown.Name)
}

func TestPlanRoute_RouteNotFoundForDisconnectedGoal(t *testing.T) {
	sm := newTestStarmap(t, []testSystem{
		{id: 1, name: "Alpha", x: 0, y: 0, z: 0},
		{id: 2, name: "Beta", x: 0, y: 0, z: 0},
	}, nil)
	planner := New(sm.Starmap, nil)

	_, err := planner.PlanRoute(RouteRequest{StartName: "Alpha", GoalName: "Beta", Algorithm: AlgorithmBFS})
	require.Error(t, err)
	var notFound *RouteNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestPlanRoute_RejectsInconsistentConstraints(t *testing.T) {
	sm := chainStarmap(t)
	planner := New(sm.Starmap, nil)

	_, err := planner.PlanRoute(RouteRequest{
		StartName: "Alpha",
		GoalName:  "Gamma",
		Algorithm: AlgorithmBFS,
		Constraints: RouteConstraints{
			AvoidCriticalState: true,
		},
	})
	require.Error(t, err)
	var unsupported *UnsupportedOptionError
	require.ErrorAs(t, err, &unsupported)
}

func TestPlanRoute_AStarFindsSamePathAsBFSOnGateOnlyGraph(t *testing.T) {
	sm := chainStarmap(t)
	planner := New(sm.Starmap, nil)

	plan, err := planner.PlanRoute(RouteRequest{StartName: "Alpha", GoalName: "Gamma", Algorithm: AlgorithmAStar})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, plan.Steps)
}

func TestFromPlan_RejectsEmptyPlan(t *testing.T) {
	_, err := FromPlan(OutputKindRoute, nil, &RoutePlan{}, RouteConstraints{})
	require.Error(t, err)
	var empty *EmptyPlanError
	require.ErrorAs(t, err, &empty)
	assert.Equal(t, "route plan was empty", err.Error())
}

func TestFromPlan_EnrichesStepsWithNamesAndMethod(t *testing.T) {
	sm := chainStarmap(t)
	planner := New(sm.Starmap, nil)
	plan, err := planner.PlanRoute(RouteRequest{StartName: "Alpha", GoalName: "Gamma", Algorithm: AlgorithmBFS})
	require.NoError(t, err)

	summary, err := FromPlan(OutputKindRoute, sm.Starmap, plan, RouteConstraints{})
	require.NoError(t, err)
	require.Len(t, summary.Steps, 3)
	assert.Equal(t, "Alpha", summary.StartName)
	assert.Equal(t, "Gamma", summary.GoalName)
	assert.Equal(t, 2, summary.Hops)
	assert.Equal(t, "Alpha", summary.Steps[0].Name)
	assert.Equal(t, "", summary.Steps[0].Method)
	assert.Equal(t, "gate", summary.Steps[1].Method)
	assert.Equal(t, "gate", summary.Steps[2].Method)
}
