package routeplanner

import (
	"testing"

	"github.com/frontierlabs/evefrontier/internal/starmap"
	"github.com/stretchr/testify/require"
)

type testSystem struct {
	id      int64
	name    string
	x, y, z float64
}

type testStarmap struct {
	Starmap *starmap.Starmap
}

func newTestStarmap(t *testing.T, systems []testSystem, edges [][2]int64) *testStarmap {
	t.Helper()
	sysList := make([]starmap.System, 0, len(systems))
	for _, s := range systems {
		sysList = append(sysList, starmap.System{ID: s.id, Name: s.name, X: s.x, Y: s.y, Z: s.z})
	}
	sm, err := starmap.NewFromSystems(sysList, edges)
	require.NoError(t, err)
	return &testStarmap{Starmap: sm}
}
