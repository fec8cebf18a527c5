package starmap

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nullFloat(v float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: v, Valid: true}
}

func TestAssemble_BuildsSymmetricAdjacency(t *testing.T) {
	systems := []rawSystemRow{
		{id: 1, name: "Alpha", x: 0, y: 0, z: 0},
		{id: 2, name: "Beta", x: 1, y: 0, z: 0},
		{id: 3, name: "Gamma", x: 2, y: 0, z: 0},
	}
	edges := []rawEdgeRow{
		{from: 1, to: 2},
		{from: 3, to: 1},
	}

	sm, err := assemble(systems, edges, nil)
	require.NoError(t, err)

	assert.Equal(t, []int64{2, 3}, sm.Neighbours(1))
	assert.ElementsMatch(t, []int64{1}, sm.Neighbours(2))
	assert.ElementsMatch(t, []int64{1}, sm.Neighbours(3))
}

func TestAssemble_DeduplicatesReciprocalEdges(t *testing.T) {
	systems := []rawSystemRow{
		{id: 1, name: "Alpha", x: 0, y: 0, z: 0},
		{id: 2, name: "Beta", x: 1, y: 0, z: 0},
	}
	edges := []rawEdgeRow{
		{from: 1, to: 2},
		{from: 2, to: 1},
	}

	sm, err := assemble(systems, edges, nil)
	require.NoError(t, err)

	assert.Equal(t, []int64{2}, sm.Neighbours(1))
	assert.Equal(t, []int64{1}, sm.Neighbours(2))
}

func TestAssemble_DuplicateNameIsRejected(t *testing.T) {
	systems := []rawSystemRow{
		{id: 1, name: "Alpha", x: 0, y: 0, z: 0},
		{id: 2, name: "alpha  ", x: 1, y: 0, z: 0},
	}

	_, err := assemble(systems, nil, nil)
	require.Error(t, err)
	var dup *DuplicateNameError
	require.ErrorAs(t, err, &dup)
}

func TestAssemble_OptionalFieldsPopulated(t *testing.T) {
	systems := []rawSystemRow{
		{id: 1, name: "Alpha", x: 0, y: 0, z: 0, starLuminosity: nullFloat(3.2)},
	}
	planetCounts := map[int64]uint32{1: 4}

	sm, err := assemble(systems, nil, planetCounts)
	require.NoError(t, err)

	sys, ok := sm.System(1)
	require.True(t, ok)
	require.NotNil(t, sys.StarLuminosity)
	assert.InDelta(t, 3.2, *sys.StarLuminosity, 1e-9)
	require.NotNil(t, sys.PlanetCount)
	assert.Equal(t, uint32(4), *sys.PlanetCount)
}

func TestSystemIDByName_IsCaseInsensitiveAndTrimmed(t *testing.T) {
	systems := []rawSystemRow{
		{id: 1, name: "New Eden", x: 0, y: 0, z: 0},
	}
	sm, err := assemble(systems, nil, nil)
	require.NoError(t, err)

	id, ok := sm.SystemIDByName("  NEW eden ")
	require.True(t, ok)
	assert.Equal(t, int64(1), id)

	_, ok = sm.SystemIDByName("unknown")
	assert.False(t, ok)
}

func TestLoad_MissingFileReturnsDatasetNotFoundError(t *testing.T) {
	_, err := Load("/nonexistent/path/to/dataset.sqlite")
	require.Error(t, err)
	var notFound *DatasetNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestSystems_OrderedAscendingByID(t *testing.T) {
	systems := []rawSystemRow{
		{id: 3, name: "Gamma", x: 0, y: 0, z: 0},
		{id: 1, name: "Alpha", x: 0, y: 0, z: 0},
		{id: 2, name: "Beta", x: 0, y: 0, z: 0},
	}
	sm, err := assemble(systems, nil, nil)
	require.NoError(t, err)

	var ids []int64
	for _, sys := range sm.Systems() {
		ids = append(ids, sys.ID)
	}
	assert.Equal(t, []int64{1, 2, 3}, ids)
	assert.Equal(t, 3, sm.Len())
}
