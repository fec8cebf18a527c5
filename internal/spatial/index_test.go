package spatial

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePoints() []Point {
	return []Point{
		{ID: 1, X: 0, Y: 0, Z: 0},
		{ID: 2, X: 10, Y: 0, Z: 0},
		{ID: 3, X: 0, Y: 10, Z: 0},
		{ID: 4, X: 5, Y: 5, Z: 0},
		{ID: 5, X: -10, Y: -10, Z: -10},
	}
}

func TestNearest_SortedByDistanceThenID(t *testing.T) {
	idx := Build(samplePoints())
	hits := idx.Nearest(0, 0, 0, 3)
	require.Len(t, hits, 3)
	assert.Equal(t, int64(1), hits[0].ID)
	assert.InDelta(t, 0, hits[0].Distance, 1e-9)
	assert.True(t, hits[0].Distance <= hits[1].Distance)
	assert.True(t, hits[1].Distance <= hits[2].Distance)
}

func TestNearest_TieBrokenByAscendingID(t *testing.T) {
	points := []Point{
		{ID: 3, X: 10, Y: 0, Z: 0},
		{ID: 1, X: -10, Y: 0, Z: 0},
		{ID: 2, X: 0, Y: 10, Z: 0},
	}
	idx := Build(points)
	hits := idx.Nearest(0, 0, 0, 3)
	require.Len(t, hits, 3)
	assert.Equal(t, int64(1), hits[0].ID)
}

func TestWithinRadius_ReturnsOnlyPointsInRange(t *testing.T) {
	idx := Build(samplePoints())
	hits := idx.WithinRadius(0, 0, 0, 10.1)
	var ids []int64
	for _, h := range hits {
		ids = append(ids, h.ID)
	}
	assert.ElementsMatch(t, []int64{1, 2, 3, 4}, ids)
}

func TestSaveLoad_RoundTripsV1(t *testing.T) {
	idx := Build(samplePoints())
	dir := t.TempDir()
	path := filepath.Join(dir, "index.bin")

	require.NoError(t, idx.Save(path))
	loaded, meta, err := Load(path)
	require.NoError(t, err)
	assert.Nil(t, meta)
	assert.Equal(t, idx.Len(), loaded.Len())

	hits := loaded.Nearest(0, 0, 0, 1)
	require.Len(t, hits, 1)
	assert.Equal(t, int64(1), hits[0].ID)
}

func TestSaveLoad_RoundTripsV2WithMetadata(t *testing.T) {
	meta := DatasetMetadata{ReleaseTag: "v2026.07.01", BuildTimestamp: 1000}
	meta.Checksum[0] = 0xAB

	idx := BuildWithMetadata(samplePoints(), meta)
	dir := t.TempDir()
	path := filepath.Join(dir, "index.bin")

	require.NoError(t, idx.Save(path))
	loaded, loadedMeta, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, loadedMeta)
	assert.Equal(t, meta.ReleaseTag, loadedMeta.ReleaseTag)
	assert.Equal(t, meta.BuildTimestamp, loadedMeta.BuildTimestamp)
	assert.Equal(t, meta.Checksum, loadedMeta.Checksum)
	assert.Equal(t, idx.Len(), loaded.Len())
}

func TestLoad_RejectsBadMagic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.bin")
	require.NoError(t, os.WriteFile(path, []byte("NOPE1234"), 0o644))

	_, _, err := Load(path)
	require.Error(t, err)
	var corrupt *CorruptIndexError
	require.ErrorAs(t, err, &corrupt)
}

func TestVerifyFreshness_IndexMissing(t *testing.T) {
	dir := t.TempDir()
	result, err := VerifyFreshness(filepath.Join(dir, "missing.bin"), filepath.Join(dir, "db.sqlite"))
	require.NoError(t, err)
	assert.Equal(t, IndexMissing, result)
}

func TestVerifyFreshness_MetadataAbsentForV1(t *testing.T) {
	idx := Build(samplePoints())
	dir := t.TempDir()
	indexPath := filepath.Join(dir, "index.bin")
	require.NoError(t, idx.Save(indexPath))

	result, err := VerifyFreshness(indexPath, filepath.Join(dir, "db.sqlite"))
	require.NoError(t, err)
	assert.Equal(t, MetadataAbsent, result)
}

func TestVerifyFreshness_FreshWhenChecksumAndTagMatch(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "static_data.db")
	require.NoError(t, os.WriteFile(dbPath, []byte("fixture-bytes"), 0o644))
	require.NoError(t, os.WriteFile(dbPath+".release", []byte("requested=latest\nresolved=v2026.07.01\n"), 0o644))

	checksum, err := ComputeDatasetChecksum(dbPath)
	require.NoError(t, err)

	meta := DatasetMetadata{Checksum: checksum, ReleaseTag: "v2026.07.01", BuildTimestamp: 42}
	idx := BuildWithMetadata(samplePoints(), meta)
	indexPath := filepath.Join(dir, "index.bin")
	require.NoError(t, idx.Save(indexPath))

	result, err := VerifyFreshness(indexPath, dbPath)
	require.NoError(t, err)
	assert.Equal(t, Fresh, result)
}

func TestVerifyFreshness_ChecksumMismatch(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "static_data.db")
	require.NoError(t, os.WriteFile(dbPath, []byte("fixture-bytes"), 0o644))

	meta := DatasetMetadata{ReleaseTag: "v2026.07.01"}
	meta.Checksum[0] = 0xFF
	idx := BuildWithMetadata(samplePoints(), meta)
	indexPath := filepath.Join(dir, "index.bin")
	require.NoError(t, idx.Save(indexPath))

	result, err := VerifyFreshness(indexPath, dbPath)
	require.NoError(t, err)
	assert.Equal(t, ChecksumMismatch, result)
}

func TestReadReleaseTag_ParsesResolvedLine(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "static_data.db")
	require.NoError(t, os.WriteFile(dbPath+".release", []byte("requested=latest\nresolved=v9\n"), 0o644))

	assert.Equal(t, "v9", ReadReleaseTag(dbPath))
}

func TestReadReleaseTag_AbsentMarkerReturnsEmptyString(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, "", ReadReleaseTag(filepath.Join(dir, "nope.db")))
}
