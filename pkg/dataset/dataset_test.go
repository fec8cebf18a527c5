package dataset

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDataset_RefusesProtectedFixturePath(t *testing.T) {
	path := "docs/fixtures/minimal_static_data.db"

	_, err := EnsureDataset(&path, LatestRelease())
	require.Error(t, err)
	var protectedErr *ProtectedFixturePathError
	require.ErrorAs(t, err, &protectedErr)
}

func TestEnsureDataset_AcceptsNonFixtureOverride(t *testing.T) {
	path := "/tmp/my-custom-static-data.db"

	resolved, err := EnsureDataset(&path, LatestRelease())
	require.NoError(t, err)
	assert.Equal(t, path, resolved)
}

func TestEnsureDataset_UsesEnvVarWhenNoOverride(t *testing.T) {
	t.Setenv(SourceEnvVar, "/tmp/env-provided-static-data.db")

	resolved, err := EnsureDataset(nil, LatestRelease())
	require.NoError(t, err)
	assert.Equal(t, "/tmp/env-provided-static-data.db", resolved)
}

func TestEnsureDataset_NoOverrideNoEnvReturnsDownloadNotImplemented(t *testing.T) {
	os.Unsetenv(SourceEnvVar)

	_, err := EnsureDataset(nil, ReleaseTag("e6c2"))
	require.Error(t, err)
	var downloadErr *DownloadNotImplementedError
	require.ErrorAs(t, err, &downloadErr)
	assert.Equal(t, "e6c2", downloadErr.Release.Tag)
}
