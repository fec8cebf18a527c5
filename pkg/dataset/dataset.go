// Package dataset resolves the path to a starmap SQLite dataset without
// performing any network access. Download and caching are explicitly
// out of scope; this package only validates an explicit override path or
// the path named by EVEFRONTIER_DATASET_SOURCE, or reports that no
// dataset source is configured.
package dataset

import (
	"fmt"
	"os"
	"path/filepath"
)

// SourceEnvVar is the environment variable an operator sets to point at
// a pre-fetched dataset file when no override path is supplied.
const SourceEnvVar = "EVEFRONTIER_DATASET_SOURCE"

// protectedFixturePaths are dataset paths EnsureDataset refuses to treat
// as a writable target, since they are the repository's own test
// fixtures and overwriting them would corrupt other tests.
var protectedFixturePaths = []string{
	filepath.Join("docs", "fixtures", "minimal_static_data.db"),
	filepath.Join("docs", "fixtures", "minimal", "static_data.db"),
}

// DatasetRelease names the dataset release to resolve: either the
// latest known release or a specific tag.
type DatasetRelease struct {
	Tag      string
	IsLatest bool
}

// LatestRelease requests whatever release the resolver considers current.
func LatestRelease() DatasetRelease {
	return DatasetRelease{IsLatest: true}
}

// ReleaseTag requests a specific named release.
func ReleaseTag(tag string) DatasetRelease {
	return DatasetRelease{Tag: tag}
}

// DatasetError is the base error type returned by this package.
type DatasetError struct {
	Message string
}

func (e *DatasetError) Error() string {
	return e.Message
}

// ProtectedFixturePathError is returned when the caller-supplied override
// path names one of the repository's own read-only test fixtures.
type ProtectedFixturePathError struct {
	*DatasetError
	Path string
}

func newProtectedFixturePathError(path string) *ProtectedFixturePathError {
	return &ProtectedFixturePathError{
		DatasetError: &DatasetError{Message: fmt.Sprintf("refusing to use protected fixture path: %s", path)},
		Path:         path,
	}
}

// DownloadNotImplementedError is returned when no override path and no
// EVEFRONTIER_DATASET_SOURCE is set: there is nowhere to resolve a
// dataset from short of a network download, which this package does
// not perform.
type DownloadNotImplementedError struct {
	*DatasetError
	Release DatasetRelease
}

func newDownloadNotImplementedError(release DatasetRelease) *DownloadNotImplementedError {
	label := release.Tag
	if release.IsLatest {
		label = "latest"
	}
	return &DownloadNotImplementedError{
		DatasetError: &DatasetError{Message: fmt.Sprintf("dataset download not implemented (requested release: %s)", label)},
		Release:      release,
	}
}

// isProtectedFixture reports whether path resolves to one of the
// repository's reserved fixture datasets, comparing absolute paths so a
// relative alias is still caught. Symlinks are not resolved, so a
// symlinked alias is not detected.
func isProtectedFixture(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	for _, protected := range protectedFixturePaths {
		protectedAbs, err := filepath.Abs(protected)
		if err != nil {
			protectedAbs = protected
		}
		if abs == protectedAbs {
			return true
		}
	}
	return false
}

// EnsureDataset resolves a usable dataset path. An explicit override is
// validated against the protected fixture list and returned as-is. With
// no override, EVEFRONTIER_DATASET_SOURCE is consulted; if that is also
// unset, download is required and this package reports that it cannot
// perform one.
func EnsureDataset(override *string, release DatasetRelease) (string, error) {
	if override != nil {
		if isProtectedFixture(*override) {
			return "", newProtectedFixturePathError(*override)
		}
		return *override, nil
	}

	if envPath := os.Getenv(SourceEnvVar); envPath != "" {
		if isProtectedFixture(envPath) {
			return "", newProtectedFixturePathError(envPath)
		}
		return envPath, nil
	}

	return "", newDownloadNotImplementedError(release)
}
