package starmap

import "fmt"

// LoadError is the base type for every error the loader can return.
// Concrete kinds embed it the way shared.DomainError is embedded
// throughout the teacher codebase's error taxonomy.
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// DatasetNotFoundError is returned when the dataset file does not exist.
type DatasetNotFoundError struct {
	*LoadError
	Path string
}

func NewDatasetNotFoundError(path string) *DatasetNotFoundError {
	return &DatasetNotFoundError{
		LoadError: &LoadError{Message: fmt.Sprintf("dataset not found at %s", path)},
		Path:      path,
	}
}

// UnsupportedSchemaError is returned when neither known table set is present.
type UnsupportedSchemaError struct {
	*LoadError
}

func NewUnsupportedSchemaError() *UnsupportedSchemaError {
	return &UnsupportedSchemaError{
		LoadError: &LoadError{Message: "unsupported dataset schema; expected SolarSystems/Jumps or mapSolarSystems/mapSolarSystemJumps tables"},
	}
}

// DuplicateNameError is returned when two systems normalize to the same name.
type DuplicateNameError struct {
	*LoadError
	Name string
}

func NewDuplicateNameError(name string) *DuplicateNameError {
	return &DuplicateNameError{
		LoadError: &LoadError{Message: fmt.Sprintf("duplicate system name: %s", name)},
		Name:      name,
	}
}

// IOError wraps an underlying filesystem failure.
type IOError struct {
	*LoadError
}

func NewIOError(cause error) *IOError {
	return &IOError{LoadError: &LoadError{Message: "io error", Cause: cause}}
}

// SqliteError wraps an underlying SQL driver failure.
type SqliteError struct {
	*LoadError
}

func NewSqliteError(cause error) *SqliteError {
	return &SqliteError{LoadError: &LoadError{Message: "sqlite error", Cause: cause}}
}
