package shipcatalog

import "fmt"

// CatalogError is the base type for every error this package returns.
type CatalogError struct {
	Message string
}

func (e *CatalogError) Error() string {
	return e.Message
}

// ShipDataValidationError is returned when a row fails a field-level
// validation rule (non-finite or non-positive mass/specific-heat/fuel
// capacity, negative cargo capacity).
type ShipDataValidationError struct {
	*CatalogError
	Field string
}

func NewShipDataValidationError(field, message string) *ShipDataValidationError {
	return &ShipDataValidationError{
		CatalogError: &CatalogError{Message: message},
		Field:        field,
	}
}

// DuplicateShipNameError is returned when two rows normalize to the same
// ship name.
type DuplicateShipNameError struct {
	*CatalogError
	Name string
}

func NewDuplicateShipNameError(name string) *DuplicateShipNameError {
	return &DuplicateShipNameError{
		CatalogError: &CatalogError{Message: fmt.Sprintf("duplicate ship name: %s", name)},
		Name:         name,
	}
}

// LoadoutValidationError is returned when a ShipLoadout's fuel or cargo
// falls outside the attributes' capacity.
type LoadoutValidationError struct {
	*CatalogError
	Field string
}

func NewLoadoutValidationError(field, message string) *LoadoutValidationError {
	return &LoadoutValidationError{
		CatalogError: &CatalogError{Message: message},
		Field:        field,
	}
}
