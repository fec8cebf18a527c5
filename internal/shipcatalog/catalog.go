package shipcatalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// ShipCatalog is an immutable mapping of normalized ship name to
// ShipAttributes, built once at load time.
type ShipCatalog struct {
	byName map[string]ShipAttributes
}

var csvColumns = []string{"name", "base_mass_kg", "specific_heat", "fuel_capacity", "cargo_capacity"}

// FromPath loads and validates a catalog from a CSV file on disk.
func FromPath(path string) (*ShipCatalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &CatalogError{Message: fmt.Sprintf("opening ship catalog %s: %v", path, err)}
	}
	defer f.Close()
	return FromReader(f)
}

// FromReader loads and validates a catalog from CSV bytes. The header
// must be exactly: name,base_mass_kg,specific_heat,fuel_capacity,cargo_capacity
func FromReader(r io.Reader) (*ShipCatalog, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, &CatalogError{Message: fmt.Sprintf("reading ship catalog header: %v", err)}
	}
	if err := validateHeader(header); err != nil {
		return nil, err
	}

	byName := make(map[string]ShipAttributes)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &CatalogError{Message: fmt.Sprintf("reading ship catalog row: %v", err)}
		}

		attrs, err := parseRow(record)
		if err != nil {
			return nil, err
		}
		if err := validateShipAttributes(attrs); err != nil {
			return nil, err
		}

		normalized := normalizeShipName(attrs.Name)
		if _, exists := byName[normalized]; exists {
			return nil, NewDuplicateShipNameError(normalized)
		}
		byName[normalized] = attrs
	}

	return &ShipCatalog{byName: byName}, nil
}

func validateHeader(header []string) error {
	if len(header) != len(csvColumns) {
		return &CatalogError{Message: fmt.Sprintf("ship catalog header has %d columns, expected %d", len(header), len(csvColumns))}
	}
	for i, want := range csvColumns {
		if strings.TrimSpace(header[i]) != want {
			return &CatalogError{Message: fmt.Sprintf("ship catalog header column %d: expected %q, got %q", i, want, header[i])}
		}
	}
	return nil
}

func parseRow(record []string) (ShipAttributes, error) {
	if len(record) != len(csvColumns) {
		return ShipAttributes{}, &CatalogError{Message: fmt.Sprintf("ship catalog row has %d fields, expected %d", len(record), len(csvColumns))}
	}

	name := strings.TrimSpace(record[0])
	baseMass, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
	if err != nil {
		return ShipAttributes{}, NewShipDataValidationError("base_mass_kg", fmt.Sprintf("base_mass_kg is not a number: %q", record[1]))
	}
	specificHeat, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
	if err != nil {
		return ShipAttributes{}, NewShipDataValidationError("specific_heat", fmt.Sprintf("specific_heat is not a number: %q", record[2]))
	}
	fuelCapacity, err := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
	if err != nil {
		return ShipAttributes{}, NewShipDataValidationError("fuel_capacity", fmt.Sprintf("fuel_capacity is not a number: %q", record[3]))
	}
	cargoCapacity, err := strconv.ParseFloat(strings.TrimSpace(record[4]), 64)
	if err != nil {
		return ShipAttributes{}, NewShipDataValidationError("cargo_capacity", fmt.Sprintf("cargo_capacity is not a number: %q", record[4]))
	}

	return ShipAttributes{
		Name:          name,
		BaseMassKG:    baseMass,
		SpecificHeat:  specificHeat,
		FuelCapacity:  fuelCapacity,
		CargoCapacity: cargoCapacity,
	}, nil
}

func normalizeShipName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Get returns a ship's attributes by case-insensitive name.
func (c *ShipCatalog) Get(name string) (ShipAttributes, bool) {
	attrs, ok := c.byName[normalizeShipName(name)]
	return attrs, ok
}

// ShipNames returns every ship's canonical name, unsorted.
func (c *ShipCatalog) ShipNames() []string {
	names := make([]string, 0, len(c.byName))
	for _, attrs := range c.byName {
		names = append(names, attrs.Name)
	}
	return names
}

// ShipsSorted returns every ship's attributes, alphabetical by name.
func (c *ShipCatalog) ShipsSorted() []ShipAttributes {
	ships := make([]ShipAttributes, 0, len(c.byName))
	for _, attrs := range c.byName {
		ships = append(ships, attrs)
	}
	sort.Slice(ships, func(i, j int) bool { return ships[i].Name < ships[j].Name })
	return ships
}
