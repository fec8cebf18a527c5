package starmap

import (
	"database/sql"

	"gorm.io/gorm"
)

// schemaKind tags which of the two known table sets a dataset exposes.
// Mirrors the "tagged enum produced by probing information-schema tables"
// design note: a small closed set, resolved once at load time.
type schemaKind int

const (
	schemaUnknown schemaKind = iota
	schemaA                  // SolarSystems + Jumps
	schemaB                  // mapSolarSystems + mapSolarSystemJumps (legacy SDE naming)
)

func detectSchema(db *gorm.DB) (schemaKind, error) {
	tables, err := listTables(db)
	if err != nil {
		return schemaUnknown, err
	}

	if tables["SolarSystems"] && tables["Jumps"] {
		return schemaA, nil
	}
	if tables["mapSolarSystems"] && tables["mapSolarSystemJumps"] {
		return schemaB, nil
	}
	return schemaUnknown, nil
}

func listTables(db *gorm.DB) (map[string]bool, error) {
	rows, err := db.Raw(`SELECT name FROM sqlite_master WHERE type = 'table'`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables[name] = true
	}
	return tables, rows.Err()
}

// rawSystemRow is the schema-independent shape every loader scans into
// before the common assembly path (sort, dedupe adjacency, build name map).
type rawSystemRow struct {
	id             int64
	name           string
	x, y, z        float64
	starLuminosity sql.NullFloat64
}

type rawEdgeRow struct {
	from, to int64
}

func loadSchemaA(db *gorm.DB) ([]rawSystemRow, []rawEdgeRow, map[int64]uint32, error) {
	systemRows, err := db.Raw(`
		SELECT solarSystemId, name, centerX, centerY, centerZ, star_luminosity
		FROM SolarSystems
	`).Rows()
	if err != nil {
		return nil, nil, nil, err
	}
	var systems []rawSystemRow
	for systemRows.Next() {
		var r rawSystemRow
		if err := systemRows.Scan(&r.id, &r.name, &r.x, &r.y, &r.z, &r.starLuminosity); err != nil {
			systemRows.Close()
			return nil, nil, nil, err
		}
		systems = append(systems, r)
	}
	if err := systemRows.Err(); err != nil {
		systemRows.Close()
		return nil, nil, nil, err
	}
	systemRows.Close()

	edgeRows, err := db.Raw(`SELECT fromSolarSystemId, toSolarSystemId FROM Jumps`).Rows()
	if err != nil {
		return nil, nil, nil, err
	}
	var edges []rawEdgeRow
	for edgeRows.Next() {
		var e rawEdgeRow
		if err := edgeRows.Scan(&e.from, &e.to); err != nil {
			edgeRows.Close()
			return nil, nil, nil, err
		}
		edges = append(edges, e)
	}
	if err := edgeRows.Err(); err != nil {
		edgeRows.Close()
		return nil, nil, nil, err
	}
	edgeRows.Close()

	planetCounts, err := loadPlanetCountsIfPresent(db, "Planets", "solarSystemId")
	if err != nil {
		return nil, nil, nil, err
	}

	return systems, edges, planetCounts, nil
}

func loadSchemaB(db *gorm.DB) ([]rawSystemRow, []rawEdgeRow, map[int64]uint32, error) {
	systemRows, err := db.Raw(`
		SELECT solarSystemID, solarSystemName, x, y, z
		FROM mapSolarSystems
	`).Rows()
	if err != nil {
		return nil, nil, nil, err
	}
	var systems []rawSystemRow
	for systemRows.Next() {
		var r rawSystemRow
		if err := systemRows.Scan(&r.id, &r.name, &r.x, &r.y, &r.z); err != nil {
			systemRows.Close()
			return nil, nil, nil, err
		}
		systems = append(systems, r)
	}
	if err := systemRows.Err(); err != nil {
		systemRows.Close()
		return nil, nil, nil, err
	}
	systemRows.Close()

	edgeRows, err := db.Raw(`SELECT fromSolarSystemID, toSolarSystemID FROM mapSolarSystemJumps`).Rows()
	if err != nil {
		return nil, nil, nil, err
	}
	var edges []rawEdgeRow
	for edgeRows.Next() {
		var e rawEdgeRow
		if err := edgeRows.Scan(&e.from, &e.to); err != nil {
			edgeRows.Close()
			return nil, nil, nil, err
		}
		edges = append(edges, e)
	}
	if err := edgeRows.Err(); err != nil {
		edgeRows.Close()
		return nil, nil, nil, err
	}
	edgeRows.Close()

	// Legacy schema has no per-system planet count table in this dataset.
	return systems, edges, nil, nil
}

// loadPlanetCountsIfPresent counts child rows per system in an optional
// table, returning nil (not an error) when the table is absent.
func loadPlanetCountsIfPresent(db *gorm.DB, table, fkColumn string) (map[int64]uint32, error) {
	tables, err := listTables(db)
	if err != nil {
		return nil, err
	}
	if !tables[table] {
		return nil, nil
	}

	rows, err := db.Raw(`SELECT ` + fkColumn + `, COUNT(*) FROM ` + table + ` GROUP BY ` + fkColumn).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[int64]uint32)
	for rows.Next() {
		var id int64
		var count uint32
		if err := rows.Scan(&id, &count); err != nil {
			return nil, err
		}
		counts[id] = count
	}
	return counts, rows.Err()
}
