// Package starmap loads a fixed solar-system dataset into an immutable
// in-memory graph: systems indexed by id, a case-insensitive name index,
// and symmetric gate adjacency. It is schema-polymorphic: datasets may use
// either the modern SolarSystems/Jumps tables or the legacy
// mapSolarSystems/mapSolarSystemJumps tables.
package starmap

import (
	"os"
	"sort"
	"strings"

	"github.com/frontierlabs/evefrontier/internal/infrastructure/database"
)

// Starmap is an immutable, shared-by-reference view of the dataset. Once
// Load returns successfully, nothing in a Starmap mutates again.
type Starmap struct {
	byID      map[int64]System
	order     []int64            // ascending ids, stable iteration order
	byName    map[string]int64   // normalized name -> id
	adjacency map[int64][]int64  // ascending ids, deduplicated, symmetric
}

// Load opens the SQLite dataset at path and builds an immutable Starmap.
// Any failure aborts the whole construction; no partial Starmap is ever
// returned.
func Load(path string) (*Starmap, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, NewDatasetNotFoundError(path)
		}
		return nil, NewIOError(err)
	}

	db, err := database.OpenReadOnly(path)
	if err != nil {
		return nil, NewSqliteError(err)
	}
	defer func() {
		_ = database.Close(db)
	}()

	kind, err := detectSchema(db)
	if err != nil {
		return nil, NewSqliteError(err)
	}
	if kind == schemaUnknown {
		return nil, NewUnsupportedSchemaError()
	}

	var rawSystems []rawSystemRow
	var rawEdges []rawEdgeRow
	var planetCounts map[int64]uint32

	switch kind {
	case schemaA:
		rawSystems, rawEdges, planetCounts, err = loadSchemaA(db)
	case schemaB:
		rawSystems, rawEdges, planetCounts, err = loadSchemaB(db)
	}
	if err != nil {
		return nil, NewSqliteError(err)
	}

	return assemble(rawSystems, rawEdges, planetCounts)
}

func assemble(rawSystems []rawSystemRow, rawEdges []rawEdgeRow, planetCounts map[int64]uint32) (*Starmap, error) {
	byID := make(map[int64]System, len(rawSystems))
	byName := make(map[string]int64, len(rawSystems))
	order := make([]int64, 0, len(rawSystems))

	for _, r := range rawSystems {
		sys := System{ID: r.id, Name: r.name, X: r.x, Y: r.y, Z: r.z}
		if r.starLuminosity.Valid {
			v := r.starLuminosity.Float64
			sys.StarLuminosity = &v
		}
		if planetCounts != nil {
			if count, ok := planetCounts[r.id]; ok {
				c := count
				sys.PlanetCount = &c
			}
		}

		normalized := normalizeName(r.name)
		if existing, ok := byName[normalized]; ok && existing != r.id {
			return nil, NewDuplicateNameError(r.name)
		}
		byName[normalized] = r.id
		byID[r.id] = sys
		order = append(order, r.id)
	}

	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	adjacency := make(map[int64][]int64, len(byID))
	for _, e := range rawEdges {
		addEdge(adjacency, e.from, e.to)
		addEdge(adjacency, e.to, e.from)
	}
	for id := range adjacency {
		neighbours := adjacency[id]
		sort.Slice(neighbours, func(i, j int) bool { return neighbours[i] < neighbours[j] })
		adjacency[id] = dedupeSorted(neighbours)
	}

	return &Starmap{byID: byID, order: order, byName: byName, adjacency: adjacency}, nil
}

func addEdge(adjacency map[int64][]int64, from, to int64) {
	adjacency[from] = append(adjacency[from], to)
}

func dedupeSorted(ids []int64) []int64 {
	if len(ids) == 0 {
		return ids
	}
	out := ids[:1]
	for _, id := range ids[1:] {
		if id != out[len(out)-1] {
			out = append(out, id)
		}
	}
	return out
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// SystemIDByName resolves a system name to its id, case-insensitively and
// trimmed. The second return value is false when the name is unknown.
func (s *Starmap) SystemIDByName(name string) (int64, bool) {
	id, ok := s.byName[normalizeName(name)]
	return id, ok
}

// SystemName returns the canonical stored name for an id.
func (s *Starmap) SystemName(id int64) (string, bool) {
	sys, ok := s.byID[id]
	if !ok {
		return "", false
	}
	return sys.Name, true
}

// System returns the full record for an id.
func (s *Starmap) System(id int64) (System, bool) {
	sys, ok := s.byID[id]
	return sys, ok
}

// Position implements pathengine.PositionLookup so a Starmap can feed
// hybrid gate/free-space neighbour enumeration directly.
func (s *Starmap) Position(id int64) (x, y, z float64, ok bool) {
	sys, found := s.byID[id]
	if !found {
		return 0, 0, 0, false
	}
	return sys.X, sys.Y, sys.Z, true
}

// Systems returns every system, ordered ascending by id.
func (s *Starmap) Systems() []System {
	out := make([]System, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// Len returns the number of systems in the map.
func (s *Starmap) Len() int {
	return len(s.order)
}

// Neighbours returns the sorted, deduplicated gate-adjacent ids of a
// system. Unknown ids return an empty (nil) slice.
func (s *Starmap) Neighbours(id int64) []int64 {
	return s.adjacency[id]
}

// Adjacency returns the full adjacency table. Callers must not mutate the
// returned map or its slices; it is the same backing storage the Starmap
// itself uses.
func (s *Starmap) Adjacency() map[int64][]int64 {
	return s.adjacency
}
