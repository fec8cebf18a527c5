package starmap

// NewFromSystems builds a Starmap directly from in-memory systems and
// edges, bypassing dataset loading. Intended for synthetic graphs in
// tests of packages that consume a Starmap, the same way internal/graph
// lets pathfinding tests bypass a real dataset.
func NewFromSystems(systems []System, edges [][2]int64) (*Starmap, error) {
	rawSystems := make([]rawSystemRow, 0, len(systems))
	for _, sys := range systems {
		row := rawSystemRow{id: sys.ID, name: sys.Name, x: sys.X, y: sys.Y, z: sys.Z}
		if sys.StarLuminosity != nil {
			row.starLuminosity.Valid = true
			row.starLuminosity.Float64 = *sys.StarLuminosity
		}
		rawSystems = append(rawSystems, row)
	}

	rawEdges := make([]rawEdgeRow, 0, len(edges))
	for _, e := range edges {
		rawEdges = append(rawEdges, rawEdgeRow{from: e[0], to: e[1]})
	}

	planetCounts := make(map[int64]uint32)
	for _, sys := range systems {
		if sys.PlanetCount != nil {
			planetCounts[sys.ID] = *sys.PlanetCount
		}
	}

	return assemble(rawSystems, rawEdges, planetCounts)
}
