package pathengine

import "sort"

// SearchResult is the outcome of a successful search: the path from
// start to goal inclusive, its total weighted cost, and the frontier
// state accumulated along it.
type SearchResult struct {
	Path       []int64
	TotalCost  float64
	FinalState FrontierState
}

type bfsRecord struct {
	state  FrontierState
	parent int64
	hasParent bool
}

// BFS finds the shortest path by hop count over the edges enumerator
// offers, subject to admission. Ties are broken by ascending neighbour
// id for reproducibility. Early-exits the moment goal is discovered as a
// neighbour, before it is dequeued.
func BFS(enumerator NeighbourSource, admission *EdgeAdmission, start, goal int64) (*SearchResult, error) {
	if start == goal {
		return &SearchResult{Path: []int64{start}}, nil
	}

	visited := map[int64]bfsRecord{start: {state: admission.InitialState()}}
	queue := []int64{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		currentRecord := visited[current]

		edges := enumerator.Edges(current)
		sort.Slice(edges, func(i, j int) bool { return edges[i].To < edges[j].To })

		for _, edge := range edges {
			if _, seen := visited[edge.To]; seen {
				continue
			}
			admitted, nextState := admission.Admit(edge, currentRecord.state)
			if !admitted {
				continue
			}

			visited[edge.To] = bfsRecord{state: nextState, parent: current, hasParent: true}
			if edge.To == goal {
				path := reconstructBFS(visited, start, goal)
				return &SearchResult{
					Path:       path,
					TotalCost:  float64(len(path) - 1),
					FinalState: nextState,
				}, nil
			}
			queue = append(queue, edge.To)
		}
	}

	return nil, NewRouteNotFoundError(start, goal)
}

func reconstructBFS(visited map[int64]bfsRecord, start, goal int64) []int64 {
	path := []int64{goal}
	current := goal
	for current != start {
		record := visited[current]
		current = record.parent
		path = append(path, current)
	}
	reverseInPlace(path)
	return path
}

func reverseInPlace(ids []int64) {
	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}
}
