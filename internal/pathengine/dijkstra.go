package pathengine

import "container/heap"

// dijkstraItem is one entry in the priority queue: a candidate
// (node, cost-so-far) pair plus the frontier state that produced it.
type dijkstraItem struct {
	id       int64
	cost     float64
	state    FrontierState
	parent   int64
	hasParent bool
	index    int // maintained by heap.Interface
}

// dijkstraQueue implements heap.Interface, grounded on the
// container/heap priority-queue pattern used for weighted shortest-path
// search. Ties are broken by ascending id for reproducibility.
type dijkstraQueue []*dijkstraItem

func (q dijkstraQueue) Len() int { return len(q) }

func (q dijkstraQueue) Less(i, j int) bool {
	if q[i].cost != q[j].cost {
		return q[i].cost < q[j].cost
	}
	return q[i].id < q[j].id
}

func (q dijkstraQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *dijkstraQueue) Push(x any) {
	item := x.(*dijkstraItem)
	item.index = len(*q)
	*q = append(*q, item)
}

func (q *dijkstraQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]
	return item
}

// Dijkstra finds the minimum-cost path under enumerator's edge weights,
// subject to admission. Weight per admitted edge is whatever the
// enumerator attaches to it: 1 to mirror BFS hop counting, or Euclidean
// distance for free-space jumps.
func Dijkstra(enumerator NeighbourSource, admission *EdgeAdmission, start, goal int64) (*SearchResult, error) {
	if start == goal {
		return &SearchResult{Path: []int64{start}}, nil
	}

	best := map[int64]float64{start: 0}
	states := map[int64]FrontierState{start: admission.InitialState()}
	parents := map[int64]int64{}

	pq := &dijkstraQueue{{id: start, cost: 0, state: states[start]}}
	heap.Init(pq)

	for pq.Len() > 0 {
		current := heap.Pop(pq).(*dijkstraItem)
		if knownBest, ok := best[current.id]; ok && current.cost > knownBest {
			continue
		}

		if current.id == goal {
			path := reconstructDijkstra(parents, start, goal)
			return &SearchResult{Path: path, TotalCost: current.cost, FinalState: current.state}, nil
		}

		for _, edge := range enumerator.Edges(current.id) {
			admitted, nextState := admission.Admit(edge, current.state)
			if !admitted {
				continue
			}
			candidateCost := current.cost + edge.Weight
			if knownBest, ok := best[edge.To]; ok && candidateCost >= knownBest {
				continue
			}
			best[edge.To] = candidateCost
			states[edge.To] = nextState
			parents[edge.To] = current.id
			heap.Push(pq, &dijkstraItem{id: edge.To, cost: candidateCost, state: nextState, parent: current.id, hasParent: true})
		}
	}

	return nil, NewRouteNotFoundError(start, goal)
}

func reconstructDijkstra(parents map[int64]int64, start, goal int64) []int64 {
	path := []int64{goal}
	current := goal
	for current != start {
		parent := parents[current]
		path = append(path, parent)
		current = parent
	}
	reverseInPlace(path)
	return path
}
