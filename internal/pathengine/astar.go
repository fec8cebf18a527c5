package pathengine

import "container/heap"

// astarItem is a priority-queue entry ordered by f = g + h, the
// accumulated cost plus the heuristic estimate to goal.
type astarItem struct {
	id    int64
	g     float64
	f     float64
	state FrontierState
	index int
}

type astarQueue []*astarItem

func (q astarQueue) Len() int { return len(q) }

func (q astarQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].id < q[j].id
}

func (q astarQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *astarQueue) Push(x any) {
	item := x.(*astarItem)
	item.index = len(*q)
	*q = append(*q, item)
}

func (q *astarQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]
	return item
}

// Heuristic estimates the remaining cost from id to the search goal.
// Callers pass Euclidean distance to goal, in the same unit the
// enumerator weighs edges in.
type Heuristic func(id int64) float64

// AStar finds a minimum-cost path using enumerator's edges and
// admission, guided by heuristic. Supports the hybrid neighbour mode:
// enumerator may emit both gate edges (weight 1) and free-space edges
// (weight Euclidean distance) per node.
func AStar(enumerator NeighbourSource, admission *EdgeAdmission, start, goal int64, heuristic Heuristic) (*SearchResult, error) {
	if start == goal {
		return &SearchResult{Path: []int64{start}}, nil
	}

	best := map[int64]float64{start: 0}
	states := map[int64]FrontierState{start: admission.InitialState()}
	parents := map[int64]int64{}

	pq := &astarQueue{{id: start, g: 0, f: heuristic(start), state: states[start]}}
	heap.Init(pq)

	for pq.Len() > 0 {
		current := heap.Pop(pq).(*astarItem)
		if knownBest, ok := best[current.id]; ok && current.g > knownBest {
			continue
		}

		if current.id == goal {
			path := reconstructDijkstra(parents, start, goal)
			return &SearchResult{Path: path, TotalCost: current.g, FinalState: current.state}, nil
		}

		for _, edge := range enumerator.Edges(current.id) {
			admitted, nextState := admission.Admit(edge, current.state)
			if !admitted {
				continue
			}
			candidateG := current.g + edge.Weight
			if knownBest, ok := best[edge.To]; ok && candidateG >= knownBest {
				continue
			}
			best[edge.To] = candidateG
			states[edge.To] = nextState
			parents[edge.To] = current.id
			heap.Push(pq, &astarItem{
				id:    edge.To,
				g:     candidateG,
				f:     candidateG + heuristic(edge.To),
				state: nextState,
			})
		}
	}

	return nil, NewRouteNotFoundError(start, goal)
}
