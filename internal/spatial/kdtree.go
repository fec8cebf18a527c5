package spatial

import "sort"

// kdNode is one node of the static, recursively median-split KD-tree.
// The tree is built once at construction and never mutated afterward.
type kdNode struct {
	point       Point
	axis        int
	left, right *kdNode
}

func axisValue(p Point, axis int) float64 {
	switch axis {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		return p.Z
	}
}

// buildKDTree builds a balanced KD-tree by recursive median split,
// alternating axes x, y, z. points is consumed (reordered in place).
func buildKDTree(points []Point, depth int) *kdNode {
	if len(points) == 0 {
		return nil
	}
	axis := depth % 3

	sort.Slice(points, func(i, j int) bool {
		vi, vj := axisValue(points[i], axis), axisValue(points[j], axis)
		if vi != vj {
			return vi < vj
		}
		return points[i].ID < points[j].ID
	})

	mid := len(points) / 2
	node := &kdNode{point: points[mid], axis: axis}
	node.left = buildKDTree(points[:mid], depth+1)
	node.right = buildKDTree(points[mid+1:], depth+1)
	return node
}

// flatten walks the tree in node order (root, left subtree, right
// subtree) for persistence; the same recursive median split on reload
// reproduces an identical tree shape, so this order is never observed by
// query callers.
func flatten(node *kdNode, out *[]Point) {
	if node == nil {
		return
	}
	*out = append(*out, node.point)
	flatten(node.left, out)
	flatten(node.right, out)
}

type candidate struct {
	point    Point
	distance float64
}

// kNearest returns the k closest points to query, sorted by ascending
// distance with ties broken by ascending id.
func kNearest(root *kdNode, qx, qy, qz float64, k int) []Hit {
	if k <= 0 || root == nil {
		return []Hit{}
	}

	var best []candidate
	var visit func(node *kdNode)
	visit = func(node *kdNode) {
		if node == nil {
			return
		}
		d := distance(qx, qy, qz, node.point.X, node.point.Y, node.point.Z)
		best = append(best, candidate{point: node.point, distance: d})

		var axisQuery, axisNode float64
		switch node.axis {
		case 0:
			axisQuery, axisNode = qx, node.point.X
		case 1:
			axisQuery, axisNode = qy, node.point.Y
		default:
			axisQuery, axisNode = qz, node.point.Z
		}

		near, far := node.left, node.right
		if axisQuery > axisNode {
			near, far = node.right, node.left
		}
		visit(near)

		// Only descend into the far side if it could still contain a
		// point at least as close as the current k-th best candidate
		// (an equal-distance point may still win on the id tie-break).
		if len(best) < k || absFloat(axisQuery-axisNode) <= worstDistance(best, k) {
			visit(far)
		}
	}
	visit(root)

	sort.Slice(best, func(i, j int) bool {
		if best[i].distance != best[j].distance {
			return best[i].distance < best[j].distance
		}
		return best[i].point.ID < best[j].point.ID
	})
	if len(best) > k {
		best = best[:k]
	}

	hits := make([]Hit, len(best))
	for i, c := range best {
		hits[i] = Hit{ID: c.point.ID, Distance: c.distance}
	}
	return hits
}

func worstDistance(best []candidate, k int) float64 {
	if len(best) == 0 {
		return 0
	}
	sorted := append([]candidate(nil), best...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].distance < sorted[j].distance })
	idx := k - 1
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx].distance
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// withinRadius returns every point within r of query, sorted ascending by
// distance then id.
func withinRadius(root *kdNode, qx, qy, qz, r float64) []Hit {
	var hits []Hit
	var visit func(node *kdNode)
	visit = func(node *kdNode) {
		if node == nil {
			return
		}
		d := distance(qx, qy, qz, node.point.X, node.point.Y, node.point.Z)
		if d <= r {
			hits = append(hits, Hit{ID: node.point.ID, Distance: d})
		}

		var axisQuery, axisNode float64
		switch node.axis {
		case 0:
			axisQuery, axisNode = qx, node.point.X
		case 1:
			axisQuery, axisNode = qy, node.point.Y
		default:
			axisQuery, axisNode = qz, node.point.Z
		}

		if axisQuery-r <= axisNode {
			visit(node.left)
		}
		if axisQuery+r >= axisNode {
			visit(node.right)
		}
	}
	visit(root)

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Distance != hits[j].Distance {
			return hits[i].Distance < hits[j].Distance
		}
		return hits[i].ID < hits[j].ID
	})
	if hits == nil {
		hits = []Hit{}
	}
	return hits
}
