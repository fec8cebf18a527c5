package spatial

import "math"

// Point is the coordinate record the spatial index is built over: a
// system id plus its position in the shared Cartesian frame.
type Point struct {
	ID      int64
	X, Y, Z float64
}

// Hit is a single nearest/within-radius result: the matched id and its
// distance from the query point.
type Hit struct {
	ID       int64
	Distance float64
}

func distance(ax, ay, az, bx, by, bz float64) float64 {
	dx := bx - ax
	dy := by - ay
	dz := bz - az
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
