package pathengine

// PathError is the base error type returned by this package.
type PathError struct {
	Message string
}

func (e *PathError) Error() string {
	return e.Message
}

// RouteNotFoundError is returned when the frontier is exhausted before
// the goal is discovered.
type RouteNotFoundError struct {
	*PathError
	Start, Goal int64
}

func NewRouteNotFoundError(start, goal int64) *RouteNotFoundError {
	return &RouteNotFoundError{
		PathError: &PathError{Message: "route not found"},
		Start:     start,
		Goal:      goal,
	}
}
