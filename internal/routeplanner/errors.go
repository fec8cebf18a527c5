package routeplanner

import "fmt"

// PlannerError is the base error type returned by this package.
type PlannerError struct {
	Message string
}

func (e *PlannerError) Error() string {
	return e.Message
}

// UnknownSystemError is returned when a requested start or goal name
// does not resolve to a system.
type UnknownSystemError struct {
	*PlannerError
	Name string
}

func NewUnknownSystemError(name string) *UnknownSystemError {
	return &UnknownSystemError{
		PlannerError: &PlannerError{Message: fmt.Sprintf("unknown system: %s", name)},
		Name:         name,
	}
}

// UnsupportedOptionError is returned when a constraint combination is
// internally inconsistent, e.g. avoid_critical_state without a ship,
// loadout and heat config.
type UnsupportedOptionError struct {
	*PlannerError
	Detail string
}

func NewUnsupportedOptionError(detail string) *UnsupportedOptionError {
	return &UnsupportedOptionError{
		PlannerError: &PlannerError{Message: fmt.Sprintf("unsupported option combination: %s", detail)},
		Detail:       detail,
	}
}

// RouteNotFoundError is returned when the chosen algorithm's search
// exhausts its frontier without reaching the goal.
type RouteNotFoundError struct {
	*PlannerError
	Start, Goal int64
}

func NewRouteNotFoundError(start, goal int64) *RouteNotFoundError {
	return &RouteNotFoundError{
		PlannerError: &PlannerError{Message: "route not found"},
		Start:        start,
		Goal:         goal,
	}
}

// EmptyPlanError is returned by RouteSummary when asked to summarise a
// plan with no steps.
type EmptyPlanError struct {
	*PlannerError
}

func NewEmptyPlanError() *EmptyPlanError {
	return &EmptyPlanError{PlannerError: &PlannerError{Message: "route plan was empty"}}
}
