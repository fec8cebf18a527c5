package starmap

import (
	"fmt"
	"math"
)

// System is a single node of the star-map graph. Positions are in metres in
// a fixed Cartesian frame; StarLuminosity, PlanetCount and MoonCount are
// optional and absent when the source dataset does not carry them.
type System struct {
	ID             int64
	Name           string
	X, Y, Z        float64
	StarLuminosity *float64
	PlanetCount    *uint32
	MoonCount      *uint32
}

// DistanceTo returns the Euclidean distance, in metres, to another system.
func (s System) DistanceTo(other System) float64 {
	dx := other.X - s.X
	dy := other.Y - s.Y
	dz := other.Z - s.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func (s System) String() string {
	return fmt.Sprintf("System(%s)", s.Name)
}

// metresPerLightYear converts a jump distance expressed in metres (as
// stored in the dataset) into light-years, the unit flight mechanics and
// route constraints operate in.
const metresPerLightYear = 9.4607304725808e15

// LightYearsTo returns the distance to another system in light-years.
func (s System) LightYearsTo(other System) float64 {
	return s.DistanceTo(other) / metresPerLightYear
}
