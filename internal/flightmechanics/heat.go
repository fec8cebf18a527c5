package flightmechanics

import "math"

// HeatClass classifies a heat level against the nominal/overheated/
// critical thresholds.
type HeatClass int

const (
	HeatNominalClass HeatClass = iota
	HeatElevatedClass
	HeatOverheatedClass
	HeatCriticalClass
)

func (c HeatClass) String() string {
	switch c {
	case HeatNominalClass:
		return "Nominal"
	case HeatElevatedClass:
		return "Elevated"
	case HeatOverheatedClass:
		return "Overheated"
	case HeatCriticalClass:
		return "Critical"
	default:
		return "Unknown"
	}
}

// ClassifyHeat buckets a heat level per spec thresholds: <30 Nominal,
// <90 Elevated, <150 Overheated, else Critical.
func ClassifyHeat(heat float64) HeatClass {
	switch {
	case heat < HeatNominal:
		return HeatNominalClass
	case heat < HeatOverheated:
		return HeatElevatedClass
	case heat < HeatCritical:
		return HeatOverheatedClass
	default:
		return HeatCriticalClass
	}
}

// HeatConfig carries the calibration constant for CalculateJumpHeat.
type HeatConfig struct {
	Calibration float64
}

// HeatService computes per-jump heat, cooling wait times, and route-level
// heat projections. Stateless, like FuelService.
type HeatService struct{}

// NewHeatService returns a HeatService.
func NewHeatService() *HeatService {
	return &HeatService{}
}

// CalculateJumpHeat returns the heat generated by a single hop. A gate
// transition (distanceLY == 0) always produces zero heat.
func (s *HeatService) CalculateJumpHeat(massKG, distanceLY, hullKG float64, config HeatConfig) float64 {
	if distanceLY == 0 {
		return 0
	}
	return config.Calibration * HeatAlpha * (massKG / hullKG) * distanceLY
}

// CoolingWait returns the time required, under Newton's law of cooling,
// to go from heatNow to heatTarget given ambient heat, mass, specific
// heat, and the base cooling power. Returns 0 if already at or below
// target.
func (s *HeatService) CoolingWait(heatNow, heatTarget, ambient, massKG, specificHeat float64) float64 {
	if heatNow <= heatTarget {
		return 0
	}
	tau := massKG * specificHeat / BaseCoolingPower
	denominator := math.Max(heatTarget-ambient, CoolingEpsilon)
	return tau * math.Log((heatNow-ambient)/denominator)
}

// HopHeatProjection is the per-hop heat enrichment: heat generated this
// hop, running heat, classification after the hop, and the wait required
// to cool back to Nominal.
type HopHeatProjection struct {
	HopHeat      float64
	Cumulative   float64
	Classification HeatClass
	CoolingWait  float64
}

// CalculateRouteHeat projects heat accumulation across an ordered list of
// hop distances, starting from startHeat and using massKG as a constant
// total mass (static projection; dynamic-mass heat projections are
// computed by the caller hop by hop using CalculateJumpHeat directly with
// the same mass figures flight's fuel projection produced).
func (s *HeatService) CalculateRouteHeat(massKG, hullKG, startHeat float64, distancesLY []float64, config HeatConfig, specificHeat float64) []HopHeatProjection {
	projections := make([]HopHeatProjection, 0, len(distancesLY))
	running := startHeat

	for _, d := range distancesLY {
		jumpHeat := s.CalculateJumpHeat(massKG, d, hullKG, config)
		running += jumpHeat
		class := ClassifyHeat(running)
		wait := s.CoolingWait(running, HeatNominal, 0, massKG, specificHeat)

		projections = append(projections, HopHeatProjection{
			HopHeat:         jumpHeat,
			Cumulative:      running,
			Classification:  class,
			CoolingWait:     wait,
		})
	}

	return projections
}
