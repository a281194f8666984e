package headloss

import (
	"fmt"
	"math"
)

// Name identifies a calculator instance in events, metrics, and errors.
type Name = string

// PipeGeometry describes the pipe segment. All lengths are in meters.
type PipeGeometry struct {
	Length    float64 // pipe length L, m (> 0)
	Diameter  float64 // internal diameter D, m (> 0)
	Roughness float64 // absolute roughness ε, m (>= 0)
}

// Area returns the cross-sectional flow area πD²/4 in m².
func (g PipeGeometry) Area() float64 {
	return math.Pi * g.Diameter * g.Diameter / 4
}

// RelativeRoughness returns ε/D. It fails with an InvalidParameterError when
// the diameter is not positive, so a division by zero is never silently
// produced.
func (g PipeGeometry) RelativeRoughness() (float64, error) {
	if !(g.Diameter > 0) {
		return 0, &InvalidParameterError{Parameter: "diameter", Value: g.Diameter, Reason: "must be positive"}
	}
	if g.Roughness < 0 || math.IsNaN(g.Roughness) {
		return 0, &InvalidParameterError{Parameter: "roughness", Value: g.Roughness, Reason: "must be non-negative"}
	}
	return g.Roughness / g.Diameter, nil
}

// FluidProperties describes the Newtonian fluid in the pipe.
type FluidProperties struct {
	Density            float64 // ρ, kg/m³ (> 0)
	KinematicViscosity float64 // ν, m²/s (> 0)
}

// FlowCondition carries the mean flow velocity. Only the magnitude enters
// the loss computation; head loss is non-negative regardless of direction.
type FlowCondition struct {
	Velocity float64 // V, m/s
}

// VelocityFromFlowRate derives a FlowCondition from a volumetric flow rate
// Q (m³/s) and the pipe cross-section, V = Q / (πD²/4).
func VelocityFromFlowRate(flowRate float64, geom PipeGeometry) (FlowCondition, error) {
	if !(geom.Diameter > 0) {
		return FlowCondition{}, &InvalidParameterError{Parameter: "diameter", Value: geom.Diameter, Reason: "must be positive"}
	}
	return FlowCondition{Velocity: flowRate / geom.Area()}, nil
}

// KFactors is the ordered sequence of dimensionless minor-loss coefficients,
// one per fitting, valve, or bend. Insertion order is irrelevant to the
// result; the aggregate is a sum.
type KFactors []float64

// Sum returns the aggregate loss coefficient ΣKᵢ.
func (k KFactors) Sum() float64 {
	var total float64
	for _, v := range k {
		total += v
	}
	return total
}

// Input names every physical quantity of a head-loss query. A named
// structure replaces the long positional parameter list of classical
// head-loss routines, eliminating silent argument-order mistakes.
type Input struct {
	Geometry PipeGeometry
	Fluid    FluidProperties
	Flow     FlowCondition
	Fittings KFactors
}

// Validate checks the physical invariants of the input. It returns the
// first violation as an InvalidParameterError.
func (in Input) Validate() error {
	switch {
	case !(in.Geometry.Length > 0):
		return &InvalidParameterError{Parameter: "length", Value: in.Geometry.Length, Reason: "must be positive"}
	case !(in.Geometry.Diameter > 0):
		return &InvalidParameterError{Parameter: "diameter", Value: in.Geometry.Diameter, Reason: "must be positive"}
	case in.Geometry.Roughness < 0 || math.IsNaN(in.Geometry.Roughness):
		return &InvalidParameterError{Parameter: "roughness", Value: in.Geometry.Roughness, Reason: "must be non-negative"}
	case !(in.Fluid.Density > 0):
		return &InvalidParameterError{Parameter: "density", Value: in.Fluid.Density, Reason: "must be positive"}
	case !(in.Fluid.KinematicViscosity > 0):
		return &InvalidParameterError{Parameter: "kinematic viscosity", Value: in.Fluid.KinematicViscosity, Reason: "must be positive"}
	case math.IsNaN(in.Flow.Velocity) || math.IsInf(in.Flow.Velocity, 0):
		return &InvalidParameterError{Parameter: "velocity", Value: in.Flow.Velocity, Reason: "must be finite"}
	}
	for i, k := range in.Fittings {
		if k < 0 || math.IsNaN(k) {
			return &InvalidParameterError{
				Parameter: fmt.Sprintf("k factor %d", i),
				Value:     k,
				Reason:    "loss coefficients must be non-negative",
			}
		}
	}
	return nil
}

// Result is the immutable breakdown of one head-loss computation. All
// losses are in meters of fluid column. The Reynolds number and friction
// factor used are retained for traceability.
type Result struct {
	Model             Model
	Regime            Regime
	Reynolds          float64
	RelativeRoughness float64
	Velocity          float64 // m/s, magnitude
	FrictionFactor    float64
	MajorLoss         float64 // m
	MinorLoss         float64 // m
	TotalLoss         float64 // m
}
