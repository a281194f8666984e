package headloss

import "math"

// Conventional engineering cutoffs between flow regimes.
const (
	// ReynoldsLaminarMax is the upper bound of laminar flow; below it every
	// correlation reduces to the Hagen-Poiseuille solution f = 64/Re.
	ReynoldsLaminarMax = 2300.0

	// ReynoldsTurbulentMin is the lower bound of fully turbulent flow.
	ReynoldsTurbulentMin = 4000.0
)

// Regime classifies the flow as laminar, transitional, or turbulent.
type Regime int

// Flow regimes, in order of increasing Reynolds number.
const (
	RegimeLaminar Regime = iota
	RegimeTransitional
	RegimeTurbulent
)

// String returns the regime name.
func (r Regime) String() string {
	switch r {
	case RegimeLaminar:
		return "laminar"
	case RegimeTransitional:
		return "transitional"
	case RegimeTurbulent:
		return "turbulent"
	default:
		return "unknown"
	}
}

// ReynoldsNumber computes Re = |V|·D/ν, the dimensionless ratio of inertial
// to viscous forces. Only the velocity magnitude enters the computation;
// head loss does not depend on flow direction.
//
// Diameter and kinematic viscosity must be positive; a violation fails with
// an InvalidParameterError rather than silently dividing by zero.
func ReynoldsNumber(velocity, diameter, viscosity float64) (float64, error) {
	if !(diameter > 0) {
		return 0, &InvalidParameterError{Parameter: "diameter", Value: diameter, Reason: "must be positive"}
	}
	if !(viscosity > 0) {
		return 0, &InvalidParameterError{Parameter: "kinematic viscosity", Value: viscosity, Reason: "must be positive"}
	}
	if math.IsNaN(velocity) || math.IsInf(velocity, 0) {
		return 0, &InvalidParameterError{Parameter: "velocity", Value: velocity, Reason: "must be finite"}
	}
	return math.Abs(velocity) * diameter / viscosity, nil
}

// ClassifyRegime maps a Reynolds number onto the conventional engineering
// regime cutoffs: Re < 2300 laminar, 2300 <= Re < 4000 transitional,
// Re >= 4000 turbulent.
func ClassifyRegime(re float64) Regime {
	switch {
	case re < ReynoldsLaminarMax:
		return RegimeLaminar
	case re < ReynoldsTurbulentMin:
		return RegimeTransitional
	default:
		return RegimeTurbulent
	}
}
