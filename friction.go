package headloss

import "math"

// FrictionFactor returns the dimensionless Darcy friction factor for the
// given correlation, Reynolds number, and relative roughness ε/D.
//
// For Serghide and Fang the common laminar rule applies: below
// ReynoldsLaminarMax the Hagen-Poiseuille solution f = 64/Re is returned
// exactly, independent of roughness, and the turbulent formula is evaluated
// from there up. BellosNalbantisTsakris bypasses the shortcut entirely: its
// published formula blends the laminar, transitional, and turbulent branches
// internally, and a hard external switch would destroy that continuity.
//
// Re = 0 is physically undefined and fails with an InvalidParameterError.
func FrictionFactor(model Model, re, relativeRoughness float64) (float64, error) {
	if !(re > 0) {
		return 0, &InvalidParameterError{Parameter: "reynolds number", Value: re, Reason: "must be positive"}
	}
	if relativeRoughness < 0 || math.IsNaN(relativeRoughness) {
		return 0, &InvalidParameterError{Parameter: "relative roughness", Value: relativeRoughness, Reason: "must be non-negative"}
	}

	switch model {
	case Serghide:
		if re < ReynoldsLaminarMax {
			return 64 / re, nil
		}
		return serghideFrictionFactor(re, relativeRoughness)
	case Fang:
		if re < ReynoldsLaminarMax {
			return 64 / re, nil
		}
		return fangFrictionFactor(re, relativeRoughness)
	case BellosNalbantisTsakris:
		return bellosFrictionFactor(re, relativeRoughness)
	default:
		return 0, &UnsupportedModelError{Model: model}
	}
}
