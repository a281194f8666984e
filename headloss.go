package headloss

import "math"

// Gravity is the standard gravitational acceleration, m/s².
const Gravity = 9.81

// Compute estimates the total head loss across a single pipe segment. It is
// a pure function: validate the input, compute the Reynolds number, estimate
// the Darcy friction factor with the selected correlation, then combine
//
//	major = f · (L/D) · V² / (2g)
//	minor = ΣKᵢ · V² / (2g)
//	total = major + minor
//
// The zero Model selects DefaultModel.
//
// All losses are in meters of fluid column. Any failure from validation,
// the Reynolds computation, or the friction-factor estimation propagates
// unchanged; no fallback friction factor is ever substituted. On error the
// zero Result is returned — there is no partial result.
func Compute(in Input, model Model) (Result, error) {
	if model == "" {
		model = DefaultModel
	}
	if !model.Valid() {
		return Result{}, &UnsupportedModelError{Model: model}
	}
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	re, err := ReynoldsNumber(in.Flow.Velocity, in.Geometry.Diameter, in.Fluid.KinematicViscosity)
	if err != nil {
		return Result{}, err
	}

	rr, err := in.Geometry.RelativeRoughness()
	if err != nil {
		return Result{}, err
	}

	f, err := FrictionFactor(model, re, rr)
	if err != nil {
		return Result{}, err
	}

	v := math.Abs(in.Flow.Velocity)
	velocityHead := v * v / (2 * Gravity)
	major := f * (in.Geometry.Length / in.Geometry.Diameter) * velocityHead
	minor := in.Fittings.Sum() * velocityHead

	return Result{
		Model:             model,
		Regime:            ClassifyRegime(re),
		Reynolds:          re,
		RelativeRoughness: rr,
		Velocity:          v,
		FrictionFactor:    f,
		MajorLoss:         major,
		MinorLoss:         minor,
		TotalLoss:         major + minor,
	}, nil
}
