// Package headloss estimates hydraulic head loss in a single pipe segment
// carrying a Newtonian fluid.
//
// # Overview
//
// headloss combines major (friction) loss computed with the Darcy-Weisbach
// equation and minor loss from local fittings expressed as a sum of loss
// coefficients. The core of the package is accurate, numerically stable
// estimation of the Darcy friction factor, which is governed by the implicit
// Colebrook-White equation and has no closed form. Three published explicit
// approximations are reproduced exactly:
//
//   - Serghide (1984): three nested logarithmic iterates, turbulent flow
//   - Fang (2011): single-shot explicit correlation, turbulent flow
//   - Bellos-Nalbantis-Tsakris (2018): unified correlation spanning laminar,
//     transitional, and turbulent regimes in one continuous formula
//
// # Core Concepts
//
// The package is built around a small set of value types and pure functions:
//
//   - Input: named physical parameters (geometry, fluid, flow, fittings)
//   - Model: enumerated selector for the friction-factor correlation
//   - Compute: pure head-loss computation returning a full Result breakdown
//   - Calculator: a reusable wrapper around Compute with metrics, tracing,
//     and event hooks
//
// Every entity is created fresh per call and discarded; no call shares
// mutable state with another, so concurrent use requires no locking.
// Execution follows a fail-fast pattern: the first invalid parameter or
// numeric degeneracy stops the computation and surfaces a typed error.
//
// # Usage Example
//
// Computing the head loss across 100 m of rough 0.5 m pipe:
//
//	in := headloss.Input{
//	    Geometry: headloss.PipeGeometry{Length: 100, Diameter: 0.5, Roughness: 0.002},
//	    Fluid:    headloss.FluidProperties{Density: 1000, KinematicViscosity: 1e-6},
//	    Flow:     headloss.FlowCondition{Velocity: 2},
//	    Fittings: headloss.KFactors{7, 4, 8},
//	}
//
//	result, err := headloss.Compute(in, headloss.Serghide)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("total loss: %.3f m (Re=%.0f, f=%.4f)\n",
//	    result.TotalLoss, result.Reynolds, result.FrictionFactor)
//
// Long-lived callers that want observability wrap the same computation in a
// Calculator:
//
//	calc := headloss.NewCalculator("main-line", headloss.Serghide)
//	defer calc.Close()
//
//	calc.OnComputed(func(_ context.Context, e headloss.ComputeEvent) error {
//	    log.Printf("%s: %.3f m in %s", e.Name, e.Result.TotalLoss, e.Duration)
//	    return nil
//	})
//
//	result, err := calc.Process(ctx, in)
//
// # Units
//
// All quantities are SI: meters, seconds, kilograms. Callers are responsible
// for unit conversion before invocation. Head losses are reported in meters
// of fluid column.
//
// # Error Handling
//
// Failures are typed and carry the parameter or stage that produced them:
//
//   - InvalidParameterError: non-positive diameter, density, or viscosity;
//     zero Reynolds number
//   - NumericDomainError: an intermediate expression (e.g. a logarithm
//     argument) left its mathematically valid domain
//   - NumericDegeneracyError: a correlation denominator is numerically
//     indistinguishable from zero (Serghide)
//   - UnsupportedModelError: an unrecognized model selector
//
// No error is caught or retried internally; a fallback friction factor is
// never substituted, since the result would be indistinguishable from a
// correct one.
package headloss
