package headloss

import "math"

// bellosFrictionFactor evaluates the Bellos-Nalbantis-Tsakris (2018)
// unified explicit correlation. A single continuous formula spans laminar,
// transitional, and turbulent flow:
//
//	a = 1 / (1 + (Re/2712)^8.4)
//	b = 1 / (1 + (Re·(ε/D)/150)^1.8)
//	f = (64/Re)^a · (0.75·ln(Re/5.37))^(2(a-1)·b) · (0.88·ln(6.82·D/ε))^(2(a-1)·(1-b))
//
// The weights a and b are smooth functions of Re that vanish outside their
// regime window: well below Re≈2712 a→1 and both exponents go to zero, so f
// approaches the laminar 64/Re branch; at high Re and roughness the
// Colebrook-type rough branch dominates. Because the blending is internal,
// this correlation is evaluated as published for every Reynolds number. An
// external laminar/turbulent switch would destroy the continuity the
// formula provides across Re ≈ 2300-4000.
//
// A smooth pipe (ε = 0) is well-defined: b is exactly 1 there, the rough
// term's exponent is exactly zero, and x^±0 = 1 for any x.
func bellosFrictionFactor(re, relativeRoughness float64) (float64, error) {
	a := 1 / (1 + math.Pow(re/2712, 8.4))
	b := 1 / (1 + math.Pow(re*relativeRoughness/150, 1.8))

	expSmooth := 2 * (a - 1) * b
	expRough := 2 * (a - 1) * (1 - b)

	smoothBase := 0.75 * math.Log(re/5.37)
	if smoothBase <= 0 && expSmooth != 0 {
		return 0, &NumericDomainError{Model: BellosNalbantisTsakris, Quantity: "smooth-branch logarithm 0.75·ln(Re/5.37)", Value: smoothBase}
	}
	roughBase := 0.88 * math.Log(6.82/relativeRoughness)
	if roughBase <= 0 && expRough != 0 {
		return 0, &NumericDomainError{Model: BellosNalbantisTsakris, Quantity: "rough-branch logarithm 0.88·ln(6.82·D/ε)", Value: roughBase}
	}

	f := math.Pow(64/re, a) * math.Pow(smoothBase, expSmooth) * math.Pow(roughBase, expRough)
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0, &NumericDomainError{Model: BellosNalbantisTsakris, Quantity: "friction factor", Value: f}
	}
	return f, nil
}
