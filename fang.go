package headloss

import "math"

// fangFrictionFactor evaluates the Fang (2011) single-shot explicit
// correlation for turbulent flow:
//
//	f = 1.613 · [ ln( 0.234·(ε/D)^1.1007 - 60.525/Re^1.1105 + 56.291/Re^1.0712 ) ]⁻²
//
// The correlation is designed for direct evaluation without intermediate
// variables. For extreme roughness/Reynolds combinations the logarithm
// argument can leave its domain; that fails with a NumericDomainError
// instead of propagating a NaN.
func fangFrictionFactor(re, relativeRoughness float64) (float64, error) {
	arg := 0.234*math.Pow(relativeRoughness, 1.1007) -
		60.525/math.Pow(re, 1.1105) +
		56.291/math.Pow(re, 1.0712)
	if arg <= 0 || math.IsNaN(arg) {
		return 0, &NumericDomainError{Model: Fang, Quantity: "logarithm argument", Value: arg}
	}

	ln := math.Log(arg)
	f := 1.613 / (ln * ln)
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0, &NumericDomainError{Model: Fang, Quantity: "friction factor", Value: f}
	}
	return f, nil
}
