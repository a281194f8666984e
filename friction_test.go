package headloss

import (
	"errors"
	"math"
	"testing"
)

// colebrookWhite iterates the implicit Colebrook-White equation
//
//	1/√f = -2·log10( ε/(3.7D) + 2.51/(Re·√f) )
//
// to convergence. It exists only as a test reference; the production code
// path is explicit by design.
func colebrookWhite(re, relativeRoughness float64) float64 {
	x := 8.0 // 1/√f, f ≈ 0.016 starting point
	for i := 0; i < 100; i++ {
		x = -2 * math.Log10(relativeRoughness/3.7+2.51*x/re)
	}
	return 1 / (x * x)
}

func relativeError(got, want float64) float64 {
	return math.Abs(got-want) / math.Abs(want)
}

func TestFrictionFactor(t *testing.T) {
	t.Run("Laminar Shortcut", func(t *testing.T) {
		// For Re < 2300 Serghide and Fang must return 64/Re exactly,
		// independent of roughness.
		reynolds := []float64{1, 100, 1000, 2299.9}
		roughness := []float64{0, 1e-5, 0.004, 0.05}
		for _, model := range []Model{Serghide, Fang} {
			for _, re := range reynolds {
				for _, rr := range roughness {
					f, err := FrictionFactor(model, re, rr)
					if err != nil {
						t.Fatalf("%s(Re=%v, rr=%v): unexpected error: %v", model, re, rr, err)
					}
					if f != 64/re {
						t.Errorf("%s(Re=%v, rr=%v) = %v, want exactly %v", model, re, rr, f, 64/re)
					}
				}
			}
		}
	})

	t.Run("Bellos Bypasses Laminar Shortcut", func(t *testing.T) {
		// The unified correlation is evaluated as published even below
		// Re=2300: close to 64/Re, but not the shortcut itself.
		f, err := FrictionFactor(BellosNalbantisTsakris, 1000, 0.001)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f == 64.0/1000 {
			t.Error("expected the published formula, not the 64/Re shortcut")
		}
		if relativeError(f, 64.0/1000) > 0.02 {
			t.Errorf("laminar Bellos should stay near 64/Re: got %v, want ≈%v", f, 64.0/1000)
		}
	})

	t.Run("Colebrook-White Agreement", func(t *testing.T) {
		// Each correlation against the iterated Colebrook-White solution,
		// inside its well-behaved range.
		cases := []struct {
			re, rr    float64
			tolerance map[Model]float64
		}{
			{1e5, 1e-5, map[Model]float64{Serghide: 0.005, Fang: 0.02, BellosNalbantisTsakris: 0.05}},
			{1e5, 1e-4, map[Model]float64{Serghide: 0.005, Fang: 0.02, BellosNalbantisTsakris: 0.05}},
			{1e6, 1e-5, map[Model]float64{Serghide: 0.005, Fang: 0.02, BellosNalbantisTsakris: 0.05}},
			{1e4, 1e-4, map[Model]float64{Serghide: 0.005, Fang: 0.02, BellosNalbantisTsakris: 0.05}},
			// Rough regime: the unified correlation trades pipe-range
			// accuracy for regime continuity, so only the two turbulent
			// specialists are held to the tight bound here.
			{1e6, 0.004, map[Model]float64{Serghide: 0.005, Fang: 0.02}},
			{1e7, 0.002, map[Model]float64{Serghide: 0.005, Fang: 0.02}},
			{5e4, 0.001, map[Model]float64{Serghide: 0.005, Fang: 0.02}},
		}
		for _, tc := range cases {
			want := colebrookWhite(tc.re, tc.rr)
			for model, tol := range tc.tolerance {
				f, err := FrictionFactor(model, tc.re, tc.rr)
				if err != nil {
					t.Fatalf("%s(Re=%v, rr=%v): unexpected error: %v", model, tc.re, tc.rr, err)
				}
				if rel := relativeError(f, want); rel > tol {
					t.Errorf("%s(Re=%v, rr=%v) = %v, Colebrook-White %v, relative error %.4f > %.4f",
						model, tc.re, tc.rr, f, want, rel, tol)
				}
			}
		}
	})

	t.Run("Cross-Model Agreement", func(t *testing.T) {
		// In the smooth turbulent range the three independently derived
		// formulas must land within a few percent of each other.
		points := []struct{ re, rr float64 }{
			{1e4, 1e-4},
			{1e5, 1e-5},
			{1e6, 1e-5},
		}
		for _, p := range points {
			factors := make(map[Model]float64, len(Models))
			for _, model := range Models {
				f, err := FrictionFactor(model, p.re, p.rr)
				if err != nil {
					t.Fatalf("%s(Re=%v, rr=%v): unexpected error: %v", model, p.re, p.rr, err)
				}
				factors[model] = f
			}
			for _, a := range Models {
				for _, b := range Models {
					if rel := relativeError(factors[a], factors[b]); rel > 0.05 {
						t.Errorf("Re=%v rr=%v: %s=%v and %s=%v differ by %.4f",
							p.re, p.rr, a, factors[a], b, factors[b], rel)
					}
				}
			}
		}
	})

	t.Run("Zero Reynolds Number", func(t *testing.T) {
		for _, model := range Models {
			_, err := FrictionFactor(model, 0, 0.001)
			var paramErr *InvalidParameterError
			if !errors.As(err, &paramErr) {
				t.Fatalf("%s: expected InvalidParameterError for Re=0, got %v", model, err)
			}
			if paramErr.Parameter != "reynolds number" {
				t.Errorf("%s: expected parameter %q, got %q", model, "reynolds number", paramErr.Parameter)
			}
		}
	})

	t.Run("Negative Relative Roughness", func(t *testing.T) {
		_, err := FrictionFactor(Serghide, 1e5, -0.001)
		var paramErr *InvalidParameterError
		if !errors.As(err, &paramErr) {
			t.Fatalf("expected InvalidParameterError, got %v", err)
		}
	})

	t.Run("Unsupported Model", func(t *testing.T) {
		_, err := FrictionFactor(Model("colebrook"), 1e5, 0.001)
		var modelErr *UnsupportedModelError
		if !errors.As(err, &modelErr) {
			t.Fatalf("expected UnsupportedModelError, got %v", err)
		}
		if modelErr.Model != Model("colebrook") {
			t.Errorf("expected model %q in error, got %q", "colebrook", modelErr.Model)
		}
	})

	t.Run("Friction Factor Is Positive", func(t *testing.T) {
		for _, model := range Models {
			for _, re := range []float64{10, 1000, 5e3, 1e5, 1e7} {
				for _, rr := range []float64{0, 1e-5, 1e-3, 0.01} {
					f, err := FrictionFactor(model, re, rr)
					if err != nil {
						t.Fatalf("%s(Re=%v, rr=%v): unexpected error: %v", model, re, rr, err)
					}
					if !(f > 0) {
						t.Errorf("%s(Re=%v, rr=%v) = %v, want > 0", model, re, rr, f)
					}
				}
			}
		}
	})
}
