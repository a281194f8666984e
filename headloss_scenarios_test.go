package headloss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Concrete engineering scenarios with literal values, checked end to end
// through Compute.
func TestEngineeringScenarios(t *testing.T) {
	t.Run("TurbulentWaterMain", func(t *testing.T) {
		// 100 m of rough DN500 pipe carrying water at 2 m/s with three
		// fittings: Re = 2·0.5/1e-6 = 1e6, firmly turbulent.
		in := Input{
			Geometry: PipeGeometry{Length: 100, Diameter: 0.5, Roughness: 0.002},
			Fluid:    FluidProperties{Density: 1000, KinematicViscosity: 1e-6},
			Flow:     FlowCondition{Velocity: 2},
			Fittings: KFactors{7, 4, 8},
		}

		result, err := Compute(in, Serghide)
		require.NoError(t, err)

		assert.InEpsilon(t, 1e6, result.Reynolds, 1e-12)
		assert.Equal(t, RegimeTurbulent, result.Regime)
		assert.InEpsilon(t, 0.004, result.RelativeRoughness, 1e-12)

		// Friction factor per Serghide at Re=1e6, ε/D=0.004.
		assert.Greater(t, result.FrictionFactor, 0.02)
		assert.Less(t, result.FrictionFactor, 0.04)

		velocityHead := 2.0 * 2.0 / (2 * Gravity)
		assert.InEpsilon(t, result.FrictionFactor*(100/0.5)*velocityHead, result.MajorLoss, 1e-12)
		assert.InEpsilon(t, 19*velocityHead, result.MinorLoss, 1e-12)
		assert.Equal(t, result.MajorLoss+result.MinorLoss, result.TotalLoss)
		assert.Positive(t, result.MajorLoss)
		assert.Positive(t, result.MinorLoss)
	})

	t.Run("LaminarOilLine", func(t *testing.T) {
		// Velocity chosen so Re = 0.002·0.5/1e-6 = 1000: laminar, so both
		// turbulent specialists take the Hagen-Poiseuille shortcut exactly.
		in := Input{
			Geometry: PipeGeometry{Length: 100, Diameter: 0.5, Roughness: 0.002},
			Fluid:    FluidProperties{Density: 1000, KinematicViscosity: 1e-6},
			Flow:     FlowCondition{Velocity: 0.002},
			Fittings: KFactors{7, 4, 8},
		}

		for _, model := range []Model{Serghide, Fang} {
			result, err := Compute(in, model)
			require.NoError(t, err, "model %s", model)
			assert.InEpsilon(t, 1000, result.Reynolds, 1e-12)
			assert.Equal(t, RegimeLaminar, result.Regime)
			assert.InEpsilon(t, 0.064, result.FrictionFactor, 1e-12, "model %s must take the 64/Re shortcut", model)
		}
	})

	t.Run("ZeroViscosityRejected", func(t *testing.T) {
		in := testInput()
		in.Fluid.KinematicViscosity = 0

		_, err := Compute(in, Serghide)
		var paramErr *InvalidParameterError
		require.ErrorAs(t, err, &paramErr)
		assert.Equal(t, "kinematic viscosity", paramErr.Parameter)
	})

	t.Run("ZeroDiameterRejected", func(t *testing.T) {
		in := testInput()
		in.Geometry.Diameter = 0

		// Both the Reynolds computation and the relative-roughness
		// computation guard the division; validation catches it first.
		_, err := Compute(in, Serghide)
		var paramErr *InvalidParameterError
		require.ErrorAs(t, err, &paramErr)
		assert.Equal(t, "diameter", paramErr.Parameter)

		_, err = ReynoldsNumber(2, 0, 1e-6)
		require.ErrorAs(t, err, &paramErr)

		_, err = PipeGeometry{Length: 100, Diameter: 0, Roughness: 0.002}.RelativeRoughness()
		require.ErrorAs(t, err, &paramErr)
	})

	t.Run("NoFittings", func(t *testing.T) {
		in := testInput()
		in.Fittings = KFactors{}

		result, err := Compute(in, Serghide)
		require.NoError(t, err)
		assert.Zero(t, result.MinorLoss)
		assert.Equal(t, result.MajorLoss, result.TotalLoss)
	})
}
