package headloss

// ModelEstimate is one correlation's contribution to a Comparison.
type ModelEstimate struct {
	Model          Model
	FrictionFactor float64
	MajorLoss      float64 // m
}

// Comparison surveys every supported correlation on a single input. When the
// correlations disagree, the spread bounds the uncertainty of the estimate;
// MeanMajorLoss averages them into a single working figure. The minor loss
// is model-independent and reported once.
type Comparison struct {
	Reynolds          float64
	Regime            Regime
	RelativeRoughness float64
	Velocity          float64 // m/s, magnitude
	Estimates         []ModelEstimate
	MeanMajorLoss     float64 // m
	MinorLoss         float64 // m
}

// Compare evaluates all supported correlations on one input and reports each
// model's friction factor and major loss alongside their mean. Laminar
// inputs are legitimate here: Serghide and Fang reduce to 64/Re exactly and
// Bellos-Nalbantis-Tsakris approaches it through its blending weights.
//
// Any failure from any correlation aborts the whole comparison; a survey
// that silently dropped a failing model would misrepresent the spread.
func Compare(in Input) (Comparison, error) {
	first, err := Compute(in, Models[0])
	if err != nil {
		return Comparison{}, err
	}

	estimates := make([]ModelEstimate, 0, len(Models))
	var sum float64
	for _, model := range Models {
		result := first
		if model != Models[0] {
			result, err = Compute(in, model)
			if err != nil {
				return Comparison{}, err
			}
		}
		estimates = append(estimates, ModelEstimate{
			Model:          model,
			FrictionFactor: result.FrictionFactor,
			MajorLoss:      result.MajorLoss,
		})
		sum += result.MajorLoss
	}

	return Comparison{
		Reynolds:          first.Reynolds,
		Regime:            first.Regime,
		RelativeRoughness: first.RelativeRoughness,
		Velocity:          first.Velocity,
		Estimates:         estimates,
		MeanMajorLoss:     sum / float64(len(estimates)),
		MinorLoss:         first.MinorLoss,
	}, nil
}
