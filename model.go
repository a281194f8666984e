package headloss

// Model selects the explicit friction-factor correlation used to approximate
// the implicit Colebrook-White equation. Using a typed key instead of a bare
// string keeps model routing explicit and exhaustiveness-checkable at the
// dispatch site.
type Model string

// Supported correlations.
const (
	// Serghide is the Serghide (1984) three-step explicit approximation,
	// accurate within ~0.13% of Colebrook-White for turbulent flow.
	Serghide Model = "serghide"

	// Fang is the Fang (2011) single-shot explicit correlation for
	// turbulent flow.
	Fang Model = "fang"

	// BellosNalbantisTsakris is the Bellos-Nalbantis-Tsakris (2018) unified
	// correlation, continuous across laminar, transitional, and turbulent
	// regimes.
	BellosNalbantisTsakris Model = "bellos-nalbantis-tsakris"
)

// DefaultModel is the correlation used when a caller has no preference.
const DefaultModel = Serghide

// Models lists every supported correlation in publication order.
var Models = []Model{Serghide, Fang, BellosNalbantisTsakris}

// Valid reports whether m names a supported correlation.
func (m Model) Valid() bool {
	switch m {
	case Serghide, Fang, BellosNalbantisTsakris:
		return true
	default:
		return false
	}
}

// String returns the model name.
func (m Model) String() string {
	return string(m)
}
