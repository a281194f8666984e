package headloss

import "fmt"

// InvalidParameterError reports a physical parameter that violates its
// contract: a non-positive diameter, density, or viscosity, a negative
// roughness, or a zero Reynolds number. The offending parameter and value
// are carried so callers can diagnose which input was wrong.
type InvalidParameterError struct {
	Parameter string
	Reason    string
	Value     float64
}

// Error implements the error interface.
func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s (got %v)", e.Parameter, e.Reason, e.Value)
}

// NumericDomainError reports an intermediate expression that fell outside
// its mathematically valid domain for the given inputs, such as a
// non-positive logarithm argument in the Fang correlation.
type NumericDomainError struct {
	Model    Model
	Quantity string
	Value    float64
}

// Error implements the error interface.
func (e *NumericDomainError) Error() string {
	return fmt.Sprintf("model %q: %s outside valid domain (got %v)", e.Model, e.Quantity, e.Value)
}

// NumericDegeneracyError reports a denominator in an iterative-approximation
// formula that is numerically indistinguishable from zero. This occurs in
// the Serghide correlation when the three logarithmic iterates collapse to
// the same floating-point value.
type NumericDegeneracyError struct {
	Model    Model
	Quantity string
}

// Error implements the error interface.
func (e *NumericDegeneracyError) Error() string {
	return fmt.Sprintf("model %q: %s is numerically indistinguishable from zero", e.Model, e.Quantity)
}

// UnsupportedModelError reports a friction-model selector that does not name
// one of the supported correlations.
type UnsupportedModelError struct {
	Model Model
}

// Error implements the error interface.
func (e *UnsupportedModelError) Error() string {
	return fmt.Sprintf("unsupported friction model %q", e.Model)
}

// recoverFromPanic converts a panic during processing into an error so a
// misbehaving hook or future correlation cannot crash the caller.
func recoverFromPanic(err *error, name Name) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("calculator %q panicked: %v", name, r)
	}
}
