package ilerr

import "fmt"

// ArityPolicy decides how a disagreement between the number of parameters of a
// function and the number of arguments it is called with is handled. The same
// policy applies to inference and to evaluation.
type ArityPolicy int

const (
	// ArityStrict reports a ConflictingArity error during inference and an
	// ArityMismatch failure during evaluation
	ArityStrict ArityPolicy = iota
	// ArityLenient only logs during inference; evaluation binds missing
	// parameters to the absent value and drops excess arguments
	ArityLenient
)

func (p ArityPolicy) String() string {
	switch p {
	case ArityStrict:
		return "strict"
	case ArityLenient:
		return "lenient"
	default:
		return fmt.Sprintf("ArityPolicy(%d)", int(p))
	}
}

func ParseArityPolicy(s string) (ArityPolicy, error) {
	switch s {
	case "", "strict":
		return ArityStrict, nil
	case "lenient":
		return ArityLenient, nil
	default:
		return ArityStrict, fmt.Errorf("unknown arity policy %q (expected 'strict' or 'lenient')", s)
	}
}

func (p ArityPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *ArityPolicy) UnmarshalText(text []byte) error {
	parsed, err := ParseArityPolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
