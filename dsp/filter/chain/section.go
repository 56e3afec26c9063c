package chain

import "fmt"

// Kind tags a section as a feedback (IIR) or feedforward (FIR) polynomial.
// The values match the type codes of the flat array encoding.
type Kind byte

const (
	// IIR marks a denominator polynomial.
	IIR Kind = 'I'
	// FIR marks a numerator polynomial.
	FIR Kind = 'F'
)

// String returns "IIR", "FIR" or a diagnostic form for unknown kinds.
func (k Kind) String() string {
	switch k {
	case IIR:
		return "IIR"
	case FIR:
		return "FIR"
	default:
		return fmt.Sprintf("Kind(%d)", byte(k))
	}
}

func (k Kind) valid() bool { return k == IIR || k == FIR }

// AllConst marks every coefficient position of a section as constant.
const AllConst uint32 = ^uint32(0)

// constBitLimit is the highest bit consulted in a constant mask; every
// coefficient at or beyond this position shares it.
const constBitLimit = 15

// Section is one polynomial of a filter chain. Coefficients are indexed
// from the most recent sample backward: Coeffs[k] multiplies z^-k.
//
// ConstMask marks coefficient positions that are the same for every filter
// of a given family. It does not affect the response; code generators and
// DesignCoefficients use it to skip fixed values.
type Section struct {
	Kind      Kind
	ConstMask uint32
	Coeffs    []float64
}

// NewIIR returns an IIR section with no constant positions.
func NewIIR(coeffs ...float64) Section {
	return Section{Kind: IIR, Coeffs: append([]float64(nil), coeffs...)}
}

// NewFIR returns an FIR section with no constant positions.
func NewFIR(coeffs ...float64) Section {
	return Section{Kind: FIR, Coeffs: append([]float64(nil), coeffs...)}
}

// Len returns the number of coefficients.
func (s Section) Len() int { return len(s.Coeffs) }

// IsConst reports whether coefficient i is marked constant.
func (s Section) IsConst(i int) bool {
	if i > constBitLimit {
		i = constBitLimit
	}
	return s.ConstMask&(1<<uint(i)) != 0
}

// Clone returns a deep copy of s.
func (s Section) Clone() Section {
	s.Coeffs = append([]float64(nil), s.Coeffs...)
	return s
}

// evaluate returns the polynomial value sum(coef[k] * z^k), accumulating
// powers of z term by term.
func evaluate(coef []float64, z complex128) complex128 {
	if len(coef) == 0 {
		return 0
	}
	rv := complex(coef[0], 0)
	if len(coef) > 1 {
		pz := z
		rv += complex(coef[1], 0) * pz
		for _, c := range coef[2:] {
			pz *= z
			rv += complex(c, 0) * pz
		}
	}
	return rv
}
