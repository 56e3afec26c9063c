package chain

import (
	"github.com/cwbudde/algo-fid/internal/fiderr"
	"github.com/cwbudde/algo-vecmath"
)

// Chain is an ordered sequence of IIR and FIR sections. The overall
// transfer function is the product of all FIR polynomials divided by the
// product of all IIR polynomials.
//
// Designers place a one-coefficient FIR section holding the overall gain at
// the front so callers can rescale a filter without touching the rest.
type Chain []Section

// Clone returns a deep copy of c.
func (c Chain) Clone() Chain {
	if c == nil {
		return nil
	}
	out := make(Chain, len(c))
	for i := range c {
		out[i] = c[i].Clone()
	}
	return out
}

// Validate checks that every section has a known kind and at least one
// coefficient.
func (c Chain) Validate() error {
	for i := range c {
		if !c[i].Kind.valid() {
			return fiderr.Internalf("unknown section type %v at index %d", c[i].Kind, i)
		}
		if len(c[i].Coeffs) == 0 {
			return fiderr.Internalf("empty section at index %d", i)
		}
	}
	return nil
}

// Cat concatenates chains end to end into a new chain. The inputs are
// copied, never aliased.
func Cat(chains ...Chain) Chain {
	n := 0
	for _, c := range chains {
		n += len(c)
	}
	out := make(Chain, 0, n)
	for _, c := range chains {
		for i := range c {
			out = append(out, c[i].Clone())
		}
	}
	return out
}

// Stack returns head repeated n times, each repetition a deep copy. This
// builds n-th order cascades of a hand-built section group. n <= 0 yields
// an empty chain.
func Stack(n int, head ...Section) Chain {
	if n <= 0 {
		return Chain{}
	}
	out := make(Chain, 0, n*len(head))
	for ; n > 0; n-- {
		for i := range head {
			out = append(out, head[i].Clone())
		}
	}
	return out
}

// FromArray rebuilds a chain from its flat encoding: a sequence of
// (type, length, coefficients...) records, where type is 'I' or 'F' stored
// as a float64, terminated by a zero type or the end of the slice.
func FromArray(arr []float64) (Chain, error) {
	var out Chain
	for i := 0; i < len(arr) && arr[i] != 0; {
		var typ Kind
		switch arr[i] {
		case float64(IIR):
			typ = IIR
		case float64(FIR):
			typ = FIR
		default:
			return nil, fiderr.Specf("bad type in filter array: %g", arr[i])
		}
		if i+1 >= len(arr) {
			return nil, fiderr.Specf("missing length in filter array at index %d", i+1)
		}
		n := int(arr[i+1])
		if n < 1 {
			return nil, fiderr.Specf("bad length in filter array: %g", arr[i+1])
		}
		start := i + 2
		if start+n > len(arr) {
			return nil, fiderr.Specf("filter array truncated: need %d values at index %d, have %d",
				n, start, len(arr)-start)
		}
		out = append(out, Section{Kind: typ, Coeffs: append([]float64(nil), arr[start:start+n]...)})
		i = start + n
	}
	return out, nil
}

// Array returns the flat encoding of c, including the zero terminator.
// Constant masks are not part of the encoding.
func (c Chain) Array() []float64 {
	n := 1
	for i := range c {
		n += 2 + len(c[i].Coeffs)
	}
	out := make([]float64, 0, n)
	for i := range c {
		out = append(out, float64(c[i].Kind), float64(len(c[i].Coeffs)))
		out = append(out, c[i].Coeffs...)
	}
	return append(out, 0)
}

// Flatten merges all IIR sections into one and all FIR sections into one by
// polynomial multiplication, then rescales both so that the leading IIR
// coefficient is exactly 1. The result always has the form [IIR, FIR].
func (c Chain) Flatten() (Chain, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	mIIR, mFIR := 1, 1
	for i := range c {
		if c[i].Kind == IIR {
			mIIR += len(c[i].Coeffs) - 1
		} else {
			mFIR += len(c[i].Coeffs) - 1
		}
	}

	iir := make([]float64, mIIR)
	fir := make([]float64, mFIR)
	iir[0], fir[0] = 1, 1
	nIIR, nFIR := 1, 1
	for i := range c {
		if c[i].Kind == IIR {
			nIIR = convolve(iir, nIIR, c[i].Coeffs)
		} else {
			nFIR = convolve(fir, nFIR, c[i].Coeffs)
		}
	}
	if nIIR != mIIR || nFIR != mFIR {
		return nil, fiderr.Internalf("flatten: array under/overflow (iir %d/%d, fir %d/%d)",
			nIIR, mIIR, nFIR, mFIR)
	}

	adj := 1 / iir[0]
	vecmath.ScaleBlockInPlace(iir, adj)
	vecmath.ScaleBlockInPlace(fir, adj)

	return Chain{
		{Kind: IIR, Coeffs: iir},
		{Kind: FIR, Coeffs: fir},
	}, nil
}

// convolve multiplies the polynomial held in dst[:n] by src in place and
// returns the new length. dst must have room for n+len(src)-1 values.
func convolve(dst []float64, n int, src []float64) int {
	length := n + len(src) - 1
	for a := length - 1; a >= 0; a-- {
		val := 0.0
		for b := range src {
			if a-b >= 0 && a-b < n {
				val += src[b] * dst[a-b]
			}
		}
		dst[a] = val
	}
	return length
}
