package polezero

import (
	"github.com/cwbudde/algo-fid/dsp/filter/chain"
	"github.com/cwbudde/algo-fid/internal/fiderr"
)

// Assemble converts a z-plane set into a chain of second-order sections.
//
// The chain starts with a one-coefficient FIR section holding gain, placed
// there so callers can correct the gain later. Poles and zeros are then
// consumed two at a time, each group giving an IIR section and an FIR
// section. A trailing lone pole and zero give a first-order pair.
//
// constMask is stored on every FIR section it emits. When it is non-zero,
// FIR sections whose zeros are all at the origin are left out, since they
// only delay the signal.
func (s *Set) Assemble(gain float64, constMask uint32) (chain.Chain, error) {
	pol, zer := s.Poles, s.Zeros
	out := chain.Chain{chain.NewFIR(gain)}

	a := 0
	for ; a <= len(pol)-2 && a <= len(zer)-2; a += 2 {
		switch {
		case pol[a].Tag == Single && pol[a+1].Tag == Single:
			p0, p1 := pol[a].Value, pol[a+1].Value
			out = append(out, chain.NewIIR(1, -real(p0+p1), real(p0)*real(p1)))
		case pol[a].Tag == PairFirst:
			p := pol[a].Value
			out = append(out, chain.NewIIR(1, -2*real(p), norm(p)))
		default:
			return nil, fiderr.Internalf("bad pole tags %v/%v at %d", pol[a].Tag, pol[a+1].Tag, a)
		}

		var fir []float64
		switch {
		case zer[a].Tag == Single && zer[a+1].Tag == Single:
			z0, z1 := zer[a].Value, zer[a+1].Value
			if constMask != 0 && z0 == 0 && z1 == 0 {
				continue
			}
			fir = []float64{1, -real(z0 + z1), real(z0) * real(z1)}
		case zer[a].Tag == PairFirst:
			z := zer[a].Value
			if constMask != 0 && z == 0 {
				continue
			}
			fir = []float64{1, -2 * real(z), norm(z)}
		default:
			return nil, fiderr.Internalf("bad zero tags %v/%v at %d", zer[a].Tag, zer[a+1].Tag, a)
		}
		out = append(out, chain.Section{Kind: chain.FIR, ConstMask: constMask, Coeffs: fir})
	}

	switch {
	case len(pol)-a == 0 && len(zer)-a == 0:
	case len(pol)-a == 1 && len(zer)-a == 1:
		if pol[a].Tag != Single || zer[a].Tag != Single {
			return nil, fiderr.Internalf("bad tags for final pole/zero: %v/%v", pol[a].Tag, zer[a].Tag)
		}
		out = append(out, chain.NewIIR(1, -real(pol[a].Value)))
		z := real(zer[a].Value)
		if constMask == 0 || z != 0 {
			out = append(out, chain.Section{Kind: chain.FIR, ConstMask: constMask, Coeffs: []float64{1, -z}})
		}
	default:
		return nil, fiderr.Internalf("unexpected poles/zeros at end of list (%d poles, %d zeros left)",
			len(pol)-a, len(zer)-a)
	}
	return out, nil
}

// norm returns |v|^2.
func norm(v complex128) float64 {
	return real(v)*real(v) + imag(v)*imag(v)
}
