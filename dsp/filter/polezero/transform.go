package polezero

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-fid/internal/fiderr"
)

var negInf = complex(math.Inf(-1), 0)

// Lowpass scales the prototype to a cutoff of freq (a proportion of the
// sampling rate) and places one zero at -infinity per pole.
func (s *Set) Lowpass(freq float64) {
	w := complex(2*math.Pi*freq, 0)
	for a := range s.Poles {
		s.Poles[a].Value *= w
	}
	s.Zeros = constantZeros(len(s.Poles), negInf)
}

// Highpass inverts the prototype around a cutoff of freq and places one
// zero at the origin per pole.
func (s *Set) Highpass(freq float64) {
	w := complex(2*math.Pi*freq, 0)
	mapRoots(s.Poles, func(r Root) complex128 { return w / r.Value })
	s.Zeros = constantZeros(len(s.Poles), 0)
}

// Bandpass maps the prototype to a passband from f1 to f2, doubling the
// number of poles. Half of the zeros sit at the origin, half at -infinity.
func (s *Set) Bandpass(f1, f2 float64) error {
	if err := s.expandBand(f1, f2, "bandpass", false); err != nil {
		return err
	}
	n := len(s.Poles)
	s.Zeros = make([]Root, n)
	for a := range s.Zeros {
		s.Zeros[a] = Root{Value: negInf, Tag: Single}
		if a < n/2 {
			s.Zeros[a].Value = 0
		}
	}
	return nil
}

// Bandstop maps the prototype to a stopband from f1 to f2, doubling the
// number of poles. The zeros are conjugate pairs on the imaginary axis at
// the geometric centre frequency.
func (s *Set) Bandstop(f1, f2 float64) error {
	if err := s.expandBand(f1, f2, "bandstop", true); err != nil {
		return err
	}
	w0 := 2 * math.Pi * math.Sqrt(f1*f2)
	s.Zeros = make([]Root, 0, len(s.Poles))
	for len(s.Zeros) < len(s.Poles) {
		s.Zeros = append(s.Zeros, pair(complex(0, w0))...)
	}
	return nil
}

// expandBand replaces every prototype pole p by the pair (or two pairs) of
// roots of s^2 - 2*hba*s + w0^2, with hba = p*bw for a bandpass and
// hba = bw/p for a bandstop.
func (s *Set) expandBand(f1, f2 float64, name string, invert bool) error {
	if len(s.Poles)*2 > MaxPZ {
		return fiderr.Capacityf("maximum order for %s filters is %d", name, MaxPZ/2)
	}

	w0 := 2 * math.Pi * math.Sqrt(f1*f2)
	bw := math.Pi * (f2 - f1)

	out := make([]Root, 0, 2*len(s.Poles))
	for a := 0; a < len(s.Poles); a += step(s.Poles[a]) {
		p := s.Poles[a]
		if p.Tag == Single {
			hba := real(p.Value) * bw
			if invert {
				hba = bw / real(p.Value)
			}
			tmp := cmplx.Sqrt(complex(1-(w0/hba)*(w0/hba), 0))
			out = append(out, pair(complex(hba, 0)*(1+tmp))...)
			continue
		}
		hba := p.Value * complex(bw, 0)
		if invert {
			hba = complex(bw, 0) / p.Value
		}
		r := complex(w0, 0) / hba
		tmp := cmplx.Sqrt(1 - r*r)
		out = append(out, pair(hba*(1+tmp))...)
		out = append(out, pair(hba*(1-tmp))...)
	}
	s.Poles = out
	return nil
}

// Bilinear moves the set to the z-plane with the bilinear transform
// z = (2+s)/(2-s). A lone root at -infinity maps to -1.
func (s *Set) Bilinear() {
	fn := func(r Root) complex128 {
		if r.Tag == Single && r.Value == negInf {
			return -1
		}
		return (2 + r.Value) / (2 - r.Value)
	}
	mapRoots(s.Poles, fn)
	mapRoots(s.Zeros, fn)
}

// MatchedZ moves the set to the z-plane with the matched-z transform
// z = exp(s).
func (s *Set) MatchedZ() {
	fn := func(r Root) complex128 { return cmplx.Exp(r.Value) }
	mapRoots(s.Poles, fn)
	mapRoots(s.Zeros, fn)
}

func constantZeros(n int, v complex128) []Root {
	zs := make([]Root, n)
	for a := range zs {
		zs[a] = Root{Value: v, Tag: Single}
	}
	return zs
}
