package fid

import (
	"math"

	"github.com/cwbudde/algo-fid/dsp/filter/chain"
	"github.com/cwbudde/algo-fid/dsp/filter/polezero"
)

// request carries the parsed parameters of one design, with frequencies
// as proportions of the sampling rate.
type request struct {
	f0, f1 float64
	order  int
	args   []float64
}

type designer func(r request) (chain.Chain, error)

// prototype builds the analog lowpass prototype for a request.
type prototype func(r request) (*polezero.Set, error)

func bessel(r request) (*polezero.Set, error)      { return polezero.Bessel(r.order) }
func butterworth(r request) (*polezero.Set, error) { return polezero.Butterworth(r.order) }
func chebyshev(r request) (*polezero.Set, error)   { return polezero.Chebyshev(r.order, r.args[0]) }

// sToZ selects the s-plane to z-plane mapping.
type sToZ int

const (
	bilinear sToZ = iota
	matchedZ
)

// warp returns the analog frequency to design for so that the digital
// filter lands on f. Only the bilinear transform needs it.
func (m sToZ) warp(f float64) float64 {
	if m == bilinear {
		return math.Tan(f*math.Pi) / math.Pi
	}
	return f
}

func (m sToZ) apply(s *polezero.Set) {
	if m == bilinear {
		s.Bilinear()
	} else {
		s.MatchedZ()
	}
}

// bandstopConstMask marks the outer taps of the notch sections as
// constant; the middle one depends on the centre frequency.
const bandstopConstMask = 0x5

func lowpass(proto prototype, m sToZ) designer {
	return func(r request) (chain.Chain, error) {
		s, err := proto(r)
		if err != nil {
			return nil, err
		}
		s.Lowpass(m.warp(r.f0))
		m.apply(s)
		return normalized(s, chain.AllConst, func(chain.Chain) float64 { return 0 })
	}
}

func highpass(proto prototype, m sToZ) designer {
	return func(r request) (chain.Chain, error) {
		s, err := proto(r)
		if err != nil {
			return nil, err
		}
		s.Highpass(m.warp(r.f0))
		m.apply(s)
		return normalized(s, chain.AllConst, func(chain.Chain) float64 { return 0.5 })
	}
}

func bandpass(proto prototype, m sToZ) designer {
	return func(r request) (chain.Chain, error) {
		s, err := proto(r)
		if err != nil {
			return nil, err
		}
		if err := s.Bandpass(m.warp(r.f0), m.warp(r.f1)); err != nil {
			return nil, err
		}
		m.apply(s)
		return normalized(s, chain.AllConst, func(c chain.Chain) float64 {
			return c.SearchPeak(r.f0, r.f1)
		})
	}
}

func bandstop(proto prototype, m sToZ) designer {
	return func(r request) (chain.Chain, error) {
		s, err := proto(r)
		if err != nil {
			return nil, err
		}
		if err := s.Bandstop(m.warp(r.f0), m.warp(r.f1)); err != nil {
			return nil, err
		}
		m.apply(s)
		return normalized(s, bandstopConstMask, func(chain.Chain) float64 { return 0 })
	}
}

// normalized assembles s and sets the leading gain so that the response
// at the reference frequency is 1.
func normalized(s *polezero.Set, constMask uint32, ref func(chain.Chain) float64) (chain.Chain, error) {
	c, err := s.Assemble(1, constMask)
	if err != nil {
		return nil, err
	}
	c[0].Coeffs[0] = 1 / c.Response(ref(c))
	return c, nil
}
