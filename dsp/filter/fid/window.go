package fid

import (
	"math"

	"github.com/tphakala/simd/f64"

	"github.com/cwbudde/algo-fid/dsp/filter/chain"
	"github.com/cwbudde/algo-fid/internal/fiderr"
)

// maxWindowHalfWidth bounds the tap count of the windowed lowpasses to
// 2*maxWindowHalfWidth+1.
const maxWindowHalfWidth = 1 << 20

// windowShape returns the window value a taps away from the centre of a
// window of half-width wid.
type windowShape func(a, wid float64) float64

func blackman(a, wid float64) float64 {
	return 0.42 + 0.5*math.Cos(math.Pi*a/wid) + 0.08*math.Cos(math.Pi*2*a/wid)
}

func hamming(a, wid float64) float64 { return 0.54 + 0.46*math.Cos(math.Pi*a/wid) }

func hann(a, wid float64) float64 { return 0.5 + 0.5*math.Cos(math.Pi*a/wid) }

func bartlett(a, wid float64) float64 { return 1 - a/wid }

// windowLowpass designs a symmetric FIR lowpass whose taps are the window
// itself, scaled to unity DC gain. The half-width is k/f0, with k chosen
// per window so that the -3.01dB point lands on f0.
func windowLowpass(k float64, shape windowShape) designer {
	return func(r request) (chain.Chain, error) {
		if r.f0 <= 0 {
			return nil, fiderr.Specf("window lowpass needs a positive frequency, got %g", r.f0)
		}
		wid := k / r.f0
		if wid > maxWindowHalfWidth {
			return nil, fiderr.Capacityf("window of half-width %g exceeds %d taps", wid, maxWindowHalfWidth)
		}

		n := int(math.Floor(wid))
		taps := make([]float64, 2*n+1)
		taps[n] = 1
		for a := 1; a <= n; a++ {
			v := shape(float64(a), wid)
			taps[n-a] = v
			taps[n+a] = v
		}
		f64.Scale(taps, taps, 1/f64.Sum(taps))

		return chain.Chain{{Kind: chain.FIR, Coeffs: taps}}, nil
	}
}
