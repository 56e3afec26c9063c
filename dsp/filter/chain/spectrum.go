package chain

import (
	"math/cmplx"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-fid/internal/fiderr"
)

// Spectrum returns the magnitude response of c on the grid k/n, k = 0..n/2,
// computed from the FFT of the first n impulse-response samples. n must be
// a power of two of at least 2.
//
// For IIR chains the result is only as good as the truncation: n should
// cover the decay of the impulse response. Response gives exact values at
// single frequencies.
func (c Chain) Spectrum(n int) ([]float64, error) {
	if n < 2 || n&(n-1) != 0 {
		return nil, fiderr.Specf("spectrum size %d is not a power of two >= 2", n)
	}

	ir, err := c.ImpulseResponse(n)
	if err != nil {
		return nil, err
	}

	in := make([]complex128, n)
	for i, v := range ir {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fiderr.Internalf("spectrum: %v", err)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, fiderr.Internalf("spectrum: %v", err)
	}

	mag := make([]float64, n/2+1)
	for k := range mag {
		mag[k] = cmplx.Abs(out[k])
	}
	return mag, nil
}
