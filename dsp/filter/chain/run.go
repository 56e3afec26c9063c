package chain

import (
	"github.com/cwbudde/algo-fid/internal/fiderr"
	"github.com/cwbudde/algo-vecmath"
)

// Runner executes a chain sample by sample. The chain is flattened into a
// single IIR/FIR pair and run in direct form II:
//
//	w[n] = x[n] - iir[1]*w[n-1] - iir[2]*w[n-2] - ...
//	y[n] = fir[0]*w[n] + fir[1]*w[n-1] + ...
//
// A Runner is meant for analysis (impulse responses, delay estimates); it
// trades the numerical robustness of a cascade for simplicity.
type Runner struct {
	iir, fir []float64
	buf      []float64
}

// NewRunner flattens c and returns a Runner with zero state.
func NewRunner(c Chain) (*Runner, error) {
	flat, err := c.Flatten()
	if err != nil {
		return nil, err
	}
	if len(flat) != 2 || flat[0].Kind != IIR || flat[1].Kind != FIR {
		return nil, fiderr.Internalf("flattened chain has unexpected shape")
	}
	iir, fir := flat[0].Coeffs, flat[1].Coeffs
	return &Runner{
		iir: iir,
		fir: fir,
		buf: make([]float64, max(len(iir), len(fir))),
	}, nil
}

// fresh returns a Runner sharing r's coefficients with its own zero state.
func (r *Runner) fresh() *Runner {
	return &Runner{iir: r.iir, fir: r.fir, buf: make([]float64, len(r.buf))}
}

// Step filters one input sample and returns the output.
func (r *Runner) Step(x float64) float64 {
	buf := r.buf
	copy(buf[1:], buf[:len(buf)-1])
	buf[0] = x - vecmath.DotProduct(r.iir[1:], buf[1:len(r.iir)])
	return vecmath.DotProduct(r.fir, buf[:len(r.fir)])
}

// ProcessBlock filters buf in place.
func (r *Runner) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = r.Step(x)
	}
}

// Reset clears the delay line.
func (r *Runner) Reset() {
	clear(r.buf)
}

// ImpulseResponse returns the first n samples of the impulse response of c.
func (c Chain) ImpulseResponse(n int) ([]float64, error) {
	if n <= 0 {
		return nil, nil
	}
	r, err := NewRunner(c)
	if err != nil {
		return nil, err
	}
	ir := make([]float64, n)
	ir[0] = r.Step(1)
	for i := 1; i < n; i++ {
		ir[i] = r.Step(0)
	}
	return ir, nil
}
