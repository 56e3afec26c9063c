package fid

import (
	"math"

	"github.com/cwbudde/algo-fid/dsp/filter/chain"
	"github.com/cwbudde/algo-fid/internal/fiderr"
)

// m301dB is the -3.01dB amplitude, sqrt(0.5).
const m301dB = 0.707106781186548

const (
	// singleTolLo and singleTolHi bound the accepted response of a
	// single-frequency calibration, relative to m301dB.
	singleTolLo = 0.9999995
	singleTolHi = 1.0000005
	// maxBracketDivisor limits the search for an enclosing range.
	maxBracketDivisor = 32

	// dualTol is the absolute error allowed at each band edge.
	dualTol = 0.000000499
	// dualShrink scales the perturbation after every round.
	dualShrink = 0.51
	// maxDualRounds aborts a dual calibration that does not converge.
	maxDualRounds = 1000
)

// calibrateSingle redesigns with a shifted frequency parameter until the
// response at the wanted frequency is -3.01dB.
//
// It first looks for a parameter on the other side of the target, trying
// f0/2, 0.5-(0.5-f0)/2, f0/4 and so on, then bisects.
func calibrateSingle(d designer, r request) (chain.Chain, error) {
	target := r.f0

	var (
		c    chain.Chain
		resp float64
	)
	test := func(f float64) error {
		rr := r
		rr.f0, rr.f1 = f, f
		var err error
		if c, err = d(rr); err != nil {
			return err
		}
		resp = c.Response(target)
		return nil
	}
	crosses := func(r0, r2 float64) bool { return (r0 < m301dB) != (r2 < m301dB) }

	a0 := target
	if err := test(a0); err != nil {
		return nil, err
	}
	r0 := resp

	var a2, r2 float64
	for div := 2; ; div *= 2 {
		a2 = target / float64(div)
		if err := test(a2); err != nil {
			return nil, err
		}
		if r2 = resp; crosses(r0, r2) {
			break
		}
		a2 = 0.5 - (0.5-target)/float64(div)
		if err := test(a2); err != nil {
			return nil, err
		}
		if r2 = resp; crosses(r0, r2) {
			break
		}
		if div == maxBracketDivisor {
			return nil, fiderr.Convergencef("can't establish enclosing range")
		}
	}

	incr := r2 > r0
	if a0 > a2 {
		a0, a2 = a2, a0
		incr = !incr
	}

	for {
		a1 := 0.5 * (a0 + a2)
		if a1 == a0 || a1 == a2 {
			break // floating-point limit
		}
		if err := test(a1); err != nil {
			return nil, err
		}
		if resp >= singleTolLo*m301dB && resp < singleTolHi*m301dB {
			break
		}
		if incr == (resp > m301dB) {
			a2 = a1
		} else {
			a0 = a1
		}
	}
	return c, nil
}

// calibrateDual adjusts the centre and half-width of a band design until
// the response at both wanted edges is -3.01dB.
//
// Each round tries moving the width, the centre, and both by delta in the
// direction the edge responses suggest, keeps whichever lowers the summed
// edge error, and shrinks delta.
func calibrateDual(d designer, r request) (chain.Chain, error) {
	f0, f1 := r.f0, r.f1
	mid := 0.5 * (f0 + f1)
	wid := 0.5 * math.Abs(f1-f0)

	var (
		c          chain.Chain
		r0, r1     float64
		err0, err1 float64
	)
	try := func(m, w float64) error {
		rr := r
		rr.f0, rr.f1 = m-w, m+w
		var err error
		if c, err = d(rr); err != nil {
			return err
		}
		r0, r1 = c.Response(f0), c.Response(f1)
		err0, err1 = math.Abs(m301dB-r0), math.Abs(m301dB-r1)
		return nil
	}

	if err := try(mid, wid); err != nil {
		return nil, err
	}
	bpass := c.Response(0) < 0.5
	delta := wid * 0.5

	for round := 0; ; round++ {
		if err := try(mid, wid); err != nil {
			return nil, err
		}
		perr := err0 + err1

		mid1, wid1 := mid-delta, wid-delta
		if (r0 > r1) == bpass {
			mid1 = mid + delta
		}
		if (r0+r1 < 1) == bpass {
			wid1 = wid + delta
		}

		for _, cand := range [...][2]float64{{mid, wid1}, {mid1, wid}, {mid1, wid1}} {
			m, w := cand[0], cand[1]
			if m-w <= 0 || m+w >= 0.5 {
				continue
			}
			if err := try(m, w); err != nil {
				return nil, err
			}
			if err0 < dualTol && err1 < dualTol {
				return c, nil
			}
			if err0+err1 < perr {
				perr = err0 + err1
				mid, wid = m, w
			}
		}

		if round > maxDualRounds {
			return nil, fiderr.Convergencef("design not converging")
		}
		delta *= dualShrink
	}
}
