package chain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cwbudde/algo-fid/dsp/filter/chain"
)

func TestResponseFIR(t *testing.T) {
	c := chain.Chain{chain.NewFIR(1, 1)}
	assert.InDelta(t, 2.0, c.Response(0), 1e-15)
	assert.InDelta(t, 0.0, c.Response(0.5), 1e-12)
	assert.InDelta(t, math.Sqrt2, c.Response(0.25), 1e-12)
}

func TestResponseIIR(t *testing.T) {
	c := chain.Chain{chain.NewIIR(1, -0.5)}
	assert.InDelta(t, 2.0, c.Response(0), 1e-15)
	assert.InDelta(t, 1/1.5, c.Response(0.5), 1e-12)
}

func TestResponseEmptyChainIsUnity(t *testing.T) {
	assert.InDelta(t, 1.0, chain.Chain{}.Response(0.3), 0)
}

func TestResponsePhase(t *testing.T) {
	delay1 := chain.Chain{chain.NewFIR(0, 1)}
	mag, pha := delay1.ResponsePhase(0.25)
	assert.InDelta(t, 1.0, mag, 1e-12)
	assert.InDelta(t, 0.25, pha, 1e-12)

	// Negative angles wrap into [0, 1).
	delay3 := chain.Chain{chain.NewFIR(0, 0, 0, 1)}
	_, pha = delay3.ResponsePhase(0.25)
	assert.InDelta(t, 0.75, pha, 1e-12)

	for _, f := range []float64{0.01, 0.1, 0.2, 0.3, 0.45} {
		_, pha = delay3.ResponsePhase(f)
		assert.GreaterOrEqual(t, pha, 0.0)
		assert.Less(t, pha, 1.0)
	}
}

func TestSearchPeakFindsResonance(t *testing.T) {
	const r = 0.9
	theta := 2 * math.Pi * 0.1
	c := chain.Chain{chain.NewIIR(1, -2*r*math.Cos(theta), r*r)}

	peak := c.SearchPeak(0.01, 0.3)
	assert.InDelta(t, 0.1, peak, 0.01)

	rp := c.Response(peak)
	assert.GreaterOrEqual(t, rp, c.Response(0.1)-1e-9)
	assert.GreaterOrEqual(t, rp, c.Response(peak-0.002))
	assert.GreaterOrEqual(t, rp, c.Response(peak+0.002))
}

func TestSearchPeakCollapsedRange(t *testing.T) {
	c := chain.Chain{chain.NewFIR(1)}
	assert.InDelta(t, 0.2, c.SearchPeak(0.2, 0.2), 0)
}

func TestResponseIsDeterministic(t *testing.T) {
	c := lowpassChain()
	for _, f := range []float64{0, 0.1, 0.25, 0.49} {
		assert.Equal(t, c.Response(f), c.Response(f))
	}
}
