package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-fid/dsp/filter/chain"
	"github.com/cwbudde/algo-fid/internal/fiderr"
	"github.com/cwbudde/algo-fid/internal/testutil"
)

func TestImpulseResponseOnePole(t *testing.T) {
	c := chain.Chain{chain.NewIIR(1, -0.5), chain.NewFIR(1)}
	ir, err := c.ImpulseResponse(5)
	require.NoError(t, err)
	testutil.RequireSliceNearlyEqual(t, ir, []float64{1, 0.5, 0.25, 0.125, 0.0625}, 1e-15)

	ir, err = c.ImpulseResponse(0)
	require.NoError(t, err)
	assert.Nil(t, ir)
}

func TestImpulseResponseFIR(t *testing.T) {
	c := chain.Chain{chain.NewFIR(0.5), chain.NewFIR(1, 2, 1)}
	ir, err := c.ImpulseResponse(4)
	require.NoError(t, err)
	testutil.RequireSliceNearlyEqual(t, ir, []float64{0.5, 1, 0.5, 0}, 1e-15)
}

func TestRunnerProcessBlockAndReset(t *testing.T) {
	r, err := chain.NewRunner(chain.Chain{chain.NewIIR(1, -0.5), chain.NewFIR(1, 1)})
	require.NoError(t, err)

	buf := []float64{1, 0, 0, 0}
	r.ProcessBlock(buf)
	testutil.RequireSliceNearlyEqual(t, buf, []float64{1, 1.5, 0.75, 0.375}, 1e-15)

	r.Reset()
	assert.InDelta(t, 1.0, r.Step(1), 0)
}

func TestDelayPureDelay(t *testing.T) {
	for _, d := range []int{0, 1, 3, 7, 20} {
		coeffs := make([]float64, d+1)
		coeffs[d] = 1
		got, err := chain.Chain{chain.NewFIR(coeffs...)}.Delay()
		require.NoError(t, err)
		assert.Equal(t, d, got, "delay %d", d)
	}
}

func TestDelaySymmetricFIR(t *testing.T) {
	got, err := chain.Chain{chain.NewFIR(0.25, 0.5, 0.25)}.Delay()
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestDelayGrowsWithSmootherLowpass(t *testing.T) {
	fast, err := chain.Chain{chain.NewIIR(1, -0.5), chain.NewFIR(0.5)}.Delay()
	require.NoError(t, err)
	slow, err := chain.Chain{chain.NewIIR(1, -0.95), chain.NewFIR(0.05)}.Delay()
	require.NoError(t, err)
	assert.Greater(t, slow, fast)
}

func TestSpectrumMatchesResponseFIR(t *testing.T) {
	c := chain.Chain{chain.NewFIR(0.25, 0.5, 0.25)}
	const n = 16
	mag, err := c.Spectrum(n)
	require.NoError(t, err)
	require.Len(t, mag, n/2+1)
	for k, m := range mag {
		assert.InDelta(t, c.Response(float64(k)/n), m, 1e-12, "bin %d", k)
	}
}

func TestSpectrumMatchesResponseIIR(t *testing.T) {
	c := lowpassChain()
	const n = 512
	mag, err := c.Spectrum(n)
	require.NoError(t, err)
	for k := 0; k <= n/2; k += 16 {
		assert.InDelta(t, c.Response(float64(k)/n), mag[k], 1e-9, "bin %d", k)
	}
}

func TestSpectrumRejectsBadSize(t *testing.T) {
	for _, n := range []int{0, 1, 3, 100} {
		_, err := chain.Chain{chain.NewFIR(1)}.Spectrum(n)
		require.ErrorIs(t, err, fiderr.ErrSpec, "n=%d", n)
	}
}
