package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-fid/dsp/filter/chain"
	"github.com/cwbudde/algo-fid/internal/fiderr"
	"github.com/cwbudde/algo-fid/internal/testutil"
)

// lowpassChain is a hand-built third-order lowpass with a gain section.
func lowpassChain() chain.Chain {
	return chain.Chain{
		chain.NewFIR(0.0302),
		chain.NewIIR(1, -1.2, 0.5),
		chain.NewFIR(1, 2, 1),
		chain.NewIIR(1, -0.6),
		chain.NewFIR(1, 1),
	}
}

func TestCloneIsDeep(t *testing.T) {
	c := lowpassChain()
	d := c.Clone()
	d[1].Coeffs[1] = 42
	assert.InDelta(t, -1.2, c[1].Coeffs[1], 0)
	assert.Nil(t, chain.Chain(nil).Clone())
}

func TestCat(t *testing.T) {
	a := chain.Chain{chain.NewFIR(2)}
	b := lowpassChain()
	got := chain.Cat(a, nil, b)
	require.Len(t, got, 1+len(b))
	assert.Equal(t, chain.FIR, got[0].Kind)
	testutil.RequireChainEqual(t, got[1:], b, 0)

	for _, f := range []float64{0, 0.05, 0.2, 0.4} {
		assert.InDelta(t, 2*b.Response(f), got.Response(f), 1e-12)
	}

	// Inputs are not aliased.
	got[1].Coeffs[0] = 99
	assert.InDelta(t, 0.0302, b[0].Coeffs[0], 0)
}

func TestStack(t *testing.T) {
	iir := chain.Section{Kind: chain.IIR, Coeffs: []float64{1, -0.9, 0.3}}
	fir := chain.Section{Kind: chain.FIR, ConstMask: 0x7, Coeffs: []float64{1, 2, 1}}

	got := chain.Stack(3, iir, fir)
	require.Len(t, got, 6)
	for i := 0; i < 6; i += 2 {
		assert.Equal(t, chain.IIR, got[i].Kind)
		assert.Equal(t, chain.FIR, got[i+1].Kind)
		assert.Equal(t, uint32(0x7), got[i+1].ConstMask)
	}

	got[0].Coeffs[1] = 0
	assert.InDelta(t, -0.9, got[2].Coeffs[1], 0)
	assert.InDelta(t, -0.9, iir.Coeffs[1], 0)

	single := chain.Chain{iir, fir}
	r1 := single.Response(0.1)
	assert.InDelta(t, r1*r1*r1, chain.Stack(3, iir, fir).Response(0.1), 1e-9)

	assert.Empty(t, chain.Stack(0, iir, fir))
}

func TestArrayRoundTrip(t *testing.T) {
	c := lowpassChain()
	arr := c.Array()
	assert.InDelta(t, 0.0, arr[len(arr)-1], 0)
	assert.InDelta(t, float64('F'), arr[0], 0)
	assert.InDelta(t, 1.0, arr[1], 0)

	got, err := chain.FromArray(arr)
	require.NoError(t, err)
	testutil.RequireChainEqual(t, got, c, 0)
}

func TestFromArrayStopsAtTerminator(t *testing.T) {
	got, err := chain.FromArray([]float64{'I', 2, 1, -0.5, 0, 'F', 1, 3})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, chain.IIR, got[0].Kind)

	got, err = chain.FromArray([]float64{'F', 2, 0.5, 0.5})
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestFromArrayErrors(t *testing.T) {
	cases := map[string][]float64{
		"bad type":       {'X', 1, 1, 0},
		"wrapped type":   {'I' + 256, 1, 1, 0},
		"bad length":     {'F', 0, 0},
		"missing length": {'F'},
		"truncated":      {'I', 3, 1, 2},
	}
	for name, arr := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := chain.FromArray(arr)
			require.ErrorIs(t, err, fiderr.ErrSpec)
		})
	}
}

func TestFlattenPreservesResponse(t *testing.T) {
	c := lowpassChain()
	flat, err := c.Flatten()
	require.NoError(t, err)
	require.Len(t, flat, 2)
	assert.Equal(t, chain.IIR, flat[0].Kind)
	assert.Equal(t, chain.FIR, flat[1].Kind)
	assert.InDelta(t, 1.0, flat[0].Coeffs[0], 0)
	assert.Len(t, flat[0].Coeffs, 4)
	assert.Len(t, flat[1].Coeffs, 4)

	for _, f := range testutil.LinearGrid(0, 0.5, 51) {
		assert.InDelta(t, c.Response(f), flat.Response(f), 1e-9, "f=%v", f)
	}
}

func TestFlattenNormalizesLeadingIIR(t *testing.T) {
	c := chain.Chain{chain.NewIIR(2, -1), chain.NewFIR(4)}
	flat, err := c.Flatten()
	require.NoError(t, err)
	testutil.RequireSliceNearlyEqual(t, flat[0].Coeffs, []float64{1, -0.5}, 1e-15)
	testutil.RequireSliceNearlyEqual(t, flat[1].Coeffs, []float64{2}, 1e-15)
}

func TestFlattenFIROnly(t *testing.T) {
	c := chain.Chain{chain.NewFIR(1, 1), chain.NewFIR(1, -1)}
	flat, err := c.Flatten()
	require.NoError(t, err)
	testutil.RequireSliceNearlyEqual(t, flat[0].Coeffs, []float64{1}, 0)
	testutil.RequireSliceNearlyEqual(t, flat[1].Coeffs, []float64{1, 0, -1}, 0)
}

func TestUnknownKindIsInternalError(t *testing.T) {
	c := chain.Chain{{Kind: chain.Kind('X'), Coeffs: []float64{1}}}

	require.ErrorIs(t, c.Validate(), fiderr.ErrInternal)

	_, err := c.Flatten()
	require.ErrorIs(t, err, fiderr.ErrInternal)

	_, err = c.Delay()
	require.ErrorIs(t, err, fiderr.ErrInternal)

	assert.Panics(t, func() { c.Response(0.1) })
}

func TestSectionIsConst(t *testing.T) {
	s := chain.Section{Kind: chain.FIR, ConstMask: 0x5, Coeffs: []float64{1, 0.3, 1}}
	assert.True(t, s.IsConst(0))
	assert.False(t, s.IsConst(1))
	assert.True(t, s.IsConst(2))

	wide := chain.Section{ConstMask: 1 << 15}
	assert.True(t, wide.IsConst(15))
	assert.True(t, wide.IsConst(40))
	assert.False(t, wide.IsConst(14))

	assert.Equal(t, "IIR", chain.IIR.String())
	assert.Equal(t, "FIR", chain.FIR.String())
	assert.Equal(t, "Kind(88)", chain.Kind('X').String())
}

func TestKindMatchesArrayCodes(t *testing.T) {
	assert.InDelta(t, float64('I'), float64(chain.IIR), 0)
	assert.InDelta(t, float64('F'), float64(chain.FIR), 0)
}
