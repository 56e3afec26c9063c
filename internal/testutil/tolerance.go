package testutil

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-fid/dsp/filter/chain"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if any
// element pair differs by more than eps, absolute or relative.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range got {
		if !floats.EqualWithinAbsOrRel(got[i], want[i], eps, eps) {
			require.Failf(t, "slice mismatch", "index %d: got %v, want %v (eps %v)", i, got[i], want[i], eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			require.Failf(t, "non-finite value", "index %d: %v", i, v)
		}
	}
}

// RequireChainEqual fails t if the chains differ in structure or if any
// coefficient differs by more than eps (relative or absolute).
func RequireChainEqual(t *testing.T, got, want chain.Chain, eps float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(eps, eps), cmpopts.EquateEmpty()); diff != "" {
		require.Failf(t, "chain mismatch", "(-want +got):\n%s", diff)
	}
}

// RequireChainFinite fails t if any coefficient of c is NaN or Inf.
func RequireChainFinite(t *testing.T, c chain.Chain) {
	t.Helper()
	for i := range c {
		for k, v := range c[i].Coeffs {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				require.Failf(t, "non-finite coefficient", "section %d coeff %d: %v", i, k, v)
			}
		}
	}
}

// LinearGrid returns n evenly spaced frequencies from lo to hi inclusive.
func LinearGrid(lo, hi float64, n int) []float64 {
	return floats.Span(make([]float64, n), lo, hi)
}
