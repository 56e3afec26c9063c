package fid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpecFields(t *testing.T) {
	sp, err := ParseSpec("LpBq/0.7/100")
	require.NoError(t, err)
	assert.Equal(t, "LpBq#o/#V/#F", sp.Entry().Format)
	assert.Equal(t, 1, sp.Order)
	assert.Equal(t, []float64{0.7}, sp.Args)
	assert.Equal(t, 1, sp.NumFreqs)
	assert.InDelta(t, 100.0, sp.F0, 0)
	assert.False(t, sp.Exact)
	assert.Equal(t, len("LpBq/0.7"), sp.MinLen)

	sp, err = ParseSpec("BpCh3/-0.5/=10-20.5")
	require.NoError(t, err)
	assert.Equal(t, "BpCh#O/#V/#R", sp.Entry().Format)
	assert.Equal(t, 3, sp.Order)
	assert.Equal(t, []float64{-0.5}, sp.Args)
	assert.Equal(t, 2, sp.NumFreqs)
	assert.InDelta(t, 10.0, sp.F0, 0)
	assert.InDelta(t, 20.5, sp.F1, 0)
	assert.True(t, sp.Exact)
	assert.Equal(t, len("BpCh3/-0.5"), sp.MinLen)
}

func TestParseSpecLetterRejectsEntry(t *testing.T) {
	sp, err := ParseSpec("LpBuZ4/20")
	require.NoError(t, err)
	assert.Equal(t, "LpBuZ#O/#F", sp.Entry().Format)

	sp, err = ParseSpec("LpBu4/20")
	require.NoError(t, err)
	assert.Equal(t, "LpBu#O/#F", sp.Entry().Format)
}

func TestParseSpecOptionalOrder(t *testing.T) {
	sp, err := ParseSpec("PkBq3/1/-6/100")
	require.NoError(t, err)
	assert.Equal(t, 3, sp.Order)
	assert.Equal(t, []float64{1, -6}, sp.Args)
}

func TestParseSpecDefaults(t *testing.T) {
	sp, err := ParseSpec("LpBu4", WithDefaultFrequency(20), WithExact(true))
	require.NoError(t, err)
	assert.InDelta(t, 20.0, sp.F0, 0)
	assert.True(t, sp.Exact)
	assert.Equal(t, 5, sp.MinLen)

	sp, err = ParseSpec("BpBu2", WithDefaultRange(10, 20))
	require.NoError(t, err)
	assert.Equal(t, 2, sp.NumFreqs)
	assert.InDelta(t, 10.0, sp.F0, 0)
	assert.InDelta(t, 20.0, sp.F1, 0)
	assert.False(t, sp.Exact)

	// An explicit frequency wins over the defaults.
	sp, err = ParseSpec("LpBu4/30", WithDefaultFrequency(20), WithExact(true))
	require.NoError(t, err)
	assert.InDelta(t, 30.0, sp.F0, 0)
	assert.False(t, sp.Exact)

	_, err = ParseSpec("LpBu4")
	require.ErrorIs(t, err, ErrSpec)
	assert.Contains(t, err.Error(), "no default provided")

	_, err = ParseSpec("BpBu2", WithDefaultFrequency(10))
	require.ErrorIs(t, err, ErrSpec)
}

func TestParseSpecErrors(t *testing.T) {
	cases := []struct {
		spec string
		msg  string
	}{
		{"LpXx4/20", "matches no known format"},
		{"LpBu0/20", "bad order 0"},
		{"LpBu-2/20", "bad order -2"},
		{"BpBu2/5-3", "backwards frequency range"},
		{"LpBu/20", "bad match"},
		{"LpBu4/abc", "matches no known format"},
		{"LpBu4/", "bad match"},
		{"BpBu4/10", "bad match"},
		{"BpBu4/10-", "bad match"},
		{"LpBu4/20Hz", "bad match"},
		{"", "bad match"},
		{"Lp", "bad match"},
	}
	for _, tc := range cases {
		t.Run(tc.spec, func(t *testing.T) {
			_, err := ParseSpec(tc.spec)
			require.ErrorIs(t, err, ErrSpec)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestScanFloat(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		n    int
	}{
		{"20", 20, 2},
		{"20.5/x", 20.5, 4},
		{"-0.5/10", -0.5, 4},
		{".25", 0.25, 3},
		{"5.", 5, 2},
		{"1e3-2e3", 1000, 3},
		{"1e-3-2", 0.001, 4},
		{"2e", 2, 1},
		{"  7", 7, 3},
		{"+3", 3, 2},
		{"abc", 0, 0},
		{"-", 0, 0},
		{".", 0, 0},
		{"", 0, 0},
	}
	for _, tc := range cases {
		v, n := scanFloat(tc.in)
		assert.Equal(t, tc.n, n, "%q", tc.in)
		assert.InDelta(t, tc.want, v, 1e-15, "%q", tc.in)
	}

	v, n := scanFloat("1e999")
	assert.Equal(t, 5, n)
	assert.True(t, math.IsInf(v, 1))
}

func TestScanInt(t *testing.T) {
	cases := []struct {
		in   string
		want int
		n    int
	}{
		{"4/20", 4, 1},
		{"12", 12, 2},
		{"-3/1", -3, 2},
		{"/20", 0, 0},
		{"-/20", 0, 0},
		{"0.5", 0, 1},
	}
	for _, tc := range cases {
		v, n := scanInt(tc.in)
		assert.Equal(t, tc.n, n, "%q", tc.in)
		assert.Equal(t, tc.want, v, "%q", tc.in)
	}
}

func TestRegistryFormatsAreWellFormed(t *testing.T) {
	for _, e := range Registry() {
		for i := 0; i < len(e.Format); i++ {
			if e.Format[i] == '#' {
				require.Less(t, i+1, len(e.Format), e.Format)
				assert.Contains(t, "oOVFR", string(e.Format[i+1]), e.Format)
			}
		}
		assert.NotNil(t, e.design, e.Format)
	}
	assert.Len(t, Registry(), 36)
}
