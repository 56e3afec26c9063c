package fid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-fid/dsp/filter/chain"
	"github.com/cwbudde/algo-fid/internal/fiderr"
)

// Result is a designed filter.
type Result struct {
	// Filter is the coefficient chain. Its first section is a one-tap FIR
	// holding the overall gain for the IIR families.
	Filter chain.Chain
	// Description is the long-form description, e.g. "Lowpass Butterworth
	// filter, order 4, -3.01dB frequency 20".
	Description string
	// Spec is the parsed spec string.
	Spec Spec
}

// Design parses spec, designs the filter for the sampling rate rate (Hz)
// and renders its description.
//
// Frequencies in spec are in Hz and must not exceed rate/2. A '=' before
// the frequency part ("LpBu4/=20") requests calibration so that the
// response at the given frequency (or both band edges) is exactly -3.01dB.
func Design(spec string, rate float64, opts ...Option) (Result, error) {
	sp, err := parseSpec(spec, applyOptions(opts))
	if err != nil {
		return Result{}, err
	}
	c, err := designSpec(sp, rate)
	if err != nil {
		return Result{}, err
	}
	desc, err := describe(sp)
	if err != nil {
		return Result{}, err
	}
	return Result{Filter: c, Description: desc, Spec: sp}, nil
}

func designSpec(sp Spec, rate float64) (chain.Chain, error) {
	if !(rate > 0) {
		return nil, fiderr.Specf("sampling rate must be positive, got %g", rate)
	}
	r := request{
		f0:    sp.F0 / rate,
		f1:    sp.F1 / rate,
		order: sp.Order,
		args:  sp.Args,
	}
	for _, f := range []float64{r.f0, r.f1} {
		if f > 0.5 {
			return nil, fiderr.Specf("frequency of %sHz out of range with sampling rate of %sHz",
				formatG(f*rate), formatG(rate))
		}
	}

	d := entries[sp.Index].design
	switch {
	case !sp.Exact:
		return d(r)
	case sp.NumFreqs == 2:
		return calibrateDual(d, r)
	default:
		return calibrateSingle(d, r)
	}
}

// describe fills the description template of the matched entry.
func describe(sp Spec) (string, error) {
	tmpl := entries[sp.Index].Description
	args := sp.Args

	var b strings.Builder
	for i := 0; i < len(tmpl); i++ {
		if tmpl[i] != '#' {
			b.WriteByte(tmpl[i])
			continue
		}
		i++
		if i == len(tmpl) {
			return "", fiderr.Internalf("description %q ends with '#'", tmpl)
		}
		switch tmpl[i] {
		case 'O':
			b.WriteString(strconv.Itoa(sp.Order))
		case 'F':
			b.WriteString(formatG(sp.F0))
		case 'R':
			b.WriteString(formatG(sp.F0))
			b.WriteByte('-')
			b.WriteString(formatG(sp.F1))
		case 'V':
			if len(args) == 0 {
				return "", fiderr.Internalf("description %q uses more #V than the format supplies", tmpl)
			}
			b.WriteString(formatG(args[0]))
			args = args[1:]
		default:
			return "", fiderr.Internalf("unknown code #%c in description %q", tmpl[i], tmpl)
		}
	}
	return b.String(), nil
}

// formatG formats v with six significant digits, dropping trailing zeros.
func formatG(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// DesignCoefficients designs spec and reduces the chain to the
// coefficients a code generator needs: those not marked constant, in a
// fixed order, plus one overall gain.
//
// Sections are taken as IIR/FIR groups; one-tap FIR sections and the
// leading IIR coefficients fold into the gain. Within a group positions
// are listed from the highest down, IIR before FIR at each position.
// n is the number of coefficients the caller expects; a mismatch returns
// an error wrapping ErrCoefficientCount.
func DesignCoefficients(spec string, rate float64, n int, opts ...Option) ([]float64, float64, error) {
	res, err := Design(spec, rate, opts...)
	if err != nil {
		return nil, 0, err
	}
	coef, gain, err := reduce(res.Filter)
	if err != nil {
		return nil, 0, err
	}
	if len(coef) != n {
		return nil, 0, fmt.Errorf("%w: given %d, expecting %d for %q at %g Hz",
			ErrCoefficientCount, n, len(coef), spec, rate)
	}
	return coef, gain, nil
}

func reduce(c chain.Chain) ([]float64, float64, error) {
	one := []float64{1}
	gain := 1.0
	iirAdj := 0.0
	var coef []float64

	for i := 0; i < len(c); {
		if c[i].Kind == chain.FIR && len(c[i].Coeffs) == 1 {
			gain *= c[i].Coeffs[0]
			i++
			continue
		}
		if c[i].Kind != chain.IIR && c[i].Kind != chain.FIR {
			return nil, 0, fiderr.Internalf("cannot reduce section type %v", c[i].Kind)
		}

		iir := chain.Section{Kind: chain.IIR, ConstMask: chain.AllConst, Coeffs: one}
		fir := chain.Section{Kind: chain.FIR, ConstMask: chain.AllConst, Coeffs: one}
		if c[i].Kind == chain.IIR {
			iir = c[i]
			iirAdj = 1 / iir.Coeffs[0]
			gain *= iirAdj
			i++
		}
		if i < len(c) && c[i].Kind == chain.FIR {
			fir = c[i]
			i++
		}

		for a := max(iir.Len(), fir.Len()) - 1; a >= 0; a-- {
			if a > 0 && a < iir.Len() && !iir.IsConst(a) {
				coef = append(coef, iirAdj*iir.Coeffs[a])
			}
			if a < fir.Len() && !fir.IsConst(a) {
				coef = append(coef, fir.Coeffs[a])
			}
		}
	}
	return coef, gain, nil
}
