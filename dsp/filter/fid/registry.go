package fid

import "strings"

// Entry describes one filter kind the designer knows.
//
// Format is the spec-string template: literal characters plus the codes
// #O (order), #o (optional order, default 1), #V (numeric argument),
// #F (frequency, '=' prefix for exact) and #R (range f0-f1, '=' prefix for
// exact). Description is a human-readable template using the same codes.
type Entry struct {
	Format      string
	Description string
	design      designer
}

// entries is scanned in order by the spec parser; keep formats that are a
// prefix of another (LpBu#O) ahead of their longer variants (LpBuZ#O).
var entries = []Entry{
	{"LpBe#O/#F", "Lowpass Bessel filter, order #O, -3.01dB frequency #F", lowpass(bessel, bilinear)},
	{"HpBe#O/#F", "Highpass Bessel filter, order #O, -3.01dB frequency #F", highpass(bessel, bilinear)},
	{"BpBe#O/#R", "Bandpass Bessel filter, order #O, -3.01dB frequencies #R", bandpass(bessel, bilinear)},
	{"BsBe#O/#R", "Bandstop Bessel filter, order #O, -3.01dB frequencies #R", bandstop(bessel, bilinear)},
	{"LpBu#O/#F", "Lowpass Butterworth filter, order #O, -3.01dB frequency #F", lowpass(butterworth, bilinear)},
	{"HpBu#O/#F", "Highpass Butterworth filter, order #O, -3.01dB frequency #F", highpass(butterworth, bilinear)},
	{"BpBu#O/#R", "Bandpass Butterworth filter, order #O, -3.01dB frequencies #R", bandpass(butterworth, bilinear)},
	{"BsBu#O/#R", "Bandstop Butterworth filter, order #O, -3.01dB frequencies #R", bandstop(butterworth, bilinear)},
	{"LpCh#O/#V/#F", "Lowpass Chebyshev filter, order #O, passband ripple #VdB, -3.01dB frequency #F", lowpass(chebyshev, bilinear)},
	{"HpCh#O/#V/#F", "Highpass Chebyshev filter, order #O, passband ripple #VdB, -3.01dB frequency #F", highpass(chebyshev, bilinear)},
	{"BpCh#O/#V/#R", "Bandpass Chebyshev filter, order #O, passband ripple #VdB, -3.01dB frequencies #R", bandpass(chebyshev, bilinear)},
	{"BsCh#O/#V/#R", "Bandstop Chebyshev filter, order #O, passband ripple #VdB, -3.01dB frequencies #R", bandstop(chebyshev, bilinear)},

	{"LpBeZ#O/#F", "Lowpass Bessel filter, matched z-transform, order #O, -3.01dB frequency #F", lowpass(bessel, matchedZ)},
	{"HpBeZ#O/#F", "Highpass Bessel filter, matched z-transform, order #O, -3.01dB frequency #F", highpass(bessel, matchedZ)},
	{"BpBeZ#O/#R", "Bandpass Bessel filter, matched z-transform, order #O, -3.01dB frequencies #R", bandpass(bessel, matchedZ)},
	{"BsBeZ#O/#R", "Bandstop Bessel filter, matched z-transform, order #O, -3.01dB frequencies #R", bandstop(bessel, matchedZ)},
	{"LpBuZ#O/#F", "Lowpass Butterworth filter, matched z-transform, order #O, -3.01dB frequency #F", lowpass(butterworth, matchedZ)},
	{"HpBuZ#O/#F", "Highpass Butterworth filter, matched z-transform, order #O, -3.01dB frequency #F", highpass(butterworth, matchedZ)},
	{"BpBuZ#O/#R", "Bandpass Butterworth filter, matched z-transform, order #O, -3.01dB frequencies #R", bandpass(butterworth, matchedZ)},
	{"BsBuZ#O/#R", "Bandstop Butterworth filter, matched z-transform, order #O, -3.01dB frequencies #R", bandstop(butterworth, matchedZ)},
	{"LpChZ#O/#V/#F", "Lowpass Chebyshev filter, matched z-transform, order #O, passband ripple #VdB, -3.01dB frequency #F", lowpass(chebyshev, matchedZ)},
	{"HpChZ#O/#V/#F", "Highpass Chebyshev filter, matched z-transform, order #O, passband ripple #VdB, -3.01dB frequency #F", highpass(chebyshev, matchedZ)},
	{"BpChZ#O/#V/#R", "Bandpass Chebyshev filter, matched z-transform, order #O, passband ripple #VdB, -3.01dB frequencies #R", bandpass(chebyshev, matchedZ)},
	{"BsChZ#O/#V/#R", "Bandstop Chebyshev filter, matched z-transform, order #O, passband ripple #VdB, -3.01dB frequencies #R", bandstop(chebyshev, matchedZ)},

	{"LpBq#o/#V/#F", "Lowpass biquad filter, order #O, Q=#V, -3.01dB frequency #F", lowpassBiquad},
	{"HpBq#o/#V/#F", "Highpass biquad filter, order #O, Q=#V, -3.01dB frequency #F", highpassBiquad},
	{"BpBq#o/#V/#F", "Bandpass biquad filter, order #O, Q=#V, centre frequency #F", bandpassBiquad},
	{"BsBq#o/#V/#F", "Bandstop biquad filter, order #O, Q=#V, centre frequency #F", bandstopBiquad},
	{"ApBq#o/#V/#F", "Allpass biquad filter, order #O, Q=#V, centre frequency #F", allpassBiquad},
	{"PkBq#o/#V/#V/#F", "Peaking biquad filter, order #O, Q=#V, dBgain=#V, frequency #F", peakingBiquad},
	{"LsBq#o/#V/#V/#F", "Lowpass shelving biquad filter, S=#V, dBgain=#V, frequency #F", lowShelfBiquad},
	{"HsBq#o/#V/#V/#F", "Highpass shelving biquad filter, S=#V, dBgain=#V, frequency #F", highShelfBiquad},

	{"LpBl/#F", "Lowpass Blackman window, -3.01dB frequency #F", windowLowpass(0.4109205, blackman)},
	{"LpHm/#F", "Lowpass Hamming window, -3.01dB frequency #F", windowLowpass(0.3262096, hamming)},
	{"LpHn/#F", "Lowpass Hann window, -3.01dB frequency #F", windowLowpass(0.360144, hann)},
	{"LpBa/#F", "Lowpass Bartlet (triangular) window, -3.01dB frequency #F", windowLowpass(0.3189435, bartlett)},
}

// Registry returns a copy of the filter table in matching order.
func Registry() []Entry {
	return append([]Entry(nil), entries...)
}

// ExpandSpec replaces the format codes of a spec or description template
// with readable placeholders such as <order> and <freq>.
func ExpandSpec(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '#' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'o':
			b.WriteString("<optional-order>")
		case 'O':
			b.WriteString("<order>")
		case 'F':
			b.WriteString("<freq>")
		case 'R':
			b.WriteString("<range>")
		case 'V':
			b.WriteString("<value>")
		default:
			b.WriteByte('<')
			b.WriteByte(s[i])
			b.WriteByte('>')
		}
	}
	return b.String()
}

// ListFilters renders every registry entry as its expanded format followed
// by its indented expanded description, one pair of lines per entry.
func ListFilters() string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(ExpandSpec(e.Format))
		b.WriteString("\n    ")
		b.WriteString(ExpandSpec(e.Description))
		b.WriteByte('\n')
	}
	return b.String()
}
