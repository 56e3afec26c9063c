package fid

import (
	"errors"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-fid/internal/fiderr"
)

// MaxArgs is the largest number of #V arguments a spec may carry.
const MaxArgs = 64

// Spec is a spec string matched against the registry.
type Spec struct {
	// Index is the position of the matching entry in Registry().
	Index int
	// Order is the filter order, 0 for formats without one.
	Order int
	// NumFreqs is 1 for #F formats and 2 for #R formats.
	NumFreqs int
	// F0 and F1 are the frequencies in Hz as written (or defaulted).
	// F1 is zero for single-frequency formats.
	F0, F1 float64
	// Exact requests calibration of the -3.01dB point(s).
	Exact bool
	// Args holds the #V values in order.
	Args []float64
	// MinLen is the length of the spec string before its frequency part.
	MinLen int
}

// Entry returns the registry entry the spec matched.
func (sp Spec) Entry() Entry { return entries[sp.Index] }

// ParseSpec matches text against the registry in order and returns the
// first match. Only WithDefaultFrequency, WithDefaultRange and WithExact
// are consulted.
func ParseSpec(text string, opts ...Option) (Spec, error) {
	return parseSpec(text, applyOptions(opts))
}

func parseSpec(text string, o options) (Spec, error) {
	for i := range entries {
		sp, ok, err := matchEntry(i, text, o)
		if err != nil {
			return Spec{}, err
		}
		if ok {
			return sp, nil
		}
	}
	return Spec{}, fiderr.Specf("spec-string %q matches no known format", text)
}

// matchEntry tries one registry format. It reports ok=false when a literal
// does not match, so the caller moves on to the next entry; a malformed
// token after a successful prefix is an error instead.
func matchEntry(index int, text string, o options) (Spec, bool, error) {
	format := entries[index].Format
	sp := Spec{Index: index, MinLen: -1}

	bad := func() (Spec, bool, error) {
		return Spec{}, false, fiderr.Specf("bad match of spec-string %q to format %q", text, format)
	}

	p, f := 0, 0
	for p < len(text) && f < len(format) {
		ch := format[f]
		f++
		if ch != '#' {
			if ch != text[p] {
				return Spec{}, false, nil
			}
			p++
			continue
		}
		if isAlpha(text[p]) {
			return Spec{}, false, nil
		}
		if f >= len(format) {
			return Spec{}, false, fiderr.Internalf("format %q ends with '#'", format)
		}

		code := format[f]
		f++
		switch code {
		case 'o', 'O':
			n, k := scanInt(text[p:])
			if k == 0 {
				if code == 'O' {
					return bad()
				}
				n = 1
			}
			if n <= 0 {
				return Spec{}, false, fiderr.Specf("bad order %d in spec-string %q", n, text)
			}
			sp.Order = n
			p += k

		case 'V':
			v, k := scanFloat(text[p:])
			if k == 0 {
				return bad()
			}
			sp.Args = append(sp.Args, v)
			p += k

		case 'F', 'R':
			sp.MinLen = p - 1
			if text[p] == '=' {
				sp.Exact = true
				p++
			}
			v, k := scanFloat(text[p:])
			if k == 0 {
				return bad()
			}
			sp.F0, sp.F1 = v, 0
			p += k
			sp.NumFreqs = 1
			if code == 'F' {
				break
			}

			sp.NumFreqs = 2
			if p >= len(text) || text[p] != '-' {
				return bad()
			}
			p++
			v, k = scanFloat(text[p:])
			if k == 0 {
				return bad()
			}
			sp.F1 = v
			p += k
			if sp.F0 > sp.F1 {
				return Spec{}, false, fiderr.Specf("backwards frequency range in spec-string %q", text)
			}

		default:
			return Spec{}, false, fiderr.Internalf("unknown format #%c in format %q", code, format)
		}
	}

	// The string ended early: a trailing frequency part may come from the
	// defaults.
	switch rest := format[f:]; {
	case strings.HasPrefix(rest, "/#F"):
		if o.f0 < 0 {
			return Spec{}, false, fiderr.Specf("frequency omitted from filter-spec, and no default provided")
		}
		sp.MinLen = p
		sp.NumFreqs = 1
		sp.F0, sp.F1 = o.f0, 0
		sp.Exact = o.exact
		f += 3
	case strings.HasPrefix(rest, "/#R"):
		if o.f0 < 0 || o.f1 < 0 {
			return Spec{}, false, fiderr.Specf("frequency omitted from filter-spec, and no default provided")
		}
		sp.MinLen = p
		sp.NumFreqs = 2
		sp.F0, sp.F1 = o.f0, o.f1
		sp.Exact = o.exact
		f += 3
	}

	if f < len(format) || p < len(text) {
		return bad()
	}
	if len(sp.Args) > MaxArgs {
		return Spec{}, false, fiderr.Capacityf("more than %d arguments in spec-string %q", MaxArgs, text)
	}
	if sp.MinLen < 0 {
		sp.MinLen = p
	}
	return sp, true, nil
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// scanInt reads the longest leading decimal integer of s, after optional
// white space and sign. It returns the value and the number of bytes
// consumed, 0 if there is no integer.
func scanInt(s string) (int, int) {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	start := i
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == digits {
		return 0, 0
	}

	n, err := strconv.ParseInt(s[start:i], 10, 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, 0
	}
	return int(n), i
}

// scanFloat reads the longest leading decimal floating-point number of s,
// after optional white space: sign, digits with an optional fraction, and
// an optional exponent. It returns the value and the number of bytes
// consumed, 0 if there is no number.
func scanFloat(s string) (float64, int) {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	start := i
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}

	v, err := strconv.ParseFloat(s[start:i], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, 0
	}
	return v, i
}
