package fid

import (
	"errors"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-fid/dsp/filter/chain"
	"github.com/cwbudde/algo-fid/internal/fiderr"
)

// Parse reads one filter element from text and returns its chain and the
// unparsed remainder.
//
// An element is a sequence of parts, each of which is
//
//   - a list of numbers: FIR coefficients, or IIR coefficients after '/'
//     ('x' selects FIR explicitly),
//   - a named spec such as "LpBu4/20", designed for rate with no default
//     frequency.
//
// Parts after the first must be introduced by 'x' or '/'; named specs only
// with 'x'. White space separates words and '#' starts a comment running
// to the end of the line. The element ends at the end of text or at one of
// ",;)]}", which is left at the start of rest.
//
// On error rest points at the offending word.
func Parse(rate float64, text string) (c chain.Chain, rest string, err error) {
	const (
		first chain.Kind = 0xff // nothing parsed yet
		none  chain.Kind = 0    // part finished, 'x' or '/' required
	)

	out := chain.Chain{}
	typ := first
	p := 0
	for {
		rew := skipSpace(text, p)
		var word string
		word, p = grabWord(text, rew)

		switch word {
		case "", ",", ";", ")", "]", "}":
			if word != "" {
				p--
			}
			return out, text[p:], nil
		case "/", "x":
			if typ != first && typ != none {
				return nil, text[rew:], fiderr.Specf("filter syntax error; unexpected '%s'", word)
			}
			typ = chain.FIR
			if word == "/" {
				typ = chain.IIR
			}
			continue
		}

		if typ == first {
			typ = chain.FIR
		}
		if typ == none {
			return nil, text[rew:], fiderr.Specf("expecting a 'x' or '/' before %q", word)
		}

		val, ok := parseNumber(word)
		if !ok {
			if typ != chain.FIR {
				return nil, text[rew:], fiderr.Specf("predefined filters cannot be used with '/'")
			}
			sp, err := parseSpec(word, options{f0: -1, f1: -1})
			if err != nil {
				return nil, text[rew:], err
			}
			designed, err := designSpec(sp, rate)
			if err != nil {
				return nil, text[rew:], err
			}
			out = append(out, designed...)
			typ = none
			continue
		}

		coeffs := []float64{val}
		for {
			w, next := grabWord(text, p)
			v, ok := parseNumber(w)
			if !ok {
				break
			}
			coeffs = append(coeffs, v)
			p = next
		}
		out = append(out, chain.Section{Kind: typ, Coeffs: coeffs})
		typ = none
	}
}

// ParseList parses a list of filter elements separated by ',' or ';' and
// returns one chain per element. Empty elements and closing brackets are
// errors.
func ParseList(rate float64, text string) ([]chain.Chain, error) {
	var out []chain.Chain
	for {
		c, rest, err := Parse(rate, text)
		if err != nil {
			return nil, err
		}
		if len(c) == 0 {
			return nil, fiderr.Specf("empty filter element before %q", rest)
		}
		out = append(out, c)

		switch {
		case rest == "":
			return out, nil
		case rest[0] == ',' || rest[0] == ';':
			text = rest[1:]
		default:
			return nil, fiderr.Specf("unexpected %q in filter list", rest[:1])
		}
	}
}

// skipSpace advances p over white space and '#' comments.
func skipSpace(s string, p int) int {
	for p < len(s) {
		switch {
		case isSpace(s[p]):
			p++
		case s[p] == '#':
			for p < len(s) && s[p] != '\n' {
				p++
			}
		default:
			return p
		}
	}
	return p
}

func isPunct(c byte) bool { return strings.IndexByte(",;)]}", c) >= 0 }

// grabWord returns the next word of s at or after p and the position just
// past it. A punctuation character from ",;)]}" is a word on its own;
// otherwise a word runs until white space, '#' or punctuation. At the end
// of s the word is empty.
func grabWord(s string, p int) (string, int) {
	p = skipSpace(s, p)
	if p == len(s) {
		return "", p
	}
	q := p
	if isPunct(s[q]) {
		q++
	} else {
		for q < len(s) && s[q] != '#' && !isSpace(s[q]) && !isPunct(s[q]) {
			q++
		}
	}
	return s[p:q], q
}

// parseNumber reports whether word is entirely a number. Out-of-range
// values count, as ±Inf or 0.
func parseNumber(word string) (float64, bool) {
	if word == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(word, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return v, true
}
