package fid

import "strconv"

// Rewritten is a spec string split into its filter part and its frequency
// part.
type Rewritten struct {
	// Full is the spec with the frequency part spelled out, e.g.
	// "LpBu4/=20" for "LpBu4" with a default of 20 Hz and WithExact(true).
	Full string
	// Base is the spec without its frequency part, e.g. "LpBu4".
	Base string
	// F0, F1 and Exact are the frequency part, from the string or the
	// defaults.
	F0, F1 float64
	Exact  bool
}

// Rewrite parses spec and returns it in both full and base form. It is
// used to store a spec whose frequency was given separately, or to swap
// the frequency of a stored spec.
func Rewrite(spec string, opts ...Option) (Rewritten, error) {
	sp, err := parseSpec(spec, applyOptions(opts))
	if err != nil {
		return Rewritten{}, err
	}

	var freq []byte
	if sp.NumFreqs > 0 {
		freq = append(freq, '/')
		if sp.Exact {
			freq = append(freq, '=')
		}
		freq = strconv.AppendFloat(freq, sp.F0, 'g', 15, 64)
		if sp.NumFreqs == 2 {
			freq = append(freq, '-')
			freq = strconv.AppendFloat(freq, sp.F1, 'g', 15, 64)
		}
	}

	base := spec[:sp.MinLen]
	return Rewritten{
		Full:  base + string(freq),
		Base:  base,
		F0:    sp.F0,
		F1:    sp.F1,
		Exact: sp.Exact,
	}, nil
}
