// Package chain provides the coefficient-chain representation of a digital
// filter together with the operations that work on whole chains.
//
// A [Chain] is an ordered list of [Section] values, each either an IIR
// (denominator) or FIR (numerator) polynomial in z^-1. Chains are built by
// the designers in dsp/filter/fid and dsp/filter/polezero, and can be
// combined with [Cat], replicated with [Stack], merged into a single
// IIR/FIR pair with [Chain.Flatten], and serialized with [Chain.Array] and
// [FromArray].
//
// Analysis helpers evaluate the frequency response ([Chain.Response],
// [Chain.ResponsePhase]), locate a response peak ([Chain.SearchPeak]),
// estimate group delay ([Chain.Delay]) and compute an FFT magnitude
// spectrum ([Chain.Spectrum]). The [Runner] used by those helpers is an
// analysis tool, not a real-time executor.
package chain
