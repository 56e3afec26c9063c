// Package fid designs digital filters from short spec strings.
//
// A spec string names a filter kind and its parameters, for example
//
//	LpBu4/20          4th-order Butterworth lowpass, -3.01dB at 20 Hz
//	BpCh2/-0.5/10-30  2nd-order Chebyshev bandpass with -0.5dB ripple
//	LpBq/0.707/100    RBJ biquad lowpass with Q=0.707
//	LpBu4/=20         as above, calibrated to hit -3.01dB exactly
//
// [Design] turns a spec and a sampling rate into a [chain.Chain];
// [ListFilters] prints every supported kind. [Parse] additionally accepts
// raw coefficient lists mixed with named specs, so that
// "LpBu4/20 x 1 1" appends a two-tap FIR to a designed lowpass.
//
// The IIR families (Bessel, Butterworth, Chebyshev, each as lowpass,
// highpass, bandpass or bandstop) are built from analog prototypes with
// the bilinear transform, or with the matched z-transform for the kinds
// ending in Z. RBJ cookbook biquads and windowed-FIR lowpasses complete
// the set.
//
// All functions are safe for concurrent use; designs share no state.
package fid
