// Package polezero holds the s-plane and z-plane pole/zero sets used by the
// classic filter designers.
//
// A design starts from an analog prototype ([Bessel], [Butterworth],
// [Chebyshev]) normalized to a cutoff of 1 rad/s, maps it to the wanted
// response shape ([Set.Lowpass], [Set.Highpass], [Set.Bandpass],
// [Set.Bandstop]), moves it to the z-plane ([Set.Bilinear] or
// [Set.MatchedZ]) and is finally assembled into a chain of second-order
// sections with [Set.Assemble].
//
// Roots are stored in order with a [Tag] each. Conjugate pairs are stored
// once, as the PairFirst root followed by a PairSecond placeholder; lone
// real roots are Single and must come after all pairs.
package polezero
