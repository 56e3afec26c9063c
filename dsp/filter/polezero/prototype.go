package polezero

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-fid/internal/fiderr"
)

const maxBesselOrder = 10

// besselPoles lists the normalized Bessel poles for orders 1 to 10 as
// (re, im) pairs followed, for odd orders, by a single real pole.
var besselPoles = [maxBesselOrder][]float64{
	{-1.00000000000e+00},
	{-1.10160133059e+00, 6.36009824757e-01},
	{
		-1.04740916101e+00, 9.99264436281e-01,
		-1.32267579991e+00,
	},
	{
		-9.95208764350e-01, 1.25710573945e+00,
		-1.37006783055e+00, 4.10249717494e-01,
	},
	{
		-9.57676548563e-01, 1.47112432073e+00,
		-1.38087732586e+00, 7.17909587627e-01,
		-1.50231627145e+00,
	},
	{
		-9.30656522947e-01, 1.66186326894e+00,
		-1.38185809760e+00, 9.71471890712e-01,
		-1.57149040362e+00, 3.20896374221e-01,
	},
	{
		-9.09867780623e-01, 1.83645135304e+00,
		-1.37890321680e+00, 1.19156677780e+00,
		-1.61203876622e+00, 5.89244506931e-01,
		-1.68436817927e+00,
	},
	{
		-8.92869718847e-01, 1.99832584364e+00,
		-1.37384121764e+00, 1.38835657588e+00,
		-1.63693941813e+00, 8.22795625139e-01,
		-1.75740840040e+00, 2.72867575103e-01,
	},
	{
		-8.78399276161e-01, 2.14980052431e+00,
		-1.36758830979e+00, 1.56773371224e+00,
		-1.65239648458e+00, 1.03138956698e+00,
		-1.80717053496e+00, 5.12383730575e-01,
		-1.85660050123e+00,
	},
	{
		-8.65756901707e-01, 2.29260483098e+00,
		-1.36069227838e+00, 1.73350574267e+00,
		-1.66181024140e+00, 1.22110021857e+00,
		-1.84219624443e+00, 7.27257597722e-01,
		-1.92761969145e+00, 2.41623471082e-01,
	},
}

// Bessel returns the Bessel (Thomson) prototype of the given order.
// Orders above 10 are not tabulated.
func Bessel(order int) (*Set, error) {
	if err := checkOrder(order); err != nil {
		return nil, err
	}
	if order > maxBesselOrder {
		return nil, fiderr.Capacityf("maximum Bessel order is %d", maxBesselOrder)
	}

	tab := besselPoles[order-1]
	s := &Set{Poles: make([]Root, 0, order)}
	a := 0
	for ; a < order-1; a += 2 {
		s.Poles = append(s.Poles, pair(complex(tab[a], tab[a+1]))...)
	}
	if a < order {
		s.Poles = append(s.Poles, Root{Value: complex(tab[a], 0), Tag: Single})
	}
	return s, nil
}

// Butterworth returns the Butterworth prototype of the given order: poles
// evenly spaced on the left half of the unit circle.
func Butterworth(order int) (*Set, error) {
	if err := checkOrder(order); err != nil {
		return nil, err
	}
	if order > MaxPZ {
		return nil, fiderr.Capacityf("maximum Butterworth/Chebyshev order is %d", MaxPZ)
	}

	s := &Set{Poles: make([]Root, 0, order)}
	a := 0
	for ; a < order-1; a += 2 {
		theta := math.Pi * (1 - float64(order-a-1)*0.5/float64(order))
		s.Poles = append(s.Poles, pair(cmplx.Rect(1, theta))...)
	}
	if a < order {
		s.Poles = append(s.Poles, Root{Value: -1, Tag: Single})
	}
	return s, nil
}

// Chebyshev returns the Chebyshev type I prototype of the given order with
// the passband ripple given in dB. ripple must be negative.
func Chebyshev(order int, ripple float64) (*Set, error) {
	s, err := Butterworth(order)
	if err != nil {
		return nil, err
	}
	if ripple >= 0 {
		return nil, fiderr.Specf("Chebyshev ripple in dB should be negative, got %g", ripple)
	}

	eps := math.Sqrt(math.Pow(10, -0.1*ripple) - 1)
	y := math.Asinh(1/eps) / float64(order)
	if y <= 0 {
		return nil, fiderr.Internalf("Chebyshev y-value <= 0: %g", y)
	}

	sh, ch := math.Sinh(y), math.Cosh(y)
	mapRoots(s.Poles, func(r Root) complex128 {
		return complex(real(r.Value)*sh, imag(r.Value)*ch)
	})
	return s, nil
}
