package fid

import (
	"math"

	"github.com/cwbudde/algo-fid/dsp/filter/chain"
	"github.com/cwbudde/algo-fid/dsp/filter/polezero"
	"github.com/cwbudde/algo-fid/internal/fiderr"
)

// RBJ cookbook biquads. Each design is one IIR/FIR section group, repeated
// order times.

// maxBiquadOrder bounds the number of stacked sections.
const maxBiquadOrder = polezero.MaxPZ

type rbj struct {
	cosv, sinv, alpha float64
}

func newRBJ(f0, q float64) rbj {
	omega := 2 * math.Pi * f0
	return rbj{
		cosv:  math.Cos(omega),
		sinv:  math.Sin(omega),
		alpha: math.Sin(omega) / 2 / q,
	}
}

func (b rbj) denominator() chain.Section {
	return chain.NewIIR(1+b.alpha, -2*b.cosv, 1-b.alpha)
}

func stack(order int, head ...chain.Section) (chain.Chain, error) {
	if order > maxBiquadOrder {
		return nil, fiderr.Capacityf("maximum biquad order is %d", maxBiquadOrder)
	}
	return chain.Stack(order, head...), nil
}

func constFIR(mask uint32, coeffs ...float64) chain.Section {
	s := chain.NewFIR(coeffs...)
	s.ConstMask = mask
	return s
}

func lowpassBiquad(r request) (chain.Chain, error) {
	b := newRBJ(r.f0, r.args[0])
	return stack(r.order,
		b.denominator(),
		constFIR(0x7, 1, 2, 1),
		chain.NewFIR((1-b.cosv)*0.5))
}

func highpassBiquad(r request) (chain.Chain, error) {
	b := newRBJ(r.f0, r.args[0])
	return stack(r.order,
		b.denominator(),
		constFIR(0x7, 1, -2, 1),
		chain.NewFIR((1+b.cosv)*0.5))
}

func bandpassBiquad(r request) (chain.Chain, error) {
	b := newRBJ(r.f0, r.args[0])
	return stack(r.order,
		b.denominator(),
		constFIR(0x7, 1, 0, -1),
		chain.NewFIR(b.alpha))
}

func bandstopBiquad(r request) (chain.Chain, error) {
	b := newRBJ(r.f0, r.args[0])
	return stack(r.order,
		b.denominator(),
		constFIR(0x5, 1, -2*b.cosv, 1))
}

func allpassBiquad(r request) (chain.Chain, error) {
	b := newRBJ(r.f0, r.args[0])
	return stack(r.order,
		b.denominator(),
		chain.NewFIR(1-b.alpha, -2*b.cosv, 1+b.alpha))
}

func peakingBiquad(r request) (chain.Chain, error) {
	b := newRBJ(r.f0, r.args[0])
	a := math.Pow(10, r.args[1]/40)
	return stack(r.order,
		chain.NewIIR(1+b.alpha/a, -2*b.cosv, 1-b.alpha/a),
		chain.NewFIR(1+b.alpha*a, -2*b.cosv, 1-b.alpha*a))
}

// shelf returns the shelf gain a and the slope term beta for shelf slope S
// and gain in dB.
func shelf(slope, dB float64) (a, beta float64) {
	a = math.Pow(10, dB/40)
	beta = math.Sqrt((a*a+1)/slope - (a-1)*(a-1))
	return a, beta
}

func lowShelfBiquad(r request) (chain.Chain, error) {
	b := newRBJ(r.f0, 1)
	a, beta := shelf(r.args[0], r.args[1])
	cosv, bs := b.cosv, beta*b.sinv
	return stack(r.order,
		chain.NewIIR(
			(a+1)+(a-1)*cosv+bs,
			-2*((a-1)+(a+1)*cosv),
			(a+1)+(a-1)*cosv-bs),
		chain.NewFIR(
			a*((a+1)-(a-1)*cosv+bs),
			2*a*((a-1)-(a+1)*cosv),
			a*((a+1)-(a-1)*cosv-bs)))
}

func highShelfBiquad(r request) (chain.Chain, error) {
	b := newRBJ(r.f0, 1)
	a, beta := shelf(r.args[0], r.args[1])
	cosv, bs := b.cosv, beta*b.sinv
	return stack(r.order,
		chain.NewIIR(
			(a+1)-(a-1)*cosv+bs,
			2*((a-1)-(a+1)*cosv),
			(a+1)-(a-1)*cosv-bs),
		chain.NewFIR(
			a*((a+1)+(a-1)*cosv+bs),
			-2*a*((a-1)+(a+1)*cosv),
			a*((a+1)+(a-1)*cosv-bs)))
}
