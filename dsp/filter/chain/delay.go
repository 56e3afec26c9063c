package chain

import "math"

// maxDelayScan bounds the search for the 99.9% energy point.
const maxDelayScan = 0x1000000

// Delay estimates the group delay of c in samples.
//
// Two runners process an impulse in parallel; the second advances four
// samples per step and so serves as a reference total much further into
// the impulse response. Once the first has accumulated 99.9% of the
// reference absolute sum, the impulse is replayed from scratch and the
// number of samples needed to reach half of that total is returned.
func (c Chain) Delay() (int, error) {
	run, err := NewRunner(c)
	if err != nil {
		return 0, err
	}

	f1 := run.fresh()
	f2 := run.fresh()

	tot := math.Abs(f1.Step(1))
	tot100 := math.Abs(f2.Step(1))
	tot100 += math.Abs(f2.Step(0))
	tot100 += math.Abs(f2.Step(0))
	tot100 += math.Abs(f2.Step(0))

	for cnt := 1; cnt < maxDelayScan; cnt++ {
		tot += math.Abs(f1.Step(0))
		tot100 += math.Abs(f2.Step(0))
		tot100 += math.Abs(f2.Step(0))
		tot100 += math.Abs(f2.Step(0))
		tot100 += math.Abs(f2.Step(0))

		if tot/tot100 >= 0.999 {
			break
		}
	}

	tot50 := tot100 / 2
	f1 = run.fresh()
	tot = math.Abs(f1.Step(1))
	cnt := 0
	for ; tot < tot50 && cnt < maxDelayScan; cnt++ {
		tot += math.Abs(f1.Step(0))
	}
	return cnt, nil
}
