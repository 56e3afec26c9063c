package chain_test

import (
	"fmt"

	"github.com/cwbudde/algo-fid/dsp/filter/chain"
)

func ExampleChain_Flatten() {
	c := chain.Chain{
		chain.NewFIR(0.5),
		chain.NewIIR(1, -0.5),
		chain.NewFIR(1, 1),
	}

	flat, err := c.Flatten()
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, s := range flat {
		fmt.Printf("%v %v\n", s.Kind, s.Coeffs)
	}
	fmt.Printf("DC gain: %.3f\n", flat.Response(0))
	// Output:
	// IIR [1 -0.5]
	// FIR [0.5 0.5]
	// DC gain: 2.000
}

func ExampleFromArray() {
	c, err := chain.FromArray([]float64{
		'F', 1, 0.25,
		'F', 3, 1, 2, 1,
		0,
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("sections: %d\n", len(c))
	fmt.Printf("DC: %.2f Nyquist: %.2f\n", c.Response(0), c.Response(0.5))
	// Output:
	// sections: 2
	// DC: 1.00 Nyquist: 0.00
}
