package fid_test

import (
	"fmt"

	"github.com/cwbudde/algo-fid/dsp/filter/fid"
)

func ExampleDesign() {
	res, err := fid.Design("LpBu4/1000", 48000)
	if err != nil {
		panic(err)
	}
	fmt.Println(res.Description)
	fmt.Printf("sections: %d\n", len(res.Filter))
	fmt.Printf("DC: %.4f cutoff: %.4f\n", res.Filter.Response(0), res.Filter.Response(1000.0/48000))
	// Output:
	// Lowpass Butterworth filter, order 4, -3.01dB frequency 1000
	// sections: 5
	// DC: 1.0000 cutoff: 0.7071
}

func ExampleRewrite() {
	rw, err := fid.Rewrite("BpBe2", fid.WithDefaultRange(300, 3400), fid.WithExact(true))
	if err != nil {
		panic(err)
	}
	fmt.Println(rw.Full)
	fmt.Println(rw.Base)
	// Output:
	// BpBe2/=300-3400
	// BpBe2
}

func ExampleExpandSpec() {
	fmt.Println(fid.ExpandSpec(fid.Registry()[30].Format))
	// Output:
	// LsBq<optional-order>/<value>/<value>/<freq>
}
