package smooth_test

import (
	"fmt"

	"github.com/cwbudde/algo-sfx/dsp/filter/smooth"
)

func ExampleDynamicSmoother() {
	s := smooth.NewDynamicSmoother(5, 1000)

	// A unit step is tracked within a few base-cutoff periods.
	var y float64
	for range 40 {
		y = s.ProcessSample(1)
	}
	fmt.Printf("%.3f\n", y)

	// Output:
	// 0.988
}

func ExampleDynamicLowpass() {
	var f smooth.DynamicLowpass
	f.SetValue(1)

	for _, a := range []float64{0.5, 0.5, 1} {
		fmt.Printf("%.2f ", f.ProcessSample(0, a))
	}
	fmt.Println()

	// Output:
	// 0.50 0.25 0.00
}
