package response_test

import (
	"fmt"

	"github.com/cwbudde/algo-sfx/dsp/filter/smooth"
	"github.com/cwbudde/algo-sfx/measure/response"
)

func ExampleMeasure() {
	lp := smooth.NewOnePoleLowpass(1500, 48000)

	r, err := response.Measure(lp, 48000, 4096)
	if err != nil {
		panic(err)
	}

	fmt.Printf("DC gain %.3f, 1.5 kHz %.1f dB\n", r.At(0), r.DB(1500))

	// Output:
	// DC gain 1.000, 1.5 kHz -3.0 dB
}
