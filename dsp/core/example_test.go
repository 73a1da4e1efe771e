package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-sfx/dsp/core"
)

func ExampleSamplesIn() {
	maxFreq := core.Frequency(1000)

	fmt.Println(core.SamplesIn(maxFreq.Period(), 44100))
	fmt.Println(core.SamplesIn(core.Milliseconds(50), 44100))

	// Output:
	// 44
	// 2205
}
