package detect

import "github.com/cwbudde/algo-sfx/dsp/core"

// ZeroCross produces a pulse train whose transitions coincide with the zero
// crossings of the input. Noise is suppressed two ways: the input has to
// leave the band [-hysteresis, +hysteresis] to flip the state, and no
// transition is accepted within minSamples of the previous one.
type ZeroCross struct {
	hysteresis float64
	minSamples int

	state bool
	count int
}

// NewZeroCross returns a detector that accepts at most one transition per
// minPeriod.
func NewZeroCross(hysteresis float64, minPeriod core.Period, sampleRate float64) *ZeroCross {
	return &ZeroCross{
		hysteresis: hysteresis,
		minSamples: core.SamplesIn(minPeriod, sampleRate),
	}
}

// NewZeroCrossMaxFrequency is NewZeroCross with the debounce window given as
// the highest frequency expected in the input.
func NewZeroCrossMaxFrequency(hysteresis float64, maxFreq core.Frequency, sampleRate float64) *ZeroCross {
	return NewZeroCross(hysteresis, maxFreq.Period(), sampleRate)
}

// ProcessSample feeds one sample and returns the current state: true while
// the signal is in its positive half cycle.
func (z *ZeroCross) ProcessSample(x float64) bool {
	n := z.count
	z.count++
	if n < z.minSamples {
		return z.state
	}

	if x > z.hysteresis && !z.state {
		z.state = true
		z.count = 0
	} else if x < -z.hysteresis && z.state {
		z.state = false
		z.count = 0
	}

	return z.state
}

// Edge reports whether the last sample caused a transition.
func (z *ZeroCross) Edge() bool { return z.count == 0 }

// State returns the latched state without feeding a sample.
func (z *ZeroCross) State() bool { return z.state }

// MinSamples returns the debounce window in samples.
func (z *ZeroCross) MinSamples() int { return z.minSamples }

// Reset returns the detector to the low state with an empty debounce window.
func (z *ZeroCross) Reset() {
	z.state = false
	z.count = 0
}
