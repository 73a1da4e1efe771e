package core

import "math"

// Frequency is a rate in cycles per second (Hz).
type Frequency float64

// Period is a duration in seconds.
type Period float64

// Period returns the duration of one cycle. A zero frequency yields +Inf.
func (f Frequency) Period() Period {
	return Period(1 / float64(f))
}

// Frequency returns the rate whose cycle lasts p.
func (p Period) Frequency() Frequency {
	return Frequency(1 / float64(p))
}

// Milliseconds returns a Period of ms milliseconds.
func Milliseconds(ms float64) Period {
	return Period(ms / 1000)
}

// SamplesIn returns floor(p * sampleRate), the number of whole samples that fit
// in p. Negative, NaN, and zero products all map to 0. The sample rate must be
// positive; this is not checked.
func SamplesIn(p Period, sampleRate float64) int {
	n := float64(p) * sampleRate
	if !(n > 0) {
		return 0
	}

	if n >= math.MaxInt32 {
		return math.MaxInt32
	}

	return int(n)
}
