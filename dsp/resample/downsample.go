package resample

// FastDownsample halves the sample rate of a stream with a small amount of
// antialiasing. Every source sample is convolved with {0.25, 0.5, 0.25}
// before every second sample is dropped.
//
// Each call consumes two consecutive source samples and produces one output
// sample. The quarter-weight tail of the second sample is carried into the
// next call, so the filter is exact across call boundaries.
type FastDownsample struct {
	x float64
}

// Process consumes the source pair (s1, s2) and returns one output sample.
func (d *FastDownsample) Process(s1, s2 float64) float64 {
	out := d.x + 0.5*s1
	d.x = 0.25 * s2

	return out + d.x
}

// Reset clears the carried remainder.
func (d *FastDownsample) Reset() {
	d.x = 0
}

// Integer is the set of fixed-point sample types FastDownsampleInt accepts.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// FastDownsampleInt is FastDownsample for native integer samples (for example
// raw ADC codes). The 1/2 and 1/4 weights are applied with right shifts, so
// low bits are truncated exactly like a fixed-point implementation would.
type FastDownsampleInt[T Integer] struct {
	x T
}

// Process consumes the source pair (s1, s2) and returns one output sample.
func (d *FastDownsampleInt[T]) Process(s1, s2 T) T {
	out := d.x + (s1 >> 1)
	d.x = s2 >> 2

	return out + d.x
}

// Reset clears the carried remainder.
func (d *FastDownsampleInt[T]) Reset() {
	d.x = 0
}
