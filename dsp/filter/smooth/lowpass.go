package smooth

import (
	"math"

	"github.com/cwbudde/algo-sfx/dsp/core"
)

// DynamicLowpass is a one-pole lowpass filter whose coefficient is given per
// sample:
//
//	y += a * (x - y)
//
// a in [0, 1] yields a lowpass response; values outside that range are not
// rejected and produce an oscillating or unstable filter.
type DynamicLowpass struct {
	y float64
}

// ProcessSample updates the filter with coefficient a and returns the new value.
func (f *DynamicLowpass) ProcessSample(x, a float64) float64 {
	f.y += a * (x - f.y)
	return f.y
}

// Value returns the current output without updating the filter.
func (f *DynamicLowpass) Value() float64 { return f.y }

// SetValue forces the output to y, typically to seed the filter with a known
// level and skip the startup transient.
func (f *DynamicLowpass) SetValue(y float64) { f.y = y }

// Reset sets the output to zero.
func (f *DynamicLowpass) Reset() { f.y = 0 }

// OnePoleLowpass is a static 6 dB/oct lowpass.
type OnePoleLowpass struct {
	lp DynamicLowpass
	a  float64
}

// NewOnePoleLowpass returns a one-pole lowpass with the given cutoff.
func NewOnePoleLowpass(cutoff core.Frequency, sampleRate float64) *OnePoleLowpass {
	f := &OnePoleLowpass{}
	f.SetCutoff(cutoff, sampleRate)
	return f
}

// SetCutoff recomputes the coefficient for a new cutoff. The filter state is kept.
func (f *OnePoleLowpass) SetCutoff(cutoff core.Frequency, sampleRate float64) {
	f.a = 1 - math.Exp(-2*math.Pi*float64(cutoff)/sampleRate)
}

// Coefficient returns the per-sample smoothing coefficient.
func (f *OnePoleLowpass) Coefficient() float64 { return f.a }

// ProcessSample filters one sample.
func (f *OnePoleLowpass) ProcessSample(x float64) float64 {
	return f.lp.ProcessSample(x, f.a)
}

// Value returns the current output without updating the filter.
func (f *OnePoleLowpass) Value() float64 { return f.lp.Value() }

// SetValue forces the output to y.
func (f *OnePoleLowpass) SetValue(y float64) { f.lp.SetValue(y) }

// Reset sets the output to zero.
func (f *OnePoleLowpass) Reset() { f.lp.Reset() }
