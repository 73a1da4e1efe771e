package detect

import "github.com/cwbudde/algo-sfx/dsp/core"

// Fixed configuration of the peak detector inside Onset.
const (
	OnsetDroop      = 0.8
	OnsetHysteresis = 0.005
)

// Onset detects the leading edge of transients. It goes active when its
// internal peak detector fires on a sample louder than the latched peak of
// the previous onset, and quiet again when the peak detector releases.
// Re-triggering on a decaying tail is suppressed because the tail never
// exceeds the latched peak; call Reset to re-arm detection at any level.
type Onset struct {
	pk         Peak
	minSamples int

	state       bool
	count       int
	currentPeak float64
}

// NewOnset returns an onset detector that accepts at most one transition per
// minPeriod.
func NewOnset(minPeriod core.Period, sampleRate float64) *Onset {
	return &Onset{
		pk:         Peak{droop: OnsetDroop, cmp: SchmittTrigger{hysteresis: OnsetHysteresis}},
		minSamples: core.SamplesIn(minPeriod, sampleRate),
	}
}

// ProcessSample feeds one sample and its envelope and returns true while an
// onset is active. Inside the debounce window the previous state is returned
// and the peak detector is not updated.
func (o *Onset) ProcessSample(x, env float64) bool {
	n := o.count
	o.count++
	if n < o.minSamples {
		return o.state
	}

	pk := o.pk.ProcessSample(x, env)
	if !o.state && pk {
		if o.currentPeak < x {
			o.currentPeak = x
			o.state = true
			o.count = 0
		}
	} else if o.state && !pk {
		o.state = false
		o.count = 0
	}

	return o.state
}

// PeakValue returns the latched peak of the most recent onset.
func (o *Onset) PeakValue() float64 { return o.currentPeak }

// Reset clears the latched peak so the next qualifying sample starts a new
// onset regardless of earlier levels. The active/quiet state and the
// debounce window are left alone.
func (o *Onset) Reset() { o.currentPeak = 0 }

// Active returns the current state without feeding a sample.
func (o *Onset) Active() bool { return o.state }

// Edge reports whether the last sample caused a transition.
func (o *Onset) Edge() bool { return o.count == 0 }

// MinSamples returns the debounce window in samples.
func (o *Onset) MinSamples() int { return o.minSamples }
