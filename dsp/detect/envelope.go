package detect

import (
	"math"

	"github.com/cwbudde/algo-sfx/dsp/core"
)

// PeakEnvelopeFollower tracks the local maximum of a signal with an instant
// attack and an exponential release. Feed it rectified samples to get the
// envelope expected by Peak and Onset.
type PeakEnvelopeFollower struct {
	decay float64
	y     float64
}

// NewPeakEnvelopeFollower returns a follower whose release falls to about
// 13.5% (e^-2) of a held peak after the release period.
func NewPeakEnvelopeFollower(release core.Period, sampleRate float64) *PeakEnvelopeFollower {
	return &PeakEnvelopeFollower{
		decay: math.Exp(-2 / (sampleRate * float64(release))),
	}
}

// ProcessSample updates the envelope with x and returns it.
func (f *PeakEnvelopeFollower) ProcessSample(x float64) float64 {
	if x > f.y {
		f.y = x
	} else {
		f.y = x + f.decay*(f.y-x)
	}

	return f.y
}

// Value returns the current envelope without updating it.
func (f *PeakEnvelopeFollower) Value() float64 { return f.y }

// Reset drops the envelope to zero.
func (f *PeakEnvelopeFollower) Reset() { f.y = 0 }
