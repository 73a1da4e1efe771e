package smooth

import (
	"math"

	"github.com/cwbudde/algo-sfx/dsp/core"
)

// DefaultSensitivity is the sensitivity used when WithSensitivity is not given.
const DefaultSensitivity = 0.5

// Option configures a DynamicSmoother.
type Option func(*DynamicSmoother)

// WithSensitivity sets how strongly input activity raises the cutoff. Zero
// turns the smoother into a static two-pole lowpass at the base frequency.
func WithSensitivity(sensitivity float64) Option {
	return func(s *DynamicSmoother) {
		s.sense = sensitivity * 4
	}
}

// DynamicSmoother is a two-pole lowpass cascade whose cutoff is modulated by
// its own bandpass output (the difference of the two stages). A changing
// input widens the cutoff so fast moves are tracked with little lag, while
// steady segments get the full smoothing of the base cutoff.
type DynamicSmoother struct {
	// sense is the sensitivity pre-scaled by 4 so the bandpass magnitude maps
	// linearly onto extra gain.
	sense float64
	wc    float64
	g0    float64

	low1 float64
	low2 float64

	// gain is the cutoff gain used by the last ProcessSample call.
	gain float64
}

// NewDynamicSmoother returns a smoother with the given base cutoff.
func NewDynamicSmoother(base core.Frequency, sampleRate float64, opts ...Option) *DynamicSmoother {
	s := &DynamicSmoother{sense: DefaultSensitivity * 4}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	s.SetBaseFrequency(base, sampleRate)

	return s
}

// SetBaseFrequency retunes the base cutoff. The two stages keep their state,
// so the cutoff can be changed while a stream is running.
func (s *DynamicSmoother) SetBaseFrequency(base core.Frequency, sampleRate float64) {
	s.wc = float64(base) / sampleRate
	gc := math.Tan(math.Pi * s.wc)
	s.g0 = 2 * gc / (1 + gc)
}

// ProcessSample smooths one sample.
//
// The returned value is the second stage as it was before x was applied: the
// output lags the internal state by one sample. The bandpass term that drives
// the cutoff is taken from the same pre-update state.
func (s *DynamicSmoother) ProcessSample(x float64) float64 {
	low1z := s.low1
	low2z := s.low2
	bandz := low1z - low2z

	g := math.Min(s.g0+s.sense*math.Abs(bandz), 1)
	s.gain = g

	s.low1 = low1z + g*(x-low1z)
	s.low2 = low2z + g*(s.low1-low2z)

	return low2z
}

// BaseGain returns the cutoff gain applied when the input is not changing.
func (s *DynamicSmoother) BaseGain() float64 { return s.g0 }

// NormalizedCutoff returns the base cutoff divided by the sample rate.
func (s *DynamicSmoother) NormalizedCutoff() float64 { return s.wc }

// Sensitivity returns the configured sensitivity.
func (s *DynamicSmoother) Sensitivity() float64 { return s.sense / 4 }

// Reset clears both stages.
func (s *DynamicSmoother) Reset() {
	s.low1 = 0
	s.low2 = 0
	s.gain = 0
}
