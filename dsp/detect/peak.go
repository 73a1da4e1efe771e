package detect

// Peak flags the samples that sit above a slightly attenuated ("drooped")
// copy of the signal's own envelope. For an envelope that tracks the local
// maxima this fires near the true peaks; the comparator hysteresis keeps it
// from chattering around the threshold. The envelope is supplied by the
// caller.
type Peak struct {
	droop float64
	cmp   SchmittTrigger
}

// NewPeak returns a peak detector. droop is the envelope attenuation
// (typically in (0, 1]) and hysteresis that of the internal comparator.
func NewPeak(droop, hysteresis float64) *Peak {
	return &Peak{
		droop: droop,
		cmp:   SchmittTrigger{hysteresis: hysteresis},
	}
}

// ProcessSample compares x against env*droop and returns true while x is
// considered at a peak.
func (p *Peak) ProcessSample(x, env float64) bool {
	return p.cmp.Compare(x, env*p.droop)
}

// State returns the last output without feeding a sample.
func (p *Peak) State() bool { return p.cmp.State() }

// Reset returns the comparator to the low state.
func (p *Peak) Reset() { p.cmp.Reset() }
