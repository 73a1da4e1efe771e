package detect

// SchmittTrigger is a comparator with hysteresis. It goes high once pos
// exceeds neg by more than the hysteresis and stays high until pos drops
// below neg by more than the hysteresis. Zero or negative hysteresis
// degrades to a plain comparator.
type SchmittTrigger struct {
	hysteresis float64
	y          bool
}

// NewSchmittTrigger returns a comparator in the low state.
func NewSchmittTrigger(hysteresis float64) *SchmittTrigger {
	return &SchmittTrigger{hysteresis: hysteresis}
}

// Compare updates the comparator with the pair (pos, neg) and returns its state.
func (s *SchmittTrigger) Compare(pos, neg float64) bool {
	if !s.y && pos > neg+s.hysteresis {
		s.y = true
	} else if s.y && pos < neg-s.hysteresis {
		s.y = false
	}

	return s.y
}

// State returns the last comparator output.
func (s *SchmittTrigger) State() bool { return s.y }

// Hysteresis returns the configured hysteresis.
func (s *SchmittTrigger) Hysteresis() float64 { return s.hysteresis }

// Reset returns the comparator to the low state.
func (s *SchmittTrigger) Reset() { s.y = false }
