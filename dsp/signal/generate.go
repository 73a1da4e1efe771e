package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-sfx/dsp/core"
)

// Generator creates deterministic test signals from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return NewGeneratorWithOptions(opts)
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// SampleRate returns the configured sample rate.
func (g *Generator) SampleRate() float64 {
	return g.cfg.SampleRate
}

// Seed returns the noise seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// SetSeed changes the noise seed for subsequent WhiteNoise and Pluck calls.
func (g *Generator) SetSeed(seed int64) {
	g.seed = seed
}

// Sine generates a sine wave.
func (g *Generator) Sine(freq core.Frequency, amplitude float64, samples int) ([]float64, error) {
	if err := g.check("sine", samples); err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * float64(freq) / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if err := g.check("noise", samples); err != nil {
		return nil, err
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("signal: noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// Impulse generates a single sample of the given amplitude at pos.
func (g *Generator) Impulse(amplitude float64, samples, pos int) ([]float64, error) {
	if err := g.check("impulse", samples); err != nil {
		return nil, err
	}
	if pos < 0 || pos >= samples {
		return nil, fmt.Errorf("signal: impulse position out of range: %d", pos)
	}
	out := make([]float64, samples)
	out[pos] = amplitude
	return out, nil
}

// Step generates silence followed by level from pos on.
func (g *Generator) Step(level float64, samples, pos int) ([]float64, error) {
	if err := g.check("step", samples); err != nil {
		return nil, err
	}
	if pos < 0 || pos >= samples {
		return nil, fmt.Errorf("signal: step position out of range: %d", pos)
	}
	out := make([]float64, samples)
	for i := pos; i < samples; i++ {
		out[i] = level
	}
	return out, nil
}

// Note is one exponentially decaying tone of a Pluck signal.
type Note struct {
	Start     core.Period    // onset time
	Freq      core.Frequency // fundamental
	Amplitude float64
	Decay     float64 // decay rate in 1/s
}

// Pluck renders a sequence of decaying notes with a second harmonic at 30%
// of the fundamental, plus a low noise floor of the given amplitude.
// Notes may overlap.
func (g *Generator) Pluck(notes []Note, noise float64, samples int) ([]float64, error) {
	if err := g.check("pluck", samples); err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	for _, n := range notes {
		if n.Decay < 0 {
			return nil, fmt.Errorf("signal: pluck decay must be >= 0: %f", n.Decay)
		}
		start := core.SamplesIn(n.Start, g.cfg.SampleRate)
		w := 2 * math.Pi * float64(n.Freq) / g.cfg.SampleRate
		for i := start; i < samples; i++ {
			k := float64(i - start)
			env := n.Amplitude * math.Exp(-n.Decay*k/g.cfg.SampleRate)
			out[i] += env * (math.Sin(w*k) + 0.3*math.Sin(2*w*k))
		}
	}
	if noise > 0 {
		floor, err := g.WhiteNoise(noise, samples)
		if err != nil {
			return nil, err
		}
		vecmath.AddBlockInPlace(out, floor)
	}
	return out, nil
}

func (g *Generator) check(kind string, samples int) error {
	if samples <= 0 {
		return fmt.Errorf("signal: %s samples must be > 0: %d", kind, samples)
	}
	if g.cfg.SampleRate <= 0 {
		return fmt.Errorf("signal: %s sample rate must be > 0: %f", kind, g.cfg.SampleRate)
	}
	return nil
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("signal: normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("signal: normalize input must not be empty")
	}

	out := make([]float64, len(data))
	maxAbs := vecmath.MaxAbs(data)
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	vecmath.ScaleBlock(out, data, targetPeak/maxAbs)
	return out, nil
}

// Clip limits every sample to [lo, hi] and returns a new slice.
func Clip(data []float64, lo, hi float64) ([]float64, error) {
	if lo > hi {
		return nil, fmt.Errorf("signal: clip range is empty: [%f, %f]", lo, hi)
	}
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = core.Clamp(v, lo, hi)
	}
	return out, nil
}
