package response

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-sfx/dsp/core"
	"github.com/cwbudde/algo-sfx/dsp/signal"
)

// Errors returned by Measure.
var (
	ErrNilProcessor      = errors.New("response: processor is nil")
	ErrInvalidSampleRate = errors.New("response: sample rate must be positive")
	ErrInvalidSize       = errors.New("response: fft size must be a power of two >= 2")
	ErrInvalidAmplitude  = errors.New("response: impulse amplitude must be positive")
)

// Processor is anything that filters one sample at a time.
type Processor interface {
	ProcessSample(x float64) float64
}

// Option configures a measurement.
type Option func(*config)

type config struct {
	amplitude float64
}

// WithAmplitude sets the height of the probing impulse. The result is
// normalized by it. Default 1.
func WithAmplitude(a float64) Option {
	return func(c *config) {
		c.amplitude = a
	}
}

// Response is a measured magnitude response.
type Response struct {
	SampleRate float64
	FFTSize    int

	// Impulse is the recorded impulse response, FFTSize samples long.
	Impulse []float64

	// Magnitude holds the linear magnitude of bins 0..FFTSize/2.
	Magnitude []float64
}

// Measure feeds an impulse followed by silence through p and returns the
// magnitude spectrum of its output. p is not reset before or after.
func Measure(p Processor, sampleRate float64, fftSize int, opts ...Option) (*Response, error) {
	if p == nil {
		return nil, ErrNilProcessor
	}
	if !(sampleRate > 0) {
		return nil, ErrInvalidSampleRate
	}
	if fftSize < 2 || fftSize&(fftSize-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, fftSize)
	}

	cfg := config{amplitude: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if !(cfg.amplitude > 0) {
		return nil, ErrInvalidAmplitude
	}

	gen := signal.NewGenerator(core.WithSampleRate(sampleRate))
	stimulus, err := gen.Impulse(cfg.amplitude, fftSize, 0)
	if err != nil {
		return nil, fmt.Errorf("response: %w", err)
	}

	ir := make([]float64, fftSize)
	for i, x := range stimulus {
		ir[i] = p.ProcessSample(x)
	}
	vecmath.ScaleBlockInPlace(ir, 1/cfg.amplitude)

	mag, err := magnitude(ir)
	if err != nil {
		return nil, err
	}

	return &Response{
		SampleRate: sampleRate,
		FFTSize:    fftSize,
		Impulse:    ir,
		Magnitude:  mag,
	}, nil
}

func magnitude(ir []float64) ([]float64, error) {
	n := len(ir)

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("response: fft plan: %w", err)
	}

	in := make([]complex128, n)
	for i, v := range ir {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("response: fft: %w", err)
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	return mag, nil
}

// Bins returns the number of magnitude bins (FFTSize/2 + 1).
func (r *Response) Bins() int {
	return len(r.Magnitude)
}

// BinFrequency returns the center frequency of bin k.
func (r *Response) BinFrequency(k int) core.Frequency {
	return core.Frequency(float64(k) * r.SampleRate / float64(r.FFTSize))
}

// Frequencies returns n frequencies evenly spaced from lo to hi, a
// convenient axis for tabulating the response.
func Frequencies(lo, hi core.Frequency, n int) []core.Frequency {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []core.Frequency{lo}
	}

	axis := floats.Span(make([]float64, n), float64(lo), float64(hi))
	out := make([]core.Frequency, n)
	for i, f := range axis {
		out[i] = core.Frequency(f)
	}
	return out
}

// At returns the linear magnitude at freq, interpolated linearly between
// bins. Frequencies outside [0, SampleRate/2] are clamped.
func (r *Response) At(freq core.Frequency) float64 {
	if len(r.Magnitude) == 0 {
		return 0
	}

	pos := float64(freq) * float64(r.FFTSize) / r.SampleRate
	pos = core.Clamp(pos, 0, float64(len(r.Magnitude)-1))

	k := int(math.Floor(pos))
	if k >= len(r.Magnitude)-1 {
		return r.Magnitude[len(r.Magnitude)-1]
	}

	frac := pos - float64(k)
	return r.Magnitude[k] + frac*(r.Magnitude[k+1]-r.Magnitude[k])
}

// DB returns the magnitude at freq in dB.
func (r *Response) DB(freq core.Frequency) float64 {
	return core.LinearToDB(r.At(freq))
}

// Cutoff returns the lowest frequency at which the response has fallen
// dropDB below its DC value, interpolating between bins. ok is false when
// the response never falls that far.
func (r *Response) Cutoff(dropDB float64) (freq core.Frequency, ok bool) {
	if len(r.Magnitude) < 2 || r.Magnitude[0] <= 0 {
		return 0, false
	}

	ref := core.LinearToDB(r.Magnitude[0])
	prev := 0.0
	for k := 1; k < len(r.Magnitude); k++ {
		rel := core.LinearToDB(r.Magnitude[k]) - ref
		if rel <= -dropDB {
			frac := (-dropDB - prev) / (rel - prev)
			if math.IsInf(rel, -1) || math.IsNaN(frac) {
				frac = 0
			}
			lo := float64(r.BinFrequency(k - 1))
			hi := float64(r.BinFrequency(k))
			return core.Frequency(lo + frac*(hi-lo)), true
		}
		prev = rel
	}

	return 0, false
}
