package smooth

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-sfx/internal/testutil"
)

func TestDynamicSmootherCoefficients(t *testing.T) {
	s := NewDynamicSmoother(100, 48000)

	wc := 100.0 / 48000
	gc := math.Tan(math.Pi * wc)
	g0 := 2 * gc / (1 + gc)

	if s.NormalizedCutoff() != wc {
		t.Fatalf("NormalizedCutoff() = %v, want %v", s.NormalizedCutoff(), wc)
	}
	if s.BaseGain() != g0 {
		t.Fatalf("BaseGain() = %v, want %v", s.BaseGain(), g0)
	}
	if s.Sensitivity() != DefaultSensitivity {
		t.Fatalf("Sensitivity() = %v, want %v", s.Sensitivity(), DefaultSensitivity)
	}

	s2 := NewDynamicSmoother(100, 48000, WithSensitivity(0.25))
	if s2.sense != 1 {
		t.Fatalf("sense = %v, want 1 (4x sensitivity)", s2.sense)
	}
}

func TestDynamicSmootherOutputLagsByOneSample(t *testing.T) {
	s := NewDynamicSmoother(1000, 48000)

	// The first output is the initial stage-2 value, whatever the input.
	if got := s.ProcessSample(1); got != 0 {
		t.Fatalf("first output = %v, want 0", got)
	}

	// Each output equals the stage-2 value left by the previous call.
	for range 32 {
		prev := s.low2
		if got := s.ProcessSample(1); got != prev {
			t.Fatalf("output %v, want previous stage-2 value %v", got, prev)
		}
	}
}

func TestDynamicSmootherGainBounds(t *testing.T) {
	s := NewDynamicSmoother(20, 48000, WithSensitivity(2))

	in := testutil.DeterministicNoise(11, 1, 4096)
	in = append(in, testutil.Step(1, 4096, 100)...)
	in = append(in, testutil.DeterministicSine(3000, 48000, 0.9, 4096)...)

	clamped := false
	for i, x := range in {
		_ = s.ProcessSample(x)
		if s.gain < s.BaseGain() || s.gain > 1 {
			t.Fatalf("sample %d: gain %v outside [%v, 1]", i, s.gain, s.BaseGain())
		}
		if s.gain == 1 {
			clamped = true
		}
	}

	if !clamped {
		t.Fatal("expected the gain to hit the unity clamp on full-scale noise")
	}
}

func TestDynamicSmootherStepSettlesFasterThanStatic(t *testing.T) {
	const sampleRate = 48000.0

	in := testutil.Step(1, 48000, 4800)

	run := func(s *DynamicSmoother) []float64 {
		out := make([]float64, len(in))
		for i, x := range in {
			out[i] = s.ProcessSample(x)
		}
		return out
	}

	dynamic := run(NewDynamicSmoother(10, sampleRate))
	static := run(NewDynamicSmoother(10, sampleRate, WithSensitivity(0)))

	dynIdx := testutil.SettlingIndex(dynamic, 1, 0.01)
	staticIdx := testutil.SettlingIndex(static, 1, 0.01)

	if dynIdx < 0 || staticIdx < 0 {
		t.Fatalf("did not settle: dynamic=%d static=%d", dynIdx, staticIdx)
	}
	if dynIdx >= staticIdx {
		t.Fatalf("dynamic settling %d samples, static %d: want dynamic faster", dynIdx-4800, staticIdx-4800)
	}

	lp := NewOnePoleLowpass(10, sampleRate)
	onePole := make([]float64, len(in))
	for i, x := range in {
		onePole[i] = lp.ProcessSample(x)
	}
	if onePoleIdx := testutil.SettlingIndex(onePole, 1, 0.01); onePoleIdx < 0 || dynIdx >= onePoleIdx {
		t.Fatalf("dynamic settling index %d, one-pole %d: want dynamic faster", dynIdx, onePoleIdx)
	}
}

func TestDynamicSmootherSetBaseFrequencyKeepsState(t *testing.T) {
	s := NewDynamicSmoother(50, 48000)
	for range 100 {
		_ = s.ProcessSample(0.5)
	}

	low1, low2 := s.low1, s.low2
	oldG0 := s.BaseGain()

	s.SetBaseFrequency(500, 48000)

	if s.low1 != low1 || s.low2 != low2 {
		t.Fatal("retuning must not touch the filter stages")
	}
	if s.BaseGain() <= oldG0 {
		t.Fatalf("BaseGain() = %v, want > %v after raising the cutoff", s.BaseGain(), oldG0)
	}

	fresh := NewDynamicSmoother(500, 48000)
	if s.BaseGain() != fresh.BaseGain() || s.NormalizedCutoff() != fresh.NormalizedCutoff() {
		t.Fatal("retuned coefficients must match a freshly constructed smoother")
	}
}

func TestDynamicSmootherResetReplays(t *testing.T) {
	in := testutil.DeterministicNoise(5, 0.5, 1024)
	s := NewDynamicSmoother(200, 44100)

	first := make([]float64, len(in))
	for i, x := range in {
		first[i] = s.ProcessSample(x)
	}

	s.Reset()
	for i, x := range in {
		if got := s.ProcessSample(x); got != first[i] {
			t.Fatalf("replay mismatch at %d: got %v, want %v", i, got, first[i])
		}
	}
}
