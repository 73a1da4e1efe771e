package detect

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-sfx/dsp/core"
	"github.com/cwbudde/algo-sfx/internal/testutil"
)

func TestZeroCrossGolden(t *testing.T) {
	in := testutil.LoadFixture(t, "pluck.wav")

	z := NewZeroCrossMaxFrequency(0.01, 1000, float64(in.SampleRate))
	out := make([]float64, len(in.Samples))
	for i, x := range in.Samples {
		out[i] = core.BoolToSample(z.ProcessSample(x))
	}

	testutil.CompareGolden(t, "zero_cross", out, in.SampleRate)
}

func TestPeakGolden(t *testing.T) {
	in := testutil.LoadFixture(t, "pluck.wav")

	env := NewPeakEnvelopeFollower(0.1, float64(in.SampleRate))
	p := NewPeak(0.7, 0.002)
	out := make([]float64, len(in.Samples))
	for i, x := range in.Samples {
		out[i] = core.BoolToSample(p.ProcessSample(x, env.ProcessSample(math.Abs(x))))
	}

	testutil.CompareGolden(t, "peak", out, in.SampleRate)
}

func TestOnsetGolden(t *testing.T) {
	in := testutil.LoadFixture(t, "pluck.wav")
	sr := float64(in.SampleRate)

	env := NewPeakEnvelopeFollower(core.Milliseconds(100), sr)
	o := NewOnset(core.Milliseconds(50), sr)

	state := make([]float64, len(in.Samples))
	peak := make([]float64, len(in.Samples))
	for i, x := range in.Samples {
		state[i] = core.BoolToSample(o.ProcessSample(x, env.ProcessSample(math.Abs(x))))
		peak[i] = o.PeakValue()
	}

	testutil.CompareGolden(t, "onset", state, in.SampleRate)
	testutil.CompareGolden(t, "onset_peak", peak, in.SampleRate)
}
