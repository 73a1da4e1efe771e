package main

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/cwbudde/algo-sfx/dsp/core"
	"github.com/cwbudde/algo-sfx/dsp/detect"
	"github.com/cwbudde/algo-sfx/dsp/filter/smooth"
	"github.com/cwbudde/algo-sfx/dsp/resample"
)

// params collects the tuning flags shared by all primitives.
type params struct {
	hysteresis  float64
	maxFreq     float64 // zero-cross debounce, Hz
	minPeriodMs float64 // onset debounce
	base        float64 // smoother base cutoff, Hz
	sensitivity float64
	cutoff      float64 // one-pole cutoff, Hz
	releaseMs   float64 // envelope release
	droop       float64 // peak detector
}

func defaultParams() params {
	return params{
		hysteresis:  0.01,
		maxFreq:     1000,
		minPeriodMs: 50,
		base:        50,
		sensitivity: smooth.DefaultSensitivity,
		cutoff:      200,
		releaseMs:   100,
		droop:       0.7,
	}
}

// event is a detector transition worth reporting.
type event struct {
	index int
	kind  string
	value float64
}

// result is the output stream of one primitive run.
type result struct {
	samples    []float64
	sampleRate float64
	events     []event
}

type primitiveEntry struct {
	name string
	desc string
	run  func(in []float64, sampleRate float64, p params) result
}

var registry = []primitiveEntry{
	{"downsample", "2:1 decimation with the [1/4 1/2 1/4] half-band kernel", runDownsample},
	{"lowpass", "static one-pole lowpass at -cutoff", runLowpass},
	{"smoother", "dynamic smoother at -base with -sensitivity", runSmoother},
	{"zerocross", "hysteretic zero-crossing pulse train", runZeroCross},
	{"peak", "peak detector against the envelope drooped by -droop", runPeak},
	{"onset", "attack detector with -min-ms debounce", runOnset},
}

func lookup(name string) (primitiveEntry, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, e := range registry {
		if e.name == name {
			return e, nil
		}
	}
	return primitiveEntry{}, fmt.Errorf("unknown primitive %q (use -list to see available)", name)
}

func primitiveNames() []string {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	return names
}

func runDownsample(in []float64, sampleRate float64, _ params) result {
	var d resample.FastDownsample
	out := make([]float64, 0, len(in)/2)
	for i := 0; i+1 < len(in); i += 2 {
		out = append(out, d.Process(in[i], in[i+1]))
	}
	return result{samples: out, sampleRate: sampleRate / 2}
}

func runLowpass(in []float64, sampleRate float64, p params) result {
	f := smooth.NewOnePoleLowpass(core.Frequency(p.cutoff), sampleRate)
	out := make([]float64, len(in))
	for i, x := range in {
		out[i] = f.ProcessSample(x)
	}
	return result{samples: out, sampleRate: sampleRate}
}

func runSmoother(in []float64, sampleRate float64, p params) result {
	s := smooth.NewDynamicSmoother(core.Frequency(p.base), sampleRate, smooth.WithSensitivity(p.sensitivity))
	out := make([]float64, len(in))
	for i, x := range in {
		out[i] = s.ProcessSample(x)
	}
	return result{samples: out, sampleRate: sampleRate}
}

func runZeroCross(in []float64, sampleRate float64, p params) result {
	z := detect.NewZeroCrossMaxFrequency(p.hysteresis, core.Frequency(p.maxFreq), sampleRate)
	res := result{samples: make([]float64, len(in)), sampleRate: sampleRate}
	for i, x := range in {
		state := z.ProcessSample(x)
		res.samples[i] = core.BoolToSample(state)
		if z.Edge() {
			kind := "falling"
			if state {
				kind = "rising"
			}
			res.events = append(res.events, event{index: i, kind: kind, value: x})
		}
	}
	return res
}

func runPeak(in []float64, sampleRate float64, p params) result {
	env := detect.NewPeakEnvelopeFollower(core.Milliseconds(p.releaseMs), sampleRate)
	pk := detect.NewPeak(p.droop, p.hysteresis)
	res := result{samples: make([]float64, len(in)), sampleRate: sampleRate}
	prev := false
	for i, x := range in {
		state := pk.ProcessSample(x, env.ProcessSample(math.Abs(x)))
		res.samples[i] = core.BoolToSample(state)
		if state && !prev {
			res.events = append(res.events, event{index: i, kind: "peak", value: x})
		}
		prev = state
	}
	return res
}

func runOnset(in []float64, sampleRate float64, p params) result {
	env := detect.NewPeakEnvelopeFollower(core.Milliseconds(p.releaseMs), sampleRate)
	o := detect.NewOnset(core.Milliseconds(p.minPeriodMs), sampleRate)
	res := result{samples: make([]float64, len(in)), sampleRate: sampleRate}
	for i, x := range in {
		active := o.ProcessSample(x, env.ProcessSample(math.Abs(x)))
		res.samples[i] = core.BoolToSample(active)
		if active && o.Edge() {
			res.events = append(res.events, event{index: i, kind: "onset", value: o.PeakValue()})
		}
	}
	return res
}
