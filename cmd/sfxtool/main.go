// Command sfxtool runs one streaming primitive over a mono signal.
//
// Usage:
//
//	sfxtool [flags] primitive
//	sfxtool -response smoother|onepole [flags]
//
// The first channel of -in is processed sample by sample and the primitive's
// output (detector states as 0/1) is written to -out as 32-bit PCM WAV.
// Without -in a plucked test signal is generated at -rate. Detector
// transitions are logged to stderr.
//
// Examples:
//
//	sfxtool -in guitar.wav -out onsets.wav onset
//	sfxtool -in voice.wav -out smooth.wav -base 20 -sensitivity 1 smoother
//	sfxtool -out zc.wav -max-freq 500 -v zerocross
//	sfxtool -response onepole -cutoff 1000 -rate 48000
//	sfxtool -list
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cwbudde/algo-sfx/dsp/core"
	"github.com/cwbudde/algo-sfx/dsp/signal"
	"github.com/cwbudde/algo-sfx/internal/wavio"
	"github.com/cwbudde/algo-sfx/stats/level"
)

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	in       string
	out      string
	rate     float64
	seconds  float64
	verbose  bool
	list     bool
	resp     string
	fftSize  int
	points   int
	params   params
	argument string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{params: defaultParams()}
	p := &opts.params

	fs := flag.NewFlagSet("sfxtool", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.in, "in", "", "input WAV file (default: generated pluck signal)")
	fs.StringVar(&opts.out, "out", "", "output WAV file")
	fs.Float64Var(&opts.rate, "rate", core.DefaultSampleRate, "sample rate for generated input and -response")
	fs.Float64Var(&opts.seconds, "seconds", 2, "length of the generated input")
	fs.BoolVar(&opts.verbose, "v", false, "log every detector transition")
	fs.BoolVar(&opts.list, "list", false, "list available primitives")
	fs.StringVar(&opts.resp, "response", "", "print the magnitude response of smoother or onepole")
	fs.IntVar(&opts.fftSize, "fft", 4096, "FFT size for -response (power of two)")
	fs.IntVar(&opts.points, "points", 17, "number of rows printed by -response")
	fs.Float64Var(&p.hysteresis, "hysteresis", p.hysteresis, "zerocross/peak comparator hysteresis")
	fs.Float64Var(&p.maxFreq, "max-freq", p.maxFreq, "zerocross: highest expected frequency in Hz")
	fs.Float64Var(&p.minPeriodMs, "min-ms", p.minPeriodMs, "onset: minimum time between transitions in ms")
	fs.Float64Var(&p.base, "base", p.base, "smoother: base cutoff in Hz")
	fs.Float64Var(&p.sensitivity, "sensitivity", p.sensitivity, "smoother: cutoff modulation sensitivity")
	fs.Float64Var(&p.cutoff, "cutoff", p.cutoff, "lowpass: cutoff in Hz")
	fs.Float64Var(&p.releaseMs, "release-ms", p.releaseMs, "peak/onset: envelope release in ms")
	fs.Float64Var(&p.droop, "droop", p.droop, "peak: envelope droop factor")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: sfxtool [flags] primitive\n")
		fmt.Fprintf(stderr, "       sfxtool -response smoother|onepole [flags]\n\n")
		fmt.Fprintf(stderr, "Runs a streaming effect primitive over a mono signal.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  sfxtool -in guitar.wav -out onsets.wav onset\n")
		fmt.Fprintf(stderr, "  sfxtool -response onepole -cutoff 1000 -rate 48000\n")
		fmt.Fprintf(stderr, "  sfxtool -list\n")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if opts.list || opts.resp != "" {
		return opts, nil
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return nil, errUsage
	}
	opts.argument = fs.Arg(0)

	if opts.out == "" {
		return nil, errors.New("-out is required")
	}
	if !(opts.rate > 0) {
		return nil, fmt.Errorf("-rate must be positive: %g", opts.rate)
	}

	return opts, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "error: %v\n", err)
		}
		return 2
	}

	logLevel := slog.LevelInfo
	if opts.verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	switch {
	case opts.list:
		for _, n := range primitiveNames() {
			e, _ := lookup(n)
			fmt.Fprintf(stdout, "%-12s %s\n", e.name, e.desc)
		}
		return 0
	case opts.resp != "":
		if err := printResponse(stdout, opts.resp, opts.rate, opts.fftSize, opts.points, opts.params); err != nil {
			logger.Error("response failed", "error", err)
			return 1
		}
		return 0
	}

	if err := process(opts, logger); err != nil {
		logger.Error("processing failed", "error", err)
		return 1
	}
	return 0
}

func process(opts *options, logger *slog.Logger) error {
	prim, err := lookup(opts.argument)
	if err != nil {
		return err
	}

	in, sampleRate, err := loadInput(opts)
	if err != nil {
		return err
	}
	inLevel := level.Measure(in)
	logger.Info("input",
		"source", inputName(opts.in),
		"samples", len(in),
		"rate", sampleRate,
		"rms_db", fmt.Sprintf("%.1f", inLevel.RMSdB()),
		"peak_db", fmt.Sprintf("%.1f", inLevel.PeakdB()),
	)

	res := prim.run(in, sampleRate, opts.params)

	for _, ev := range res.events {
		lvl := slog.LevelDebug
		if ev.kind == "onset" {
			lvl = slog.LevelInfo
		}
		logger.Log(context.Background(), lvl, ev.kind,
			"sample", ev.index,
			"time", fmt.Sprintf("%.4fs", float64(ev.index)/sampleRate),
			"value", ev.value,
		)
	}

	if err := wavio.Write(opts.out, res.samples, int(res.sampleRate)); err != nil {
		return err
	}
	outLevel := level.Measure(res.samples)
	logger.Info("wrote output",
		"primitive", prim.name,
		"path", opts.out,
		"samples", len(res.samples),
		"rate", res.sampleRate,
		"events", len(res.events),
		"rms_db", fmt.Sprintf("%.1f", outLevel.RMSdB()),
	)

	return nil
}

func inputName(path string) string {
	if path == "" {
		return "generated"
	}
	return path
}

// demoNotes is the plucked test phrase used when no input file is given.
var demoNotes = []signal.Note{
	{Start: 0.05, Freq: 220, Amplitude: 0.35, Decay: 8},
	{Start: 0.30, Freq: 330, Amplitude: 0.56, Decay: 8},
	{Start: 0.55, Freq: 247, Amplitude: 0.28, Decay: 8},
	{Start: 0.80, Freq: 196, Amplitude: 0.63, Decay: 8},
}

func loadInput(opts *options) ([]float64, float64, error) {
	if opts.in != "" {
		s, err := wavio.Read(opts.in)
		if err != nil {
			return nil, 0, err
		}
		return s.Samples, float64(s.SampleRate), nil
	}

	gen := signal.NewGeneratorWithOptions([]core.ProcessorOption{core.WithSampleRate(opts.rate)}, signal.WithSeed(7))
	n := int(opts.seconds * opts.rate)
	x, err := gen.Pluck(demoNotes, 0.0014, n)
	if err != nil {
		return nil, 0, fmt.Errorf("generate input: %w", err)
	}
	return x, opts.rate, nil
}
