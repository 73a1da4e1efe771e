package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-sfx/dsp/core"
	"github.com/cwbudde/algo-sfx/dsp/filter/smooth"
	"github.com/cwbudde/algo-sfx/measure/response"
)

func responseProcessor(name string, sampleRate float64, p params) (response.Processor, error) {
	switch name {
	case "smoother":
		return smooth.NewDynamicSmoother(core.Frequency(p.base), sampleRate, smooth.WithSensitivity(p.sensitivity)), nil
	case "onepole", "lowpass":
		return smooth.NewOnePoleLowpass(core.Frequency(p.cutoff), sampleRate), nil
	default:
		return nil, fmt.Errorf("no response for %q (want smoother or onepole)", name)
	}
}

func printResponse(w io.Writer, name string, sampleRate float64, fftSize, points int, p params) error {
	proc, err := responseProcessor(name, sampleRate, p)
	if err != nil {
		return err
	}

	r, err := response.Measure(proc, sampleRate, fftSize)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Freq [Hz]\tGain\tGain [dB]\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "---------\t----\t---------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, f := range response.Frequencies(0, core.Frequency(sampleRate/2), points) {
		if _, err := fmt.Fprintf(tw, "%.1f\t%.6f\t%.2f\n", float64(f), r.At(f), r.DB(f)); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}

	if f, ok := r.Cutoff(3); ok {
		if _, err := fmt.Fprintf(tw, "\n-3 dB\t%.1f Hz\t\n", float64(f)); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}

	return tw.Flush()
}
