package core

import (
	"math"
	"testing"
)

func TestFrequencyPeriodConversion(t *testing.T) {
	f := Frequency(440)
	if got := f.Period(); !NearlyEqual(float64(got), 1.0/440, 1e-15) {
		t.Fatalf("Period() = %v, want %v", got, 1.0/440)
	}
	if got := f.Period().Frequency(); !NearlyEqual(float64(got), 440, 1e-12) {
		t.Fatalf("Period().Frequency() = %v, want 440", got)
	}
	if got := Milliseconds(250); got != 0.25 {
		t.Fatalf("Milliseconds(250) = %v, want 0.25", got)
	}
}

func TestSamplesIn(t *testing.T) {
	tests := []struct {
		name       string
		period     Period
		sampleRate float64
		want       int
	}{
		{name: "exact", period: 0.5, sampleRate: 8000, want: 4000},
		{name: "floor", period: 0.00099, sampleRate: 8000, want: 7},
		{name: "max frequency", period: Frequency(1000).Period(), sampleRate: 8000, want: 8},
		{name: "zero period", period: 0, sampleRate: 48000, want: 0},
		{name: "negative period", period: -1, sampleRate: 48000, want: 0},
		{name: "nan period", period: Period(math.NaN()), sampleRate: 48000, want: 0},
		{name: "zero frequency", period: Frequency(0).Period(), sampleRate: 48000, want: math.MaxInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SamplesIn(tt.period, tt.sampleRate); got != tt.want {
				t.Fatalf("SamplesIn(%v, %v) = %d, want %d", tt.period, tt.sampleRate, got, tt.want)
			}
		})
	}
}
