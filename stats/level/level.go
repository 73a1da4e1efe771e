// Package level summarizes the amplitude of a signal: DC, RMS, peak, crest
// factor, sign changes and the shape of the sample distribution.
package level

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-sfx/dsp/core"
)

// Summary holds amplitude statistics of a signal.
type Summary struct {
	Length        int
	DC            float64 // mean
	RMS           float64
	Peak          float64 // max(|max|, |min|)
	PeakPos       int
	CrestFactor   float64 // peak / RMS (linear), 0 for silence
	ZeroCrossings int
	Variance      float64 // population variance
	Skewness      float64 // sample skewness, 0 below 4 samples
	Kurtosis      float64 // sample excess kurtosis, 0 below 4 samples
}

// RMSdB returns the RMS level in dB.
func (s Summary) RMSdB() float64 { return core.LinearToDB(s.RMS) }

// PeakdB returns the peak level in dB.
func (s Summary) PeakdB() float64 { return core.LinearToDB(s.Peak) }

// CrestFactordB returns the crest factor in dB, 0 for silence.
func (s Summary) CrestFactordB() float64 {
	if s.CrestFactor == 0 {
		return 0
	}
	return core.LinearToDB(s.CrestFactor)
}

// Measure computes the summary of x.
func Measure(x []float64) Summary {
	n := len(x)
	if n == 0 {
		return Summary{}
	}

	mean, variance := stat.PopMeanVariance(x, nil)

	s := Summary{
		Length:        n,
		DC:            mean,
		RMS:           RMS(x),
		ZeroCrossings: ZeroCrossings(x),
		Variance:      variance,
	}

	s.Peak, s.PeakPos = peak(x)
	if s.RMS > 0 {
		s.CrestFactor = s.Peak / s.RMS
	}

	if n >= 4 && variance > 0 {
		s.Skewness = stat.Skew(x, nil)
		s.Kurtosis = stat.ExKurtosis(x, nil)
	}

	return s
}

// RMS returns the root-mean-square of x.
func RMS(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return math.Sqrt(floats.Dot(x, x) / float64(len(x)))
}

// Peak returns the largest absolute sample of x.
func Peak(x []float64) float64 {
	p, _ := peak(x)
	return p
}

func peak(x []float64) (float64, int) {
	if len(x) == 0 {
		return 0, 0
	}

	hi, lo := floats.MaxIdx(x), floats.MinIdx(x)
	if math.Abs(x[lo]) > math.Abs(x[hi]) {
		return math.Abs(x[lo]), lo
	}
	return math.Abs(x[hi]), hi
}

// ZeroCrossings counts sign changes between consecutive samples. Samples
// that are exactly zero do not count as a change.
func ZeroCrossings(x []float64) int {
	var count int
	for i := 1; i < len(x); i++ {
		if x[i-1]*x[i] < 0 {
			count++
		}
	}
	return count
}

// Meter accumulates DC, RMS, peak, variance and sign changes one sample at
// a time.
type Meter struct {
	n       int
	mean    float64
	m2      float64
	sumSq   float64
	peak    float64
	peakPos int
	zc      int
	last    float64
}

// ProcessSample adds x to the running statistics.
func (m *Meter) ProcessSample(x float64) {
	m.n++

	// Welford update.
	delta := x - m.mean
	m.mean += delta / float64(m.n)
	m.m2 += delta * (x - m.mean)

	m.sumSq += x * x

	if a := math.Abs(x); a > m.peak || m.n == 1 {
		m.peak = a
		m.peakPos = m.n - 1
	}

	if m.n > 1 && m.last*x < 0 {
		m.zc++
	}
	m.last = x
}

// Result returns the statistics of everything seen so far. Skewness and
// Kurtosis are not tracked and stay zero.
func (m *Meter) Result() Summary {
	if m.n == 0 {
		return Summary{}
	}

	nf := float64(m.n)
	s := Summary{
		Length:        m.n,
		DC:            m.mean,
		RMS:           math.Sqrt(m.sumSq / nf),
		Peak:          m.peak,
		PeakPos:       m.peakPos,
		ZeroCrossings: m.zc,
		Variance:      m.m2 / nf,
	}
	if s.RMS > 0 {
		s.CrestFactor = s.Peak / s.RMS
	}
	return s
}

// Reset clears all accumulated data.
func (m *Meter) Reset() {
	*m = Meter{}
}
