// Package wavio reads and writes mono sample streams as PCM WAV files.
//
// Samples are float64 in nominal [-1, 1]; they are stored as signed PCM
// scaled by 2^(bitDepth-1). Values outside the representable range are
// clipped on write.
package wavio

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// BitDepth is the PCM depth used by Write. 32-bit PCM keeps the quantization
// step (2^-31) well below the 1e-8 regression tolerance.
const BitDepth = 32

const wavFormatPCM = 1

// ErrInvalidFile is returned when the input is not a readable WAV file.
var ErrInvalidFile = errors.New("wavio: invalid WAV file")

// Stream is a decoded mono sample stream.
type Stream struct {
	Samples    []float64
	SampleRate int
	// Channels is the channel count of the source file; Samples holds the
	// first channel only.
	Channels int
	BitDepth int
}

// Read decodes path and returns its first channel.
func Read(path string) (*Stream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wavio: open %s: %w", path, err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFile, path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wavio: decode %s: %w", path, err)
	}

	channels := int(dec.NumChans)
	if channels < 1 {
		return nil, fmt.Errorf("%w: %s has no channels", ErrInvalidFile, path)
	}

	bitDepth := int(dec.BitDepth)
	scale := pcmScale(bitDepth)

	frames := len(buf.Data) / channels
	samples := make([]float64, frames)
	for i := range samples {
		v := buf.Data[i*channels]
		if bitDepth == 8 {
			v -= 128
		}
		samples[i] = float64(v) / scale
	}

	return &Stream{
		Samples:    samples,
		SampleRate: int(dec.SampleRate),
		Channels:   channels,
		BitDepth:   bitDepth,
	}, nil
}

// Write encodes samples as a mono 32-bit PCM WAV file at path.
func Write(path string, samples []float64, sampleRate int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("wavio: sample rate must be > 0: %d", sampleRate)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wavio: create %s: %w", path, err)
	}

	enc := wav.NewEncoder(f, sampleRate, BitDepth, 1, wavFormatPCM)
	buf := &audio.IntBuffer{
		Data:           Quantize(samples, BitDepth),
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: BitDepth,
	}

	if err := enc.Write(buf); err != nil {
		_ = f.Close()
		return fmt.Errorf("wavio: encode %s: %w", path, err)
	}

	if err := enc.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("wavio: finalize %s: %w", path, err)
	}

	return f.Close()
}

// Quantize converts samples to signed PCM codes of the given bit depth,
// rounding half up and clipping to the code range.
func Quantize(samples []float64, bitDepth int) []int {
	scale := pcmScale(bitDepth)
	lo, hi := -scale, scale-1

	out := make([]int, len(samples))
	for i, s := range samples {
		v := math.Floor(s*scale + 0.5)
		switch {
		case math.IsNaN(v):
			v = 0
		case v < lo:
			v = lo
		case v > hi:
			v = hi
		}
		out[i] = int(v)
	}

	return out
}

func pcmScale(bitDepth int) float64 {
	if bitDepth <= 8 {
		return 1 << 7
	}
	return float64(int64(1) << (bitDepth - 1))
}
