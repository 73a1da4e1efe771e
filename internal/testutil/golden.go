package testutil

import (
	"flag"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/cwbudde/algo-sfx/internal/wavio"
)

// GoldenTolerance is the absolute per-sample tolerance used when comparing a
// result against its golden recording.
const GoldenTolerance = 1e-8

var update = flag.Bool("update", false, "rewrite golden WAV files instead of comparing")

// FixturePath returns the path of a shared input recording stored in this
// package's testdata directory.
func FixturePath(name string) string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return filepath.Join("testdata", name)
	}
	return filepath.Join(filepath.Dir(file), "testdata", name)
}

// LoadFixture reads a shared input recording.
func LoadFixture(t *testing.T, name string) *wavio.Stream {
	t.Helper()
	s, err := wavio.Read(FixturePath(name))
	if err != nil {
		t.Fatalf("load fixture %q: %v", name, err)
	}
	return s
}

// CompareGolden writes got as <name>.wav under a temporary directory,
// reads it back, and compares it with testdata/golden/<name>.wav of the
// calling package. Both sides go through the same WAV quantization, so the
// comparison is independent of how the golden file was produced.
//
// With -update the golden file is rewritten instead.
func CompareGolden(t *testing.T, name string, got []float64, sampleRate int) {
	t.Helper()

	goldenPath := filepath.Join("testdata", "golden", name+".wav")
	if *update {
		if err := os.MkdirAll(filepath.Dir(goldenPath), 0o755); err != nil {
			t.Fatalf("create golden dir: %v", err)
		}
		if err := wavio.Write(goldenPath, got, sampleRate); err != nil {
			t.Fatalf("update golden %q: %v", name, err)
		}
		return
	}

	resultPath := filepath.Join(t.TempDir(), name+".wav")
	if err := wavio.Write(resultPath, got, sampleRate); err != nil {
		t.Fatalf("write result %q: %v", name, err)
	}

	src, err := wavio.Read(resultPath)
	if err != nil {
		t.Fatalf("read result %q: %v", name, err)
	}

	golden, err := wavio.Read(goldenPath)
	if err != nil {
		t.Fatalf("read golden %q: %v", name, err)
	}

	a, b := src.Samples, golden.Samples
	if len(a) != len(b) {
		t.Fatalf("in test %q: length mismatch: got %d, golden %d", name, len(a), len(b))
	}

	for i := range a {
		if math.Abs(a[i]-b[i]) > GoldenTolerance {
			t.Fatalf("in test %q, at sample %d: got %v, golden %v", name, i, a[i], b[i])
		}
	}
}
