// Package detect provides per-sample event detectors: hysteretic
// zero-crossing, peak, and onset (attack) detection, plus the schmitt
// trigger and peak envelope follower they build on.
//
// Detectors return one bool per input sample. Debounced detectors
// (ZeroCross, Onset) refuse a new transition until a minimum number of
// samples has passed since the previous one; Edge reports whether the most
// recent sample caused a transition.
//
// Typical onset chain:
//
//	env := detect.NewPeakEnvelopeFollower(core.Milliseconds(100), sr)
//	on := detect.NewOnset(core.Milliseconds(50), sr)
//	for _, x := range samples {
//		if on.ProcessSample(x, env.ProcessSample(math.Abs(x))) && on.Edge() {
//			// attack detected, on.PeakValue() holds its level
//		}
//	}
package detect
