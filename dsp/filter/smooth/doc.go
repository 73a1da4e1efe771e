// Package smooth provides per-sample lowpass smoothers for control and audio
// signals.
//
// Filters:
//   - DynamicLowpass: one-pole (6 dB/oct) lowpass whose coefficient is
//     supplied by the caller on every sample.
//   - OnePoleLowpass: the same filter with a fixed coefficient derived from a
//     cutoff frequency.
//   - DynamicSmoother: a two-pole smoother that raises its own cutoff while
//     the input is changing, after Andrew Simper's "Dynamic Smoothing Using
//     Self Modulating Filter" (Cytomic, 2014).
//
// All filters are single-channel, allocation-free, and owned by one caller.
// Feeding the same input to a fresh or Reset instance reproduces the same
// output bit for bit.
package smooth
