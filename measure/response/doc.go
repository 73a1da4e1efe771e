// Package response measures the magnitude response of a per-sample
// processor by recording its impulse response and transforming it.
//
// Nonlinear processors (such as a dynamic smoother with non-zero
// sensitivity) have no single frequency response; the measurement then
// describes the small-signal behavior at the chosen impulse amplitude.
//
// # Usage
//
//	lp := smooth.NewOnePoleLowpass(1000, 48000)
//	r, err := response.Measure(lp, 48000, 4096)
//	fmt.Printf("%.1f dB at 1 kHz\n", r.DB(1000))
package response
