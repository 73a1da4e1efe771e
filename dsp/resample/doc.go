// Package resample provides FastDownsample, a streaming 2:1 decimator with a
// three-tap {1/4, 1/2, 1/4} antialiasing kernel, and its fixed-point twin
// FastDownsampleInt.
//
// The kernel has unity gain at DC and a zero at the source Nyquist
// frequency. It is far from a brick-wall filter: content between half and
// full output Nyquist is only attenuated, so it suits control signals and
// analysis paths rather than audio that must stay alias-free.
package resample
