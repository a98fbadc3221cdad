// Package analysis measures sampled frames and recordings.
//
//   - [PowerSpectrum]: magnitude spectrum of a real sequence
//   - [DominantBin]: strongest non-DC bin of a spectrum
//   - [PulseStats]: amplitude-weighted center, spread and area of a frame
//   - [EstimateSpeed]: least-squares drift of pulse centers over time
//
// A recorded pulse view should report a spread close to its configured
// value and a speed close to speed * duration:
//
//	st, _ := analysis.PulseStats(frame)
//	v, _ := analysis.EstimateSpeed(elapsed, centers)
package analysis
