// Package filter provides sliding running-mean filters used by the UbiSOM
// self-monitoring loop.
//
// Two variants share the Filter contract:
//   - RunningMean: arithmetic mean over the last N samples (ring buffer + running sum)
//   - Cascade: three RunningMean stages in series; smoother output, larger phase lag
//
// Both produce a defined output before the window fills (mean of the samples
// seen so far) and cost O(1) per sample.
package filter
