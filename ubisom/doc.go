// Package ubisom implements UbiSOM, a self-monitoring online Self-Organizing
// Map for non-stationary streams.
//
// Every step UbiSOM measures itself:
//   - quantization error: BMU distance normalized to [0,1]
//   - activity: fraction of neurons updated within the last T steps
//   - drift: β·QE + (1−β)·(1−activity), each through a running mean
//
// and schedules its learning rate α and radius σ from a two-phase state:
//
//	Ordering: α, σ fall linearly from (α0, σ0) to (αF, σF) over T steps.
//	  Drift uses the raw QE and a forced activity of 1.
//	Converging: α = αF·min(1, drift/driftRef), σ = σF·min(1, drift/driftRef),
//	  where driftRef is the drift captured on entering the phase.
//
// Transitions are the caller's policy: ConvergingState and OrderingState are
// never invoked by the model itself. A typical driver switches to converging
// after T ordering steps and back to ordering when drift exceeds driftRef.
//
// σ is a fraction of the lattice diagonal. Inputs are expected in [0,1]^d.
package ubisom
