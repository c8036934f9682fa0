// Package lvstream is a toolkit for unsupervised learning over unbounded,
// possibly drifting data streams: online micro-clustering, self-organizing
// maps and the signals needed to monitor them.
//
// 🚀 What is lvstream?
//
//	A small, seedable, pure-Go library that brings together:
//		• StreamART2A: an adaptive-resonance micro-clusterer with a bounded,
//		  time-indexed archive of landmark windows
//		• SOM lattices: rectangular or hexagonal grids of prototypes
//		• Batch SOM and PLSOM learning, including weighted training from
//		  archived micro-categories
//		• UbiSOM: a two-phase online SOM that reports quantization error,
//		  neuron activity and drift as running means
//
// ✨ Why choose lvstream?
//
//   - Deterministic – every random draw comes from an explicit seed
//   - Bounded memory – fixed-capacity codebooks, archives and filter windows
//   - Observable – engines notify subscribers after landmark and update events
//
// Packages:
//
//	vector/    — dense vectors, distance metrics, nearest-prototype search
//	filter/    — running-mean and cascaded running-mean filters
//	notify/    — ordered listener registry shared by every engine
//	archive/   — generic fixed-capacity archive ordered by timestamp
//	streamart/ — MicroCategory and the StreamART2A engine
//	som/       — lattice, topologies, neighbourhood and decay functions
//	learning/  — batch SOM and PLSOM trainers
//	ubisom/    — the UbiSOM phase machine
//	config/    — YAML run configuration for cmd/streamlab
//
// Quick start:
//
//	eng, _ := streamart.New(2, streamart.WithLandmarkWindow(500))
//	for x := range samples {
//		_ = eng.Learn(x)
//	}
//	archived := eng.Codebook()
//
//	go install github.com/katalvlaran/lvstream/cmd/streamlab@latest
package lvstream
