// Package streamart implements StreamART2A, an adaptive-resonance style online
// clusterer that summarizes an evolving stream into a bounded set of weighted,
// timestamped prototypes (micro-categories).
//
// 🚀 How a step works
//
//	For every input x (Engine.Learn):
//	  1. step ← step + 1
//	  2. search the active codebook for the category c nearest to x
//	  3. similarity = 1 − ‖x − c‖ / inputManifold
//	     similarity ≥ vigilance  ⇒ resonance: c ← rate·x + (1−rate)·c, weight++, ts ← step
//	     otherwise              ⇒ commit:    new category at x, weight 1, ts ← step
//	  4. while |codebook| > q: merge the two closest categories (weighted mean),
//	     lowering vigilance to their similarity when that is smaller
//	  5. every landmarkWindow steps: stamp each category with the current
//	     vigilance, move the codebook into the bounded archive, reset vigilance
//	     to 1 and notify listeners
//
// ✨ Memory
//
//   - active codebook: at most q categories between calls
//   - archive: at most K categories, oldest timestamp evicted first
//
// Concurrency
//
//	Learn must be driven by a single goroutine. CodebookBetween,
//	CodebookUntil, Codebook and ArchiveSize may run concurrently with Learn:
//	the archive move at a landmark boundary and those reads share one
//	RWMutex, so readers never see a half-moved codebook.
package streamart
